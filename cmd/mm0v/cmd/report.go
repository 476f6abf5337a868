// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/ECOSurfDeBot/mm0/pkg/mm0/verifier"
)

const (
	ansiRed   = "\033[31m"
	ansiGreen = "\033[32m"
	ansiReset = "\033[0m"
)

// report writes a human-readable summary of result to w: one line per
// rejected declaration, wrapped to the terminal width when w is a terminal
// and colorized unless noColor or the output isn't a terminal.
func report(w io.Writer, result verifier.Result, noColor bool) {
	f, isFile := w.(*os.File)
	isTerm := isFile && term.IsTerminal(int(f.Fd()))
	colorize := !noColor && isTerm

	width := 80

	if isTerm {
		if cols, _, err := term.GetSize(int(f.Fd())); err == nil && cols > 0 {
			width = cols
		}
	}

	if result.Ok() {
		fmt.Fprintln(w, colorLine(colorize, ansiGreen, fmt.Sprintf("ok: %d output(s) produced", len(result.Outputs))))
		return
	}

	for _, diag := range result.Diagnostics {
		line := colorLine(colorize, ansiRed, diag.Error())
		fmt.Fprintln(w, wrap(line, width))
	}

	fmt.Fprintln(w, colorLine(colorize, ansiRed, fmt.Sprintf("%d declaration(s) rejected", len(result.Diagnostics))))
}

func colorLine(colorize bool, code, line string) string {
	if !colorize {
		return line
	}

	return code + line + ansiReset
}

// wrap breaks line on whitespace so no visible row exceeds width columns. It
// operates on the raw string, so it's only applied to lines that may carry
// ANSI codes at the very start/end, never in the middle.
func wrap(line string, width int) string {
	if width <= 0 || len(line) <= width {
		return line
	}

	words := strings.Fields(line)
	if len(words) == 0 {
		return line
	}

	var b strings.Builder

	col := 0

	for i, word := range words {
		if i > 0 {
			if col+1+len(word) > width {
				b.WriteByte('\n')
				col = 0
			} else {
				b.WriteByte(' ')
				col++
			}
		}

		b.WriteString(word)
		col += len(word)
	}

	return b.String()
}
