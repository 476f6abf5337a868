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

package ioverify

import (
	"fmt"

	"github.com/ECOSurfDeBot/mm0/pkg/mm0/ast"
	"github.com/ECOSurfDeBot/mm0/pkg/mm0/kernel"
)

// nibbleCursor is a half-byte cursor over an input buffer: it is positioned
// either on a byte boundary or midway through a byte, consuming nibbles
// high-first then low within each byte.
type nibbleCursor struct {
	buf  []byte
	pos  int
	high bool // true once the high nibble of buf[pos] has been consumed
}

func (c *nibbleCursor) pop() (byte, error) {
	if c.pos >= len(c.buf) {
		return 0, c.mismatch()
	}

	b := c.buf[c.pos]

	if !c.high {
		c.high = true
		return b >> 4, nil
	}

	c.high = false
	c.pos++

	return b & 0xf, nil
}

func (c *nibbleCursor) mismatch() error {
	rest := ""
	if c.pos < len(c.buf) {
		rest = string(c.buf[c.pos:])
	}

	return fmt.Errorf("input mismatch at char %d: rest = '%s'", c.pos, rest)
}

func (c *nibbleCursor) atEOF() bool {
	return c.pos >= len(c.buf) && !c.high
}

// VerifyInputString reduces expr in input mode against buf, demanding that
// the reduction consumes the buffer exactly.
func VerifyInputString(state *kernel.State, expr ast.Expr, buf []byte) error {
	cursor := &nibbleCursor{buf: buf}

	if err := reduceInput(state, nil, expr, cursor); err != nil {
		return err
	}

	if !cursor.atEOF() {
		return cursor.mismatch()
	}

	return nil
}

func reduceInput(state *kernel.State, stack []frame, expr ast.Expr, cursor *nibbleCursor) error {
	switch e := expr.(type) {
	case ast.Var:
		val, parent, err := lookup(stack, e.VarName)
		if err != nil {
			return err
		}

		return reduceInput(state, parent, val, cursor)

	case ast.App:
		if digit, ok := hexDigits[e.Term]; ok {
			got, err := cursor.pop()
			if err != nil {
				return err
			}

			if got != digit {
				cursor.pos, cursor.high = rewind(cursor)
				return cursor.mismatch()
			}

			return nil
		}

		switch e.Term {
		case "s0":
			return nil

		case "s1":
			if len(e.Args) != 1 {
				return fmt.Errorf("arity mismatch for %q", e.Term)
			}

			return reduceInput(state, stack, e.Args[0], cursor)

		case "sadd":
			if len(e.Args) != 2 {
				return fmt.Errorf("arity mismatch for %q", e.Term)
			}

			if err := reduceInput(state, stack, e.Args[0], cursor); err != nil {
				return err
			}

			return reduceInput(state, stack, e.Args[1], cursor)

		case "ch":
			if len(e.Args) != 2 {
				return fmt.Errorf("arity mismatch for %q", e.Term)
			}

			if err := reduceInput(state, stack, e.Args[0], cursor); err != nil {
				return err
			}

			return reduceInput(state, stack, e.Args[1], cursor)
		}

		newStack, body, err := unfold(state, stack, e)
		if err != nil {
			return err
		}

		return reduceInput(state, newStack, body, cursor)

	default:
		return fmt.Errorf("unrecognized expression form %T", expr)
	}
}

// rewind undoes the half-nibble advance performed by the failing pop(),
// so the reported mismatch position points at the nibble that disagreed
// rather than the one after it.
func rewind(c *nibbleCursor) (int, bool) {
	if c.high {
		return c.pos, false
	}

	if c.pos > 0 {
		return c.pos - 1, true
	}

	return 0, false
}
