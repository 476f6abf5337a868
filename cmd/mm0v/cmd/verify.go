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
	"encoding/json"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ECOSurfDeBot/mm0/pkg/mm0/ast"
	"github.com/ECOSurfDeBot/mm0/pkg/mm0/kernel"
	"github.com/ECOSurfDeBot/mm0/pkg/mm0/verifier"
)

var verifyCmd = &cobra.Command{
	Use:   "verify env.json script.json [input-file]",
	Short: "Verify a proof script against an environment's spec queue.",
	Long: `Verify a proof script against an environment's spec queue.

env.json and script.json hold the already-elaborated Environment and
Script values (see pkg/mm0/ast/json.go for the interchange format);
turning surface MM0/Corset source into these values is outside this
tool's scope. The optional input-file supplies the byte buffer consumed
by input-mode inout steps; it defaults to empty.`,
	Args: cobra.RangeArgs(2, 3),
	Run: func(cmd *cobra.Command, args []string) {
		if getFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}

		env := readEnvironment(args[0])
		script := readScript(args[1])

		var input []byte

		if len(args) == 3 {
			input = readInputFile(args[2])
		}

		state := kernel.NewState()

		result, err := verifier.Run(state, env, script, input)
		exitOnError(err)

		noColor := getFlag(cmd, "no-color")
		report(cmd.OutOrStdout(), result, noColor)

		if !result.Ok() {
			os.Exit(1)
		}
	},
}

func readEnvironment(path string) *ast.Environment {
	data, err := os.ReadFile(path)
	exitOnError(err)

	var env ast.Environment
	exitOnError(json.Unmarshal(data, &env))

	return &env
}

func readScript(path string) *ast.Script {
	data, err := os.ReadFile(path)
	exitOnError(err)

	var script ast.Script
	exitOnError(json.Unmarshal(data, &script))

	return &script
}

func readInputFile(path string) []byte {
	data, err := os.ReadFile(path)
	exitOnError(err)

	return data
}
