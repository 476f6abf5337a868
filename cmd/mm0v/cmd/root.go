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
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Version is filled in when building via make, but not when installing via
// "go install".
var Version string

var rootCmd = &cobra.Command{
	Use:   "mm0v",
	Short: "A verifier for Metamath Zero proof scripts.",
	Long:  "A verifier for Metamath Zero proof scripts: checks a script against an environment's spec queue and replays its proofs.",
}

// Execute adds all child commands to the root command and sets flags
// appropriately. It is called by main.main and only needs to run once.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "increase logging verbosity")
	rootCmd.PersistentFlags().Bool("no-color", false, "disable colored diagnostic output")
	rootCmd.AddCommand(verifyCmd)
}

// getFlag looks up a boolean flag on cmd, defaulting to false if no such
// flag is registered.
func getFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		return false
	}

	return r
}

func exitOnError(err error) {
	if err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
