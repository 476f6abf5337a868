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

// Command mm0v is the CLI entry point for the kernel. It owns every
// out-of-scope collaborator the kernel itself refuses to: reading the
// environment/script/input-buffer artifacts from disk, parsing CLI flags,
// and formatting diagnostics for a terminal. The kernel packages
// (pkg/mm0/ast, pkg/mm0/kernel, pkg/mm0/ioverify, pkg/mm0/verifier) know
// nothing about any of this.
package main

import (
	"os"

	"github.com/ECOSurfDeBot/mm0/cmd/mm0v/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
