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

// Package kernel implements the trust boundary of the toolchain: the
// context builder, expression typechecker, definition checker, proof
// checker and conversion checker. Every exported function here is a pure,
// synchronous computation over its arguments; none of it logs or performs
// I/O — that is left to the driver (pkg/mm0/verifier) and the CLI.
package kernel

import "fmt"

// WithContext prefixes err's message with name, forming the colon-separated
// context chain diagnostics are reported under. A nil err yields a nil
// result, so callers can unconditionally wrap a returned error.
func WithContext(name string, err error) error {
	if err == nil {
		return nil
	}

	return fmt.Errorf("%s: %w", name, err)
}
