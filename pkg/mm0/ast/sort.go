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

// Package ast provides the data model for the kernel: sorts, binders,
// expressions, declarations, proof terms and conversion terms. This package
// has no behaviour of its own beyond construction, structural equality and
// hashing, rendering, and the JSON interchange codec in json.go — all
// checking logic lives in pkg/mm0/kernel.
package ast

// Sort is a named carrier type with four independent attributes controlling
// where its inhabitants may appear.
type Sort struct {
	// Name of this sort.
	Name string
	// Pure sorts admit no term constructor returning them.
	Pure bool
	// Strict sorts admit no bound variable.
	Strict bool
	// Provable sorts may appear as a theorem conclusion (or hypothesis).
	Provable bool
	// Free sorts admit no dummy variable.
	Free bool
}
