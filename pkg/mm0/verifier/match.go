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

// Package verifier walks a proof script and an environment's remaining
// declaration queue in lockstep, dispatching per-statement checking to
// pkg/mm0/kernel and pkg/mm0/ioverify and accumulating diagnostics.
package verifier

import "github.com/ECOSurfDeBot/mm0/pkg/mm0/ast"

func stringsEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

func depTypeEqual(a, b ast.DepType) bool {
	return a.Sort == b.Sort && stringsEqual(a.Deps, b.Deps)
}

func bindersEqual(a, b []ast.Binder) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		switch ab := a[i].(type) {
		case ast.BoundBinder:
			bb, ok := b[i].(ast.BoundBinder)
			if !ok || ab != bb {
				return false
			}
		case ast.RegularBinder:
			bb, ok := b[i].(ast.RegularBinder)
			if !ok || ab.VarName != bb.VarName || !depTypeEqual(ab.Type, bb.Type) {
				return false
			}
		default:
			return false
		}
	}

	return true
}

func hypsEqual(a, b []ast.Hyp) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if a[i].Name != b[i].Name || !ast.ExprEqual(a[i].Stmt, b[i].Stmt) {
			return false
		}
	}

	return true
}

func dummiesEqual(a, b []ast.DummyVar) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
