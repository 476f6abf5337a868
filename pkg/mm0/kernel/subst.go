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

package kernel

import "github.com/ECOSurfDeBot/mm0/pkg/mm0/ast"

// Subst maps param -> arg; it is built positionally from a term/theorem's
// declared binders and is applied to every hypothesis/conclusion expression
// that mentions those binders.
type Subst map[string]ast.Expr

// Apply substitutes every variable reference in expr per subst, leaving
// unmapped variables untouched.
func (s Subst) Apply(expr ast.Expr) ast.Expr {
	switch e := expr.(type) {
	case ast.Var:
		if v, ok := s[e.VarName]; ok {
			return v
		}

		return e

	case ast.App:
		args := make([]ast.Expr, len(e.Args))

		for i, a := range e.Args {
			args[i] = s.Apply(a)
		}

		return ast.App{Term: e.Term, Args: args}

	default:
		return expr
	}
}
