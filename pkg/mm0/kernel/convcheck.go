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

import (
	"fmt"

	"github.com/ECOSurfDeBot/mm0/pkg/mm0/ast"
)

// VerifyConv decides the definitional equality witnessed by a conversion
// term, returning the two sides, their common sort, and whether they are
// (jointly) bound-variable references. This is exported as the public
// entry point; verifyConv is the internal, context-threading worker used
// recursively and by the proof checker.
func VerifyConv(state *State, ctx Context, c ast.Conv) (lhs, rhs ast.Expr, sort string, isBound bool, err error) {
	return verifyConv(state, ctx, c)
}

func verifyConv(state *State, ctx Context, c ast.Conv) (lhs, rhs ast.Expr, sort string, isBound bool, err error) {
	switch cv := c.(type) {
	case ast.CVar:
		binder, ok := ctx[cv.Var]
		if !ok {
			return nil, nil, "", false, fmt.Errorf("undeclared variable %q", cv.Var)
		}

		v := ast.NewVar(cv.Var)

		return v, v, binder.Sort(), binder.IsBound(), nil

	case ast.CApp:
		term, ok := state.Term(cv.Term)
		if !ok {
			return nil, nil, "", false, fmt.Errorf("unknown term %q", cv.Term)
		}

		if len(term.Args) != len(cv.Args) {
			return nil, nil, "", false, fmt.Errorf("arity mismatch for %q: expected %d argument(s), found %d",
				cv.Term, len(term.Args), len(cv.Args))
		}

		ls := make([]ast.Expr, len(cv.Args))
		rs := make([]ast.Expr, len(cv.Args))

		for i, sub := range cv.Args {
			l, r, s, b, err := verifyConv(state, ctx, sub)
			if err != nil {
				return nil, nil, "", false, err
			}

			binder := term.Args[i]

			if s != binder.Sort() {
				return nil, nil, "", false, fmt.Errorf("type mismatch in argument %d of %q: expected sort %q, found %q",
					i, cv.Term, binder.Sort(), s)
			}

			if binder.IsBound() && !b {
				return nil, nil, "", false, fmt.Errorf("non-bound conversion in BV slot %d of %q", i, cv.Term)
			}

			ls[i] = l
			rs[i] = r
		}

		return ast.NewApp(cv.Term, ls...), ast.NewApp(cv.Term, rs...), term.Ret.Sort, false, nil

	case ast.CSym:
		l, r, s, b, err := verifyConv(state, ctx, cv.Conv)
		if err != nil {
			return nil, nil, "", false, err
		}

		return r, l, s, b, nil

	case ast.CUnfold:
		term, ok := state.Term(cv.Term)
		if !ok {
			return nil, nil, "", false, fmt.Errorf("unknown term %q", cv.Term)
		}

		if term.IsOpaque() {
			return nil, nil, "", false, fmt.Errorf("%q is not a definition", cv.Term)
		}

		if len(term.Args) != len(cv.Args) {
			return nil, nil, "", false, fmt.Errorf("arity mismatch for %q: expected %d argument(s), found %d",
				cv.Term, len(term.Args), len(cv.Args))
		}

		if len(cv.Dummies) != len(term.Def.Dummies) {
			return nil, nil, "", false, fmt.Errorf("%q: expected %d dummy name(s), found %d",
				cv.Term, len(term.Def.Dummies), len(cv.Dummies))
		}

		subst, err := verifyArgs(state, ctx, term.Args, cv.Args)
		if err != nil {
			return nil, nil, "", false, WithContext(cv.Term, err)
		}

		innerCtx := ctx.Clone()

		for i, dummy := range term.Def.Dummies {
			name := cv.Dummies[i]

			if _, ok := innerCtx[name]; ok {
				return nil, nil, "", false, fmt.Errorf("duplicate variable %q", name)
			}

			innerCtx[name] = ast.BoundBinder{VarName: name, SortName: dummy.Sort}
			subst[dummy.Name] = ast.NewVar(name)
		}

		l, r, s, b, err := verifyConv(state, innerCtx, cv.Conv)
		if err != nil {
			return nil, nil, "", false, err
		}

		expected := subst.Apply(term.Def.Body)
		if !ast.ExprEqual(l, expected) {
			return nil, nil, "", false, fmt.Errorf("%q: unfolded body %s does not match %s", cv.Term, expected, l)
		}

		return ast.NewApp(cv.Term, cv.Args...), r, s, b, nil

	default:
		return nil, nil, "", false, fmt.Errorf("unrecognized conversion form %T", c)
	}
}
