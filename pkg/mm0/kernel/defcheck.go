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

// checkDummies extends ctx with the given dummy variables, as Bound
// binders, rejecting any dummy introduced at a strict or free sort and any
// name already in scope.
func checkDummies(state *State, ctx Context, dummies []ast.DummyVar) (Context, error) {
	ctx = ctx.Clone()

	for _, d := range dummies {
		if _, ok := ctx[d.Name]; ok {
			return nil, fmt.Errorf("duplicate variable %q", d.Name)
		}

		sd, ok := state.Sort(d.Sort)
		if !ok {
			return nil, fmt.Errorf("sort not found: %q", d.Sort)
		}

		if sd.Strict {
			return nil, fmt.Errorf("cannot introduce dummy variable %q at strict sort %q", d.Name, d.Sort)
		}

		if sd.Free {
			return nil, fmt.Errorf("cannot introduce dummy variable %q at free sort %q", d.Name, d.Sort)
		}

		ctx[d.Name] = ast.BoundBinder{VarName: d.Name, SortName: d.Sort}
	}

	return ctx, nil
}

// CheckDef validates a def's body against its declared signature and dummy
// variables.
func CheckDef(state *State, args []ast.Binder, retType ast.DepType, dummies []ast.DummyVar, body ast.Expr) error {
	ctx, err := BuildContext(state, args, NewContext())
	if err != nil {
		return err
	}

	for _, dep := range retType.Deps {
		b, ok := ctx[dep]
		if !ok || !b.IsBound() {
			return fmt.Errorf("unbound dependency %q in return type", dep)
		}
	}

	retSort, ok := state.Sort(retType.Sort)
	if !ok {
		return fmt.Errorf("sort not found: %q", retType.Sort)
	}

	if retSort.Pure {
		return fmt.Errorf("definition cannot return pure sort %q", retType.Sort)
	}

	ctx, err = checkDummies(state, ctx, dummies)
	if err != nil {
		return err
	}

	sort, deps, err := dependencyTypecheck(state, ctx, body)
	if err != nil {
		return err
	}

	if sort != retType.Sort {
		return fmt.Errorf("definition body has sort %q, expected %q", sort, retType.Sort)
	}

	allowed := NewFreeVarSet(retType.Deps...)
	if escaped := deps.Minus(allowed); len(escaped) > 0 {
		return fmt.Errorf("definition body depends on variable(s) outside its declared dependencies: %v", keysOf(escaped))
	}

	return nil
}

// dependencyTypecheck is the refined variant of Typecheck used only by
// CheckDef. It returns, for an expression, the set
// of bound variables in context the expression may mention after full
// unfolding.
func dependencyTypecheck(state *State, ctx Context, expr ast.Expr) (sort string, deps FreeVarSet, err error) {
	switch e := expr.(type) {
	case ast.Var:
		binder, ok := ctx[e.VarName]
		if !ok {
			return "", nil, fmt.Errorf("undeclared variable %q", e.VarName)
		}

		if binder.IsBound() {
			return binder.Sort(), NewFreeVarSet(e.VarName), nil
		}

		rb := binder.(ast.RegularBinder)

		return binder.Sort(), NewFreeVarSet(rb.Deps()...), nil

	case ast.App:
		term, ok := state.Term(e.Term)
		if !ok {
			return "", nil, fmt.Errorf("unknown term %q", e.Term)
		}

		if len(term.Args) != len(e.Args) {
			return "", nil, fmt.Errorf("arity mismatch for %q: expected %d argument(s), found %d",
				e.Term, len(term.Args), len(e.Args))
		}

		// paramMap carries, for each of the callee's Bound parameters, the
		// name of the concrete bound variable passed at that position.
		paramMap := make(map[string]string)
		argDeps := make([]FreeVarSet, len(e.Args))

		for i, arg := range e.Args {
			argSort, argDepSet, err := dependencyTypecheck(state, ctx, arg)
			if err != nil {
				return "", nil, err
			}

			binder := term.Args[i]

			if argSort != binder.Sort() {
				return "", nil, fmt.Errorf("type mismatch in argument %d of %q: expected sort %q, found %q",
					i, e.Term, binder.Sort(), argSort)
			}

			if binder.IsBound() {
				v, ok := arg.(ast.Var)
				if !ok || !ctx[v.VarName].IsBound() {
					return "", nil, fmt.Errorf("non-bound expression in BV slot %d of %q", i, e.Term)
				}

				paramMap[binder.Name()] = v.VarName
			}

			argDeps[i] = argDepSet
		}

		mapNames := func(names []string) FreeVarSet {
			out := make(FreeVarSet, len(names))

			for _, n := range names {
				if mapped, ok := paramMap[n]; ok {
					out[mapped] = struct{}{}
				} else {
					out[n] = struct{}{}
				}
			}

			return out
		}

		result := mapNames(term.Ret.Deps)

		for i, binder := range term.Args {
			rb, ok := binder.(ast.RegularBinder)
			if !ok {
				continue
			}

			allowed := mapNames(rb.Deps())
			result = result.Union(argDeps[i].Minus(allowed))
		}

		return term.Ret.Sort, result, nil

	default:
		return "", nil, fmt.Errorf("unrecognized expression form %T", expr)
	}
}

func keysOf(s FreeVarSet) []string {
	out := make([]string, 0, len(s))

	for k := range s {
		out = append(out, k)
	}

	return out
}
