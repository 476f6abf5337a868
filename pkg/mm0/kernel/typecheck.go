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

// FreeVarSet is a set of variable names, used throughout the kernel for
// free-variable and disjoint-variable bookkeeping.
type FreeVarSet map[string]struct{}

// NewFreeVarSet constructs a free-variable set containing exactly the given
// names.
func NewFreeVarSet(names ...string) FreeVarSet {
	s := make(FreeVarSet, len(names))

	for _, n := range names {
		s[n] = struct{}{}
	}

	return s
}

// Union returns a new set containing every name in either operand.
func (s FreeVarSet) Union(other FreeVarSet) FreeVarSet {
	out := make(FreeVarSet, len(s)+len(other))

	for k := range s {
		out[k] = struct{}{}
	}

	for k := range other {
		out[k] = struct{}{}
	}

	return out
}

// Minus returns a new set containing every name in s that is not in other.
func (s FreeVarSet) Minus(other FreeVarSet) FreeVarSet {
	out := make(FreeVarSet, len(s))

	for k := range s {
		if _, ok := other[k]; !ok {
			out[k] = struct{}{}
		}
	}

	return out
}

// Contains reports whether name is a member of s.
func (s FreeVarSet) Contains(name string) bool {
	_, ok := s[name]
	return ok
}

// Typecheck assigns a sort to an expression, reporting whether it is a
// reference to a bound variable (boundness), and computes its free-variable
// set.
func Typecheck(state *State, ctx Context, expr ast.Expr) (sort string, isBound bool, free FreeVarSet, err error) {
	switch e := expr.(type) {
	case ast.Var:
		binder, ok := ctx[e.VarName]
		if !ok {
			return "", false, nil, fmt.Errorf("undeclared variable %q", e.VarName)
		}

		return binder.Sort(), binder.IsBound(), NewFreeVarSet(e.VarName), nil

	case ast.App:
		term, ok := state.Term(e.Term)
		if !ok {
			return "", false, nil, fmt.Errorf("unknown term %q", e.Term)
		}

		if len(term.Args) != len(e.Args) {
			return "", false, nil, fmt.Errorf("arity mismatch for %q: expected %d argument(s), found %d",
				e.Term, len(term.Args), len(e.Args))
		}

		free = NewFreeVarSet()

		for i, arg := range e.Args {
			argSort, argBound, argFree, err := Typecheck(state, ctx, arg)
			if err != nil {
				return "", false, nil, err
			}

			binder := term.Args[i]

			if argSort != binder.Sort() {
				return "", false, nil, fmt.Errorf("type mismatch in argument %d of %q: expected sort %q, found %q",
					i, e.Term, binder.Sort(), argSort)
			}

			if binder.IsBound() && !argBound {
				return "", false, nil, fmt.Errorf("non-bound expression in BV slot %d of %q", i, e.Term)
			}

			free = free.Union(argFree)
		}

		return term.Ret.Sort, false, free, nil

	default:
		return "", false, nil, fmt.Errorf("unrecognized expression form %T", expr)
	}
}
