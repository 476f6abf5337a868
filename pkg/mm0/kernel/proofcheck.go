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

// Heap is the local, single-assignment mapping from hypothesis name to the
// expression it proves, owned by a single CheckTheorem invocation.
type Heap map[string]ast.Expr

// Clone returns a shallow copy of h.
func (h Heap) Clone() Heap {
	out := make(Heap, len(h))

	for k, v := range h {
		out[k] = v
	}

	return out
}

// CheckTheorem validates a theorem's proof term against its declared
// signature.
func CheckTheorem(state *State, args []ast.Binder, hyps []ast.Hyp, ret ast.Expr, dummies []ast.DummyVar,
	proof ast.Proof) error {
	ctx, err := BuildContext(state, args, NewContext())
	if err != nil {
		return err
	}

	for _, h := range hyps {
		if err := demandProvable(state, ctx, h.Stmt); err != nil {
			return withHypContext(h.Name, err)
		}
	}

	if err := demandProvable(state, ctx, ret); err != nil {
		return err
	}

	ctx, err = checkDummies(state, ctx, dummies)
	if err != nil {
		return err
	}

	heap := make(Heap, len(hyps))

	for _, h := range hyps {
		heap[h.Name] = h.Stmt
	}

	result, err := verifyProof(state, ctx, heap, proof)
	if err != nil {
		return err
	}

	if !ast.ExprEqual(result, ret) {
		return fmt.Errorf("proved conclusion %s does not match declared conclusion %s", result, ret)
	}

	return nil
}

func withHypContext(name string, err error) error {
	if name == "" {
		return err
	}

	return WithContext("hypothesis "+name, err)
}

func demandProvable(state *State, ctx Context, e ast.Expr) error {
	sort, _, _, err := Typecheck(state, ctx, e)
	if err != nil {
		return err
	}

	sd, ok := state.Sort(sort)
	if !ok {
		return fmt.Errorf("sort not found: %q", sort)
	}

	if !sd.Provable {
		return fmt.Errorf("expected provable sort, found %q", sort)
	}

	return nil
}

// verifyProof walks a proof term, returning the expression it proves.
func verifyProof(state *State, ctx Context, heap Heap, proof ast.Proof) (ast.Expr, error) {
	switch p := proof.(type) {
	case ast.HypProof:
		e, ok := heap[p.Hyp]
		if !ok {
			return nil, fmt.Errorf("missing subproof for hypothesis %q", p.Hyp)
		}

		return e, nil

	case ast.ThmProof:
		thm, ok := state.Thm(p.Thm)
		if !ok {
			return nil, fmt.Errorf("unknown theorem %q", p.Thm)
		}

		subst, err := verifyArgs(state, ctx, thm.Args, p.Args)
		if err != nil {
			return nil, WithContext(p.Thm, err)
		}

		if len(p.Subproofs) != len(thm.Hyps) {
			return nil, fmt.Errorf("%s: expected %d hypothesis subproof(s), found %d",
				p.Thm, len(thm.Hyps), len(p.Subproofs))
		}

		for i, hyp := range thm.Hyps {
			got, err := verifyProof(state, ctx, heap, p.Subproofs[i])
			if err != nil {
				return nil, err
			}

			want := subst.Apply(hyp.Stmt)

			if !ast.ExprEqual(got, want) {
				return nil, fmt.Errorf("%s: hypothesis %d mismatch: expected %s, found %s", p.Thm, i, want, got)
			}
		}

		return subst.Apply(thm.Concl), nil

	case ast.ConvProof:
		l, r, _, _, err := verifyConv(state, ctx, p.Conv)
		if err != nil {
			return nil, err
		}

		e2, err := verifyProof(state, ctx, heap, p.Proof)
		if err != nil {
			return nil, err
		}

		if !ast.ExprEqual(l, p.Target) {
			return nil, fmt.Errorf("conversion left-hand side %s does not match target %s", l, p.Target)
		}

		if !ast.ExprEqual(r, e2) {
			return nil, fmt.Errorf("conversion right-hand side %s does not match proved expression %s", r, e2)
		}

		return p.Target, nil

	case ast.LetProof:
		e1, err := verifyProof(state, ctx, heap, p.Value)
		if err != nil {
			return nil, err
		}

		if _, ok := heap[p.Name]; ok {
			return nil, fmt.Errorf("duplicate heap binding %q", p.Name)
		}

		heap2 := heap.Clone()
		heap2[p.Name] = e1

		return verifyProof(state, ctx, heap2, p.Body)

	case ast.SorryProof:
		return nil, fmt.Errorf("incomplete proof (sorry)")

	default:
		return nil, fmt.Errorf("unrecognized proof form %T", proof)
	}
}

// argSlot records a single substitution-construction step, carrying enough
// of the argument's type information to enforce disjoint-variable
// discipline against later arguments.
type argSlot struct {
	binder ast.Binder
	expr   ast.Expr
	free   FreeVarSet
}

// verifyArgs performs substitution construction with disjoint-variable
// enforcement.
func verifyArgs(state *State, ctx Context, params []ast.Binder, args []ast.Expr) (Subst, error) {
	if len(params) != len(args) {
		return nil, fmt.Errorf("arity mismatch: expected %d argument(s), found %d", len(params), len(args))
	}

	subst := make(Subst, len(params))
	slots := make([]argSlot, 0, len(params))
	// paramMap carries, for each formal Bound parameter processed so far,
	// the name of the concrete bound variable the caller substituted for
	// it — a declared dependency list names formal parameters, but the
	// disjoint-variable check below must compare against the variables
	// actually in play at the call site.
	paramMap := make(map[string]string, len(params))

	for i, binder := range params {
		e := args[i]

		sort, isBound, free, err := Typecheck(state, ctx, e)
		if err != nil {
			return nil, err
		}

		if sort != binder.Sort() {
			return nil, fmt.Errorf("argument %d (%s): expected sort %q, found %q", i, binder.Name(), binder.Sort(), sort)
		}

		if binder.IsBound() {
			if !isBound {
				return nil, fmt.Errorf("argument %d (%s): expected a bound variable", i, binder.Name())
			}

			v := e.(ast.Var).VarName

			for _, prev := range slots {
				if prev.binder.IsBound() {
					continue
				}

				if prev.free.Contains(v) {
					return nil, fmt.Errorf("disjoint variable violation: %q captured by argument %q", v, prev.binder.Name())
				}
			}

			paramMap[binder.Name()] = v
		} else {
			allowed := make(FreeVarSet, len(binder.(ast.RegularBinder).Deps()))

			for _, dep := range binder.(ast.RegularBinder).Deps() {
				if mapped, ok := paramMap[dep]; ok {
					allowed[mapped] = struct{}{}
				}
			}

			for _, prev := range slots {
				if !prev.binder.IsBound() {
					continue
				}

				vj := prev.expr.(ast.Var).VarName

				if !allowed.Contains(vj) && free.Contains(vj) {
					return nil, fmt.Errorf("disjoint variable violation: %q must not occur free in argument %q", vj, binder.Name())
				}
			}
		}

		slots = append(slots, argSlot{binder, e, free})
		subst[binder.Name()] = e
	}

	return subst, nil
}
