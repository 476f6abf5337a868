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

// Package ioverify reduces an expression over a fixed algebraic
// byte-string signature (s0, s1, sadd, ch, x0..xf) to bytes, either
// matching the reduction against an input buffer or appending it to the
// driver's output sequence. Any other term encountered must be a
// definition without dummy variables, which is unfolded in place.
package ioverify

import (
	"fmt"

	"github.com/ECOSurfDeBot/mm0/pkg/mm0/ast"
	"github.com/ECOSurfDeBot/mm0/pkg/mm0/kernel"
)

// hexDigits maps the sixteen nullary hex-digit term names to their value.
var hexDigits = map[string]byte{
	"x0": 0x0, "x1": 0x1, "x2": 0x2, "x3": 0x3,
	"x4": 0x4, "x5": 0x5, "x6": 0x6, "x7": 0x7,
	"x8": 0x8, "x9": 0x9, "xa": 0xa, "xb": 0xb,
	"xc": 0xc, "xd": 0xd, "xe": 0xe, "xf": 0xf,
}

// frame is a single stack entry in the environment-stack model: a map from
// a definition's parameter/dummy names to the expressions the caller
// supplied for them.
type frame map[string]ast.Expr

// lookup resolves a variable reference against the top frame of stack,
// returning the bound expression plus the stack with that frame popped —
// the context the resolved expression must itself be reduced in.
func lookup(stack []frame, name string) (ast.Expr, []frame, error) {
	if len(stack) == 0 {
		return nil, nil, fmt.Errorf("undeclared variable %q in I/O expression", name)
	}

	top := stack[len(stack)-1]

	e, ok := top[name]
	if !ok {
		return nil, nil, fmt.Errorf("undeclared variable %q in I/O expression", name)
	}

	return e, stack[:len(stack)-1], nil
}

// unfold resolves a non-signature App against the term table: it must name
// a definition with no dummy variables, and pushes a fresh frame binding its
// parameters to the supplied argument expressions.
func unfold(state *kernel.State, stack []frame, e ast.App) ([]frame, ast.Expr, error) {
	term, ok := state.Term(e.Term)
	if !ok || term.IsOpaque() {
		return nil, nil, fmt.Errorf("term not supported: %q", e.Term)
	}

	if len(term.Def.Dummies) != 0 {
		return nil, nil, fmt.Errorf("definition with dummies in I/O expression: %q", e.Term)
	}

	if len(term.Args) != len(e.Args) {
		return nil, nil, fmt.Errorf("arity mismatch for %q: expected %d argument(s), found %d",
			e.Term, len(term.Args), len(e.Args))
	}

	f := make(frame, len(term.Args))

	for i, arg := range term.Args {
		f[arg.Name()] = e.Args[i]
	}

	return append(stack, f), term.Def.Body, nil
}
