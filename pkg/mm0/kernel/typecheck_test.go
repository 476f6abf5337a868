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
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ECOSurfDeBot/mm0/pkg/mm0/ast"
)

// stateWithImp registers a binary "im" connective over wff, taking two
// ordinary (non-bound) arguments, plus an "all" quantifier binding a "nat"
// variable over a wff body that may depend on it.
func stateWithImp(t *testing.T) (*State, Context) {
	t.Helper()

	s := newTestState()

	require := func(err error) {
		if err != nil {
			t.Fatalf("setup: %v", err)
		}
	}

	require(s.InsertTerm("im", &ast.TermDecl{
		Name: "im",
		Args: []ast.Binder{
			ast.RegularBinder{VarName: "a", Type: ast.DepType{Sort: "wff"}},
			ast.RegularBinder{VarName: "b", Type: ast.DepType{Sort: "wff"}},
		},
		Ret: ast.DepType{Sort: "wff"},
	}))

	require(s.InsertTerm("all", &ast.TermDecl{
		Name: "all",
		Args: []ast.Binder{
			ast.BoundBinder{VarName: "x", SortName: "nat"},
			ast.RegularBinder{VarName: "p", Type: ast.DepType{Sort: "wff", Deps: []string{"x"}}},
		},
		Ret: ast.DepType{Sort: "wff"},
	}))

	ctx, err := BuildContext(s, []ast.Binder{
		ast.BoundBinder{VarName: "x", SortName: "nat"},
		ast.RegularBinder{VarName: "p", Type: ast.DepType{Sort: "wff", Deps: []string{"x"}}},
		ast.RegularBinder{VarName: "q", Type: ast.DepType{Sort: "wff"}},
	}, NewContext())
	require(err)

	return s, ctx
}

func TestTypecheckVar(t *testing.T) {
	s, ctx := stateWithImp(t)

	sort, isBound, free, err := Typecheck(s, ctx, ast.NewVar("x"))
	assert.NoError(t, err)
	assert.Equal(t, "nat", sort)
	assert.True(t, isBound)
	assert.True(t, free.Contains("x"))
}

func TestTypecheckApp(t *testing.T) {
	s, ctx := stateWithImp(t)

	sort, isBound, free, err := Typecheck(s, ctx, ast.NewApp("im", ast.NewVar("p"), ast.NewVar("q")))
	assert.NoError(t, err)
	assert.Equal(t, "wff", sort)
	assert.False(t, isBound)
	assert.True(t, free.Contains("p"))
	assert.True(t, free.Contains("q"))
}

func TestTypecheckRejectsUndeclaredVariable(t *testing.T) {
	s, ctx := stateWithImp(t)

	_, _, _, err := Typecheck(s, ctx, ast.NewVar("nope"))
	assert.ErrorContains(t, err, "undeclared variable")
}

func TestTypecheckRejectsNonBoundInBVSlot(t *testing.T) {
	s, ctx := stateWithImp(t)

	err := s.InsertTerm("zero", &ast.TermDecl{Name: "zero", Ret: ast.DepType{Sort: "nat"}})
	assert.NoError(t, err)

	_, _, _, err = Typecheck(s, ctx, ast.NewApp("all", ast.NewApp("zero"), ast.NewVar("p")))
	assert.ErrorContains(t, err, "non-bound expression")
}

func TestTypecheckRejectsArityMismatch(t *testing.T) {
	s, ctx := stateWithImp(t)

	_, _, _, err := Typecheck(s, ctx, ast.NewApp("im", ast.NewVar("p")))
	assert.ErrorContains(t, err, "arity mismatch")
}

func TestTypecheckRejectsSortMismatch(t *testing.T) {
	s, ctx := stateWithImp(t)

	_, _, _, err := Typecheck(s, ctx, ast.NewApp("im", ast.NewVar("x"), ast.NewVar("q")))
	assert.ErrorContains(t, err, "type mismatch")
}

func TestFreeVarSetOps(t *testing.T) {
	a := NewFreeVarSet("x", "y")
	b := NewFreeVarSet("y", "z")

	u := a.Union(b)
	assert.True(t, u.Contains("x"))
	assert.True(t, u.Contains("y"))
	assert.True(t, u.Contains("z"))

	m := a.Minus(b)
	assert.True(t, m.Contains("x"))
	assert.False(t, m.Contains("y"))
}
