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

func stateWithDef(t *testing.T) (*State, Context) {
	t.Helper()

	s := newTestState()

	require := func(err error) {
		if err != nil {
			t.Fatalf("setup: %v", err)
		}
	}

	require(s.InsertTerm("not", &ast.TermDecl{
		Name: "not",
		Args: []ast.Binder{ast.RegularBinder{VarName: "a", Type: ast.DepType{Sort: "wff"}}},
		Ret:  ast.DepType{Sort: "wff"},
	}))

	require(s.InsertTerm("id", &ast.TermDecl{
		Name: "id",
		Args: []ast.Binder{ast.RegularBinder{VarName: "a", Type: ast.DepType{Sort: "wff"}}},
		Ret:  ast.DepType{Sort: "wff"},
		Def:  &ast.Definition{Body: ast.NewApp("not", ast.NewApp("not", ast.NewVar("a")))},
	}))

	ctx, err := BuildContext(s, []ast.Binder{
		ast.RegularBinder{VarName: "p", Type: ast.DepType{Sort: "wff"}},
	}, NewContext())
	require(err)

	return s, ctx
}

func TestVerifyConvReflexive(t *testing.T) {
	s, ctx := stateWithDef(t)

	l, r, sort, isBound, err := VerifyConv(s, ctx, ast.CVar{Var: "p"})
	assert.NoError(t, err)
	assert.True(t, ast.ExprEqual(l, ast.NewVar("p")))
	assert.True(t, ast.ExprEqual(r, ast.NewVar("p")))
	assert.Equal(t, "wff", sort)
	assert.False(t, isBound)
}

func TestVerifyConvCongruence(t *testing.T) {
	s, ctx := stateWithDef(t)

	l, r, _, _, err := VerifyConv(s, ctx, ast.CApp{Term: "not", Args: []ast.Conv{ast.CVar{Var: "p"}}})
	assert.NoError(t, err)
	assert.True(t, ast.ExprEqual(l, ast.NewApp("not", ast.NewVar("p"))))
	assert.True(t, ast.ExprEqual(r, ast.NewApp("not", ast.NewVar("p"))))
}

func TestVerifyConvSymmetric(t *testing.T) {
	s, ctx := stateWithDef(t)

	l, r, _, _, err := VerifyConv(s, ctx,
		ast.CSym{Conv: ast.CUnfold{
			Term: "id",
			Args: []ast.Expr{ast.NewVar("p")},
			Conv: ast.CApp{Term: "not", Args: []ast.Conv{ast.CApp{Term: "not", Args: []ast.Conv{ast.CVar{Var: "p"}}}}},
		}},
	)
	assert.NoError(t, err)
	assert.True(t, ast.ExprEqual(l, ast.NewApp("not", ast.NewApp("not", ast.NewVar("p")))))
	assert.True(t, ast.ExprEqual(r, ast.NewApp("id", ast.NewVar("p"))))
}

func TestVerifyConvUnfold(t *testing.T) {
	s, ctx := stateWithDef(t)

	l, r, sort, _, err := VerifyConv(s, ctx, ast.CUnfold{
		Term: "id",
		Args: []ast.Expr{ast.NewVar("p")},
		Conv: ast.CApp{Term: "not", Args: []ast.Conv{ast.CApp{Term: "not", Args: []ast.Conv{ast.CVar{Var: "p"}}}}},
	})
	assert.NoError(t, err)
	assert.Equal(t, "wff", sort)
	assert.True(t, ast.ExprEqual(l, ast.NewApp("id", ast.NewVar("p"))))
	assert.True(t, ast.ExprEqual(r, ast.NewApp("not", ast.NewApp("not", ast.NewVar("p")))))
}

func TestVerifyConvUnfoldRejectsOpaqueTerm(t *testing.T) {
	s, ctx := stateWithDef(t)

	_, _, _, _, err := VerifyConv(s, ctx, ast.CUnfold{
		Term: "not",
		Args: []ast.Expr{ast.NewVar("p")},
		Conv: ast.CVar{Var: "p"},
	})
	assert.ErrorContains(t, err, "is not a definition")
}

func TestVerifyConvWithDummy(t *testing.T) {
	s := newTestState()

	err := s.InsertTerm("dbl", &ast.TermDecl{
		Name: "dbl",
		Args: []ast.Binder{ast.BoundBinder{VarName: "x", SortName: "nat"}},
		Ret:  ast.DepType{Sort: "nat", Deps: []string{"x"}},
		Def: &ast.Definition{
			Dummies: []ast.DummyVar{{Name: "y", Sort: "nat"}},
			Body:    ast.NewVar("y"),
		},
	})
	assert.NoError(t, err)

	ctx, err := BuildContext(s, []ast.Binder{ast.BoundBinder{VarName: "x", SortName: "nat"}}, NewContext())
	assert.NoError(t, err)

	l, r, _, _, err := VerifyConv(s, ctx, ast.CUnfold{
		Term:    "dbl",
		Args:    []ast.Expr{ast.NewVar("x")},
		Dummies: []string{"y2"},
		Conv:    ast.CVar{Var: "y2"},
	})
	assert.NoError(t, err)
	assert.True(t, ast.ExprEqual(l, ast.NewApp("dbl", ast.NewVar("x"))))
	assert.True(t, ast.ExprEqual(r, ast.NewVar("y2")))
}
