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

func TestCheckDefAcceptsDependencyThroughUnfolding(t *testing.T) {
	s := newTestState()

	err := s.InsertTerm("f", &ast.TermDecl{
		Name: "f",
		Args: []ast.Binder{
			ast.BoundBinder{VarName: "a", SortName: "nat"},
			ast.RegularBinder{VarName: "b", Type: ast.DepType{Sort: "nat", Deps: []string{"a"}}},
		},
		Ret: ast.DepType{Sort: "nat", Deps: []string{"a"}},
	})
	assert.NoError(t, err)

	err = CheckDef(s,
		[]ast.Binder{ast.BoundBinder{VarName: "x", SortName: "nat"}},
		ast.DepType{Sort: "nat", Deps: []string{"x"}},
		nil,
		ast.NewApp("f", ast.NewVar("x"), ast.NewVar("x")),
	)
	assert.NoError(t, err)
}

func TestCheckDefRejectsEscapedDependency(t *testing.T) {
	s := newTestState()

	err := CheckDef(s,
		nil,
		ast.DepType{Sort: "nat"},
		[]ast.DummyVar{{Name: "y", Sort: "nat"}},
		ast.NewVar("y"),
	)
	assert.ErrorContains(t, err, "outside its declared dependencies")
}

func TestCheckDefRejectsDummyAtStrictSort(t *testing.T) {
	s := newTestState()

	err := CheckDef(s,
		nil,
		ast.DepType{Sort: "nat"},
		[]ast.DummyVar{{Name: "y", Sort: "set"}},
		ast.NewVar("y"),
	)
	assert.ErrorContains(t, err, "strict sort")
}

func TestCheckDefRejectsDummyAtFreeSort(t *testing.T) {
	s := newTestState()
	_ = s.InsertSort("free_sort", ast.Sort{Name: "free_sort", Free: true})

	err := CheckDef(s,
		nil,
		ast.DepType{Sort: "nat"},
		[]ast.DummyVar{{Name: "y", Sort: "free_sort"}},
		ast.NewVar("y"),
	)
	assert.ErrorContains(t, err, "free sort")
}

func TestCheckDefRejectsPureReturnSort(t *testing.T) {
	s := newTestState()
	_ = s.InsertSort("pure_sort", ast.Sort{Name: "pure_sort", Pure: true})

	err := CheckDef(s, nil, ast.DepType{Sort: "pure_sort"}, nil, ast.NewVar("x"))
	assert.ErrorContains(t, err, "pure sort")
}

func TestCheckDefRejectsUnboundReturnDependency(t *testing.T) {
	s := newTestState()

	err := CheckDef(s, nil, ast.DepType{Sort: "nat", Deps: []string{"x"}}, nil, ast.NewVar("x"))
	assert.ErrorContains(t, err, "unbound dependency")
}

func TestCheckDefRejectsBodySortMismatch(t *testing.T) {
	s := newTestState()

	err := CheckDef(s,
		[]ast.Binder{ast.BoundBinder{VarName: "x", SortName: "wff"}},
		ast.DepType{Sort: "nat"},
		nil,
		ast.NewVar("x"),
	)
	assert.ErrorContains(t, err, "has sort")
}
