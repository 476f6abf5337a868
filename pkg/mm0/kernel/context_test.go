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

func newTestState() *State {
	s := NewState()
	_ = s.InsertSort("wff", ast.Sort{Name: "wff", Provable: true})
	_ = s.InsertSort("set", ast.Sort{Name: "set", Strict: true})
	_ = s.InsertSort("nat", ast.Sort{Name: "nat"})

	return s
}

func TestBuildContextAcceptsOrdinaryBinders(t *testing.T) {
	state := newTestState()

	ctx, err := BuildContext(state, []ast.Binder{
		ast.BoundBinder{VarName: "x", SortName: "nat"},
		ast.RegularBinder{VarName: "p", Type: ast.DepType{Sort: "wff", Deps: []string{"x"}}},
	}, NewContext())

	assert.NoError(t, err)
	assert.Len(t, ctx, 2)
}

func TestBuildContextRejectsBoundAtStrictSort(t *testing.T) {
	state := newTestState()

	_, err := BuildContext(state, []ast.Binder{
		ast.BoundBinder{VarName: "x", SortName: "set"},
	}, NewContext())

	assert.ErrorContains(t, err, "strict sort")
}

func TestBuildContextRejectsDuplicateVariable(t *testing.T) {
	state := newTestState()

	_, err := BuildContext(state, []ast.Binder{
		ast.BoundBinder{VarName: "x", SortName: "nat"},
		ast.RegularBinder{VarName: "x", Type: ast.DepType{Sort: "wff"}},
	}, NewContext())

	assert.ErrorContains(t, err, "duplicate variable")
}

func TestBuildContextRejectsUnboundDependency(t *testing.T) {
	state := newTestState()

	_, err := BuildContext(state, []ast.Binder{
		ast.RegularBinder{VarName: "p", Type: ast.DepType{Sort: "wff", Deps: []string{"x"}}},
	}, NewContext())

	assert.ErrorContains(t, err, "unbound dependency")
}

func TestBuildContextRejectsRegularDependency(t *testing.T) {
	state := newTestState()

	_, err := BuildContext(state, []ast.Binder{
		ast.RegularBinder{VarName: "q", Type: ast.DepType{Sort: "wff"}},
		ast.RegularBinder{VarName: "p", Type: ast.DepType{Sort: "wff", Deps: []string{"q"}}},
	}, NewContext())

	assert.ErrorContains(t, err, "unbound dependency")
}

func TestBuildContextUnknownSort(t *testing.T) {
	state := newTestState()

	_, err := BuildContext(state, []ast.Binder{
		ast.BoundBinder{VarName: "x", SortName: "nope"},
	}, NewContext())

	assert.ErrorContains(t, err, "sort not found")
}
