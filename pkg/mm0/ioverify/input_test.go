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

package ioverify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ECOSurfDeBot/mm0/pkg/mm0/ast"
	"github.com/ECOSurfDeBot/mm0/pkg/mm0/kernel"
)

// helloExpr is s1(ch(x4, x8)): a one-byte string holding 0x48 ('H').
var helloExpr = ast.NewApp("s1", ast.NewApp("ch", ast.NewApp("x4"), ast.NewApp("x8")))

func TestVerifyInputStringExactMatch(t *testing.T) {
	state := kernel.NewState()

	err := VerifyInputString(state, helloExpr, []byte{0x48})
	assert.NoError(t, err)
}

func TestVerifyInputStringMismatch(t *testing.T) {
	state := kernel.NewState()

	err := VerifyInputString(state, helloExpr, []byte{0x49})
	assert.ErrorContains(t, err, "input mismatch at char 0")
}

func TestVerifyInputStringTrailingBytesRejected(t *testing.T) {
	state := kernel.NewState()

	err := VerifyInputString(state, helloExpr, []byte{0x48, 0x00})
	assert.ErrorContains(t, err, "input mismatch at char 1")
}

func TestVerifyInputStringEmptyAgainstEmpty(t *testing.T) {
	state := kernel.NewState()

	err := VerifyInputString(state, ast.NewApp("s0"), nil)
	assert.NoError(t, err)
}

func TestVerifyInputStringEOFMismatch(t *testing.T) {
	state := kernel.NewState()

	err := VerifyInputString(state, helloExpr, nil)
	assert.ErrorContains(t, err, "input mismatch at char 0")
}

func TestVerifyInputStringUnfoldsDefinition(t *testing.T) {
	state := kernel.NewState()

	err := state.InsertTerm("hello", &ast.TermDecl{
		Name: "hello",
		Ret:  ast.DepType{Sort: "str"},
		Def:  &ast.Definition{Body: helloExpr},
	})
	assert.NoError(t, err)

	err = VerifyInputString(state, ast.NewApp("hello"), []byte{0x48})
	assert.NoError(t, err)
}

func TestVerifyInputStringRejectsDummiesInDefinition(t *testing.T) {
	state := kernel.NewState()

	err := state.InsertTerm("bad", &ast.TermDecl{
		Name: "bad",
		Ret:  ast.DepType{Sort: "str"},
		Def:  &ast.Definition{Dummies: []ast.DummyVar{{Name: "y", Sort: "str"}}, Body: ast.NewVar("y")},
	})
	assert.NoError(t, err)

	err = VerifyInputString(state, ast.NewApp("bad"), []byte{0x00})
	assert.ErrorContains(t, err, "definition with dummies")
}
