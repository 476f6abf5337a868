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

package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExprEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b Expr
		want bool
	}{
		{"same var", NewVar("x"), NewVar("x"), true},
		{"different var", NewVar("x"), NewVar("y"), false},
		{"same app", NewApp("f", NewVar("x")), NewApp("f", NewVar("x")), true},
		{"different term", NewApp("f", NewVar("x")), NewApp("g", NewVar("x")), false},
		{"different arity", NewApp("f", NewVar("x")), NewApp("f", NewVar("x"), NewVar("y")), false},
		{"var vs app", NewVar("x"), NewApp("x"), false},
		{"nested mismatch", NewApp("f", NewApp("g", NewVar("x"))), NewApp("f", NewApp("g", NewVar("y"))), false},
		{"nested match", NewApp("f", NewApp("g", NewVar("x"))), NewApp("f", NewApp("g", NewVar("x"))), true},
		{"both nil", nil, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExprEqual(tt.a, tt.b))
		})
	}
}

func TestExprEqualNilAsymmetric(t *testing.T) {
	assert.False(t, ExprEqual(nil, NewVar("x")))
	assert.False(t, ExprEqual(NewVar("x"), nil))
}

func TestExprHashConsistentWithEqual(t *testing.T) {
	a := NewApp("sadd", NewApp("s1", NewApp("x1")), NewVar("y"))
	b := NewApp("sadd", NewApp("s1", NewApp("x1")), NewVar("y"))

	assert.Equal(t, a.Hash(), b.Hash())
	assert.True(t, a.Equal(b))
}

func TestExprString(t *testing.T) {
	assert.Equal(t, "x", NewVar("x").String())
	assert.Equal(t, "(f x y)", NewApp("f", NewVar("x"), NewVar("y")).String())
	assert.Equal(t, "(f)", NewApp("f").String())
}
