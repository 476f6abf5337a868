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

// Conv is a closed union of the four conversion-term variants. A conversion
// term witnesses definitional equality between two expressions.
type Conv interface {
	convNode()
}

// CVar is the reflexive conversion of a single variable with itself.
type CVar struct {
	Var string
}

// CApp congruence-closes a conversion across a term constructor applied to
// matching argument positions.
type CApp struct {
	Term string
	Args []Conv
}

// CSym swaps the two sides of a conversion.
type CSym struct {
	Conv Conv
}

// CUnfold expands a definition at the head position, supplying both the
// substitution for the definition's declared arguments and fresh bound names
// for its dummy variables.
type CUnfold struct {
	Term    string
	Args    []Expr
	Dummies []string
	Conv    Conv
}

func (CVar) convNode()    {}
func (CApp) convNode()    {}
func (CSym) convNode()    {}
func (CUnfold) convNode() {}
