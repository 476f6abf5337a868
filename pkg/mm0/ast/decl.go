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

// Definition is the body of a non-opaque term: a list of locally-scoped
// dummy variables plus the expression they (and the term's own args) may
// appear in.
type Definition struct {
	Dummies []DummyVar
	Body    Expr
}

// TermDecl is a term constructor declaration: either opaque (Def == nil) or
// backed by a Definition that must be checked against the signature.
type TermDecl struct {
	Name string
	Args []Binder
	Ret  DepType
	Def  *Definition
}

// IsOpaque reports whether this term constructor has no definition body.
func (t *TermDecl) IsOpaque() bool { return t.Def == nil }

// Hyp is a named hypothesis: a local provable-sort statement that a theorem
// may assume, and that proof terms may reference via HypProof.
type Hyp struct {
	Name string
	Stmt Expr
}

// ThmDecl is a theorem (or axiom, when no proof is ever checked against it)
// declaration: arguments, named hypotheses and a conclusion.
type ThmDecl struct {
	Name string
	Args []Binder
	Hyps []Hyp
	Concl Expr
}
