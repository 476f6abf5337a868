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

// Proof is a closed union of the five proof-term variants.
type Proof interface {
	proofNode()
}

// HypProof references a named subproof already present on the proof heap.
type HypProof struct {
	Hyp string
}

// ThmProof applies a theorem, supplying explicit term-argument substitutions
// and sub-proofs of its hypotheses.
type ThmProof struct {
	Thm       string
	Args      []Expr
	Subproofs []Proof
}

// ConvProof rewrites the conclusion of a sub-proof across a conversion proof
// to yield the stated target expression.
type ConvProof struct {
	Target Expr
	Conv   Conv
	Proof  Proof
}

// LetProof binds a sub-proof on the heap under a name, then continues.
type LetProof struct {
	Name  string
	Value Proof
	Body  Proof
}

// SorryProof is an incomplete-proof placeholder; it is always rejected.
type SorryProof struct{}

func (HypProof) proofNode()   {}
func (ThmProof) proofNode()   {}
func (ConvProof) proofNode()  {}
func (LetProof) proofNode()   {}
func (SorryProof) proofNode() {}
