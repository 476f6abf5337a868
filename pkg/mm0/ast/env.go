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

// Spec is a closed union of the declarations that may appear in an
// Environment's ordered specification stream. Environments are produced by
// an upstream, untrusted surface parser; this package only carries the data.
type Spec interface {
	specNode()
}

// SSort declares a sort.
type SSort struct {
	Name string
	Sort Sort
}

// DeclKind is a closed union of the three ways a term/axiom spec entry may be
// shaped.
type DeclKind interface {
	declKindNode()
}

// DTerm declares an opaque term constructor.
type DTerm struct {
	Args []Binder
	Ret  DepType
}

// DAxiom declares a theorem with no proof obligation.
type DAxiom struct {
	Args []Binder
	Hyps []Hyp
	Ret  Expr
}

// DDef declares a term constructor with a checked definition body.
type DDef struct {
	Args    []Binder
	Ret     DepType
	Dummies []DummyVar
	Body    Expr
}

func (DTerm) declKindNode() {}
func (DAxiom) declKindNode() {}
func (DDef) declKindNode() {}

// SDecl declares a named term-level entity: an opaque term, an axiom, or a
// definition.
type SDecl struct {
	Name string
	Decl DeclKind
}

// SThm declares a theorem that must be proven by the matching script
// statement.
type SThm struct {
	Name    string
	Args    []Binder
	Hyps    []Hyp
	Ret     Expr
	Dummies []DummyVar
}

// IOKind distinguishes the direction of an inout spec entry.
type IOKind struct {
	// Dir is true for output, false for input.
	Dir  bool
	Expr Expr
}

// SInout declares an input/output-string verification point.
type SInout struct {
	IO IOKind
}

func (SSort) specNode()  {}
func (SDecl) specNode()  {}
func (SThm) specNode()   {}
func (SInout) specNode() {}

// Environment is the immutable, already-parsed logical theory the kernel
// verifies a proof script against.
type Environment struct {
	// Specs is the ordered specification stream the driver's script
	// statements are matched against, positionally, one at a time.
	Specs []Spec
}
