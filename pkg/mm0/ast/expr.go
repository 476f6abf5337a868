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

import "hash/fnv"

// Expr is a closed union of the two expression variants: a reference to a
// variable in scope, or the application of a term constructor to
// sub-expressions. Well-formedness is extrinsic; it is established by the
// typechecker in pkg/mm0/kernel, not by this package.
type Expr interface {
	// Equal performs a structural equality check against another expression.
	Equal(Expr) bool
	// Hash returns a structural hash, suitable as a cheap pre-check before
	// falling back to Equal on deeply nested expressions.
	Hash() uint64
	// String renders the expression for diagnostics.
	String() string
}

// Var is a reference to a variable bound somewhere in the enclosing context.
type Var struct {
	VarName string
}

// NewVar constructs a variable reference.
func NewVar(name string) Var { return Var{name} }

func (v Var) Equal(other Expr) bool {
	o, ok := other.(Var)
	return ok && o.VarName == v.VarName
}

func (v Var) Hash() uint64 {
	h := fnv.New64a()
	h.Write([]byte{'V'})
	h.Write([]byte(v.VarName))
	return h.Sum64()
}

func (v Var) String() string { return v.VarName }

// App is the application of a term constructor to a sequence of argument
// expressions.
type App struct {
	Term string
	Args []Expr
}

// NewApp constructs a term application.
func NewApp(term string, args ...Expr) App {
	return App{Term: term, Args: args}
}

func (a App) Equal(other Expr) bool {
	o, ok := other.(App)
	if !ok || o.Term != a.Term || len(o.Args) != len(a.Args) {
		return false
	}

	for i := range a.Args {
		if !a.Args[i].Equal(o.Args[i]) {
			return false
		}
	}

	return true
}

func (a App) Hash() uint64 {
	h := fnv.New64a()
	h.Write([]byte{'A'})
	h.Write([]byte(a.Term))

	for _, arg := range a.Args {
		var buf [8]byte
		v := arg.Hash()

		for i := range buf {
			buf[i] = byte(v >> (8 * i))
		}

		h.Write(buf[:])
	}

	return h.Sum64()
}

func (a App) String() string {
	s := "(" + a.Term
	for _, arg := range a.Args {
		s += " " + arg.String()
	}

	return s + ")"
}

// ExprEqual is a free function form of Expr.Equal, handy when either operand
// might be nil.
func ExprEqual(a, b Expr) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	if a.Hash() != b.Hash() {
		return false
	}

	return a.Equal(b)
}
