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

// DepType is the return type of a term declaration: a sort plus the list of
// already-declared bound variables the returned value may depend on.
type DepType struct {
	Sort string
	Deps []string
}

// Binder is a closed union of the two ways a variable may be introduced into
// a context: as a first-class bound variable, or as an open term variable
// with a declared dependency list.
type Binder interface {
	// Name returns the variable's name.
	Name() string
	// Sort returns the variable's sort.
	Sort() string
	// IsBound reports whether this is a Bound binder.
	IsBound() bool
}

// BoundBinder is a first-class bound variable. It may appear in dependency
// lists and in BV slots of term arguments.
type BoundBinder struct {
	VarName string
	SortName string
}

func (b BoundBinder) Name() string { return b.VarName }
func (b BoundBinder) Sort() string { return b.SortName }
func (b BoundBinder) IsBound() bool { return true }

// RegularBinder is an open term variable of a given sort that may mention the
// listed already-declared bound variables.
type RegularBinder struct {
	VarName string
	Type    DepType
}

func (b RegularBinder) Name() string { return b.VarName }
func (b RegularBinder) Sort() string { return b.Type.Sort }
func (b RegularBinder) IsBound() bool { return false }

// Deps returns the dependency list of a regular binder.
func (b RegularBinder) Deps() []string { return b.Type.Deps }

// DummyVar is a locally-scoped Bound variable introduced by a def or theorem
// body, not visible to callers.
type DummyVar struct {
	Name string
	Sort string
}
