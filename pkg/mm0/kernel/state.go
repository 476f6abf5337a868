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
	"fmt"

	"github.com/ECOSurfDeBot/mm0/pkg/mm0/ast"
)

// State holds the kernel's only mutable aggregate: the sort, term and
// theorem tables, plus the output queue that ioverify.VerifyOutputString calls
// accumulate into. It is extended monotonically; nothing is ever removed.
type State struct {
	sorts map[string]ast.Sort
	terms map[string]*ast.TermDecl
	thms  map[string]*ast.ThmDecl
	// outputs is the ordered sequence of byte strings emitted by
	// ioverify.VerifyOutputString calls.
	outputs [][]byte
}

// NewState constructs an empty verifier state.
func NewState() *State {
	return &State{
		sorts: make(map[string]ast.Sort),
		terms: make(map[string]*ast.TermDecl),
		thms:  make(map[string]*ast.ThmDecl),
	}
}

// Sort looks up a declared sort by name.
func (s *State) Sort(name string) (ast.Sort, bool) {
	sd, ok := s.sorts[name]
	return sd, ok
}

// Term looks up a declared term constructor by name.
func (s *State) Term(name string) (*ast.TermDecl, bool) {
	td, ok := s.terms[name]
	return td, ok
}

// Thm looks up a declared theorem (or axiom) by name.
func (s *State) Thm(name string) (*ast.ThmDecl, bool) {
	td, ok := s.thms[name]
	return td, ok
}

// Outputs returns the sequence of byte strings emitted so far.
func (s *State) Outputs() [][]byte {
	return s.outputs
}

// InsertSort records a new sort declaration. It is an error to redeclare a
// name already bound to anything.
func (s *State) InsertSort(name string, sd ast.Sort) error {
	if err := s.checkFresh(name); err != nil {
		return err
	}

	s.sorts[name] = sd

	return nil
}

// InsertTerm records a new term constructor declaration (opaque term, def,
// or the term half of an axiom/theorem's signature is not inserted here).
func (s *State) InsertTerm(name string, td *ast.TermDecl) error {
	if err := s.checkFresh(name); err != nil {
		return err
	}

	s.terms[name] = td

	return nil
}

// InsertThm records a new theorem or axiom declaration.
func (s *State) InsertThm(name string, td *ast.ThmDecl) error {
	if err := s.checkFresh(name); err != nil {
		return err
	}

	s.thms[name] = td

	return nil
}

// AppendOutput appends a byte string to the output sequence.
func (s *State) AppendOutput(bytes []byte) {
	s.outputs = append(s.outputs, bytes)
}

// checkFresh demands that name is not already bound in any of the sort,
// term or theorem namespaces. Metamath-Zero shares a single namespace across
// sorts, terms and theorems.
func (s *State) checkFresh(name string) error {
	if _, ok := s.sorts[name]; ok {
		return fmt.Errorf("duplicate declaration %q", name)
	}

	if _, ok := s.terms[name]; ok {
		return fmt.Errorf("duplicate declaration %q", name)
	}

	if _, ok := s.thms[name]; ok {
		return fmt.Errorf("duplicate declaration %q", name)
	}

	return nil
}
