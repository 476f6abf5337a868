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

package verifier

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/ECOSurfDeBot/mm0/pkg/mm0/ast"
	"github.com/ECOSurfDeBot/mm0/pkg/mm0/ioverify"
	"github.com/ECOSurfDeBot/mm0/pkg/mm0/kernel"
)

// Result is what the driver hands back to its caller (typically the CLI):
// the ordered sequence of byte strings emitted by output-mode inout steps,
// plus every non-fatal diagnostic accumulated along the way.
type Result struct {
	Outputs     [][]byte
	Diagnostics []error
}

// Ok reports whether the run should be treated as a success: no diagnostics
// were accumulated. A non-nil error returned alongside a Result always
// takes precedence — it means the run aborted before finishing.
func (r Result) Ok() bool {
	return len(r.Diagnostics) == 0
}

// Run walks script and env.Specs in lockstep, dispatching each statement to
// the appropriate kernel checker and accumulating diagnostics. A non-nil
// error return indicates a fatal shape or queue-exhaustion failure and means
// the run aborted early; Result.Diagnostics holds the errors from
// declarations that were checked and rejected before that point (or, if no
// fatal error occurred, every rejected declaration in the whole run).
func Run(state *kernel.State, env *ast.Environment, script *ast.Script, input []byte) (Result, error) {
	return RunWithLogger(log.StandardLogger(), state, env, script, input)
}

// RunWithLogger is Run, but lets the caller supply its own logger instead of
// the package-global default.
func RunWithLogger(logger *log.Logger, state *kernel.State, env *ast.Environment, script *ast.Script,
	input []byte) (Result, error) {
	var result Result

	cursor := 0

	nextSpec := func() (ast.Spec, bool) {
		if cursor >= len(env.Specs) {
			return nil, false
		}

		s := env.Specs[cursor]
		cursor++

		return s, true
	}

	for _, step := range script.Steps {
		name, kind := stepIdentity(step)
		entry := logger.WithField("decl", name).WithField("kind", kind)
		entry.Debug("checking declaration")

		err := dispatch(state, &nextSpec, step, input)
		if err == nil {
			continue
		}

		if fe, ok := err.(*fatalError); ok {
			entry.WithError(fe.err).Error("fatal shape error")
			return result, fe.err
		}

		entry.WithError(err).Warn("declaration rejected")
		result.Diagnostics = append(result.Diagnostics, kernel.WithContext(name, err))
	}

	if cursor != len(env.Specs) {
		return result, fmt.Errorf("not all theorems have been proven")
	}

	result.Outputs = state.Outputs()

	return result, nil
}

// fatalError distinguishes a shape/queue-exhaustion failure (which aborts
// the run) from an ordinary per-declaration rejection (which is merely
// accumulated).
type fatalError struct{ err error }

func (f *fatalError) Error() string { return f.err.Error() }

func fatalf(format string, args ...any) error {
	return &fatalError{fmt.Errorf(format, args...)}
}

func stepIdentity(step ast.Step) (name, kind string) {
	switch s := step.(type) {
	case ast.StepSort:
		return s.Name, "sort"
	case ast.StepTerm:
		return s.Name, "term"
	case ast.StepAxiom:
		return s.Name, "axiom"
	case ast.StepDef:
		return s.Name, "def"
	case ast.StepThm:
		return s.Name, "theorem"
	case ast.StepInout:
		if s.Dir {
			return s.Expr.String(), "output"
		}

		return s.Expr.String(), "input"
	default:
		return "", "unknown"
	}
}

func dispatch(state *kernel.State, nextSpec *func() (ast.Spec, bool), step ast.Step, input []byte) error {
	switch s := step.(type) {
	case ast.StepSort:
		return dispatchSort(state, nextSpec, s)
	case ast.StepTerm:
		return dispatchTerm(state, nextSpec, s)
	case ast.StepAxiom:
		return dispatchAxiom(state, nextSpec, s)
	case ast.StepDef:
		return dispatchDef(state, nextSpec, s)
	case ast.StepThm:
		return dispatchThm(state, nextSpec, s)
	case ast.StepInout:
		return dispatchInout(state, nextSpec, s, input)
	default:
		return fatalf("unrecognized script statement %T", step)
	}
}

func popSpec(nextSpec *func() (ast.Spec, bool), kind, name string) (ast.Spec, error) {
	spec, ok := (*nextSpec)()
	if !ok {
		return nil, fatalf("nothing more to prove")
	}

	return spec, checkShape(spec, kind, name)
}

// checkShape reports a fatal "incorrect step" error when spec's kind/name
// doesn't match what the script statement expects. It doesn't validate the
// declaration's contents — that's the caller's job once the spec's payload
// has been extracted.
func checkShape(spec ast.Spec, wantKind, name string) error {
	gotKind, gotName, ok := specIdentity(spec)
	if !ok || gotKind != wantKind || gotName != name {
		return fatalf("incorrect step '%s %s'", wantKind, name)
	}

	return nil
}

func specIdentity(spec ast.Spec) (kind, name string, ok bool) {
	switch sp := spec.(type) {
	case ast.SSort:
		return "sort", sp.Name, true
	case ast.SDecl:
		switch sp.Decl.(type) {
		case ast.DTerm:
			return "term", sp.Name, true
		case ast.DAxiom:
			return "axiom", sp.Name, true
		case ast.DDef:
			return "def", sp.Name, true
		default:
			return "", "", false
		}
	case ast.SThm:
		return "theorem", sp.Name, true
	case ast.SInout:
		if sp.IO.Dir {
			return "output", sp.IO.Expr.String(), true
		}

		return "input", sp.IO.Expr.String(), true
	default:
		return "", "", false
	}
}

func dispatchSort(state *kernel.State, nextSpec *func() (ast.Spec, bool), s ast.StepSort) error {
	spec, err := popSpec(nextSpec, "sort", s.Name)
	if err != nil {
		return err
	}

	ss := spec.(ast.SSort)

	return state.InsertSort(s.Name, ss.Sort)
}

func dispatchTerm(state *kernel.State, nextSpec *func() (ast.Spec, bool), s ast.StepTerm) error {
	spec, err := popSpec(nextSpec, "term", s.Name)
	if err != nil {
		return err
	}

	decl := spec.(ast.SDecl).Decl.(ast.DTerm)

	return state.InsertTerm(s.Name, &ast.TermDecl{Name: s.Name, Args: decl.Args, Ret: decl.Ret})
}

func dispatchAxiom(state *kernel.State, nextSpec *func() (ast.Spec, bool), s ast.StepAxiom) error {
	spec, err := popSpec(nextSpec, "axiom", s.Name)
	if err != nil {
		return err
	}

	decl := spec.(ast.SDecl).Decl.(ast.DAxiom)

	return state.InsertThm(s.Name, &ast.ThmDecl{Name: s.Name, Args: decl.Args, Hyps: decl.Hyps, Concl: decl.Ret})
}

func dispatchDef(state *kernel.State, nextSpec *func() (ast.Spec, bool), s ast.StepDef) error {
	if s.Strict {
		spec, err := popSpec(nextSpec, "def", s.Name)
		if err != nil {
			return err
		}

		decl := spec.(ast.SDecl).Decl.(ast.DDef)

		if !bindersEqual(decl.Args, s.Args) || !depTypeEqual(decl.Ret, s.Ret) ||
			!dummiesEqual(decl.Dummies, s.Dummies) || !ast.ExprEqual(decl.Body, s.Body) {
			return fatalf("incorrect step 'def %s' (signature does not match declared spec)", s.Name)
		}
	}

	if err := kernel.CheckDef(state, s.Args, s.Ret, s.Dummies, s.Body); err != nil {
		return err
	}

	return state.InsertTerm(s.Name, &ast.TermDecl{
		Name: s.Name,
		Args: s.Args,
		Ret:  s.Ret,
		Def:  &ast.Definition{Dummies: s.Dummies, Body: s.Body},
	})
}

func dispatchThm(state *kernel.State, nextSpec *func() (ast.Spec, bool), s ast.StepThm) error {
	if s.Strict {
		spec, err := popSpec(nextSpec, "theorem", s.Name)
		if err != nil {
			return err
		}

		decl := spec.(ast.SThm)

		if !bindersEqual(decl.Args, s.Args) || !hypsEqual(decl.Hyps, s.Hyps) ||
			!ast.ExprEqual(decl.Ret, s.Ret) || !dummiesEqual(decl.Dummies, s.Dummies) {
			return fatalf("incorrect step 'theorem %s' (signature does not match declared spec)", s.Name)
		}
	}

	if err := kernel.CheckTheorem(state, s.Args, s.Hyps, s.Ret, s.Dummies, s.Proof); err != nil {
		return err
	}

	return state.InsertThm(s.Name, &ast.ThmDecl{Name: s.Name, Args: s.Args, Hyps: s.Hyps, Concl: s.Ret})
}

func dispatchInout(state *kernel.State, nextSpec *func() (ast.Spec, bool), s ast.StepInout, input []byte) error {
	kind := "input"
	if s.Dir {
		kind = "output"
	}

	spec, err := popSpec(nextSpec, kind, s.Expr.String())
	if err != nil {
		return err
	}

	io := spec.(ast.SInout).IO

	if io.Dir != s.Dir || !ast.ExprEqual(io.Expr, s.Expr) {
		return fatalf("incorrect step '%s %s'", kind, s.Expr.String())
	}

	if s.Dir {
		return ioverify.VerifyOutputString(state, s.Expr)
	}

	return ioverify.VerifyInputString(state, s.Expr, input)
}
