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
	"encoding/json"
	"fmt"
)

// This file provides a JSON interchange encoding for the closed unions in
// this package (Binder, Expr, Proof, Conv, DeclKind, Spec, Step), tagged by
// a "kind" field. It is the on-disk artifact format the CLI reads; it is
// not the surface-syntax parser (that collaborator, which turns Corset/MM0
// source text into these structures, remains out of scope for this
// module).

type tagged struct {
	Kind string          `json:"kind"`
	Data json.RawMessage `json:"data"`
}

func encodeTagged(kind string, v any) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}

	return json.Marshal(tagged{Kind: kind, Data: data})
}

// --- Expr ---

func (v Var) MarshalJSON() ([]byte, error) {
	return encodeTagged("Var", struct{ Name string }{v.VarName})
}

func (a App) MarshalJSON() ([]byte, error) {
	return encodeTagged("App", struct {
		Term string
		Args []Expr
	}{a.Term, a.Args})
}

// UnmarshalExpr decodes a tagged JSON value into an Expr.
func UnmarshalExpr(raw json.RawMessage) (Expr, error) {
	var t tagged
	if err := json.Unmarshal(raw, &t); err != nil {
		return nil, err
	}

	switch t.Kind {
	case "Var":
		var d struct{ Name string }
		if err := json.Unmarshal(t.Data, &d); err != nil {
			return nil, err
		}

		return Var{d.Name}, nil

	case "App":
		var d struct {
			Term string
			Args []json.RawMessage
		}

		if err := json.Unmarshal(t.Data, &d); err != nil {
			return nil, err
		}

		// A null Args decodes to a nil slice, so NewApp(t) round-trips as-is.
		var args []Expr
		if d.Args != nil {
			args = make([]Expr, len(d.Args))
		}

		for i, a := range d.Args {
			e, err := UnmarshalExpr(a)
			if err != nil {
				return nil, err
			}

			args[i] = e
		}

		return App{d.Term, args}, nil

	default:
		return nil, fmt.Errorf("unknown expr kind %q", t.Kind)
	}
}

// --- Binder ---

func (b BoundBinder) MarshalJSON() ([]byte, error) {
	return encodeTagged("Bound", struct{ Name, Sort string }{b.VarName, b.SortName})
}

func (b RegularBinder) MarshalJSON() ([]byte, error) {
	return encodeTagged("Regular", struct {
		Name string
		Type DepType
	}{b.VarName, b.Type})
}

// UnmarshalBinder decodes a tagged JSON value into a Binder.
func UnmarshalBinder(raw json.RawMessage) (Binder, error) {
	var t tagged
	if err := json.Unmarshal(raw, &t); err != nil {
		return nil, err
	}

	switch t.Kind {
	case "Bound":
		var d struct{ Name, Sort string }
		if err := json.Unmarshal(t.Data, &d); err != nil {
			return nil, err
		}

		return BoundBinder{d.Name, d.Sort}, nil

	case "Regular":
		var d struct {
			Name string
			Type DepType
		}

		if err := json.Unmarshal(t.Data, &d); err != nil {
			return nil, err
		}

		return RegularBinder{d.Name, d.Type}, nil

	default:
		return nil, fmt.Errorf("unknown binder kind %q", t.Kind)
	}
}

func unmarshalBinders(raws []json.RawMessage) ([]Binder, error) {
	out := make([]Binder, len(raws))

	for i, r := range raws {
		b, err := UnmarshalBinder(r)
		if err != nil {
			return nil, err
		}

		out[i] = b
	}

	return out, nil
}

// --- Proof ---

func (p HypProof) MarshalJSON() ([]byte, error) {
	return encodeTagged("Hyp", struct{ Hyp string }{p.Hyp})
}

func (p ThmProof) MarshalJSON() ([]byte, error) {
	return encodeTagged("Thm", struct {
		Thm       string
		Args      []Expr
		Subproofs []Proof
	}{p.Thm, p.Args, p.Subproofs})
}

func (p ConvProof) MarshalJSON() ([]byte, error) {
	return encodeTagged("Conv", struct {
		Target Expr
		Conv   Conv
		Proof  Proof
	}{p.Target, p.Conv, p.Proof})
}

func (p LetProof) MarshalJSON() ([]byte, error) {
	return encodeTagged("Let", struct {
		Name  string
		Value Proof
		Body  Proof
	}{p.Name, p.Value, p.Body})
}

func (p SorryProof) MarshalJSON() ([]byte, error) {
	return encodeTagged("Sorry", struct{}{})
}

// UnmarshalProof decodes a tagged JSON value into a Proof.
func UnmarshalProof(raw json.RawMessage) (Proof, error) {
	var t tagged
	if err := json.Unmarshal(raw, &t); err != nil {
		return nil, err
	}

	switch t.Kind {
	case "Hyp":
		var d struct{ Hyp string }
		if err := json.Unmarshal(t.Data, &d); err != nil {
			return nil, err
		}

		return HypProof{d.Hyp}, nil

	case "Thm":
		var d struct {
			Thm       string
			Args      []json.RawMessage
			Subproofs []json.RawMessage
		}

		if err := json.Unmarshal(t.Data, &d); err != nil {
			return nil, err
		}

		args := make([]Expr, len(d.Args))

		for i, a := range d.Args {
			e, err := UnmarshalExpr(a)
			if err != nil {
				return nil, err
			}

			args[i] = e
		}

		subs := make([]Proof, len(d.Subproofs))

		for i, s := range d.Subproofs {
			p, err := UnmarshalProof(s)
			if err != nil {
				return nil, err
			}

			subs[i] = p
		}

		return ThmProof{d.Thm, args, subs}, nil

	case "Conv":
		var d struct {
			Target json.RawMessage
			Conv   json.RawMessage
			Proof  json.RawMessage
		}

		if err := json.Unmarshal(t.Data, &d); err != nil {
			return nil, err
		}

		target, err := UnmarshalExpr(d.Target)
		if err != nil {
			return nil, err
		}

		conv, err := UnmarshalConv(d.Conv)
		if err != nil {
			return nil, err
		}

		proof, err := UnmarshalProof(d.Proof)
		if err != nil {
			return nil, err
		}

		return ConvProof{target, conv, proof}, nil

	case "Let":
		var d struct {
			Name  string
			Value json.RawMessage
			Body  json.RawMessage
		}

		if err := json.Unmarshal(t.Data, &d); err != nil {
			return nil, err
		}

		value, err := UnmarshalProof(d.Value)
		if err != nil {
			return nil, err
		}

		body, err := UnmarshalProof(d.Body)
		if err != nil {
			return nil, err
		}

		return LetProof{d.Name, value, body}, nil

	case "Sorry":
		return SorryProof{}, nil

	default:
		return nil, fmt.Errorf("unknown proof kind %q", t.Kind)
	}
}

// --- Conv ---

func (c CVar) MarshalJSON() ([]byte, error) {
	return encodeTagged("CVar", struct{ Var string }{c.Var})
}

func (c CApp) MarshalJSON() ([]byte, error) {
	return encodeTagged("CApp", struct {
		Term string
		Args []Conv
	}{c.Term, c.Args})
}

func (c CSym) MarshalJSON() ([]byte, error) {
	return encodeTagged("CSym", struct{ Conv Conv }{c.Conv})
}

func (c CUnfold) MarshalJSON() ([]byte, error) {
	return encodeTagged("CUnfold", struct {
		Term    string
		Args    []Expr
		Dummies []string
		Conv    Conv
	}{c.Term, c.Args, c.Dummies, c.Conv})
}

// UnmarshalConv decodes a tagged JSON value into a Conv.
func UnmarshalConv(raw json.RawMessage) (Conv, error) {
	var t tagged
	if err := json.Unmarshal(raw, &t); err != nil {
		return nil, err
	}

	switch t.Kind {
	case "CVar":
		var d struct{ Var string }
		if err := json.Unmarshal(t.Data, &d); err != nil {
			return nil, err
		}

		return CVar{d.Var}, nil

	case "CApp":
		var d struct {
			Term string
			Args []json.RawMessage
		}

		if err := json.Unmarshal(t.Data, &d); err != nil {
			return nil, err
		}

		args := make([]Conv, len(d.Args))

		for i, a := range d.Args {
			c, err := UnmarshalConv(a)
			if err != nil {
				return nil, err
			}

			args[i] = c
		}

		return CApp{d.Term, args}, nil

	case "CSym":
		var d struct{ Conv json.RawMessage }
		if err := json.Unmarshal(t.Data, &d); err != nil {
			return nil, err
		}

		inner, err := UnmarshalConv(d.Conv)
		if err != nil {
			return nil, err
		}

		return CSym{inner}, nil

	case "CUnfold":
		var d struct {
			Term    string
			Args    []json.RawMessage
			Dummies []string
			Conv    json.RawMessage
		}

		if err := json.Unmarshal(t.Data, &d); err != nil {
			return nil, err
		}

		args := make([]Expr, len(d.Args))

		for i, a := range d.Args {
			e, err := UnmarshalExpr(a)
			if err != nil {
				return nil, err
			}

			args[i] = e
		}

		inner, err := UnmarshalConv(d.Conv)
		if err != nil {
			return nil, err
		}

		return CUnfold{d.Term, args, d.Dummies, inner}, nil

	default:
		return nil, fmt.Errorf("unknown conv kind %q", t.Kind)
	}
}

// --- DeclKind / Spec / Step ---

func (d DTerm) MarshalJSON() ([]byte, error) {
	return encodeTagged("DTerm", struct {
		Args []Binder
		Ret  DepType
	}{d.Args, d.Ret})
}

func (d DAxiom) MarshalJSON() ([]byte, error) {
	return encodeTagged("DAxiom", struct {
		Args []Binder
		Hyps []Hyp
		Ret  Expr
	}{d.Args, d.Hyps, d.Ret})
}

func (d DDef) MarshalJSON() ([]byte, error) {
	return encodeTagged("DDef", struct {
		Args    []Binder
		Ret     DepType
		Dummies []DummyVar
		Body    Expr
	}{d.Args, d.Ret, d.Dummies, d.Body})
}

func (h Hyp) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Name string
		Stmt Expr
	}{h.Name, h.Stmt})
}

func (h *Hyp) UnmarshalJSON(data []byte) error {
	var d struct {
		Name string
		Stmt json.RawMessage
	}

	if err := json.Unmarshal(data, &d); err != nil {
		return err
	}

	e, err := UnmarshalExpr(d.Stmt)
	if err != nil {
		return err
	}

	h.Name, h.Stmt = d.Name, e

	return nil
}

func unmarshalHyps(raws []json.RawMessage) ([]Hyp, error) {
	out := make([]Hyp, len(raws))

	for i, r := range raws {
		if err := json.Unmarshal(r, &out[i]); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// UnmarshalDeclKind decodes a tagged JSON value into a DeclKind.
func UnmarshalDeclKind(raw json.RawMessage) (DeclKind, error) {
	var t tagged
	if err := json.Unmarshal(raw, &t); err != nil {
		return nil, err
	}

	switch t.Kind {
	case "DTerm":
		var d struct {
			Args []json.RawMessage
			Ret  DepType
		}

		if err := json.Unmarshal(t.Data, &d); err != nil {
			return nil, err
		}

		args, err := unmarshalBinders(d.Args)
		if err != nil {
			return nil, err
		}

		return DTerm{args, d.Ret}, nil

	case "DAxiom":
		var d struct {
			Args []json.RawMessage
			Hyps []json.RawMessage
			Ret  json.RawMessage
		}

		if err := json.Unmarshal(t.Data, &d); err != nil {
			return nil, err
		}

		args, err := unmarshalBinders(d.Args)
		if err != nil {
			return nil, err
		}

		hyps, err := unmarshalHyps(d.Hyps)
		if err != nil {
			return nil, err
		}

		ret, err := UnmarshalExpr(d.Ret)
		if err != nil {
			return nil, err
		}

		return DAxiom{args, hyps, ret}, nil

	case "DDef":
		var d struct {
			Args    []json.RawMessage
			Ret     DepType
			Dummies []DummyVar
			Body    json.RawMessage
		}

		if err := json.Unmarshal(t.Data, &d); err != nil {
			return nil, err
		}

		args, err := unmarshalBinders(d.Args)
		if err != nil {
			return nil, err
		}

		body, err := UnmarshalExpr(d.Body)
		if err != nil {
			return nil, err
		}

		return DDef{args, d.Ret, d.Dummies, body}, nil

	default:
		return nil, fmt.Errorf("unknown decl kind %q", t.Kind)
	}
}

func (s SSort) MarshalJSON() ([]byte, error) {
	return encodeTagged("SSort", struct {
		Name string
		Sort Sort
	}{s.Name, s.Sort})
}

func (s SDecl) MarshalJSON() ([]byte, error) {
	return encodeTagged("SDecl", struct {
		Name string
		Decl DeclKind
	}{s.Name, s.Decl})
}

func (s SThm) MarshalJSON() ([]byte, error) {
	return encodeTagged("SThm", struct {
		Name    string
		Args    []Binder
		Hyps    []Hyp
		Ret     Expr
		Dummies []DummyVar
	}{s.Name, s.Args, s.Hyps, s.Ret, s.Dummies})
}

func (s SInout) MarshalJSON() ([]byte, error) {
	return encodeTagged("SInout", struct {
		Dir  bool
		Expr Expr
	}{s.IO.Dir, s.IO.Expr})
}

// UnmarshalSpec decodes a tagged JSON value into a Spec.
func UnmarshalSpec(raw json.RawMessage) (Spec, error) {
	var t tagged
	if err := json.Unmarshal(raw, &t); err != nil {
		return nil, err
	}

	switch t.Kind {
	case "SSort":
		var d struct {
			Name string
			Sort Sort
		}

		if err := json.Unmarshal(t.Data, &d); err != nil {
			return nil, err
		}

		return SSort{d.Name, d.Sort}, nil

	case "SDecl":
		var d struct {
			Name string
			Decl json.RawMessage
		}

		if err := json.Unmarshal(t.Data, &d); err != nil {
			return nil, err
		}

		decl, err := UnmarshalDeclKind(d.Decl)
		if err != nil {
			return nil, err
		}

		return SDecl{d.Name, decl}, nil

	case "SThm":
		var d struct {
			Name    string
			Args    []json.RawMessage
			Hyps    []json.RawMessage
			Ret     json.RawMessage
			Dummies []DummyVar
		}

		if err := json.Unmarshal(t.Data, &d); err != nil {
			return nil, err
		}

		args, err := unmarshalBinders(d.Args)
		if err != nil {
			return nil, err
		}

		hyps, err := unmarshalHyps(d.Hyps)
		if err != nil {
			return nil, err
		}

		ret, err := UnmarshalExpr(d.Ret)
		if err != nil {
			return nil, err
		}

		return SThm{d.Name, args, hyps, ret, d.Dummies}, nil

	case "SInout":
		var d struct {
			Dir  bool
			Expr json.RawMessage
		}

		if err := json.Unmarshal(t.Data, &d); err != nil {
			return nil, err
		}

		e, err := UnmarshalExpr(d.Expr)
		if err != nil {
			return nil, err
		}

		return SInout{IOKind{d.Dir, e}}, nil

	default:
		return nil, fmt.Errorf("unknown spec kind %q", t.Kind)
	}
}

// UnmarshalJSON decodes an Environment from its {"specs": [...]} form.
func (e *Environment) UnmarshalJSON(data []byte) error {
	var d struct {
		Specs []json.RawMessage
	}

	if err := json.Unmarshal(data, &d); err != nil {
		return err
	}

	specs := make([]Spec, len(d.Specs))

	for i, r := range d.Specs {
		s, err := UnmarshalSpec(r)
		if err != nil {
			return err
		}

		specs[i] = s
	}

	e.Specs = specs

	return nil
}

func (s StepSort) MarshalJSON() ([]byte, error) {
	return encodeTagged("StepSort", struct{ Name string }{s.Name})
}

func (s StepTerm) MarshalJSON() ([]byte, error) {
	return encodeTagged("StepTerm", struct{ Name string }{s.Name})
}

func (s StepAxiom) MarshalJSON() ([]byte, error) {
	return encodeTagged("StepAxiom", struct{ Name string }{s.Name})
}

func (s StepDef) MarshalJSON() ([]byte, error) {
	return encodeTagged("StepDef", struct {
		Name    string
		Args    []Binder
		Ret     DepType
		Dummies []DummyVar
		Body    Expr
		Strict  bool
	}{s.Name, s.Args, s.Ret, s.Dummies, s.Body, s.Strict})
}

func (s StepThm) MarshalJSON() ([]byte, error) {
	return encodeTagged("StepThm", struct {
		Name    string
		Args    []Binder
		Hyps    []Hyp
		Ret     Expr
		Dummies []DummyVar
		Proof   Proof
		Strict  bool
	}{s.Name, s.Args, s.Hyps, s.Ret, s.Dummies, s.Proof, s.Strict})
}

func (s StepInout) MarshalJSON() ([]byte, error) {
	return encodeTagged("StepInout", struct {
		Dir  bool
		Expr Expr
	}{s.Dir, s.Expr})
}

// UnmarshalStep decodes a tagged JSON value into a Step.
func UnmarshalStep(raw json.RawMessage) (Step, error) {
	var t tagged
	if err := json.Unmarshal(raw, &t); err != nil {
		return nil, err
	}

	switch t.Kind {
	case "StepSort":
		var d struct{ Name string }
		if err := json.Unmarshal(t.Data, &d); err != nil {
			return nil, err
		}

		return StepSort{d.Name}, nil

	case "StepTerm":
		var d struct{ Name string }
		if err := json.Unmarshal(t.Data, &d); err != nil {
			return nil, err
		}

		return StepTerm{d.Name}, nil

	case "StepAxiom":
		var d struct{ Name string }
		if err := json.Unmarshal(t.Data, &d); err != nil {
			return nil, err
		}

		return StepAxiom{d.Name}, nil

	case "StepDef":
		var d struct {
			Name    string
			Args    []json.RawMessage
			Ret     DepType
			Dummies []DummyVar
			Body    json.RawMessage
			Strict  bool
		}

		if err := json.Unmarshal(t.Data, &d); err != nil {
			return nil, err
		}

		args, err := unmarshalBinders(d.Args)
		if err != nil {
			return nil, err
		}

		body, err := UnmarshalExpr(d.Body)
		if err != nil {
			return nil, err
		}

		return StepDef{d.Name, args, d.Ret, d.Dummies, body, d.Strict}, nil

	case "StepThm":
		var d struct {
			Name    string
			Args    []json.RawMessage
			Hyps    []json.RawMessage
			Ret     json.RawMessage
			Dummies []DummyVar
			Proof   json.RawMessage
			Strict  bool
		}

		if err := json.Unmarshal(t.Data, &d); err != nil {
			return nil, err
		}

		args, err := unmarshalBinders(d.Args)
		if err != nil {
			return nil, err
		}

		hyps, err := unmarshalHyps(d.Hyps)
		if err != nil {
			return nil, err
		}

		ret, err := UnmarshalExpr(d.Ret)
		if err != nil {
			return nil, err
		}

		proof, err := UnmarshalProof(d.Proof)
		if err != nil {
			return nil, err
		}

		return StepThm{d.Name, args, hyps, ret, d.Dummies, proof, d.Strict}, nil

	case "StepInout":
		var d struct {
			Dir  bool
			Expr json.RawMessage
		}

		if err := json.Unmarshal(t.Data, &d); err != nil {
			return nil, err
		}

		e, err := UnmarshalExpr(d.Expr)
		if err != nil {
			return nil, err
		}

		return StepInout{d.Dir, e}, nil

	default:
		return nil, fmt.Errorf("unknown step kind %q", t.Kind)
	}
}

// UnmarshalJSON decodes a Script from its {"steps": [...]} form.
func (s *Script) UnmarshalJSON(data []byte) error {
	var d struct {
		Steps []json.RawMessage
	}

	if err := json.Unmarshal(data, &d); err != nil {
		return err
	}

	steps := make([]Step, len(d.Steps))

	for i, r := range d.Steps {
		st, err := UnmarshalStep(r)
		if err != nil {
			return err
		}

		steps[i] = st
	}

	s.Steps = steps

	return nil
}
