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

package ioverify

import (
	"fmt"

	"github.com/ECOSurfDeBot/mm0/pkg/mm0/ast"
	"github.com/ECOSurfDeBot/mm0/pkg/mm0/kernel"
)

// value is the result of an output-mode reduction: either a completed byte
// buffer, or a single nibble still waiting to be paired up by a ch.
type value struct {
	isHex bool
	hex   byte
	str   []byte
}

// VerifyOutputString reduces expr in output mode and, on success, appends
// the resulting byte buffer to state's output sequence.
func VerifyOutputString(state *kernel.State, expr ast.Expr) error {
	v, err := reduceOutput(state, nil, expr)
	if err != nil {
		return err
	}

	if v.isHex {
		return fmt.Errorf("internal: output reduction yielded a bare hex digit (impossible axiomatization)")
	}

	state.AppendOutput(v.str)

	return nil
}

func reduceOutput(state *kernel.State, stack []frame, expr ast.Expr) (value, error) {
	switch e := expr.(type) {
	case ast.Var:
		val, parent, err := lookup(stack, e.VarName)
		if err != nil {
			return value{}, err
		}

		return reduceOutput(state, parent, val)

	case ast.App:
		if digit, ok := hexDigits[e.Term]; ok {
			return value{isHex: true, hex: digit}, nil
		}

		switch e.Term {
		case "s0":
			return value{str: []byte{}}, nil

		case "s1":
			if len(e.Args) != 1 {
				return value{}, fmt.Errorf("arity mismatch for %q", e.Term)
			}

			return asString(reduceOutput(state, stack, e.Args[0]))

		case "sadd":
			if len(e.Args) != 2 {
				return value{}, fmt.Errorf("arity mismatch for %q", e.Term)
			}

			v1, err := asString(reduceOutput(state, stack, e.Args[0]))
			if err != nil {
				return value{}, err
			}

			v2, err := asString(reduceOutput(state, stack, e.Args[1]))
			if err != nil {
				return value{}, err
			}

			buf := make([]byte, 0, len(v1.str)+len(v2.str))
			buf = append(buf, v1.str...)
			buf = append(buf, v2.str...)

			return value{str: buf}, nil

		case "ch":
			if len(e.Args) != 2 {
				return value{}, fmt.Errorf("arity mismatch for %q", e.Term)
			}

			h1, err := asHex(reduceOutput(state, stack, e.Args[0]))
			if err != nil {
				return value{}, err
			}

			h2, err := asHex(reduceOutput(state, stack, e.Args[1]))
			if err != nil {
				return value{}, err
			}

			return value{str: []byte{h1<<4 | h2}}, nil
		}

		newStack, body, err := unfold(state, stack, e)
		if err != nil {
			return value{}, err
		}

		return reduceOutput(state, newStack, body)

	default:
		return value{}, fmt.Errorf("unrecognized expression form %T", expr)
	}
}

func asString(v value, err error) (value, error) {
	if err != nil {
		return value{}, err
	}

	if v.isHex {
		return value{}, fmt.Errorf("expected a byte string, found a bare hex digit")
	}

	return v, nil
}

func asHex(v value, err error) (byte, error) {
	if err != nil {
		return 0, err
	}

	if !v.isHex {
		return 0, fmt.Errorf("expected a hex digit, found a byte string")
	}

	return v.hex, nil
}
