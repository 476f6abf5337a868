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

// Context maps in-scope variable names to the binder that introduced them.
// Every per-declaration check owns a fresh Context; nothing is shared
// between declarations.
type Context map[string]ast.Binder

// NewContext returns an empty context.
func NewContext() Context {
	return make(Context)
}

// Clone returns a shallow copy of ctx, suitable as a starting point for a
// nested scope (e.g. extending with dummy variables) without mutating the
// caller's context.
func (ctx Context) Clone() Context {
	out := make(Context, len(ctx))

	for k, v := range ctx {
		out[k] = v
	}

	return out
}

// BuildContext extends startCtx with the given binders, in order, enforcing
// scope discipline: bound variables may not bind at a strict sort, no name
// may be declared twice, and a regular variable's dependency list may only
// reference bound names already in scope.
func BuildContext(state *State, binders []ast.Binder, startCtx Context) (Context, error) {
	ctx := startCtx.Clone()

	for _, b := range binders {
		name := b.Name()

		if _, ok := ctx[name]; ok {
			return nil, fmt.Errorf("duplicate variable %q", name)
		}

		sortName := b.Sort()

		sd, ok := state.Sort(sortName)
		if !ok {
			return nil, fmt.Errorf("sort not found: %q", sortName)
		}

		switch bb := b.(type) {
		case ast.BoundBinder:
			if sd.Strict {
				return nil, fmt.Errorf("cannot bind variable %q at strict sort %q", name, sortName)
			}
		case ast.RegularBinder:
			for _, dep := range bb.Deps() {
				depBinder, ok := ctx[dep]
				if !ok || !depBinder.IsBound() {
					return nil, fmt.Errorf("unbound dependency %q in declaration of %q", dep, name)
				}
			}
		default:
			return nil, fmt.Errorf("unknown binder kind for %q", name)
		}

		ctx[name] = b
	}

	return ctx, nil
}
