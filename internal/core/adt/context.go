// Copyright 2024 The SAT Expander Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package adt

import (
	"fmt"
	"strings"

	"satexpander.org/go/sat/errors"
)

// An Environment links variable bindings for lookup during expansion.
// Each quantifier level extends its parent environment; extension never
// mutates the parent, so sibling subtree evaluations are independent.
//
// The nil *Environment is the empty environment.
type Environment struct {
	Up   *Environment
	Name string
	Val  interface{}
}

// Lookup reports the value bound to name, walking outward through the
// enclosing levels.
func (e *Environment) Lookup(name string) (interface{}, bool) {
	for ; e != nil; e = e.Up {
		if e.Name == name {
			return e.Val, true
		}
	}
	return nil, false
}

// Has reports whether name is bound in e.
func (e *Environment) Has(name string) bool {
	_, ok := e.Lookup(name)
	return ok
}

// Extend returns an environment with names bound positionally to the
// elements of value. Rebinding a name that is already visible fails
// with ShadowError; quantifier variables never shadow outer ones.
func (e *Environment) Extend(names []string, value Tuple) (*Environment, errors.Error) {
	res := e
	for i, name := range names {
		if res.Has(name) {
			return nil, errors.Newf(errors.ShadowError,
				"the binding for %q overlaps with an existing binding", name)
		}
		res = &Environment{Up: res, Name: name, Val: value[i]}
	}
	return res, nil
}

func (e *Environment) String() string {
	var parts []string
	for ; e != nil; e = e.Up {
		parts = append(parts, fmt.Sprintf("%s=%v", e.Name, e.Val))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
