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

// Package runtime maintains the symbol registry: the shared index that
// assigns contiguous blocks of propositional variable identifiers to
// symbols and resolves names during atom compilation.
package runtime

import (
	"satexpander.org/go/internal/core/adt"
	"satexpander.org/go/internal/diag"
	"satexpander.org/go/sat/errors"
)

// A Runtime holds the registered symbols of one formula and the next
// unissued identifier. A Runtime is a plain value owned by the caller;
// independent formulas use independent runtimes.
type Runtime struct {
	symbols []*adt.Symbol
	next    int // next unissued identifier; ids start at 1
	sink    diag.Sink
}

// New creates an empty registry.
func New() *Runtime {
	return &Runtime{next: 1}
}

// SetDiagnostics routes non-fatal diagnostics of the registry and its
// symbols to sink. A nil sink restores the default.
func (r *Runtime) SetDiagnostics(sink diag.Sink) {
	r.sink = sink
}

// NextID reports the next identifier the registry would issue.
func (r *Runtime) NextID() int { return r.next }

// Symbols returns all registered symbols in registration order.
func (r *Runtime) Symbols() []*adt.Symbol {
	return r.symbols
}

// LookupSymbol resolves a symbol by name, or nil.
func (r *Runtime) LookupSymbol(name string) *adt.Symbol {
	for _, s := range r.symbols {
		if s.Name == name {
			return s
		}
	}
	return nil
}

func (r *Runtime) checkName(name string) errors.Error {
	if r.LookupSymbol(name) != nil {
		return errors.Newf(errors.DuplicateName,
			"the symbol with the name %q is already defined", name)
	}
	return nil
}

// Build registers a symbol over the given domain and assigns it the
// identifier block [NextID, NextID+size). The iteration order of domain
// determines id assignment; duplicates warn and are dropped, keeping
// the first occurrence.
func (r *Runtime) Build(name string, arity int, domain []adt.Tuple) (*adt.Symbol, errors.Error) {
	if err := r.checkName(name); err != nil {
		return nil, err
	}
	s, err := adt.NewSymbol(name, arity, domain, r.next, r.sink)
	if err != nil {
		return nil, err
	}
	r.next += s.Size
	r.symbols = append(r.symbols, s)
	return s, nil
}

// AddConstant registers a zero-arity symbol consuming one identifier.
func (r *Runtime) AddConstant(name string) (*adt.Symbol, errors.Error) {
	if err := r.checkName(name); err != nil {
		return nil, err
	}
	s := adt.NewConstant(name, r.next, r.sink)
	r.next++
	r.symbols = append(r.symbols, s)
	return s, nil
}
