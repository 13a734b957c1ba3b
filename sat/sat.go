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

// Package sat expands finitely-quantified propositional constraints
// into ground CNF formulas.
//
// A caller registers uninterpreted function symbols over finite domains
// with a Runtime, composes nested universal and existential quantifiers
// over those domains, and writes clause templates as signed
// function-application atoms. Evaluating the tree binds variables to
// domain tuples, resolves every atom to a signed propositional variable
// identifier, and produces the full expansion as a cnf.CNF, ready for
// DIMACS rendering.
//
// The engine performs no simplification and no solving; the CNF is the
// structural expansion the caller expresses, in deterministic order.
package sat // import "satexpander.org/go/sat"

import (
	"satexpander.org/go/internal/core/adt"
	"satexpander.org/go/internal/core/runtime"
)

// A Runtime is a symbol registry. It assigns each registered symbol a
// contiguous block of propositional variable identifiers, starting
// at 1. Independent formulas should use independent runtimes; a Runtime
// carries no process-wide state.
type Runtime struct {
	rt *runtime.Runtime
}

// New creates an empty registry.
func New() *Runtime {
	return &Runtime{rt: runtime.New()}
}

// SetWarnf routes the registry's non-fatal diagnostics, such as
// duplicate domain values, to f instead of stderr. Warnings emitted by
// exclusion predicates under MissingWarn are not affected and still go
// to stderr.
func (r *Runtime) SetWarnf(f func(format string, args ...interface{})) {
	if f == nil {
		r.rt.SetDiagnostics(nil)
		return
	}
	r.rt.SetDiagnostics(warnFunc(f))
}

type warnFunc func(format string, args ...interface{})

func (f warnFunc) Warnf(format string, args ...interface{}) { f(format, args...) }

// Build registers a function symbol of the given arity. The domain is
// materialized in iteration order; identifier assignment follows that
// order. Duplicate domain values warn and are dropped, keeping the
// first occurrence.
func (r *Runtime) Build(name string, arity int, domain []Tuple) (*Symbol, error) {
	s, err := r.rt.Build(name, arity, domain)
	if err != nil {
		return nil, err
	}
	return &Symbol{sym: s}, nil
}

// AddConstant registers a zero-arity symbol consuming one identifier.
func (r *Runtime) AddConstant(name string) (*Symbol, error) {
	s, err := r.rt.AddConstant(name)
	if err != nil {
		return nil, err
	}
	return &Symbol{sym: s}, nil
}

// Symbol resolves a registered symbol by name, or nil.
func (r *Runtime) Symbol(name string) *Symbol {
	s := r.rt.LookupSymbol(name)
	if s == nil {
		return nil
	}
	return &Symbol{sym: s}
}

// NextID reports the next propositional variable identifier the
// registry would issue.
func (r *Runtime) NextID() int { return r.rt.NextID() }

func (r *Runtime) lookupSymbol(name string) *adt.Symbol {
	return r.rt.LookupSymbol(name)
}

// A Symbol is a registered uninterpreted function. Its mutators may
// only be called before any atom referencing it has been evaluated.
type Symbol struct {
	sym *adt.Symbol
}

// Name reports the symbol's registered name.
func (s *Symbol) Name() string { return s.sym.Name }

// Arity reports the number of arguments the symbol takes.
func (s *Symbol) Arity() int { return s.sym.Arity }

// Base reports the first identifier of the symbol's block.
func (s *Symbol) Base() int { return s.sym.Base }

// Size reports the width of the symbol's identifier block.
func (s *Symbol) Size() int { return s.sym.Size }

// IsConstant reports whether s is a zero-arity constant.
func (s *Symbol) IsConstant() bool { return s.sym.IsConstant() }

// Domain returns the symbol's domain in identifier-assignment order.
func (s *Symbol) Domain() []Tuple { return s.sym.Domain() }

// ID reports the identifier assigned to the given domain tuple, if any.
// It does not freeze the symbol.
func (s *Symbol) ID(t Tuple) (int, bool) { return s.sym.ID(t) }

// InRange reports whether id falls inside the symbol's identifier
// block. Non-positive ids are never in range.
func (s *Symbol) InRange(id int) bool { return s.sym.InRange(id) }

// SetCommutative collapses identifiers across argument tuples that are
// permutations of each other, making f(x,y) and f(y,x) resolve to the
// same variable. It fails once the symbol has been evaluated; constants
// warn and are unaffected.
func (s *Symbol) SetCommutative() error {
	if err := s.sym.SetCommutative(); err != nil {
		return err
	}
	return nil
}

// SetEquivalent makes t2 resolve to t1's identifier. Both tuples must
// already be in the domain for the call to have an effect. It fails
// once the symbol has been evaluated; constants warn and are
// unaffected.
func (s *Symbol) SetEquivalent(t1, t2 Tuple) error {
	if err := s.sym.SetEquivalent(t1, t2); err != nil {
		return err
	}
	return nil
}

// A Scope resolves symbol names for Atoms. It is satisfied by *Runtime
// and by an explicit Symbols list.
type Scope interface {
	lookupSymbol(name string) *adt.Symbol
}

// Symbols is an explicit symbol list usable as the scope of an Atoms
// leaf.
type Symbols []*Symbol

func (l Symbols) lookupSymbol(name string) *adt.Symbol {
	for _, s := range l {
		if s != nil && s.sym.Name == name {
			return s.sym
		}
	}
	return nil
}

// scopeAdapter presents a Scope to the compile package.
type scopeAdapter struct{ s Scope }

func (a scopeAdapter) LookupSymbol(name string) *adt.Symbol {
	return a.s.lookupSymbol(name)
}
