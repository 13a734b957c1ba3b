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
	"satexpander.org/go/internal/diag"
	"satexpander.org/go/sat/errors"
)

// A Symbol is an uninterpreted function over a finite domain. Every
// domain tuple maps to a propositional variable identifier inside the
// symbol's contiguous id block [Base, Base+Size).
//
// After any atom has been evaluated against the symbol its relation is
// frozen; mutators fail afterward.
type Symbol struct {
	Name  string
	Arity int
	Base  int // first identifier of the block
	Size  int // width of the block

	domain   []Tuple        // insertion order, duplicates removed
	relation map[string]int // Tuple.Key() -> identifier
	constant bool
	frozen   bool

	sink diag.Sink
}

// NewSymbol creates a symbol with the given id block start. The domain
// is deduplicated preserving first occurrence; duplicates emit a
// diagnostic. Domain tuples of the wrong length fail with ArityMismatch.
func NewSymbol(name string, arity int, domain []Tuple, base int, sink diag.Sink) (*Symbol, errors.Error) {
	s := &Symbol{
		Name:     name,
		Arity:    arity,
		Base:     base,
		relation: make(map[string]int, len(domain)),
		sink:     sink,
	}
	var dups []Tuple
	for _, t := range domain {
		if len(t) != arity {
			return nil, errors.Newf(errors.ArityMismatch,
				"domain element %v of symbol %q has %d elements; want %d",
				t, name, len(t), arity)
		}
		k := t.Key()
		if _, ok := s.relation[k]; ok {
			dups = append(dups, t)
			continue
		}
		s.relation[k] = base + len(s.domain)
		s.domain = append(s.domain, t)
	}
	if len(dups) > 0 {
		diag.Warnf(sink, "the domain of symbol %q contains duplicate values: %v", name, dups)
	}
	s.Size = len(s.domain)
	return s, nil
}

// NewConstant creates a zero-arity symbol occupying a single identifier.
func NewConstant(name string, base int, sink diag.Sink) *Symbol {
	return &Symbol{
		Name:     name,
		Base:     base,
		Size:     1,
		relation: map[string]int{Tuple{}.Key(): base},
		constant: true,
		sink:     sink,
	}
}

// IsConstant reports whether s is a zero-arity constant.
func (s *Symbol) IsConstant() bool { return s.constant }

// Domain returns the symbol's domain in id-assignment order.
func (s *Symbol) Domain() []Tuple { return s.domain }

// ID reports the identifier assigned to the given tuple, if any. Unlike
// Lookup it does not freeze the symbol.
func (s *Symbol) ID(t Tuple) (int, bool) {
	id, ok := s.relation[t.Key()]
	return id, ok
}

// InRange reports whether id falls inside the symbol's identifier block.
// Non-positive ids are never in range.
func (s *Symbol) InRange(id int) bool {
	return id >= s.Base && id < s.Base+s.Size
}

// Lookup resolves the symbol applied to the given argument names under
// env to an identifier. The argument tuple is reassembled by looking up
// each name in positional order. Resolving any atom freezes the symbol.
func (s *Symbol) Lookup(args []string, env *Environment) (int, errors.Error) {
	if s.constant {
		return s.Base, nil
	}
	t := make(Tuple, len(args))
	for i, arg := range args {
		v, ok := env.Lookup(arg)
		if !ok {
			return 0, errors.Newf(errors.MissingBinding,
				"the argument %q does not exist in the context", arg)
		}
		t[i] = v
	}
	id, ok := s.relation[t.Key()]
	if !ok {
		return 0, errors.Newf(errors.DomainError,
			"the input %v of arguments %v is not in the domain of symbol %q",
			t, args, s.Name)
	}
	s.frozen = true
	return id, nil
}

// SetEquivalent makes t2 resolve to t1's identifier. Both tuples must
// already be present in the relation; otherwise the call has no effect.
// Fails with FrozenError after the symbol has been evaluated; warns and
// has no effect on constants.
func (s *Symbol) SetEquivalent(t1, t2 Tuple) errors.Error {
	if s.constant {
		diag.Warnf(s.sink, "calling SetEquivalent on the constant %q has no effect", s.Name)
		return nil
	}
	if s.frozen {
		return s.frozenErr()
	}
	// Key presence decides; an identifier value is never a valid signal.
	id, ok1 := s.relation[t1.Key()]
	_, ok2 := s.relation[t2.Key()]
	if ok1 && ok2 {
		s.relation[t2.Key()] = id
	}
	return nil
}

// SetCommutative collapses identifiers across argument tuples that are
// permutations of each other. Walking the domain in id order, every
// later tuple with the same multi-set of elements as an earlier one is
// rewritten to share the earlier tuple's identifier. Applying it twice
// is equivalent to applying it once.
func (s *Symbol) SetCommutative() errors.Error {
	if s.constant {
		diag.Warnf(s.sink, "calling SetCommutative on the constant %q has no effect", s.Name)
		return nil
	}
	if s.frozen {
		return s.frozenErr()
	}
	done := make([]bool, len(s.domain))
	for i, t := range s.domain {
		if done[i] {
			continue
		}
		for j := i + 1; j < len(s.domain); j++ {
			if !done[j] && sameElements(s.domain[j], t) {
				s.relation[s.domain[j].Key()] = s.relation[t.Key()]
				done[j] = true
			}
		}
	}
	return nil
}

func (s *Symbol) frozenErr() errors.Error {
	return errors.Newf(errors.FrozenError,
		"changing symbol %q after evaluation can lead to invalid results", s.Name)
}
