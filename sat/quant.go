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

package sat

import (
	"satexpander.org/go/internal/core/adt"
	"satexpander.org/go/internal/core/compile"
	"satexpander.org/go/internal/core/eval"
	"satexpander.org/go/sat/cnf"
)

// An Op is one node of a quantifier tree under construction. Ops are
// composed with Chain and consumed by Evaluate. Composition errors are
// recorded on the Op and surface at Evaluate, so construction can be
// written fluently.
type Op struct {
	node adt.Node
	err  error
}

// Forall builds a universal quantifier binding vars to each element of
// values in turn. Optional exclusion predicates filter candidate
// bindings; a binding is kept only if every predicate keeps it.
func Forall(vars []string, values []Tuple, exclude ...Predicate) *Op {
	return &Op{node: &adt.Forall{
		Vars:    vars,
		Values:  values,
		Exclude: compilePredicates(exclude),
	}}
}

// Exists builds an existential quantifier binding vars to each element
// of values in turn. Its subtree must expand to exactly one clause per
// binding; the clauses are flattened into one disjunction.
func Exists(vars []string, values []Tuple, exclude ...Predicate) *Op {
	return &Op{node: &adt.Exists{
		Vars:    vars,
		Values:  values,
		Exclude: compilePredicates(exclude),
	}}
}

// Atoms builds the leaf of a quantifier tree from atom templates such
// as "f(x,y)" or "-c". Templates are parsed and resolved against scope
// immediately; malformed templates surface at Evaluate.
func Atoms(scope Scope, exprs ...string) *Op {
	n, err := compile.Atoms(scopeAdapter{scope}, exprs...)
	if err != nil {
		return &Op{err: err}
	}
	return &Op{node: n}
}

// Chain attaches child at the deepest non-leaf node below o and returns
// o for further chaining. Attaching a universal below an existential,
// or anything below an atoms leaf, is a structure error.
func (o *Op) Chain(child *Op) *Op {
	if o.err != nil {
		return o
	}
	if child.err != nil {
		o.err = child.err
		return o
	}
	if err := adt.Chain(o.node, child.node); err != nil {
		o.err = err
	}
	return o
}

// Err reports the first composition error recorded on o, if any.
func (o *Op) Err() error { return o.err }

// Evaluate expands the tree rooted at o under the empty context.
func (o *Op) Evaluate() (cnf.CNF, error) {
	if o.err != nil {
		return nil, o.err
	}
	res, err := eval.Evaluate(o.node, nil)
	if err != nil {
		return nil, err
	}
	return res, nil
}
