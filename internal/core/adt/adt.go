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

// Package adt represents quantifier trees as a tagged union of node
// variants and holds the symbol and binding-environment machinery the
// evaluator operates on.
//
// A well-formed tree satisfies the CNF structure invariant: on any
// root-to-leaf path no universal node appears strictly below an
// existential one, and the leaf is always an Atoms node. The invariant
// is enforced at composition time.
package adt

import (
	"satexpander.org/go/sat/errors"
)

// A Node is a quantifier tree node: *Forall, *Exists, or *Atoms.
type Node interface {
	node()

	// Sub returns the attached subtree, or nil. Atoms leaves have none.
	Sub() Node
}

// A Predicate decides whether a candidate binding is kept during
// expansion. It sees the environment already extended with the binding
// under consideration as well as the raw candidate tuple, and reports
// true to keep it.
type Predicate func(env *Environment, value Tuple) (bool, errors.Error)

// A Forall node expands its subtree once per kept value, concatenating
// the resulting clause lists.
type Forall struct {
	Vars    []string
	Values  []Tuple
	Exclude Predicate
	Subtree Node
}

// An Exists node flattens its subtree's single clause across all kept
// values into one disjunction.
type Exists struct {
	Vars    []string
	Values  []Tuple
	Exclude Predicate
	Subtree Node
}

// An Atoms node is the leaf of a quantifier tree: an ordered list of
// signed references into the registry, producing a single clause.
type Atoms struct {
	Items []Literal
}

// A Literal is one resolved atom template: a symbol application with a
// sign.
type Literal struct {
	Sym  *Symbol
	Args []string // argument names, resolved through the environment
	Neg  bool
	Src  string // original template text, for error reporting
}

func (*Forall) node() {}
func (*Exists) node() {}
func (*Atoms) node()  {}

func (x *Forall) Sub() Node { return x.Subtree }
func (x *Exists) Sub() Node { return x.Subtree }
func (*Atoms) Sub() Node    { return nil }

// Attach attaches sub directly below n. It fails with StructureError if
// n is an Atoms leaf or if a universal would end up below an
// existential.
func Attach(n, sub Node) errors.Error {
	switch x := n.(type) {
	case *Forall:
		x.Subtree = sub
	case *Exists:
		if _, ok := sub.(*Forall); ok {
			return errors.Newf(errors.StructureError,
				"cannot attach a universal below an existential; not a valid CNF")
		}
		x.Subtree = sub
	case *Atoms:
		return errors.Newf(errors.StructureError,
			"cannot attach a subtree to an atoms leaf")
	}
	return nil
}

// Chain attaches sub at the deepest non-leaf node of the chain starting
// at n. It fails with StructureError if the chain already terminates in
// an Atoms leaf or if the attachment would violate the CNF structure
// invariant.
func Chain(n, sub Node) errors.Error {
	for {
		next := n.Sub()
		if next == nil {
			return Attach(n, sub)
		}
		if _, ok := next.(*Atoms); ok {
			return errors.Newf(errors.StructureError,
				"cannot chain below a tree that already ends in an atoms leaf")
		}
		n = next
	}
}
