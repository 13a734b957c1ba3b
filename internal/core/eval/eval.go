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

// Package eval expands a quantifier tree against a binding environment
// into a ground CNF.
//
// Clause order follows the outermost-first lexicographic traversal of
// the tree; literal order within a clause follows the textual order of
// the atoms list. Given identical inputs the expansion is
// deterministic.
package eval

import (
	"satexpander.org/go/internal/core/adt"
	"satexpander.org/go/sat/cnf"
	"satexpander.org/go/sat/errors"
)

// Evaluate expands the tree rooted at n under env. A nil env is the
// empty environment used at the root.
func Evaluate(n adt.Node, env *adt.Environment) (cnf.CNF, errors.Error) {
	switch x := n.(type) {
	case *adt.Atoms:
		return evalAtoms(x, env)
	case *adt.Forall:
		return evalForall(x, env)
	case *adt.Exists:
		return evalExists(x, env)
	case nil:
		return nil, errors.Newf(errors.StructureError,
			"cannot evaluate an empty quantifier tree")
	}
	return nil, errors.Newf(errors.StructureError, "unknown node type %T", n)
}

func evalAtoms(x *adt.Atoms, env *adt.Environment) (cnf.CNF, errors.Error) {
	clause := make(cnf.Clause, 0, len(x.Items))
	for _, item := range x.Items {
		id, err := item.Sym.Lookup(item.Args, env)
		if err != nil {
			return nil, err
		}
		if item.Neg {
			id = -id
		}
		clause = append(clause, id)
	}
	return cnf.CNF{clause}, nil
}

// bind extends env with one candidate binding and applies the exclusion
// predicate. Predicates run after the extension so they can reference
// the current binding. keep reports whether the binding survives.
func bind(env *adt.Environment, vars []string, value adt.Tuple, exclude adt.Predicate) (sub *adt.Environment, keep bool, err errors.Error) {
	if len(value) != len(vars) {
		return nil, false, errors.Newf(errors.ArityMismatch,
			"the length of value %v does not match the variables %v", value, vars)
	}
	sub, err = env.Extend(vars, value)
	if err != nil {
		return nil, false, err
	}
	if exclude != nil {
		keep, err := exclude(sub, value)
		if err != nil || !keep {
			return nil, false, err
		}
	}
	return sub, true, nil
}

func evalForall(x *adt.Forall, env *adt.Environment) (cnf.CNF, errors.Error) {
	var res cnf.CNF
	for _, value := range x.Values {
		sub, keep, err := bind(env, x.Vars, value, x.Exclude)
		if err != nil {
			return nil, err
		}
		if !keep {
			continue
		}
		part, err := Evaluate(x.Subtree, sub)
		if err != nil {
			return nil, err
		}
		res = append(res, part...)
	}
	return res, nil
}

func evalExists(x *adt.Exists, env *adt.Environment) (cnf.CNF, errors.Error) {
	var clause cnf.Clause
	for _, value := range x.Values {
		sub, keep, err := bind(env, x.Vars, value, x.Exclude)
		if err != nil {
			return nil, err
		}
		if !keep {
			continue
		}
		part, err := Evaluate(x.Subtree, sub)
		if err != nil {
			return nil, err
		}
		if len(part) != 1 {
			return nil, errors.Newf(errors.StructureError,
				"an existential can only expand a subtree of exactly one clause; got %d", len(part))
		}
		clause = append(clause, part[0]...)
	}
	return cnf.CNF{clause}, nil
}
