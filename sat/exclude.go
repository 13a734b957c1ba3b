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
	"satexpander.org/go/internal/diag"
	"satexpander.org/go/sat/errors"
)

// A Context is the immutable set of variable bindings visible to an
// exclusion predicate: the bindings of all enclosing quantifier levels
// plus the candidate binding under consideration.
type Context struct {
	env *adt.Environment
}

// Get reports the value bound to name. It fails with a MissingBinding
// error if name is not bound.
func (c Context) Get(name string) (interface{}, error) {
	v, ok := c.env.Lookup(name)
	if !ok {
		return nil, errors.Newf(errors.MissingBinding,
			"the argument %q does not exist in the context", name)
	}
	return v, nil
}

// Has reports whether name is bound.
func (c Context) Has(name string) bool { return c.env.Has(name) }

// A Predicate decides whether a candidate binding is kept during
// expansion. It runs after the context has been extended with the
// binding, so it can reference the current variables. Returning true
// keeps the binding.
type Predicate func(ctx Context, value Tuple) (bool, error)

// OnMissing selects the policy of RequireVars when a required variable
// is absent from the context.
type OnMissing int

const (
	// MissingError fails the expansion with a MissingBinding error.
	MissingError OnMissing = iota

	// MissingWarn emits a diagnostic and keeps the binding.
	MissingWarn

	// MissingIgnore silently keeps the binding.
	MissingIgnore
)

// RequireVars wraps a predicate with its capability contract: the
// variables it depends on and the policy when one of them is missing
// from the context. Under the Warn and Ignore policies the wrapped
// predicate is treated as vacuously true for bindings whose context
// lacks a required variable.
func RequireVars(p Predicate, policy OnMissing, vars ...string) Predicate {
	return func(ctx Context, value Tuple) (bool, error) {
		var missing []string
		for _, v := range vars {
			if !ctx.Has(v) {
				missing = append(missing, v)
			}
		}
		if len(missing) > 0 {
			switch policy {
			case MissingError:
				return false, errors.Newf(errors.MissingBinding,
					"the variables %v are not in the context", missing)
			case MissingWarn:
				diag.Warnf(nil, "the variables %v are not in the context; keeping the binding", missing)
			}
			return true, nil
		}
		return p(ctx, value)
	}
}

// ExcludeValue returns a predicate keeping a candidate value iff it
// differs from the current binding of name, as in
//
//	Forall x in V . Exists y in V\{x} . ...
//
// A missing binding for name warns and keeps the candidate.
func ExcludeValue(name string) Predicate {
	p := func(ctx Context, value Tuple) (bool, error) {
		v, err := ctx.Get(name)
		if err != nil {
			return false, err
		}
		return !value.Equal(Tuple{v}), nil
	}
	return RequireVars(p, MissingWarn, name)
}

// ExcludeTuple returns a predicate keeping a candidate value iff it
// differs from the tuple formed by the current bindings of names, as in
//
//	Forall x in V . Forall y in U . Exists z in VxU \ {(x,y)} . ...
//
// Missing bindings warn and keep the candidate.
func ExcludeTuple(names ...string) Predicate {
	p := func(ctx Context, value Tuple) (bool, error) {
		t := make(Tuple, len(names))
		for i, name := range names {
			v, err := ctx.Get(name)
			if err != nil {
				return false, err
			}
			t[i] = v
		}
		return !value.Equal(t), nil
	}
	return RequireVars(p, MissingWarn, names...)
}

// compilePredicates lowers public predicates into the form the
// evaluator consumes. Multiple predicates combine conjunctively.
func compilePredicates(ps []Predicate) adt.Predicate {
	if len(ps) == 0 {
		return nil
	}
	return func(env *adt.Environment, value adt.Tuple) (bool, errors.Error) {
		ctx := Context{env: env}
		for _, p := range ps {
			keep, err := p(ctx, value)
			if err != nil {
				return false, errors.Promote(err, "exclusion predicate")
			}
			if !keep {
				return false, nil
			}
		}
		return true, nil
	}
}
