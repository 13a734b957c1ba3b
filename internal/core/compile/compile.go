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

// Package compile resolves parsed atom templates against a symbol scope
// into evaluable leaves. Resolution happens when the Atoms node is
// built, not during expansion, moving user errors forward.
package compile

import (
	"satexpander.org/go/internal/core/adt"
	"satexpander.org/go/sat/ast"
	"satexpander.org/go/sat/errors"
	"satexpander.org/go/sat/parser"
)

// A Scope resolves symbol names. It is implemented by the runtime
// registry and by explicit symbol lists.
type Scope interface {
	LookupSymbol(name string) *adt.Symbol
}

// Atoms parses and resolves the given atom templates into an Atoms
// leaf. Each template must name a registered symbol and match its
// arity.
func Atoms(scope Scope, exprs ...string) (*adt.Atoms, errors.Error) {
	items := make([]adt.Literal, 0, len(exprs))
	var errs errors.Error
	for _, expr := range exprs {
		lit, err := Resolve(scope, expr)
		if err != nil {
			errs = errors.Append(errs, err)
			continue
		}
		items = append(items, lit)
	}
	if errs != nil {
		return nil, errs
	}
	return &adt.Atoms{Items: items}, nil
}

// Resolve parses a single atom template and resolves it in scope.
func Resolve(scope Scope, expr string) (adt.Literal, errors.Error) {
	a, err := parser.ParseAtom(expr)
	if err != nil {
		return adt.Literal{}, err
	}
	return resolve(scope, a)
}

func resolve(scope Scope, a *ast.Atom) (adt.Literal, errors.Error) {
	sym := scope.LookupSymbol(a.Name)
	if sym == nil {
		return adt.Literal{}, errors.Newf(errors.UnknownSymbol,
			"the symbol %q from expression %q is not in scope", a.Name, a.Src)
	}
	if sym.Arity != len(a.Args) {
		return adt.Literal{}, errors.Newf(errors.ArityMismatch,
			"the symbol %q needs %d arguments but %d were given in expression %q",
			a.Name, sym.Arity, len(a.Args), a.Src)
	}
	return adt.Literal{Sym: sym, Args: a.Args, Neg: a.Neg, Src: a.Src}, nil
}
