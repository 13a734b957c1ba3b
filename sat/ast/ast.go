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

// Package ast declares the syntax node for atom templates.
package ast // import "satexpander.org/go/sat/ast"

import "strings"

// An Atom is a possibly negated application of a named symbol to
// argument names, as written in an atom template such as "f(x,y)" or
// "-c". The symbol name is unresolved; resolution against a registry
// happens at compile time.
type Atom struct {
	Src  string   // original source text
	Name string   // symbol name, without the negation sign
	Args []string // argument names in positional order; nil for constants
	Neg  bool
}

// String renders the atom in canonical template form.
func (a *Atom) String() string {
	var b strings.Builder
	if a.Neg {
		b.WriteString("-")
	}
	b.WriteString(a.Name)
	if len(a.Args) > 0 {
		b.WriteString("(")
		b.WriteString(strings.Join(a.Args, ","))
		b.WriteString(")")
	}
	return b.String()
}
