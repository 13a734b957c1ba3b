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

// Package cnf defines the ground conjunctive normal form produced by
// expansion and its DIMACS text rendering.
//
// A CNF is an ordered list of clauses; a clause is an ordered list of
// signed, non-zero literals. A positive literal n stands for the
// propositional variable n, a negative literal -n for its negation.
// Zero never occurs inside a clause; DIMACS reserves it as the clause
// terminator.
package cnf // import "satexpander.org/go/sat/cnf"

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mpvl/unique"
)

// A Clause is a disjunction of literals.
type Clause []int

// A CNF is a conjunction of clauses.
type CNF []Clause

// Join concatenates the clause lists of a and b into a new CNF. Neither
// argument is modified, and the clauses are copied, so the result shares
// no storage with a or b.
func Join(a, b CNF) CNF {
	res := make(CNF, 0, len(a)+len(b))
	for _, c := range [...]CNF{a, b} {
		for _, cl := range c {
			if cl != nil {
				cl = append(make(Clause, 0, len(cl)), cl...)
			}
			res = append(res, cl)
		}
	}
	return res
}

// MaxVar reports the largest variable identifier occurring in c, or 0 if
// c contains no literals.
func (c CNF) MaxVar() int {
	max := 0
	for _, cl := range c {
		for _, lit := range cl {
			if lit < 0 {
				lit = -lit
			}
			if lit > max {
				max = lit
			}
		}
	}
	return max
}

// NumVars reports the number of distinct variables occurring in c.
func (c CNF) NumVars() int {
	var vars []int
	for _, cl := range c {
		for _, lit := range cl {
			if lit < 0 {
				lit = -lit
			}
			vars = append(vars, lit)
		}
	}
	unique.Ints(&vars)
	return len(vars)
}

// Write renders c in DIMACS form to w. A non-empty header is emitted
// first, each of its lines (empty ones included) as a "c " comment line;
// trailing newlines of header are dropped.
func Write(w io.Writer, c CNF, header string) error {
	if header != "" {
		for _, line := range strings.Split(strings.TrimRight(header, "\n"), "\n") {
			if _, err := fmt.Fprintf(w, "c %s\n", line); err != nil {
				return err
			}
		}
	}
	if _, err := fmt.Fprintf(w, "p cnf %d %d\n", c.MaxVar(), len(c)); err != nil {
		return err
	}
	var b strings.Builder
	for _, cl := range c {
		b.Reset()
		for _, lit := range cl {
			b.WriteString(strconv.Itoa(lit))
			b.WriteString(" ")
		}
		b.WriteString("0\n")
		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}
	}
	return nil
}

// Dimacs renders c in DIMACS form as a string. See Write.
func (c CNF) Dimacs(header string) string {
	var b strings.Builder
	Write(&b, c, header) // a Builder never fails
	return b.String()
}
