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
	"fmt"
	"strings"
)

// A Tuple is one element of a symbol's domain: an ordered sequence of
// opaque domain elements. Domains of arity 1 still use tuples of
// length 1.
type Tuple []interface{}

// Key returns a canonical representation of t usable as a map key.
// Elements of distinct dynamic types yield distinct keys.
func (t Tuple) Key() string {
	var b strings.Builder
	b.WriteString("(")
	for i, e := range t {
		if i > 0 {
			b.WriteString(",")
		}
		fmt.Fprintf(&b, "%T:%v", e, e)
	}
	b.WriteString(")")
	return b.String()
}

func (t Tuple) String() string {
	var b strings.Builder
	b.WriteString("(")
	for i, e := range t {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%v", e)
	}
	b.WriteString(")")
	return b.String()
}

// Equal reports whether t and u are elementwise equal.
func (t Tuple) Equal(u Tuple) bool {
	if len(t) != len(u) {
		return false
	}
	for i := range t {
		if t[i] != u[i] {
			return false
		}
	}
	return true
}

// sameElements reports whether t and u contain the same elements
// regardless of order, treating both as multi-sets.
func sameElements(t, u Tuple) bool {
	if len(t) != len(u) {
		return false
	}
	used := make([]bool, len(u))
outer:
	for _, e := range t {
		for i, f := range u {
			if !used[i] && e == f {
				used[i] = true
				continue outer
			}
		}
		return false
	}
	return true
}
