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

import "satexpander.org/go/internal/core/adt"

// A Tuple is one element of a symbol's domain. Domains of arity 1 still
// use tuples of length 1; see Tuples for lifting plain values.
type Tuple = adt.Tuple

// Tuples lifts plain values into the arity-1 tuple form required for
// domains and quantifier value lists.
func Tuples(elems ...interface{}) []Tuple {
	res := make([]Tuple, len(elems))
	for i, e := range elems {
		res[i] = Tuple{e}
	}
	return res
}

// Product returns the cross product of the given sets as tuples in
// lexicographic order of the set iteration orders.
func Product(sets ...[]interface{}) []Tuple {
	if len(sets) == 0 {
		return nil
	}
	res := []Tuple{{}}
	for _, set := range sets {
		next := make([]Tuple, 0, len(res)*len(set))
		for _, t := range res {
			for _, e := range set {
				u := make(Tuple, len(t), len(t)+1)
				copy(u, t)
				next = append(next, append(u, e))
			}
		}
		res = next
	}
	return res
}
