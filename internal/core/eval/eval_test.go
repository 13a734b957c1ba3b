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

package eval

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"satexpander.org/go/internal/core/adt"
	"satexpander.org/go/internal/core/compile"
	"satexpander.org/go/internal/core/runtime"
	"satexpander.org/go/sat/cnf"
	"satexpander.org/go/sat/errors"
)

func product(elems ...interface{}) []adt.Tuple {
	var res []adt.Tuple
	for _, a := range elems {
		for _, b := range elems {
			res = append(res, adt.Tuple{a, b})
		}
	}
	return res
}

func singles(elems ...interface{}) []adt.Tuple {
	res := make([]adt.Tuple, len(elems))
	for i, e := range elems {
		res[i] = adt.Tuple{e}
	}
	return res
}

func atoms(t *testing.T, r *runtime.Runtime, exprs ...string) *adt.Atoms {
	t.Helper()
	n, err := compile.Atoms(r, exprs...)
	if err != nil {
		t.Fatal(err)
	}
	return n
}

func TestForallExists(t *testing.T) {
	r := runtime.New()
	if _, err := r.Build("f", 2, product(1, 2, 3)); err != nil {
		t.Fatal(err)
	}
	tree := &adt.Forall{
		Vars:   []string{"x"},
		Values: singles(1, 2, 3),
		Subtree: &adt.Exists{
			Vars:    []string{"y"},
			Values:  singles(1, 2, 3),
			Subtree: atoms(t, r, "f(x, y)"),
		},
	}
	got, err := Evaluate(tree, nil)
	if err != nil {
		t.Fatal(err)
	}
	want := cnf.CNF{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}
	if !cmp.Equal(got, want) {
		t.Error(cmp.Diff(got, want))
	}
}

func TestConstantAtoms(t *testing.T) {
	r := runtime.New()
	if _, err := r.AddConstant("n"); err != nil {
		t.Fatal(err)
	}
	if _, err := r.Build("f", 1, singles("hi", "bye")); err != nil {
		t.Fatal(err)
	}

	forall := &adt.Forall{
		Vars:    []string{"x"},
		Values:  singles("hi", "bye"),
		Subtree: atoms(t, r, "-n", "f(x)"),
	}
	got, err := Evaluate(forall, nil)
	if err != nil {
		t.Fatal(err)
	}
	want := cnf.CNF{{-1, 2}, {-1, 3}}
	if !cmp.Equal(got, want) {
		t.Error(cmp.Diff(got, want))
	}

	exists := &adt.Exists{
		Vars:    []string{"y"},
		Values:  singles("hi", "bye"),
		Subtree: atoms(t, r, "n", "-f(y)"),
	}
	got, err = Evaluate(exists, nil)
	if err != nil {
		t.Fatal(err)
	}
	want = cnf.CNF{{1, -2, 1, -3}}
	if !cmp.Equal(got, want) {
		t.Error(cmp.Diff(got, want))
	}
}

func TestExclusionPredicate(t *testing.T) {
	r := runtime.New()
	if _, err := r.AddConstant("n"); err != nil {
		t.Fatal(err)
	}
	if _, err := r.Build("f", 2, product(1, 2, 3)); err != nil {
		t.Fatal(err)
	}

	offDiagonal := func(env *adt.Environment, value adt.Tuple) (bool, errors.Error) {
		x, _ := env.Lookup("x")
		y, _ := env.Lookup("y")
		return x != y, nil
	}
	tree := &adt.Forall{
		Vars:    []string{"x", "y"},
		Values:  product(1, 2, 3),
		Exclude: offDiagonal,
		Subtree: atoms(t, r, "n", "f(x,y)"),
	}
	got, err := Evaluate(tree, nil)
	if err != nil {
		t.Fatal(err)
	}
	// f's block starts at 2; the diagonal pairs (1,1), (2,2), (3,3) are
	// skipped.
	want := cnf.CNF{{1, 3}, {1, 4}, {1, 5}, {1, 7}, {1, 8}, {1, 9}}
	if !cmp.Equal(got, want) {
		t.Error(cmp.Diff(got, want))
	}
}

func TestValueArityMismatch(t *testing.T) {
	r := runtime.New()
	r.Build("f", 1, singles(1))
	tree := &adt.Forall{
		Vars:    []string{"x"},
		Values:  []adt.Tuple{{1, 2}},
		Subtree: atoms(t, r, "f(x)"),
	}
	_, err := Evaluate(tree, nil)
	if !errors.Is(err, errors.ArityMismatch) {
		t.Errorf("got %v; want an arity error", err)
	}
}

func TestExistsRequiresSingleClause(t *testing.T) {
	r := runtime.New()
	r.Build("f", 1, singles(1, 2))
	// Built by hand; Chain would already reject this shape.
	tree := &adt.Exists{
		Vars:   []string{"x"},
		Values: singles(1),
		Subtree: &adt.Forall{
			Vars:    []string{"y"},
			Values:  singles(1, 2),
			Subtree: atoms(t, r, "f(y)"),
		},
	}
	_, err := Evaluate(tree, nil)
	if !errors.Is(err, errors.StructureError) {
		t.Errorf("got %v; want a structure error", err)
	}
}

func TestNestedShadowing(t *testing.T) {
	r := runtime.New()
	r.Build("f", 1, singles(1))
	tree := &adt.Forall{
		Vars:   []string{"x"},
		Values: singles(1),
		Subtree: &adt.Forall{
			Vars:    []string{"x"},
			Values:  singles(1),
			Subtree: atoms(t, r, "f(x)"),
		},
	}
	_, err := Evaluate(tree, nil)
	if !errors.Is(err, errors.ShadowError) {
		t.Errorf("got %v; want a shadow error", err)
	}
}

func TestEvaluateEmptyTree(t *testing.T) {
	_, err := Evaluate(nil, nil)
	if !errors.Is(err, errors.StructureError) {
		t.Errorf("got %v; want a structure error", err)
	}
	tree := &adt.Forall{Vars: []string{"x"}, Values: singles(1)}
	_, err = Evaluate(tree, nil)
	if !errors.Is(err, errors.StructureError) {
		t.Errorf("quantifier without subtree = %v; want a structure error", err)
	}
}

func TestUnknownSymbolAndArity(t *testing.T) {
	r := runtime.New()
	r.Build("f", 1, singles(1))

	_, err := compile.Atoms(r, "g(a)")
	if !errors.Is(err, errors.UnknownSymbol) {
		t.Errorf("got %v; want an unknown symbol error", err)
	}
	_, err = compile.Atoms(r, "f(a,b)")
	if !errors.Is(err, errors.ArityMismatch) {
		t.Errorf("got %v; want an arity error", err)
	}
}
