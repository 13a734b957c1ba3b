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
	"testing"

	"satexpander.org/go/sat/errors"
)

func TestEnvironmentLookup(t *testing.T) {
	var env *Environment
	if _, ok := env.Lookup("x"); ok {
		t.Error("empty environment should have no bindings")
	}

	env, err := env.Extend([]string{"x", "y"}, Tuple{1, "a"})
	if err != nil {
		t.Fatal(err)
	}
	inner, err := env.Extend([]string{"z"}, Tuple{3})
	if err != nil {
		t.Fatal(err)
	}

	for _, tc := range []struct {
		name string
		want interface{}
	}{{"x", 1}, {"y", "a"}, {"z", 3}} {
		got, ok := inner.Lookup(tc.name)
		if !ok || got != tc.want {
			t.Errorf("Lookup(%q) = %v, %v; want %v, true", tc.name, got, ok, tc.want)
		}
	}

	// The outer environment is unaffected by the extension.
	if !inner.Has("z") {
		t.Error("inner environment lost its own binding")
	}
	if env.Has("z") {
		t.Error("extension mutated the parent environment")
	}
}

func TestEnvironmentShadowing(t *testing.T) {
	env, err := (*Environment)(nil).Extend([]string{"x"}, Tuple{1})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := env.Extend([]string{"x"}, Tuple{2}); !errors.Is(err, errors.ShadowError) {
		t.Errorf("rebinding x = %v; want a shadow error", err)
	}
	if _, err := env.Extend([]string{"y", "y"}, Tuple{1, 2}); !errors.Is(err, errors.ShadowError) {
		t.Errorf("binding y twice = %v; want a shadow error", err)
	}
}

func TestTupleEqual(t *testing.T) {
	testCases := []struct {
		a, b Tuple
		want bool
	}{
		{Tuple{1, 2}, Tuple{1, 2}, true},
		{Tuple{1, 2}, Tuple{2, 1}, false},
		{Tuple{1}, Tuple{1, 1}, false},
		{Tuple{"1"}, Tuple{1}, false},
		{Tuple{}, Tuple{}, true},
	}
	for _, tc := range testCases {
		if got := tc.a.Equal(tc.b); got != tc.want {
			t.Errorf("%v.Equal(%v) = %v; want %v", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestTupleKey(t *testing.T) {
	// Keys distinguish element types, not just their renderings.
	if (Tuple{1}).Key() == (Tuple{"1"}).Key() {
		t.Error("keys of int 1 and string \"1\" should differ")
	}
	if (Tuple{1, 2}).Key() == (Tuple{1, 2, 3}).Key() {
		t.Error("keys of different lengths should differ")
	}
	if (Tuple{1, 2}).Key() != (Tuple{1, 2}).Key() {
		t.Error("equal tuples should share a key")
	}
}

func TestSameElements(t *testing.T) {
	testCases := []struct {
		a, b Tuple
		want bool
	}{
		{Tuple{1, 2}, Tuple{2, 1}, true},
		{Tuple{1, 2, 2}, Tuple{2, 1, 2}, true},
		{Tuple{1, 1, 2}, Tuple{1, 2, 2}, false},
		{Tuple{1}, Tuple{1, 1}, false},
		{Tuple{}, Tuple{}, true},
	}
	for _, tc := range testCases {
		if got := sameElements(tc.a, tc.b); got != tc.want {
			t.Errorf("sameElements(%v, %v) = %v; want %v", tc.a, tc.b, got, tc.want)
		}
	}
}
