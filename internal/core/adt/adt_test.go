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

func TestChain(t *testing.T) {
	a := &Forall{Vars: []string{"x"}}
	b := &Forall{Vars: []string{"y"}}
	leaf := &Atoms{}

	if err := Chain(a, b); err != nil {
		t.Fatal(err)
	}
	if err := Chain(a, leaf); err != nil {
		t.Fatal(err)
	}
	if a.Subtree != b || b.Subtree != Node(leaf) {
		t.Error("chain did not attach at the deepest non-leaf node")
	}
	if err := Chain(a, &Exists{}); !errors.Is(err, errors.StructureError) {
		t.Errorf("chaining below a leaf = %v; want a structure error", err)
	}
}

func TestChainForallBelowExists(t *testing.T) {
	ex := &Exists{Vars: []string{"y"}}
	if err := Chain(ex, &Forall{Vars: []string{"x"}}); !errors.Is(err, errors.StructureError) {
		t.Errorf("got %v; want a structure error", err)
	}
	// The rule also holds deeper in the chain.
	root := &Forall{Vars: []string{"x"}}
	if err := Chain(root, &Exists{Vars: []string{"y"}}); err != nil {
		t.Fatal(err)
	}
	if err := Chain(root, &Forall{Vars: []string{"z"}}); !errors.Is(err, errors.StructureError) {
		t.Errorf("got %v; want a structure error", err)
	}
}

func TestAttachToAtoms(t *testing.T) {
	if err := Attach(&Atoms{}, &Forall{}); !errors.Is(err, errors.StructureError) {
		t.Errorf("got %v; want a structure error", err)
	}
}
