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

package parser

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"satexpander.org/go/sat/ast"
	"satexpander.org/go/sat/errors"
)

func TestParseAtom(t *testing.T) {
	testCases := []struct {
		src  string
		want *ast.Atom
	}{{
		src:  "f(x,y)",
		want: &ast.Atom{Name: "f", Args: []string{"x", "y"}},
	}, {
		src:  "-f(x,y)",
		want: &ast.Atom{Name: "f", Args: []string{"x", "y"}, Neg: true},
	}, {
		src:  "c",
		want: &ast.Atom{Name: "c"},
	}, {
		src:  "-c",
		want: &ast.Atom{Name: "c", Neg: true},
	}, {
		src:  " f ( x , y ) ",
		want: &ast.Atom{Name: "f", Args: []string{"x", "y"}},
	}, {
		src:  "f()",
		want: &ast.Atom{Name: "f"},
	}, {
		src:  "p(u,w)",
		want: &ast.Atom{Name: "p", Args: []string{"u", "w"}},
	}}
	for _, tc := range testCases {
		t.Run(tc.src, func(t *testing.T) {
			got, err := ParseAtom(tc.src)
			if err != nil {
				t.Fatal(err)
			}
			tc.want.Src = tc.src
			if !cmp.Equal(got, tc.want) {
				t.Error(cmp.Diff(got, tc.want))
			}
		})
	}
}

func TestParseAtomErrors(t *testing.T) {
	testCases := []string{
		"f(x",
		"f(x))",
		"f(x)y",
		"fx)",
		"f((x)",
		"f)x(",
		"f(x,)",
		"f(,x)",
		"-",
		"",
		"(x)",
	}
	for _, src := range testCases {
		t.Run(src, func(t *testing.T) {
			_, err := ParseAtom(src)
			if err == nil {
				t.Fatalf("ParseAtom(%q) succeeded; want parse error", src)
			}
			if !errors.Is(err, errors.ParseError) {
				t.Errorf("ParseAtom(%q) = %v; want a parse error", src, err)
			}
		})
	}
}
