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

package errors

import (
	"fmt"
	"strings"
	"testing"

	"golang.org/x/xerrors"
)

func TestNewf(t *testing.T) {
	err := Newf(ParseError, "cannot parse %q", "f(x")
	if got, want := err.Error(), `cannot parse "f(x"`; got != want {
		t.Errorf("Error() = %q; want %q", got, want)
	}
	if err.Kind() != ParseError {
		t.Errorf("Kind() = %v; want %v", err.Kind(), ParseError)
	}
	format, args := err.Msg()
	if format != "cannot parse %q" || len(args) != 1 {
		t.Errorf("Msg() = %q, %v", format, args)
	}
}

func TestIs(t *testing.T) {
	base := Newf(DomainError, "not in domain")
	wrapped := Wrapf(base, StructureError, "while expanding")
	testCases := []struct {
		err  error
		kind Kind
		want bool
	}{
		{base, DomainError, true},
		{base, ParseError, false},
		{wrapped, StructureError, true},
		{wrapped, DomainError, true},
		{wrapped, FrozenError, false},
		{nil, DomainError, false},
	}
	for i, tc := range testCases {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			if got := Is(tc.err, tc.kind); got != tc.want {
				t.Errorf("Is(%v, %v) = %v; want %v", tc.err, tc.kind, got, tc.want)
			}
		})
	}
}

func TestWrapfUnwrap(t *testing.T) {
	sentinel := fmt.Errorf("io trouble")
	err := Wrapf(sentinel, Unclassified, "reading problem file")
	if !xerrors.Is(err, sentinel) {
		t.Error("wrapped error not reachable through xerrors.Is")
	}
}

func TestAppend(t *testing.T) {
	a := Newf(ParseError, "first")
	b := Newf(ArityMismatch, "second")
	c := Newf(UnknownSymbol, "third")

	if got := Append(nil, a); got != a {
		t.Errorf("Append(nil, a) = %v; want a", got)
	}
	if got := Append(a, nil); got != a {
		t.Errorf("Append(a, nil) = %v; want a", got)
	}

	all := Append(Append(a, b), c)
	errs := Errors(all)
	if len(errs) != 3 {
		t.Fatalf("got %d errors; want 3", len(errs))
	}
	if all.Kind() != ParseError {
		t.Errorf("list Kind() = %v; want the first error's kind", all.Kind())
	}
	if got := all.Error(); !strings.Contains(got, "second") {
		t.Errorf("list Error() = %q; want it to mention all errors", got)
	}
}

func TestPromote(t *testing.T) {
	e := Newf(ShadowError, "overlap")
	if got := Promote(e, "ignored"); got != e {
		t.Error("Promote should pass through module errors")
	}
	if got := Promote(nil, "x"); got != nil {
		t.Errorf("Promote(nil) = %v; want nil", got)
	}
	plain := fmt.Errorf("plain")
	got := Promote(plain, "context")
	if got.Kind() != Unclassified {
		t.Errorf("promoted Kind() = %v; want Unclassified", got.Kind())
	}
	if !xerrors.Is(got, plain) {
		t.Error("promoted error should wrap the original")
	}
}
