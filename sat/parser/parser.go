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

// Package parser parses atom templates of the form "f(x,y)", "-f(x,y)",
// "c", or "-c" into syntax nodes.
package parser // import "satexpander.org/go/sat/parser"

import (
	"strings"
	"unicode"

	"satexpander.org/go/sat/ast"
	"satexpander.org/go/sat/errors"
)

// ParseAtom parses a single atom template. Whitespace is stripped
// everywhere before parsing. Symbol names are not resolved; see the
// compile package for resolution and arity checking.
func ParseAtom(src string) (*ast.Atom, errors.Error) {
	s := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, src)

	opens := strings.Count(s, "(")
	closes := strings.Count(s, ")")
	switch {
	case opens > 1 || closes > 1:
		return nil, parseErrf(src, "too many parentheses")
	case opens != closes:
		return nil, parseErrf(src, "unbalanced parentheses")
	case closes == 1 && !strings.HasSuffix(s, ")"):
		return nil, parseErrf(src, "text after closing parenthesis")
	case opens == 1 && strings.Index(s, "(") > strings.Index(s, ")"):
		return nil, parseErrf(src, "closing parenthesis before opening one")
	}

	a := &ast.Atom{Src: src}
	name := s
	if opens == 1 {
		i := strings.Index(s, "(")
		name = s[:i]
		if inner := s[i+1 : len(s)-1]; inner != "" {
			a.Args = strings.Split(inner, ",")
			for _, arg := range a.Args {
				if arg == "" {
					return nil, parseErrf(src, "empty argument name")
				}
			}
		}
	}
	if strings.HasPrefix(name, "-") {
		a.Neg = true
		name = name[1:]
	}
	if name == "" {
		return nil, parseErrf(src, "missing symbol name")
	}
	a.Name = name
	return a, nil
}

func parseErrf(src, reason string) errors.Error {
	return errors.Newf(errors.ParseError,
		"cannot parse expression %q (%s); it needs to follow the form 'f(x,y)' or 'c'",
		src, reason)
}
