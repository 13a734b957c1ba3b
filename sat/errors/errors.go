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

// Package errors defines shared types for handling expansion errors.
//
// All errors produced while registering symbols, parsing atoms, building
// quantifier trees, or expanding them into a CNF carry a Kind. The Kind
// classifies the failure structurally; it is the only aspect of an error
// that may influence control flow.
package errors // import "satexpander.org/go/sat/errors"

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/xerrors"
)

// A Kind indicates the type of error.
type Kind int

const (
	// Unclassified is the zero Kind. It marks plain Go errors converted by
	// Promote, which carry no structural classification.
	Unclassified Kind = iota

	// DuplicateName indicates re-registering an already registered
	// symbol name.
	DuplicateName

	// ArityMismatch indicates a domain element or argument tuple of the
	// wrong length.
	ArityMismatch

	// DomainError indicates evaluating a symbol on a tuple outside its
	// domain.
	DomainError

	// FrozenError indicates mutating a symbol after it has been
	// evaluated.
	FrozenError

	// ParseError indicates a malformed atom string.
	ParseError

	// UnknownSymbol indicates an atom referencing an unregistered name.
	UnknownSymbol

	// StructureError indicates an operation that would produce an
	// invalid CNF: a universal below an existential, attaching to an
	// atoms leaf, or an existential over a multi-clause subtree.
	StructureError

	// ShadowError indicates a context extension colliding with an
	// existing binding.
	ShadowError

	// MissingBinding indicates a lookup of a variable that is absent
	// from the context.
	MissingBinding
)

func (k Kind) String() string {
	switch k {
	case DuplicateName:
		return "duplicate name"
	case ArityMismatch:
		return "arity mismatch"
	case DomainError:
		return "domain error"
	case FrozenError:
		return "frozen symbol"
	case ParseError:
		return "parse error"
	case UnknownSymbol:
		return "unknown symbol"
	case StructureError:
		return "structure error"
	case ShadowError:
		return "shadowed binding"
	case MissingBinding:
		return "missing binding"
	}
	return "unclassified"
}

// A Message implements the error interface as well as Msg. It may be
// embedded in other error types to defer formatting to callers.
type Message struct {
	format string
	args   []interface{}
}

// NewMessage creates an error message for human consumption. The arguments
// are for later consumption, allowing the message to be localized at a
// later time.
func NewMessage(format string, args []interface{}) Message {
	return Message{format: format, args: args}
}

// Msg returns a printf-style format string and its arguments for human
// consumption.
func (m *Message) Msg() (format string, args []interface{}) {
	return m.format, m.args
}

func (m *Message) Error() string {
	return fmt.Sprintf(m.format, m.args...)
}

// Error is the common error type of this module. It gives access to the
// structural Kind of the failure and to an unformatted message.
type Error interface {
	error

	// Kind reports the structural classification of the error.
	Kind() Kind

	// Msg returns the unformatted error message and its arguments.
	Msg() (format string, args []interface{})
}

var _ Error = &kindError{}

type kindError struct {
	kind Kind
	Message

	// err is the error this error wraps, if any.
	err error
}

func (e *kindError) Kind() Kind    { return e.kind }
func (e *kindError) Unwrap() error { return e.err }

func (e *kindError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %v", e.Message.Error(), e.err)
	}
	return e.Message.Error()
}

// Newf creates an Error of the given Kind with a message formatted
// according to a format specifier.
func Newf(k Kind, format string, args ...interface{}) Error {
	return &kindError{
		kind:    k,
		Message: NewMessage(format, args),
	}
}

// Wrapf creates an Error of the given Kind wrapping another error. The
// wrapped error remains reachable through xerrors.Is and xerrors.As.
func Wrapf(err error, k Kind, format string, args ...interface{}) Error {
	return &kindError{
		kind:    k,
		Message: NewMessage(format, args),
		err:     err,
	}
}

// Promote converts a regular Go error to an Error if it is not already
// one, attaching the given message.
func Promote(err error, msg string) Error {
	switch x := err.(type) {
	case nil:
		return nil
	case Error:
		return x
	default:
		return Wrapf(err, Unclassified, "%s", msg)
	}
}

// Is reports whether err or any error it wraps is an Error of the given
// Kind.
func Is(err error, k Kind) bool {
	for err != nil {
		if e, ok := err.(Error); ok && e.Kind() == k {
			return true
		}
		err = xerrors.Unwrap(err)
	}
	return false
}

// Append combines two errors, flattening lists as necessary. Either
// argument may be nil.
func Append(a, b Error) Error {
	switch x := a.(type) {
	case nil:
		return b
	case list:
		return x.append(b)
	default:
		if b == nil {
			return a
		}
		return list{a}.append(b)
	}
}

// Errors reports the individual errors recorded in err, unwrapping lists
// produced by Append. A nil error yields nil.
func Errors(err error) []Error {
	switch x := err.(type) {
	case nil:
		return nil
	case list:
		return x
	case Error:
		return []Error{x}
	default:
		return []Error{Promote(err, "")}
	}
}

// list is a sequence of errors presented as a single Error. Its Kind is
// the Kind of its first element.
type list []Error

func (l list) append(err Error) list {
	switch x := err.(type) {
	case nil:
		return l
	case list:
		return append(l, x...)
	default:
		return append(l, err)
	}
}

func (l list) Kind() Kind {
	if len(l) == 0 {
		return Unclassified
	}
	return l[0].Kind()
}

func (l list) Msg() (format string, args []interface{}) {
	if len(l) == 0 {
		return "", nil
	}
	return l[0].Msg()
}

func (l list) Error() string {
	switch len(l) {
	case 0:
		return "no errors"
	case 1:
		return l[0].Error()
	}
	var b strings.Builder
	for i, e := range l {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(e.Error())
	}
	return b.String()
}

// Print writes the individual errors recorded in err to w, one per line,
// prefixed with their kind when classified.
func Print(w io.Writer, err error) {
	for _, e := range Errors(err) {
		if e.Kind() == Unclassified {
			fmt.Fprintf(w, "%s\n", e.Error())
			continue
		}
		fmt.Fprintf(w, "%s: %s\n", e.Kind(), e.Error())
	}
}
