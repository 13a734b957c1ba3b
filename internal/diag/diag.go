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

// Package diag routes non-fatal diagnostics emitted while building and
// expanding formulas. Warnings never abort an expansion; they are
// delivered to a Sink chosen by the caller.
package diag

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// A Sink receives non-fatal diagnostics.
type Sink interface {
	Warnf(format string, args ...interface{})
}

// Default is the sink used when no explicit sink is configured.
// It writes to stderr.
var Default Sink = NewWriterSink(os.Stderr)

// NewWriterSink returns a Sink writing one line per diagnostic to w.
func NewWriterSink(w io.Writer) Sink {
	return &writerSink{w: w}
}

type writerSink struct {
	mu sync.Mutex
	w  io.Writer
}

func (s *writerSink) Warnf(format string, args ...interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintf(s.w, "warning: "+format+"\n", args...)
}

// Warnf sends a diagnostic to s, falling back to Default if s is nil.
func Warnf(s Sink, format string, args ...interface{}) {
	if s == nil {
		s = Default
	}
	s.Warnf(format, args...)
}

// A Capture is a Sink recording diagnostics for inspection in tests.
type Capture struct {
	mu   sync.Mutex
	msgs []string
}

func (c *Capture) Warnf(format string, args ...interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.msgs = append(c.msgs, fmt.Sprintf(format, args...))
}

// Messages returns the diagnostics recorded so far.
func (c *Capture) Messages() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.msgs...)
}
