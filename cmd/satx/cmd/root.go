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

package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"satexpander.org/go/internal/diag"
	"satexpander.org/go/sat/errors"
)

type runFunction func(cmd *Command, args []string) error

func mkRunE(c *Command, f runFunction) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		c.Command = cmd
		err := f(c, args)
		if err != nil && err != ErrPrintedError {
			errors.Print(c.Stderr(), err)
			err = ErrPrintedError
		}
		return err
	}
}

// newRootCmd creates the base command when called without any subcommands.
func newRootCmd() *Command {
	cmd := &cobra.Command{
		Use:   "satx",
		Short: "satx expands quantified boolean formulas into DIMACS CNF",
		Long: `satx converts a finitely-quantified description of a propositional
constraint into a ground CNF formula suitable for a SAT solver.

A problem file declares function symbols over finite domains and
composes universal and existential quantifiers over those domains with
clause templates written as signed atoms. satx expands the quantifier
trees and emits the resulting formula as DIMACS text.`,

		SilenceUsage:  true,
		SilenceErrors: true,
	}

	c := &Command{Command: cmd, root: cmd}

	subCommands := []*cobra.Command{
		newExpandCmd(c),
		newVersionCmd(c),
	}

	addGlobalFlags(cmd.PersistentFlags(), c)

	for _, sub := range subCommands {
		cmd.AddCommand(sub)
	}

	return c
}

// A Command wraps the currently active cobra command with the state
// shared between subcommands.
type Command struct {
	*cobra.Command

	root *cobra.Command

	verbose bool
	log     *zap.SugaredLogger
}

// Stderr returns the writer to use for error messages.
func (c *Command) Stderr() io.Writer {
	return c.Command.OutOrStderr()
}

// Logger returns the diagnostics logger, building it on first use. With
// --verbose it logs to stderr; otherwise it discards everything.
func (c *Command) Logger() *zap.SugaredLogger {
	if c.log == nil {
		if c.verbose {
			cfg := zap.NewDevelopmentConfig()
			cfg.DisableStacktrace = true
			l, err := cfg.Build()
			if err != nil {
				panic(err)
			}
			c.log = l.Sugar()
		} else {
			c.log = zap.NewNop().Sugar()
		}
	}
	return c.log
}

// Sink returns the diagnostic sink for registry warnings, backed by the
// command's logger.
func (c *Command) Sink() diag.Sink {
	return zapSink{c.Logger()}
}

type zapSink struct{ l *zap.SugaredLogger }

func (s zapSink) Warnf(format string, args ...interface{}) {
	s.l.Warnf(format, args...)
}

// ErrPrintedError indicates error messages have been printed to stderr.
var ErrPrintedError = errors.Newf(errors.Unclassified, "terminating because of errors")

// New creates the command tree for the given command-line arguments.
func New(args []string) (*Command, error) {
	cmd := newRootCmd()
	cmd.root.SetArgs(args)
	return cmd, nil
}

// Run executes the selected subcommand.
func (c *Command) Run() error {
	defer func() {
		if c.log != nil {
			c.log.Sync()
		}
	}()
	return c.root.Execute()
}

// Main runs the satx tool and returns the code for passing to os.Exit.
func Main() int {
	cmd, err := New(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	if err := cmd.Run(); err != nil {
		if err != ErrPrintedError {
			errors.Print(os.Stderr, err)
		}
		return 1
	}
	return 0
}
