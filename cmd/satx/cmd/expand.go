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
	"io/ioutil"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/xerrors"
	"gopkg.in/yaml.v3"

	"satexpander.org/go/sat"
	"satexpander.org/go/sat/cnf"
	"satexpander.org/go/sat/errors"
)

func newExpandCmd(c *Command) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "expand <problem.yaml>",
		Short: "expand a problem file into DIMACS CNF",
		Long: `expand reads a YAML problem file, expands its quantifier trees, and
writes the joined formula as DIMACS text to stdout.

A problem file has the form

	symbols:
	  - name: p
	    arity: 2
	    domain: [[1, 2], [1, 3], [2, 3]]
	constants: [n]
	formulas:
	  - quantifiers:
	      - kind: forall
	        vars: [x]
	        over: [[1], [2], [3]]
	      - kind: exists
	        vars: [y]
	        over: [[1], [2], [3]]
	        exclude: {value: x}
	    atoms: ["p(x,y)"]

Quantifiers are listed outermost first. The formula CNFs are joined in
file order. The builtin exclusion filters are 'value: x', keeping a
candidate unless it equals the binding of x, and 'tuple: [x, y]',
keeping a candidate unless it equals the tuple of the bindings.`,
		Args: cobra.ExactArgs(1),
		RunE: mkRunE(c, runExpand),
	}

	cmd.Flags().StringP(flagOut, "o", "", "write DIMACS to this file instead of stdout")
	cmd.Flags().StringArray(flagComment, nil, "additional header comment line")

	return cmd
}

const (
	flagOut     = "out"
	flagComment = "comment"
)

type problemFile struct {
	Comments  []string      `yaml:"comments"`
	Symbols   []symbolDecl  `yaml:"symbols"`
	Constants []string      `yaml:"constants"`
	Formulas  []formulaDecl `yaml:"formulas"`
}

type symbolDecl struct {
	Name        string          `yaml:"name"`
	Arity       int             `yaml:"arity"`
	Domain      [][]interface{} `yaml:"domain"`
	Commutative bool            `yaml:"commutative"`
}

type formulaDecl struct {
	Quantifiers []quantDecl `yaml:"quantifiers"`
	Atoms       []string    `yaml:"atoms"`
}

type quantDecl struct {
	Kind    string          `yaml:"kind"`
	Vars    []string        `yaml:"vars"`
	Over    [][]interface{} `yaml:"over"`
	Exclude *excludeDecl    `yaml:"exclude"`
}

type excludeDecl struct {
	Value string   `yaml:"value"`
	Tuple []string `yaml:"tuple"`
}

func runExpand(cmd *Command, args []string) error {
	b, err := ioutil.ReadFile(args[0])
	if err != nil {
		return errors.Promote(err, "cannot read problem file")
	}
	var p problemFile
	if err := yaml.Unmarshal(b, &p); err != nil {
		return errors.Promote(xerrors.Errorf("malformed problem file %s: %w", args[0], err), "")
	}

	res, err := expandProblem(cmd, &p)
	if err != nil {
		return err
	}

	header := strings.Join(p.Comments, "\n")
	if extra, _ := cmd.Flags().GetStringArray(flagComment); len(extra) > 0 {
		if header != "" {
			header += "\n"
		}
		header += strings.Join(extra, "\n")
	}

	cmd.Logger().Infof("expanded %d clauses over %d variables (max id %d)",
		len(res), res.NumVars(), res.MaxVar())

	out := cmd.OutOrStdout()
	if name, _ := cmd.Flags().GetString(flagOut); name != "" {
		f, err := os.Create(name)
		if err != nil {
			return errors.Promote(err, "cannot create output file")
		}
		defer f.Close()
		out = f
	}
	return cnf.Write(out, res, header)
}

func expandProblem(cmd *Command, p *problemFile) (cnf.CNF, error) {
	r := sat.New()
	r.SetWarnf(cmd.Logger().Warnf)

	for _, decl := range p.Symbols {
		s, err := r.Build(decl.Name, decl.Arity, toTuples(decl.Domain))
		if err != nil {
			return nil, err
		}
		if decl.Commutative {
			if err := s.SetCommutative(); err != nil {
				return nil, err
			}
		}
	}
	for _, name := range p.Constants {
		if _, err := r.AddConstant(name); err != nil {
			return nil, err
		}
	}

	var res cnf.CNF
	for _, f := range p.Formulas {
		part, err := expandFormula(r, f)
		if err != nil {
			return nil, err
		}
		res = cnf.Join(res, part)
	}
	return res, nil
}

func expandFormula(r *sat.Runtime, f formulaDecl) (cnf.CNF, error) {
	if len(f.Quantifiers) == 0 {
		return nil, errors.Newf(errors.StructureError,
			"a formula needs at least one quantifier")
	}
	var root *sat.Op
	for _, q := range f.Quantifiers {
		op, err := buildQuant(q)
		if err != nil {
			return nil, err
		}
		if root == nil {
			root = op
		} else {
			root = root.Chain(op)
		}
	}
	root = root.Chain(sat.Atoms(r, f.Atoms...))
	return root.Evaluate()
}

func buildQuant(q quantDecl) (*sat.Op, error) {
	var exclude []sat.Predicate
	if q.Exclude != nil {
		switch {
		case q.Exclude.Value != "" && len(q.Exclude.Tuple) > 0:
			return nil, errors.Newf(errors.StructureError,
				"an exclude filter takes either 'value' or 'tuple', not both")
		case q.Exclude.Value != "":
			exclude = append(exclude, sat.ExcludeValue(q.Exclude.Value))
		case len(q.Exclude.Tuple) > 0:
			exclude = append(exclude, sat.ExcludeTuple(q.Exclude.Tuple...))
		}
	}
	switch q.Kind {
	case "forall":
		return sat.Forall(q.Vars, toTuples(q.Over), exclude...), nil
	case "exists":
		return sat.Exists(q.Vars, toTuples(q.Over), exclude...), nil
	}
	return nil, errors.Newf(errors.StructureError,
		"unknown quantifier kind %q; want \"forall\" or \"exists\"", q.Kind)
}

func toTuples(values [][]interface{}) []sat.Tuple {
	res := make([]sat.Tuple, len(values))
	for i, v := range values {
		res[i] = sat.Tuple(v)
	}
	return res
}
