package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"

	"github.com/proplog/proplog/logic"
	"github.com/proplog/proplog/truth"
)

// A problemFile is a YAML batch of named entailment problems:
//
//	problems:
//	  - name: modus ponens
//	    kb: ["a", "if a then b"]
//	    query: "b"
type problemFile struct {
	Problems []problem `yaml:"problems"`
}

type problem struct {
	Name  string   `yaml:"name"`
	KB    []string `yaml:"kb"`
	Query string   `yaml:"query"`
}

// entailFile checks every problem in a YAML batch. A malformed problem is
// reported and the remaining problems still run; the command fails if any
// problem could not be checked.
func entailFile(w io.Writer, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "could not read %q", path)
	}
	var pf problemFile
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return errors.Wrapf(err, "could not parse %q", path)
	}
	logrus.WithField("problems", len(pf.Problems)).Debug("loaded problem file")
	failed := 0
	for i, p := range pf.Problems {
		name := p.Name
		if name == "" {
			name = fmt.Sprintf("problem %d", i+1)
		}
		if err := checkProblem(w, name, p); err != nil {
			fmt.Fprintf(w, "%s: error: %v\n", name, err)
			failed++
		}
	}
	if failed > 0 {
		return errors.Errorf("%d of %d problems failed", failed, len(pf.Problems))
	}
	return nil
}

func checkProblem(w io.Writer, name string, p problem) error {
	kb := make([]logic.Node, 0, len(p.KB))
	for i, src := range p.KB {
		f, err := logic.ParseString(src)
		if err != nil {
			return errors.Wrapf(err, "kb formula %d %q", i+1, src)
		}
		kb = append(kb, f)
	}
	alpha, err := logic.ParseString(p.Query)
	if err != nil {
		return errors.Wrapf(err, "query %q", p.Query)
	}
	holds, counter, err := truth.EntailsLimit(kb, alpha, maxAtoms)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%s: [%s] entails %q: %t", name, strings.Join(p.KB, ", "), p.Query, holds)
	if !holds && counter != nil {
		fmt.Fprintf(w, " (counter-model: %s)", counter)
	}
	fmt.Fprintln(w)
	return nil
}
