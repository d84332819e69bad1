package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/proplog/proplog/logic"
	"github.com/proplog/proplog/truth"
)

var (
	verbose  bool
	noColor  bool
	maxAtoms = truth.MaxAtoms
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "proplog",
		Short: "truth-table engine for ASCII propositional logic",
		Long: `proplog parses formulas written with the keywords not, and, or, if, iff
and then, and answers satisfiability and entailment questions by exhaustive
enumeration of truth assignments.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				logrus.SetLevel(logrus.DebugLevel)
			}
			if noColor {
				color.NoColor = true
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging of the pipeline stages")
	root.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	root.PersistentFlags().IntVar(&maxAtoms, "max-atoms", truth.MaxAtoms, "largest atom universe to enumerate (cost is 2^n)")
	root.AddCommand(solveCmd(), entailCmd(), replCmd())
	root.SetOut(os.Stdout)
	root.SetErr(os.Stderr)
	return root
}

func solveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   `solve "formula"`,
		Short: "show tokens, AST and the full satisfiable/unsatisfiable partition of one formula",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := solve(cmd.OutOrStdout(), strings.Join(args, " "))
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "could not solve formula: %v\n", err)
			}
			return err
		},
	}
}

func entailCmd() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   `entail "f, g, ..." "alpha"`,
		Short: "decide whether a comma-separated knowledge base entails a formula",
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			switch {
			case file != "":
				err = entailFile(cmd.OutOrStdout(), file)
			case len(args) == 2:
				err = entail(cmd.OutOrStdout(), args[0], args[1])
			default:
				err = errors.New("expected a knowledge base and a formula, or --file")
			}
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "could not check entailment: %v\n", err)
			}
			return err
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML file of named entailment problems")
	return cmd
}

// solve is the single-formula mode: tokens, AST, atom set and the full
// assignment partition.
func solve(w io.Writer, input string) error {
	toks, err := logic.Lex(input)
	if err != nil {
		return err
	}
	logrus.WithField("tokens", len(toks)).Debug("lexed formula")
	f, err := logic.Parse(toks)
	if err != nil {
		return err
	}
	logrus.WithField("ast", f.String()).Debug("parsed formula")
	rep, err := truth.PartitionLimit(f, maxAtoms)
	if err != nil {
		return err
	}
	logrus.WithFields(logrus.Fields{
		"atoms":       len(rep.Atoms),
		"assignments": len(rep.Sat) + len(rep.Unsat),
	}).Debug("enumerated assignments")
	renderSolve(w, toks, f, rep)
	return nil
}

// entail is the entailment mode: one comma-separated knowledge-base line
// and a query formula, one boolean verdict.
func entail(w io.Writer, kbLine, alphaLine string) error {
	kb, err := logic.ParseKB(kbLine)
	if err != nil {
		return errors.Wrap(err, "knowledge base")
	}
	alpha, err := logic.ParseString(alphaLine)
	if err != nil {
		return errors.Wrap(err, "query")
	}
	logrus.WithField("formulas", len(kb)).Debug("parsed knowledge base")
	holds, counter, err := truth.EntailsLimit(kb, alpha, maxAtoms)
	if err != nil {
		return err
	}
	renderVerdict(w, alphaLine, holds, counter)
	return nil
}
