package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/peterh/liner"
	"github.com/spf13/cobra"
)

func replCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "interactive mode: solve formulas and check entailment line by line",
		Long: `Each line is either a single formula, whose assignment partition is
printed, or a knowledge base and a query separated by "|=", as in:

	a, if a then b |= b

whose entailment verdict is printed. A malformed line is reported and the
session continues. Exit with "quit" or Ctrl-D.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd()) {
				return replPiped(cmd.OutOrStdout(), os.Stdin)
			}
			return replInteractive(cmd.OutOrStdout())
		},
	}
}

func replInteractive(w io.Writer) error {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)
	for {
		input, err := line.Prompt("> ")
		if err == liner.ErrPromptAborted || err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		if input == "quit" || input == "exit" {
			return nil
		}
		line.AppendHistory(input)
		replLine(w, input)
	}
}

// replPiped handles non-TTY stdin, so the repl can be scripted.
func replPiped(w io.Writer, r io.Reader) error {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		input := strings.TrimSpace(sc.Text())
		if input == "" {
			continue
		}
		replLine(w, input)
	}
	return sc.Err()
}

func replLine(w io.Writer, input string) {
	var err error
	if kb, alpha, found := strings.Cut(input, "|="); found {
		err = entail(w, kb, strings.TrimSpace(alpha))
	} else {
		err = solve(w, input)
	}
	if err != nil {
		fmt.Fprintf(w, "error: %v\n", err)
	}
}
