package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/proplog/proplog/logic"
	"github.com/proplog/proplog/truth"
)

var (
	satColor   = color.New(color.FgGreen)
	unsatColor = color.New(color.FgRed)
)

func renderSolve(w io.Writer, toks logic.Tokens, f logic.Node, rep *truth.Report) {
	fmt.Fprintf(w, "tokens: %s\n", toks)
	fmt.Fprintf(w, "ast:    %s\n", f)
	fmt.Fprintf(w, "atoms:  {%s}\n", strings.Join(rep.Atoms, ", "))
	satColor.Fprintf(w, "satisfiable assignments (%d):\n", len(rep.Sat))
	for _, a := range rep.Sat {
		fmt.Fprintf(w, "  %s\n", a)
	}
	unsatColor.Fprintf(w, "unsatisfiable assignments (%d):\n", len(rep.Unsat))
	for _, a := range rep.Unsat {
		fmt.Fprintf(w, "  %s\n", a)
	}
}

func renderVerdict(w io.Writer, alpha string, holds bool, counter truth.Assignment) {
	if holds {
		satColor.Fprintf(w, "KB entails %q: true\n", alpha)
		return
	}
	unsatColor.Fprintf(w, "KB entails %q: false\n", alpha)
	if counter != nil {
		fmt.Fprintf(w, "counter-model: %s\n", counter)
	}
}
