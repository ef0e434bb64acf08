// Command mucheck checks whether a μ-calculus formula holds at an LTS's
// initial state, reporting the formula, its depth measures, the
// satisfying set, and the evaluator's iteration count.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/foo-jin/mucalc/eval"
	"github.com/foo-jin/mucalc/formula"
	"github.com/foo-jin/mucalc/lts"
	"github.com/foo-jin/mucalc/metrics"
	"github.com/foo-jin/mucalc/muparse"
	"github.com/foo-jin/mucalc/stateset"
)

const maxReportedStates = 20

func main() {
	naive := flag.Bool("naive", false, "use the naive evaluator instead of the improved (Emerson-Lei) one")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [--naive] <lts-file> <formula-file>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(1)
	}

	if err := run(flag.Arg(0), flag.Arg(1), *naive); err != nil {
		color.Red("error: %v", err)
		os.Exit(1)
	}
}

func run(ltsPath, formulaPath string, useNaive bool) error {
	ltsFile, err := os.Open(ltsPath)
	if err != nil {
		return fmt.Errorf("reading lts file: %w", err)
	}
	defer ltsFile.Close()

	system, err := lts.Parse(ltsFile)
	if err != nil {
		return fmt.Errorf("parsing lts: %w", err)
	}

	formulaSrc, err := os.ReadFile(formulaPath)
	if err != nil {
		return fmt.Errorf("reading formula file: %w", err)
	}

	f, err := muparse.Parse(formulaPath, string(formulaSrc))
	if err != nil {
		return fmt.Errorf("parsing formula: %w", err)
	}

	var result stateset.Set
	if useNaive {
		result = eval.Naive(system, f)
	} else {
		result = eval.Improved(system, f)
	}
	iterations := eval.Iterations()

	report(f, system, result, iterations, useNaive)
	return nil
}

func report(f formula.Formula, system *lts.Lts, result stateset.Set, iterations uint64, useNaive bool) {
	algorithm := "improved"
	if useNaive {
		algorithm = "naive"
	}

	fmt.Printf("formula:  %s\n", f.String())
	fmt.Printf("metrics:  ND=%d AD=%d dAD=%d\n", metrics.Nesting(f), metrics.Alternation(f), metrics.DependentAlternation(f))
	fmt.Printf("evaluator: %s (%d iterations)\n", algorithm, iterations)
	fmt.Printf("satisfies: %s\n", formatStates(result))

	if result.Contains(system.Init()) {
		color.Green("init() holds")
	} else {
		color.Red("init() does not hold")
	}
}

func formatStates(s stateset.Set) string {
	all := s.Slice()
	truncated := all
	suffix := ""
	if len(all) > maxReportedStates {
		truncated = all[:maxReportedStates]
		suffix = fmt.Sprintf(" ... (%d more)", len(all)-maxReportedStates)
	}

	out := "{"
	for i, st := range truncated {
		if i > 0 {
			out += ", "
		}
		out += fmt.Sprintf("%d", st)
	}
	out += "}" + suffix
	return out
}
