// Command geompred-bench is a diagnostic driver for the predicate
// package: it runs a suite of worked scenarios and reports pass/fail,
// and can additionally fuzz Orient2D, Bisect2D, InBall2D and InBall3D
// against exact math/big.Rat oracles to check sign agreement over
// random inputs. It is not part of the library surface — the library itself
// has no CLI, no file formats, and no console I/O — this is the one
// place in the repository such I/O lives.
//
// Usage:
//
//	geompred-bench -scenarios
//	geompred-bench -fuzz-rounds 100000 -seed 1
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/katalvlaran/geompred/expansion"
	"github.com/katalvlaran/geompred/predicatestat"
)

var (
	runScenarios = flag.Bool("scenarios", true, "Run the concrete worked scenarios")
	fuzzRounds   = flag.Int("fuzz-rounds", 0, "Number of random-input fuzz rounds to run against big.Rat oracles (0 disables fuzzing)")
	seed         = flag.Int64("seed", 1, "Seed for the fuzz-mode PRNG (ignored when -fuzz-rounds is 0)")
)

func main() {
	flag.Parse()
	expansion.Init()

	failures := 0

	if *runScenarios {
		failures += runScenarioSuite(os.Stdout)
	}

	if *fuzzRounds > 0 {
		failures += runFuzzSuite(os.Stdout, *fuzzRounds, *seed)
	}

	printStats(os.Stdout)

	if failures > 0 {
		fmt.Fprintf(os.Stderr, "geompred-bench: %d failure(s)\n", failures)
		os.Exit(1)
	}
}

func printStats(w *os.File) {
	fmt.Fprintln(w, "\nDispatch counts:")
	for _, r := range predicatestat.Collect() {
		if r.Total() == 0 {
			continue
		}
		fmt.Fprintln(w, " ", r.String())
	}
}
