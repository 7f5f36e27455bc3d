// Package main provides the rule30 CLI: it evolves the Rule 30 cellular
// automaton for a configured scenario, computes the per-timestep entropy
// and complexity statistics, and writes the dataset, table, and plot
// artifacts for the run.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitUserError)
	}
}
