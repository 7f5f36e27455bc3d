// Root command for the rule30 CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/mesh-physics/rule30/pkg/rule30"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// Global flag values.
var (
	flagConfigDir string
	flagOutputDir string
	flagQuiet     bool
)

var rootCmd = &cobra.Command{
	Use:     "rule30",
	Short:   "Rule 30 cellular automaton analyzer",
	Long: `rule30 evolves the Rule 30 elementary cellular automaton on a ring,
computes Shannon entropy and local complexity for every timestep, and
writes the results as a SQLite dataset, CSV tables, and PNG plots.`,
	Version:      rule30.Version,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "scenario configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagOutputDir, "output-dir", "", "output directory (default: $(CWD)/outputs)")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "suppress progress and summary output")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(listCmd)
}
