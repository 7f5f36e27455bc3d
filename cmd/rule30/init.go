// The init command seeds the configuration directory with the default
// scenario files.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"

	"github.com/mesh-physics/rule30/internal/paths"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the configuration directory with default scenarios",
	Long: `Create the scenario configuration directory and seed it with the
default scenario files (standard, wide, narrow, asymmetric). Existing
files are never overwritten.`,
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	configDir, err := paths.ResolveConfigDir(flagConfigDir)
	if err != nil {
		return fmt.Errorf("resolve config directory: %w", err)
	}

	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	names := make([]string, 0, len(defaultScenarios))
	for name := range defaultScenarios {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		path := filepath.Join(configDir, name)
		if err := writeScenarioIfMissing(path, defaultScenarios[name]); err != nil {
			return fmt.Errorf("write scenario %s: %w", name, err)
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Initialized %d scenarios in %s\n", len(names), configDir)
	return nil
}
