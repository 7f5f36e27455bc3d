// The list command prints the runs stored in the output dataset.
package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mesh-physics/rule30/internal/dataset"
	"github.com/mesh-physics/rule30/internal/paths"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List runs stored in the output dataset",
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	outputDir, err := paths.ResolveOutputDir(flagOutputDir, "")
	if err != nil {
		return fmt.Errorf("resolve output directory: %w", err)
	}

	store := dataset.NewStore()
	if err := store.Attach(outputDir); err != nil {
		return fmt.Errorf("open dataset: %w", err)
	}
	defer store.Detach()

	runs, err := store.ListRuns()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No runs stored.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "RUN ID\tSCENARIO\tCREATED\tWIDTH\tSTEPS")
	for _, r := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\n",
			r.RunID, r.Scenario, r.CreatedAt.Format("2006-01-02 15:04:05"), r.Width, r.Steps)
	}
	return w.Flush()
}
