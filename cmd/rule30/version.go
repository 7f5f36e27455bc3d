package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-physics/rule30/pkg/rule30"
)

const modulePath = "github.com/mesh-physics/rule30"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the rule30 version",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintf(cmd.OutOrStdout(), "rule30 v%s\nmodule: %s\n", rule30.Version, modulePath)
		return nil
	},
}
