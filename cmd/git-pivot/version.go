package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// versionCmd prints the git-pivot version.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  "Print the version of the git-pivot binary.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, err := fmt.Fprintf(cmd.OutOrStdout(), "git-pivot %s\n", Version)
		return err
	},
}
