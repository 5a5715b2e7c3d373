package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	pivotlog "github.com/paulkoerbitz/git-pivot/internal/log"
)

// Global flag values.
var (
	verbose bool
	quiet   bool
	noColor bool
)

// rootCmd is the base command for git-pivot.
var rootCmd = &cobra.Command{
	Use:   "git-pivot",
	Short: "Aggregate statistics over a repository's commit history",
	Long: `git-pivot walks the commit history of a git repository and reports
aggregate statistics: commit counts by author, a weekday/hour punchcard, and
pivot tables over any two commit categories (date, author, hour, weekday...).`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		pivotlog.Setup(os.Stderr, verbose, quiet)
		if noColor {
			color.NoColor = true
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress non-essential output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(pivotCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(versionCmd)
}
