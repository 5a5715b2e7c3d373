package main

import (
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/paulkoerbitz/git-pivot/internal/category"
	"github.com/paulkoerbitz/git-pivot/internal/config"
	"github.com/paulkoerbitz/git-pivot/internal/pivot"
	"github.com/paulkoerbitz/git-pivot/internal/statistic"
	"github.com/paulkoerbitz/git-pivot/internal/stats"
)

// Pivot-specific flag values.
var (
	pivotX         string
	pivotY         string
	pivotStatistic string
	pivotWalk      walkFlags
)

// pivotCmd renders a two-dimensional pivot table over the commit history.
var pivotCmd = &cobra.Command{
	Use:   "pivot [path]",
	Short: "Print a pivot table of a statistic over two commit categories",
	Long: `Walk the history of the repository at path (default: current directory)
and sum a statistic into a table whose rows and columns are commit categories.

Categories: ` + categoryNames() + `.
Statistics: commits, additions, deletions. Additions and deletions count
+1 / -1 per commit; they do not inspect diffs.

Hour and day-of-week axes always show every hour/day; other categories show
the values seen in the history; an unset category collapses to "*".`,
	Example: `  git-pivot pivot --x author --y year
  git-pivot pivot --x day-of-week --y hour --from 2024-01-01`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPivot,
}

func init() {
	pivotCmd.Flags().StringVar(&pivotX, "x", "", "row category")
	pivotCmd.Flags().StringVar(&pivotY, "y", "", "column category")
	pivotCmd.Flags().StringVar(&pivotStatistic, "statistic", "", "statistic to sum (default: commits)")
	pivotWalk.register(pivotCmd.Flags())
}

func categoryNames() string {
	all := category.All()
	names := make([]string, 0, len(all))
	for _, sel := range all {
		names = append(names, strings.ToLower(sel.String()))
	}
	return strings.Join(names, ", ")
}

func runPivot(cmd *cobra.Command, args []string) error {
	repoPath, err := resolveRepoPath(args)
	if err != nil {
		return err
	}

	settings, err := settingsFor(repoPath, config.Settings{
		X:          pivotX,
		Y:          pivotY,
		Statistic:  pivotStatistic,
		MaxCommits: pivotWalk.maxCommits,
	})
	if err != nil {
		return err
	}

	x, err := category.Parse(settings.X)
	if err != nil {
		return exitError(ExitInvalidArgs, "git-pivot: --x: %v (available: %s)", err, categoryNames())
	}
	y, err := category.Parse(settings.Y)
	if err != nil {
		return exitError(ExitInvalidArgs, "git-pivot: --y: %v (available: %s)", err, categoryNames())
	}
	stat, err := statistic.Parse(settings.Statistic)
	if err != nil {
		return exitError(ExitInvalidArgs, "git-pivot: --statistic: %v", err)
	}

	opts, err := pivotWalk.options(settings.MaxCommits)
	if err != nil {
		return err
	}

	walker, err := openHistory(repoPath, opts)
	if err != nil {
		return err
	}

	n, err := stats.Run(cmd.Context(), walker, cmd.OutOrStdout(), pivot.New(x, y, stat))
	if err != nil {
		return runFailed(err)
	}
	slog.Debug("pivot complete", "commits", n, "x", x, "y", y, "statistic", stat)
	return nil
}
