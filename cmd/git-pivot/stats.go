package main

import (
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/paulkoerbitz/git-pivot/internal/config"
	"github.com/paulkoerbitz/git-pivot/internal/stats"
)

// Stats-specific flag values.
var (
	statsNames []string
	statsWalk  walkFlags
)

// statsCmd runs the named per-commit statistics in a single history pass.
var statsCmd = &cobra.Command{
	Use:   "stats [path]",
	Short: "Print commit counts by author and a weekday/hour punchcard",
	Long: `Walk the history of the repository at path (default: current directory)
and print each selected statistic in order.

Available statistics: ` + strings.Join(stats.List(), ", ") + `.
Without --statistics, the config file's list or "authors,punchcard" is used.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runStats,
}

func init() {
	statsCmd.Flags().StringSliceVarP(&statsNames, "statistics", "s", nil, "comma-separated statistics to run")
	statsWalk.register(statsCmd.Flags())
}

func runStats(cmd *cobra.Command, args []string) error {
	repoPath, err := resolveRepoPath(args)
	if err != nil {
		return err
	}

	settings, err := settingsFor(repoPath, config.Settings{
		Statistics: statsNames,
		MaxCommits: statsWalk.maxCommits,
	})
	if err != nil {
		return err
	}

	statistics := make([]stats.PerCommitStatistic, 0, len(settings.Statistics))
	for _, name := range settings.Statistics {
		s, err := stats.New(strings.TrimSpace(name))
		if err != nil {
			return exitError(ExitInvalidArgs, "git-pivot: %v (available: %s)", err, strings.Join(stats.List(), ", "))
		}
		statistics = append(statistics, s)
	}

	opts, err := statsWalk.options(settings.MaxCommits)
	if err != nil {
		return err
	}

	walker, err := openHistory(repoPath, opts)
	if err != nil {
		return err
	}

	n, err := stats.Run(cmd.Context(), walker, cmd.OutOrStdout(), statistics...)
	if err != nil {
		return runFailed(err)
	}
	slog.Debug("stats complete", "commits", n)
	return nil
}
