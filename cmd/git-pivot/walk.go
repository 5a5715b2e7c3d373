package main

import (
	"log/slog"

	"github.com/fatih/color"
	"github.com/spf13/pflag"

	"github.com/paulkoerbitz/git-pivot/internal/config"
	"github.com/paulkoerbitz/git-pivot/internal/history"
)

// walkFlags are the history filters shared by every reporting command.
type walkFlags struct {
	from       string
	until      string
	maxCommits int
}

func (f *walkFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(&f.from, "from", "", "only include commits on or after this date (YYYY-MM-DD, UTC)")
	fs.StringVar(&f.until, "until", "", "only include commits on or before this date (YYYY-MM-DD, UTC)")
	fs.IntVar(&f.maxCommits, "max-commits", 0, "stop after this many matching commits (default: no limit)")
}

func (f *walkFlags) reset() {
	*f = walkFlags{}
}

// options converts the flags into walk options.
func (f *walkFlags) options(maxCommits int) (history.Options, error) {
	opts, err := history.ParseRange(f.from, f.until, maxCommits)
	if err != nil {
		return opts, exitError(ExitInvalidArgs, "git-pivot: %v", err)
	}
	return opts, nil
}

// resolveRepoPath turns the optional path argument into an absolute,
// symlink-free directory.
func resolveRepoPath(args []string) (string, error) {
	repoPath := "."
	if len(args) > 0 {
		repoPath = args[0]
	}

	absPath, err := cmdFS.Abs(repoPath)
	if err != nil {
		return "", exitError(ExitInvalidArgs, "git-pivot: cannot resolve path %q (%v)", repoPath, err)
	}

	absPath, err = cmdFS.EvalSymlinks(absPath)
	if err != nil {
		return "", exitError(ExitInvalidArgs, "git-pivot: cannot resolve path %q (%v)", repoPath, err)
	}

	info, err := cmdFS.Stat(absPath)
	if err != nil {
		return "", exitError(ExitInvalidArgs, "git-pivot: path %q does not exist", repoPath)
	}
	if !info.IsDir() {
		return "", exitError(ExitInvalidArgs, "git-pivot: %q is not a directory", repoPath)
	}
	return absPath, nil
}

// settingsFor merges cli over the config files of repoPath and applies the
// color preference.
func settingsFor(repoPath string, cli config.Settings) (config.Settings, error) {
	cfg, err := config.LoadLayered(repoPath)
	if err != nil {
		return config.Settings{}, exitError(ExitInvalidArgs, "git-pivot: %v", err)
	}
	settings := config.Merge(cfg, cli)
	if settings.NoColor {
		color.NoColor = true
	}
	slog.Debug("resolved settings",
		"repo", repoPath,
		"statistics", settings.Statistics,
		"x", settings.X,
		"y", settings.Y,
		"statistic", settings.Statistic,
		"max_commits", settings.MaxCommits,
	)
	return settings, nil
}

// openHistory opens the repository and returns a walker over it.
func openHistory(repoPath string, opts history.Options) (*history.Walker, error) {
	w, err := history.Open(cmdGitOpener, repoPath, opts)
	if err != nil {
		return nil, exitError(ExitTotalFailure, "git-pivot: cannot read repository at %q (%v)", repoPath, err)
	}
	return w, nil
}

// runFailed reports an error raised while walking or printing.
func runFailed(err error) error {
	return exitError(ExitTotalFailure, "git-pivot: report failed: %v", err)
}
