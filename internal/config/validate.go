package config

import (
	"fmt"
	"strings"

	"github.com/paulkoerbitz/git-pivot/internal/category"
	"github.com/paulkoerbitz/git-pivot/internal/statistic"
	"github.com/paulkoerbitz/git-pivot/internal/stats"
)

// Validate checks all fields in the config and returns all errors at once.
func Validate(cfg *Config) error {
	var errs []string

	for _, name := range cfg.Statistics {
		if _, err := stats.New(name); err != nil {
			errs = append(errs, fmt.Sprintf("statistics: %v (available: %s)", err, strings.Join(stats.List(), ", ")))
		}
	}

	if _, err := category.Parse(cfg.Pivot.X); err != nil {
		errs = append(errs, fmt.Sprintf("pivot.x: %v", err))
	}
	if _, err := category.Parse(cfg.Pivot.Y); err != nil {
		errs = append(errs, fmt.Sprintf("pivot.y: %v", err))
	}
	if _, err := statistic.Parse(cfg.Pivot.Statistic); err != nil {
		errs = append(errs, fmt.Sprintf("pivot.statistic: %v", err))
	}

	if cfg.MaxCommits < 0 {
		errs = append(errs, fmt.Sprintf("max_commits: must be non-negative, got %d", cfg.MaxCommits))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
