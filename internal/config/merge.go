package config

// Overlay returns base with every non-zero field of top applied over it.
// It is used to layer the repository config over the global one.
func Overlay(base, top *Config) *Config {
	result := *base
	if len(top.Statistics) > 0 {
		result.Statistics = top.Statistics
	}
	if top.Pivot.X != "" {
		result.Pivot.X = top.Pivot.X
	}
	if top.Pivot.Y != "" {
		result.Pivot.Y = top.Pivot.Y
	}
	if top.Pivot.Statistic != "" {
		result.Pivot.Statistic = top.Pivot.Statistic
	}
	if top.MaxCommits > 0 {
		result.MaxCommits = top.MaxCommits
	}
	if top.NoColor {
		result.NoColor = true
	}
	return &result
}

// Merge combines file-based config with CLI-provided Settings.
// CLI values take precedence; zero-value CLI fields fall through to file config.
func Merge(fileCfg *Config, cli Settings) Settings {
	result := cli

	if len(result.Statistics) == 0 {
		result.Statistics = fileCfg.Statistics
	}
	if len(result.Statistics) == 0 {
		result.Statistics = DefaultStatistics
	}

	if result.X == "" {
		result.X = fileCfg.Pivot.X
	}
	if result.Y == "" {
		result.Y = fileCfg.Pivot.Y
	}
	if result.Statistic == "" {
		result.Statistic = fileCfg.Pivot.Statistic
	}

	if result.MaxCommits == 0 && fileCfg.MaxCommits > 0 {
		result.MaxCommits = fileCfg.MaxCommits
	}

	// NoColor: CLI wins if true, otherwise file config.
	if !result.NoColor && fileCfg.NoColor {
		result.NoColor = true
	}

	return result
}
