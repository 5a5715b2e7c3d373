// Package config handles .git-pivot.yaml and .git-pivot.toml configuration files.
package config

// Config represents the contents of a repository or global config file.
type Config struct {
	// Statistics lists the per-commit statistics run by "git-pivot stats".
	Statistics []string    `yaml:"statistics,omitempty" toml:"statistics,omitempty"`
	Pivot      PivotConfig `yaml:"pivot,omitempty" toml:"pivot,omitempty"`
	MaxCommits int         `yaml:"max_commits,omitempty" toml:"max_commits,omitempty"`
	NoColor    bool        `yaml:"no_color,omitempty" toml:"no_color,omitempty"`
}

// PivotConfig holds the defaults of "git-pivot pivot".
type PivotConfig struct {
	X         string `yaml:"x,omitempty" toml:"x,omitempty"`
	Y         string `yaml:"y,omitempty" toml:"y,omitempty"`
	Statistic string `yaml:"statistic,omitempty" toml:"statistic,omitempty"`
}

// FileName is the YAML config file name in a repository root.
const FileName = ".git-pivot.yaml"

// TOMLFileName is the TOML alternative, read only when FileName is absent.
const TOMLFileName = ".git-pivot.toml"

// Settings are the effective options of one run after merging flags and
// config files.
type Settings struct {
	Statistics []string
	X          string
	Y          string
	Statistic  string
	MaxCommits int
	NoColor    bool
}

// DefaultStatistics are run when neither flags nor config name any.
var DefaultStatistics = []string{"authors", "punchcard"}
