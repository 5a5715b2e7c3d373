package config

import (
	"fmt"
	"strings"
)

// Keys lists every config key in dot notation, in display order.
var Keys = []string{
	"statistics",
	"pivot.x",
	"pivot.y",
	"pivot.statistic",
	"max_commits",
	"no_color",
}

// lookup returns the value of a leaf key and whether it is set in cfg.
func lookup(cfg *Config, key string) (any, bool) {
	switch key {
	case "statistics":
		if len(cfg.Statistics) == 0 {
			return nil, false
		}
		list := make([]any, len(cfg.Statistics))
		for i, name := range cfg.Statistics {
			list[i] = name
		}
		return list, true
	case "pivot.x":
		return cfg.Pivot.X, cfg.Pivot.X != ""
	case "pivot.y":
		return cfg.Pivot.Y, cfg.Pivot.Y != ""
	case "pivot.statistic":
		return cfg.Pivot.Statistic, cfg.Pivot.Statistic != ""
	case "max_commits":
		return cfg.MaxCommits, cfg.MaxCommits != 0
	case "no_color":
		return cfg.NoColor, cfg.NoColor
	}
	return nil, false
}

// GetValue returns the value at keyPath. A section such as "pivot" yields a
// map of its set children; lists come back as []any.
func GetValue(cfg *Config, keyPath string) (any, error) {
	if v, ok := lookup(cfg, keyPath); ok {
		return v, nil
	}

	section := make(map[string]any)
	for _, key := range Keys {
		child, found := strings.CutPrefix(key, keyPath+".")
		if !found {
			continue
		}
		if v, ok := lookup(cfg, key); ok {
			section[child] = v
		}
	}
	if len(section) == 0 {
		return nil, fmt.Errorf("key %q not found", keyPath)
	}
	return section, nil
}

// Flatten returns every set key of cfg with its value.
func Flatten(cfg *Config) map[string]any {
	out := make(map[string]any)
	for _, key := range Keys {
		if v, ok := lookup(cfg, key); ok {
			out[key] = v
		}
	}
	return out
}
