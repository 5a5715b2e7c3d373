// Copyright 2026 The git-pivot Authors
// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// GlobalConfigDir returns the directory for global git-pivot configuration.
// It uses $XDG_CONFIG_HOME/git-pivot if set, otherwise ~/.config/git-pivot.
func GlobalConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "git-pivot")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "git-pivot")
}

// GlobalConfigPath returns the path to the global config file.
func GlobalConfigPath() string {
	return filepath.Join(GlobalConfigDir(), "config.yaml")
}

// LoadGlobal loads the global config file.
// If the file does not exist, it returns a zero-value Config and nil error.
func LoadGlobal() (*Config, error) {
	cfg, err := loadYAML(GlobalConfigPath())
	if errors.Is(err, fs.ErrNotExist) {
		return &Config{}, nil
	}
	return cfg, err
}

// LoadLayered returns the repository config at repoPath overlaid on the
// global config, validated.
func LoadLayered(repoPath string) (*Config, error) {
	global, err := LoadGlobal()
	if err != nil {
		return nil, fmt.Errorf("loading global config: %w", err)
	}
	repo, err := Load(repoPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	cfg := Overlay(global, repo)
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
