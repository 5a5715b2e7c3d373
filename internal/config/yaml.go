package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/paulkoerbitz/git-pivot/internal/testable"
)

// fsys reads config files. Tests swap in a testable.MockFileSystem.
var fsys testable.FileSystem = testable.DefaultFS

// Load reads the repository config from repoPath. The YAML file wins; the
// TOML file is read only when no YAML file exists. If neither exists, it
// returns a zero-value Config and nil error.
func Load(repoPath string) (*Config, error) {
	cfg, err := loadYAML(filepath.Join(repoPath, FileName))
	if err == nil || !errors.Is(err, fs.ErrNotExist) {
		return cfg, err
	}

	cfg, err = loadTOML(filepath.Join(repoPath, TOMLFileName))
	if errors.Is(err, fs.ErrNotExist) {
		return &Config{}, nil
	}
	return cfg, err
}

func loadYAML(path string) (*Config, error) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &cfg, nil
}

func loadTOML(path string) (*Config, error) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &cfg, nil
}

// Write marshals cfg to YAML with two-space indentation. Unset fields are
// omitted.
func Write(w io.Writer, cfg *Config) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close() //nolint:errcheck // best-effort close
	enc.SetIndent(2)
	return enc.Encode(cfg)
}
