package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/paulkoerbitz/git-pivot/internal/config"
)

var configGlobal bool

// configCmd groups the read-only config views.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show git-pivot configuration",
	Long: `Show git-pivot configuration.

Settings are read from .git-pivot.yaml (or .git-pivot.toml) in the repository
root, layered over $XDG_CONFIG_HOME/git-pivot/config.yaml. Keys:
  statistics       statistics run by "git-pivot stats"
  pivot.x          row category for "git-pivot pivot"
  pivot.y          column category
  pivot.statistic  commits, additions or deletions
  max_commits      stop after this many matching commits
  no_color         disable bold titles`,
}

var configGetCmd = &cobra.Command{
	Use:   "get <key> [path]",
	Short: "Print the effective value of a key",
	Example: `  git-pivot config get pivot.x
  git-pivot config get pivot
  git-pivot config get --global no_color`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runConfigGet,
}

var configListCmd = &cobra.Command{
	Use:   "list [path]",
	Short: "List every set key and the file it comes from",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runConfigList,
}

var configShowCmd = &cobra.Command{
	Use:   "show [path]",
	Short: "Print the effective configuration as YAML",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runConfigShow,
}

func init() {
	configGetCmd.Flags().BoolVar(&configGlobal, "global", false, "read only the global config file")

	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configListCmd)
	configCmd.AddCommand(configShowCmd)
}

// configLayers loads the global config and, for the repository named by
// args, the repo config. Values are not validated so broken files can still
// be inspected.
func configLayers(args []string) (global, repo *config.Config, err error) {
	global, err = config.LoadGlobal()
	if err != nil {
		return nil, nil, fmt.Errorf("loading global config: %w", err)
	}
	repoPath, err := resolveRepoPath(args)
	if err != nil {
		return nil, nil, err
	}
	repo, err = config.Load(repoPath)
	if err != nil {
		return nil, nil, fmt.Errorf("loading repo config: %w", err)
	}
	return global, repo, nil
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	key := args[0]

	var cfg *config.Config
	if configGlobal {
		global, err := config.LoadGlobal()
		if err != nil {
			return fmt.Errorf("loading global config: %w", err)
		}
		cfg = global
	} else {
		global, repo, err := configLayers(args[1:])
		if err != nil {
			return err
		}
		cfg = config.Overlay(global, repo)
	}

	val, err := config.GetValue(cfg, key)
	if err != nil {
		return err
	}
	return printValue(cmd, val)
}

func runConfigList(cmd *cobra.Command, args []string) error {
	global, repo, err := configLayers(args)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	globalMap := config.Flatten(global)
	repoMap := config.Flatten(repo)
	if len(globalMap) == 0 && len(repoMap) == 0 {
		_, _ = fmt.Fprintln(w, "No configuration set.")
		return nil
	}

	globalLabel := color.New(color.FgCyan).Sprint("(global)")
	repoLabel := color.New(color.FgGreen).Sprint("(repo)")
	for _, key := range config.Keys {
		val, label := repoMap[key], repoLabel
		if val == nil {
			val, label = globalMap[key], globalLabel
		}
		if val == nil {
			continue
		}
		_, _ = fmt.Fprintf(w, "%s = %v %s\n", key, val, label)
	}
	return nil
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	global, repo, err := configLayers(args)
	if err != nil {
		return err
	}
	return config.Write(cmd.OutOrStdout(), config.Overlay(global, repo))
}

// printValue prints scalars as-is and sections or lists as YAML.
func printValue(cmd *cobra.Command, val any) error {
	switch val.(type) {
	case map[string]any, []any:
		data, err := yaml.Marshal(val)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	default:
		_, err := fmt.Fprintln(cmd.OutOrStdout(), val)
		return err
	}
}

func resetConfigFlags() {
	configGlobal = false
	if f := configGetCmd.Flags().Lookup("global"); f != nil {
		_ = f.Value.Set("false")
	}
}
