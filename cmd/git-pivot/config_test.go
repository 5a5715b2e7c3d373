package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeGlobalConfig(t *testing.T, content string) {
	t.Helper()
	dir := filepath.Join(os.Getenv("XDG_CONFIG_HOME"), "git-pivot")
	require.NoError(t, os.MkdirAll(dir, 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o600))
}

func TestConfigList_Empty(t *testing.T) {
	isolateGlobalConfig(t)
	cmd, stdout, _ := newTestCmd(t)
	cmd.SetArgs([]string{"config", "list", t.TempDir()})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "No configuration set.\n", stdout.String())
}

func TestConfigList_Sources(t *testing.T) {
	isolateGlobalConfig(t)
	writeGlobalConfig(t, "max_commits: 10\nno_color: true\n")
	dir := t.TempDir()
	writeTestFile(t, dir, ".git-pivot.yaml", "max_commits: 20\npivot:\n  x: author\n")

	cmd, stdout, _ := newTestCmd(t)
	cmd.SetArgs([]string{"config", "list", dir})

	require.NoError(t, cmd.Execute())
	assert.Equal(t,
		"pivot.x = author (repo)\n"+
			"max_commits = 20 (repo)\n"+
			"no_color = true (global)\n",
		stdout.String())
}

func TestConfigGet(t *testing.T) {
	isolateGlobalConfig(t)
	writeGlobalConfig(t, "pivot:\n  y: hour\n")
	dir := t.TempDir()
	writeTestFile(t, dir, ".git-pivot.yaml", "statistics: [punchcard]\npivot:\n  x: author\n")

	cmd, stdout, _ := newTestCmd(t)
	cmd.SetArgs([]string{"config", "get", "pivot.x", dir})
	require.NoError(t, cmd.Execute())
	assert.Equal(t, "author\n", stdout.String())

	cmd, stdout, _ = newTestCmd(t)
	cmd.SetArgs([]string{"config", "get", "pivot", dir})
	require.NoError(t, cmd.Execute())
	// yaml.v3 quotes "y" so it is not read back as a YAML 1.1 boolean.
	assert.Equal(t, "x: author\n\"y\": hour\n", stdout.String())

	cmd, stdout, _ = newTestCmd(t)
	cmd.SetArgs([]string{"config", "get", "statistics", dir})
	require.NoError(t, cmd.Execute())
	assert.Equal(t, "- punchcard\n", stdout.String())
}

func TestConfigGet_Global(t *testing.T) {
	isolateGlobalConfig(t)
	writeGlobalConfig(t, "max_commits: 99\n")

	cmd, stdout, _ := newTestCmd(t)
	cmd.SetArgs([]string{"config", "get", "--global", "max_commits"})
	require.NoError(t, cmd.Execute())
	assert.Equal(t, "99\n", stdout.String())
}

func TestConfigGet_MissingKey(t *testing.T) {
	isolateGlobalConfig(t)
	cmd, _, _ := newTestCmd(t)
	cmd.SetArgs([]string{"config", "get", "pivot.x", t.TempDir()})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestConfigShow(t *testing.T) {
	isolateGlobalConfig(t)
	writeGlobalConfig(t, "no_color: true\npivot:\n  y: hour\n")
	dir := t.TempDir()
	writeTestFile(t, dir, ".git-pivot.toml", "[pivot]\nx = \"author\"\n")

	cmd, stdout, _ := newTestCmd(t)
	cmd.SetArgs([]string{"config", "show", dir})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "pivot:\n  x: author\n  \"y\": hour\nno_color: true\n", stdout.String())
}

func TestConfigShow_Empty(t *testing.T) {
	isolateGlobalConfig(t)
	cmd, stdout, _ := newTestCmd(t)
	cmd.SetArgs([]string{"config", "show", t.TempDir()})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "{}\n", stdout.String())
}
