// Copyright 2026 The git-pivot Authors
// SPDX-License-Identifier: MIT

package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paulkoerbitz/git-pivot/internal/testable"
)

func withFiles(t *testing.T, files map[string]string) {
	t.Helper()
	old := fsys
	t.Cleanup(func() { fsys = old })
	fsys = &testable.MockFileSystem{Files: files}
}

func TestLoad_MissingFile(t *testing.T) {
	dir := t.TempDir()
	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.NotNil(t, cfg)
	assert.Empty(t, cfg.Statistics)
	assert.Zero(t, cfg.Pivot)
}

func TestLoad_ValidFile(t *testing.T) {
	dir := t.TempDir()
	content := `
statistics:
  - punchcard
pivot:
  x: author
  y: year
  statistic: commits
max_commits: 500
no_color: true
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(content), 0o600))

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"punchcard"}, cfg.Statistics)
	assert.Equal(t, PivotConfig{X: "author", Y: "year", Statistic: "commits"}, cfg.Pivot)
	assert.Equal(t, 500, cfg.MaxCommits)
	assert.True(t, cfg.NoColor)
}

func TestLoad_TOMLFile(t *testing.T) {
	dir := t.TempDir()
	content := `
statistics = ["authors"]
max_commits = 20

[pivot]
x = "hour"
y = "day-of-week"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, TOMLFileName), []byte(content), 0o600))

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"authors"}, cfg.Statistics)
	assert.Equal(t, 20, cfg.MaxCommits)
	assert.Equal(t, "hour", cfg.Pivot.X)
	assert.Equal(t, "day-of-week", cfg.Pivot.Y)
}

func TestLoad_YAMLWinsOverTOML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte("max_commits: 1\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, TOMLFileName), []byte("max_commits = 2\n"), 0o600))

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, 1, cfg.MaxCommits)
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte("{{invalid yaml"), 0o600))

	cfg, err := Load(dir)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), FileName)
}

func TestLoad_InvalidTOML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, TOMLFileName), []byte("max_commits = = 3"), 0o600))

	cfg, err := Load(dir)
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestLoad_EmptyFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(""), 0o600))

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.NotNil(t, cfg)
	assert.Empty(t, cfg.Statistics)
}

func TestWrite_OmitsZeroFields(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, &Config{Pivot: PivotConfig{X: "author"}}))
	assert.Equal(t, "pivot:\n  x: author\n", buf.String())
}

func TestWrite_AllFieldsRoundTrip(t *testing.T) {
	cfg := &Config{
		Statistics: []string{"punchcard"},
		Pivot:      PivotConfig{X: "author", Y: "hour", Statistic: "deletions"},
		MaxCommits: 5,
		NoColor:    true,
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, cfg))
	out := buf.String()
	assert.Contains(t, out, "pivot:\n  x: author\n  \"y\": hour\n  statistic: deletions\n")
	assert.Contains(t, out, "max_commits: 5\nno_color: true\n")

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), buf.Bytes(), 0o600))
	got, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestLoad_ReadsThroughFileSystem(t *testing.T) {
	withFiles(t, map[string]string{
		"/repo/.git-pivot.toml": "statistics = [\"punchcard\"]\n[pivot]\ny = \"hour\"\n",
	})

	cfg, err := Load("/repo")
	require.NoError(t, err)
	assert.Equal(t, []string{"punchcard"}, cfg.Statistics)
	assert.Equal(t, "hour", cfg.Pivot.Y)
}

func TestLoad_ReadError(t *testing.T) {
	old := fsys
	t.Cleanup(func() { fsys = old })
	fsys = &testable.MockFileSystem{
		ReadFileFn: func(string) ([]byte, error) { return nil, os.ErrPermission },
	}

	_, err := Load("/repo")
	assert.ErrorIs(t, err, os.ErrPermission)
}
