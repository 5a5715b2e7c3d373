// Copyright 2026 The git-pivot Authors
// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunPivot_NoCategories(t *testing.T) {
	dir := initTestRepo(t)
	cmd, stdout, _ := newTestCmd(t)
	cmd.SetArgs([]string{"pivot", dir})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "Statistic for commits\n  | *\n--+--\n* | 3\n", stdout.String())
}

func TestRunPivot_ByAuthor(t *testing.T) {
	dir := initTestRepo(t)
	cmd, stdout, _ := newTestCmd(t)
	cmd.SetArgs([]string{"pivot", dir, "--x", "author"})

	require.NoError(t, cmd.Execute())
	want := "Statistic for commits\n" +
		"      | *\n" +
		"------+--\n" +
		"alice | 2\n" +
		"  bob | 1\n"
	assert.Equal(t, want, stdout.String())
}

func TestRunPivot_DayOfWeekByYear(t *testing.T) {
	dir := initTestRepo(t)
	cmd, stdout, _ := newTestCmd(t)
	cmd.SetArgs([]string{"pivot", dir, "--x", "day-of-week", "--y", "year"})

	require.NoError(t, cmd.Execute())
	want := strings.Join([]string{
		"Statistic for commits",
		"    | 2024",
		"----+-----",
		"Mon |    1",
		"Tue |    1",
		"Wed |    0",
		"Thu |    0",
		"Fri |    0",
		"Sat |    1",
		"Sun |    0",
	}, "\n") + "\n"
	assert.Equal(t, want, stdout.String())
}

func TestRunPivot_DeletionsByAuthorEmail(t *testing.T) {
	dir := initTestRepo(t)
	cmd, stdout, _ := newTestCmd(t)
	cmd.SetArgs([]string{"pivot", dir, "--x", "author_email", "--statistic", "deletions"})

	require.NoError(t, cmd.Execute())
	want := "Statistic for deletions\n" +
		"                  |  *\n" +
		"------------------+---\n" +
		"alice@example.com | -2\n" +
		"  bob@example.com | -1\n"
	assert.Equal(t, want, stdout.String())
}

func TestRunPivot_DateRange(t *testing.T) {
	dir := initTestRepo(t)
	cmd, stdout, _ := newTestCmd(t)
	cmd.SetArgs([]string{"pivot", dir, "--x", "author", "--from", "2024-03-05", "--until", "2024-03-05"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "Statistic for commits\n    | *\n----+--\nbob | 1\n", stdout.String())
}

func TestRunPivot_ConfigDefaultsAndFlagOverride(t *testing.T) {
	dir := initTestRepo(t)
	writeTestFile(t, dir, ".git-pivot.toml", "[pivot]\nx = \"author\"\ny = \"year\"\n")

	cmd, stdout, _ := newTestCmd(t)
	cmd.SetArgs([]string{"pivot", dir})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, stdout.String(), "alice |    2")
	assert.Contains(t, stdout.String(), "      | 2024")

	cmd, stdout, _ = newTestCmd(t)
	cmd.SetArgs([]string{"pivot", dir, "--y", "none"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, stdout.String(), "      | *\n")
}

func TestRunPivot_InvalidArgs(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"unknown x", []string{"--x", "planet"}, "--x"},
		{"unknown y", []string{"--y", "moon"}, "--y"},
		{"unknown statistic", []string{"--statistic", "churn"}, "--statistic"},
		{"bad from", []string{"--from", "03/05/2024"}, "invalid from date"},
		{"bad until", []string{"--until", "yesterday"}, "invalid until date"},
		{"reversed range", []string{"--from", "2024-03-06", "--until", "2024-03-05"}, "is before from date"},
		{"negative max", []string{"--max-commits", "-1"}, "non-negative"},
	}

	dir := initTestRepo(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, stdout, _ := newTestCmd(t)
			cmd.SetArgs(append([]string{"pivot", dir}, tt.args...))

			err := cmd.Execute()
			var ece *exitCodeError
			require.True(t, errors.As(err, &ece), "got %v", err)
			assert.Equal(t, ExitInvalidArgs, ece.ExitCode())
			assert.Contains(t, err.Error(), tt.want)
			assert.Empty(t, stdout.String())
		})
	}
}

func TestRunPivot_EmptyRepository(t *testing.T) {
	isolateGlobalConfig(t)
	dir := t.TempDir()
	cmd, _, _ := newTestCmd(t)
	cmd.SetArgs([]string{"stats", dir, "-s", "authors"})
	// Not yet a repository.
	require.Error(t, cmd.Execute())

	dir = initEmptyRepo(t)
	cmd, stdout, _ := newTestCmd(t)
	cmd.SetArgs([]string{"pivot", dir, "--x", "hour", "--y", "author"})
	require.NoError(t, cmd.Execute())

	lines := strings.Split(strings.TrimSuffix(stdout.String(), "\n"), "\n")
	require.Len(t, lines, 27) // title, header, separator, 24 hours
	assert.Equal(t, "  ", lines[1])
	assert.Equal(t, "--", lines[2])
	assert.Equal(t, "23", lines[26])
}
