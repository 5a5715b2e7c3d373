// Copyright 2026 The git-pivot Authors
// SPDX-License-Identifier: MIT

package category

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paulkoerbitz/git-pivot/internal/commit"
)

// tuesday is 2024-03-05 14:07 at UTC+01:00, which is 13:07 UTC.
var tuesday = commit.Record{
	Seconds:       time.Date(2024, 3, 5, 13, 7, 0, 0, time.UTC).Unix(),
	OffsetMinutes: 60,
	AuthorName:    "Alice",
	AuthorEmail:   "alice@example.com",
}

func TestExtract(t *testing.T) {
	tests := []struct {
		sel  Selector
		want string
	}{
		{None, "*"},
		{Date, "2024-03-05"},
		{Week, "2024-2"},
		{Month, "2024-03"},
		{Year, "2024"},
		{DayOfWeek, "Tue"},
		{DayOfMonth, "05"},
		{Hour, "14"},
		{Author, "Alice"},
		{AuthorEmail, "alice@example.com"},
		{File, "File"},
		{Directory, "Directory"},
	}

	for _, tt := range tests {
		t.Run(tt.sel.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, Extract(tuesday, tt.sel))
		})
	}
}

func TestExtract_LocalOffsetCrossesDay(t *testing.T) {
	// 23:30 UTC on Sunday 2024-03-10 is 01:30 Monday at UTC+02:00.
	rec := commit.Record{
		Seconds:       time.Date(2024, 3, 10, 23, 30, 0, 0, time.UTC).Unix(),
		OffsetMinutes: 120,
	}

	assert.Equal(t, "2024-03-11", Extract(rec, Date))
	assert.Equal(t, "Mon", Extract(rec, DayOfWeek))
	assert.Equal(t, "1", Extract(rec, Hour))
	assert.Equal(t, "2024-1", Extract(rec, Week))
	assert.Equal(t, "11", Extract(rec, DayOfMonth))
}

func TestExtract_HourHasNoLeadingZero(t *testing.T) {
	rec := commit.Record{Seconds: time.Date(2024, 1, 1, 7, 0, 0, 0, time.UTC).Unix()}
	assert.Equal(t, "7", Extract(rec, Hour))

	rec.Seconds = time.Date(2024, 1, 1, 0, 59, 0, 0, time.UTC).Unix()
	assert.Equal(t, "0", Extract(rec, Hour))
}

func TestExtract_MissingAuthorUsesPlaceholders(t *testing.T) {
	rec := commit.Record{Seconds: 0}

	assert.Equal(t, UnknownAuthor, Extract(rec, Author))
	assert.Equal(t, UnknownEmail, Extract(rec, AuthorEmail))
}

func TestExtract_OutOfRangeSelectorDegrades(t *testing.T) {
	assert.Equal(t, "Selector(42)", Extract(tuesday, Selector(42)))
}

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Selector
	}{
		{"", None},
		{"none", None},
		{"date", Date},
		{"Week", Week},
		{"MONTH", Month},
		{"day-of-week", DayOfWeek},
		{"dayofmonth", DayOfMonth},
		{"hour", Hour},
		{"author", Author},
		{"author_email", AuthorEmail},
		{" file ", File},
		{"directory", Directory},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_Unknown(t *testing.T) {
	_, err := Parse("weekday-hour")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknown)
	assert.Contains(t, err.Error(), "weekday-hour")
}

func TestAll_RoundTripsThroughParse(t *testing.T) {
	all := All()
	require.Len(t, all, 12)
	for _, sel := range all {
		got, err := Parse(sel.String())
		require.NoError(t, err)
		assert.Equal(t, sel, got)
	}
}
