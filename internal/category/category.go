// Copyright 2026 The git-pivot Authors
// SPDX-License-Identifier: MIT

// Package category maps commit records to display labels along one axis of
// a pivot table.
package category

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/paulkoerbitz/git-pivot/internal/commit"
)

// ErrUnknown is returned by Parse for names that match no selector.
var ErrUnknown = errors.New("unknown category")

// Wildcard is the label used when no category is selected.
const Wildcard = "*"

// Placeholders used when the record carries no author data.
const (
	UnknownAuthor = "<UNKNOWN>"
	UnknownEmail  = "<UNKNOWN EMAIL>"
)

// Selector chooses how a commit is labelled along an axis.
type Selector int

const (
	None Selector = iota
	Date
	Week
	Month
	Year
	DayOfWeek
	DayOfMonth
	Hour
	Author
	AuthorEmail
	// File and Directory are accepted but have no extraction rule; they
	// label every commit with their own name until per-file diff data is
	// part of commit.Record.
	File
	Directory
)

var names = [...]string{
	None:        "None",
	Date:        "Date",
	Week:        "Week",
	Month:       "Month",
	Year:        "Year",
	DayOfWeek:   "DayOfWeek",
	DayOfMonth:  "DayOfMonth",
	Hour:        "Hour",
	Author:      "Author",
	AuthorEmail: "AuthorEmail",
	File:        "File",
	Directory:   "Directory",
}

// String returns the variant name.
func (s Selector) String() string {
	if s < 0 || int(s) >= len(names) {
		return "Selector(" + strconv.Itoa(int(s)) + ")"
	}
	return names[s]
}

// All returns every selector in declaration order.
func All() []Selector {
	out := make([]Selector, len(names))
	for i := range names {
		out[i] = Selector(i)
	}
	return out
}

// Parse resolves a selector by name, case-insensitively. Dashes and
// underscores are ignored so "day-of-week" and "author_email" both work.
// The empty string is None.
func Parse(name string) (Selector, error) {
	key := normalize(name)
	if key == "" {
		return None, nil
	}
	for i, n := range names {
		if normalize(n) == key {
			return Selector(i), nil
		}
	}
	return None, fmt.Errorf("%w: %q", ErrUnknown, name)
}

func normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer("-", "", "_", "").Replace(s)
}

// Extract returns the label of rec along sel. It never fails: missing author
// data yields a placeholder and unimplemented selectors yield their name.
func Extract(rec commit.Record, sel Selector) string {
	switch sel {
	case None:
		return Wildcard
	case Date:
		return rec.LocalTime().Format("2006-01-02")
	case Week:
		// Year followed by the weekday index (0=Sunday), as strftime "%Y-%w".
		t := rec.LocalTime()
		return t.Format("2006") + "-" + strconv.Itoa(int(t.Weekday()))
	case Month:
		return rec.LocalTime().Format("2006-01")
	case Year:
		return rec.LocalTime().Format("2006")
	case DayOfWeek:
		return rec.LocalTime().Format("Mon")
	case DayOfMonth:
		return rec.LocalTime().Format("02")
	case Hour:
		return strconv.Itoa(rec.LocalTime().Hour())
	case Author:
		if rec.AuthorName == "" {
			return UnknownAuthor
		}
		return rec.AuthorName
	case AuthorEmail:
		if rec.AuthorEmail == "" {
			return UnknownEmail
		}
		return rec.AuthorEmail
	default:
		return sel.String()
	}
}
