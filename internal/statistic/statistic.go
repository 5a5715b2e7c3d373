// Copyright 2026 The git-pivot Authors
// SPDX-License-Identifier: MIT

// Package statistic maps commit records to the numeric contribution they add
// to a pivot table cell.
package statistic

import (
	"errors"
	"fmt"
	"strings"

	"github.com/paulkoerbitz/git-pivot/internal/commit"
)

// ErrUnknown is returned by Parse for names that match no selector.
var ErrUnknown = errors.New("unknown statistic")

// Selector chooses the contribution summed into each cell.
type Selector int

const (
	// Commits counts one per commit.
	Commits Selector = iota
	// Additions is a placeholder: every commit contributes +1 regardless of
	// its diff. Line counts are not part of commit.Record.
	Additions
	// Deletions is a placeholder: every commit contributes -1 regardless of
	// its diff.
	Deletions
)

// String returns the lower-case statistic name used in titles and flags.
func (s Selector) String() string {
	switch s {
	case Commits:
		return "commits"
	case Additions:
		return "additions"
	case Deletions:
		return "deletions"
	default:
		return fmt.Sprintf("statistic(%d)", int(s))
	}
}

// Parse resolves a selector by name, case-insensitively. The empty string is
// Commits.
func Parse(name string) (Selector, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "commits":
		return Commits, nil
	case "additions":
		return Additions, nil
	case "deletions":
		return Deletions, nil
	default:
		return Commits, fmt.Errorf("%w: %q", ErrUnknown, name)
	}
}

// Evaluate returns the contribution of rec under sel.
func Evaluate(_ commit.Record, sel Selector) int64 {
	switch sel {
	case Deletions:
		return -1
	default:
		return 1
	}
}
