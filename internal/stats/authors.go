// Copyright 2026 The git-pivot Authors
// SPDX-License-Identifier: MIT

package stats

import (
	"fmt"
	"io"
	"sort"

	"github.com/paulkoerbitz/git-pivot/internal/category"
	"github.com/paulkoerbitz/git-pivot/internal/commit"
)

func init() {
	Register("authors", func() PerCommitStatistic { return NewCommitCountByAuthor() })
}

// AuthorCount is one line of the author ranking.
type AuthorCount struct {
	Author string
	Count  int
}

// CommitCountByAuthor counts commits per author email. Commits without an
// email fall back to the author name, then to a placeholder.
type CommitCountByAuthor struct {
	counts map[string]int
}

// NewCommitCountByAuthor returns an empty counter.
func NewCommitCountByAuthor() *CommitCountByAuthor {
	return &CommitCountByAuthor{counts: make(map[string]int)}
}

// Name returns "authors".
func (c *CommitCountByAuthor) Name() string { return "authors" }

// ProcessCommit increments the count of the commit's author.
func (c *CommitCountByAuthor) ProcessCommit(rec commit.Record) {
	c.counts[authorKey(rec)]++
}

func authorKey(rec commit.Record) string {
	switch {
	case rec.AuthorEmail != "":
		return rec.AuthorEmail
	case rec.AuthorName != "":
		return rec.AuthorName
	default:
		return category.UnknownAuthor
	}
}

// Ranking returns the counts sorted by descending count, ties by author.
func (c *CommitCountByAuthor) Ranking() []AuthorCount {
	out := make([]AuthorCount, 0, len(c.counts))
	for author, n := range c.counts {
		out = append(out, AuthorCount{Author: author, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Author < out[j].Author
	})
	return out
}

// PrintResult writes one "<author>: <count>" line per author.
func (c *CommitCountByAuthor) PrintResult(w io.Writer) error {
	for _, ac := range c.Ranking() {
		if _, err := fmt.Fprintf(w, "%s: %d\n", ac.Author, ac.Count); err != nil {
			return fmt.Errorf("print authors: %w", err)
		}
	}
	return nil
}
