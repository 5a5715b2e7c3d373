// Copyright 2026 The git-pivot Authors
// SPDX-License-Identifier: MIT

// Package history walks a repository's commit log from HEAD and yields
// commit records inside an optional date range.
package history

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"

	"github.com/paulkoerbitz/git-pivot/internal/commit"
	"github.com/paulkoerbitz/git-pivot/internal/testable"
)

// progressEvery is how often, in examined commits, progress is logged.
const progressEvery = 1000

// errStopIter stops the commit iterator after MaxCommits matches.
var errStopIter = errors.New("stop iteration")

// Options filter the walk.
type Options struct {
	// From, when non-zero, drops commits strictly before it.
	From time.Time
	// Until, when non-zero, drops commits strictly after it.
	Until time.Time
	// MaxCommits, when positive, stops after that many matching commits.
	MaxCommits int
}

// DateLayout is the day format accepted by ParseRange.
const DateLayout = "2006-01-02"

// ErrInvalidRange is wrapped by every ParseRange error.
var ErrInvalidRange = errors.New("invalid date range")

// ParseRange builds Options from YYYY-MM-DD bounds read in UTC. An empty
// bound is open. until covers its whole day.
func ParseRange(from, until string, maxCommits int) (Options, error) {
	var opts Options
	if from != "" {
		t, err := time.Parse(DateLayout, from)
		if err != nil {
			return opts, fmt.Errorf("%w: invalid from date %q (want YYYY-MM-DD)", ErrInvalidRange, from)
		}
		opts.From = t
	}
	if until != "" {
		t, err := time.Parse(DateLayout, until)
		if err != nil {
			return opts, fmt.Errorf("%w: invalid until date %q (want YYYY-MM-DD)", ErrInvalidRange, until)
		}
		opts.Until = t.Add(24*time.Hour - time.Second)
	}
	if !opts.From.IsZero() && !opts.Until.IsZero() && opts.Until.Before(opts.From) {
		return opts, fmt.Errorf("%w: until date %s is before from date %s", ErrInvalidRange, until, from)
	}
	if maxCommits < 0 {
		return opts, fmt.Errorf("%w: max commits must be non-negative, got %d", ErrInvalidRange, maxCommits)
	}
	opts.MaxCommits = maxCommits
	return opts, nil
}

// Contains reports whether a commit at t passes the date filter.
func (o Options) Contains(t time.Time) bool {
	if !o.From.IsZero() && t.Before(o.From) {
		return false
	}
	if !o.Until.IsZero() && t.After(o.Until) {
		return false
	}
	return true
}

// Walker yields the commits reachable from HEAD, newest first.
type Walker struct {
	repo testable.GitRepository
	opts Options
}

// Open opens the repository at path through opener.
func Open(opener testable.GitOpener, path string, opts Options) (*Walker, error) {
	repo, err := opener.PlainOpen(path)
	if err != nil {
		return nil, fmt.Errorf("opening repo %q: %w", path, err)
	}
	return New(repo, opts), nil
}

// New returns a Walker over an already opened repository.
func New(repo testable.GitRepository, opts Options) *Walker {
	return &Walker{repo: repo, opts: opts}
}

// Each calls fn with every matching commit in reverse committer-time order.
// A repository without commits yields nothing.
func (w *Walker) Each(ctx context.Context, fn func(commit.Record) error) error {
	head, err := w.repo.Head()
	if err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			slog.Debug("repository has no HEAD, nothing to walk")
			return nil
		}
		return fmt.Errorf("resolving HEAD: %w", err)
	}

	iter, err := w.repo.Log(&git.LogOptions{
		From:  head.Hash(),
		Order: git.LogOrderCommitterTime,
	})
	if err != nil {
		return fmt.Errorf("creating log iterator: %w", err)
	}
	defer iter.Close()

	examined, matched := 0, 0
	err = iter.ForEach(func(c *object.Commit) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		examined++
		if examined%progressEvery == 0 {
			slog.Debug("walking history", "examined", examined, "matched", matched)
		}

		rec := commit.FromObject(c)
		if !w.opts.Contains(time.Unix(rec.Seconds, 0)) {
			return nil
		}
		matched++
		if err := fn(rec); err != nil {
			return err
		}
		if w.opts.MaxCommits > 0 && matched >= w.opts.MaxCommits {
			return errStopIter
		}
		return nil
	})
	if err != nil && !errors.Is(err, errStopIter) {
		return fmt.Errorf("walking commits: %w", err)
	}

	slog.Debug("history walk complete", "examined", examined, "matched", matched)
	return nil
}
