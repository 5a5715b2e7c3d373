// Copyright 2026 The git-pivot Authors
// SPDX-License-Identifier: MIT

// Package stats defines per-commit statistics, a registry of the named ones,
// and the single-pass loop that feeds commit records to them.
package stats

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"sync"

	"github.com/paulkoerbitz/git-pivot/internal/commit"
)

// ErrUnknown is returned by New for names with no registered factory.
var ErrUnknown = errors.New("unknown statistic")

// PerCommitStatistic accumulates state from each commit and renders it once
// the stream is exhausted.
type PerCommitStatistic interface {
	// Name returns the identifier of this statistic (e.g., "punchcard").
	Name() string

	// ProcessCommit folds one record into the statistic. It must not fail.
	ProcessCommit(rec commit.Record)

	// PrintResult writes the final result to w.
	PrintResult(w io.Writer) error
}

// Colorizer is implemented by statistics that print colored titles.
type Colorizer interface {
	DisableColor()
}

// DisableColor switches off colored output on every statistic that supports
// it, independent of color.NoColor.
func DisableColor(statistics ...PerCommitStatistic) {
	for _, s := range statistics {
		if c, ok := s.(Colorizer); ok {
			c.DisableColor()
		}
	}
}

// Source yields commit records in order until exhausted or fn returns an
// error.
type Source interface {
	Each(ctx context.Context, fn func(commit.Record) error) error
}

// Records is an in-memory Source.
type Records []commit.Record

// Each calls fn for every record in order.
func (r Records) Each(ctx context.Context, fn func(commit.Record) error) error {
	for _, rec := range r {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := fn(rec); err != nil {
			return err
		}
	}
	return nil
}

// Run feeds every record from src to every statistic exactly once, then
// prints each result to w in the order the statistics were given. It returns
// the number of records processed.
func Run(ctx context.Context, src Source, w io.Writer, statistics ...PerCommitStatistic) (int, error) {
	count := 0
	err := src.Each(ctx, func(rec commit.Record) error {
		count++
		for _, s := range statistics {
			s.ProcessCommit(rec)
		}
		return nil
	})
	if err != nil {
		return count, fmt.Errorf("reading commits: %w", err)
	}
	slog.Debug("commit stream exhausted", "commits", count, "statistics", len(statistics))

	for _, s := range statistics {
		if err := s.PrintResult(w); err != nil {
			return count, fmt.Errorf("%s: %w", s.Name(), err)
		}
	}
	return count, nil
}

// Factory builds a fresh, empty statistic.
type Factory func() PerCommitStatistic

var (
	mu       sync.RWMutex
	registry = make(map[string]Factory)
)

// Register adds a named factory to the registry.
// It panics if the name is already registered.
func Register(name string, f Factory) {
	mu.Lock()
	defer mu.Unlock()
	if _, exists := registry[name]; exists {
		panic(fmt.Sprintf("statistic already registered: %s", name))
	}
	registry[name] = f
}

// New builds a fresh instance of the named statistic.
func New(name string) (PerCommitStatistic, error) {
	mu.RLock()
	f, ok := registry[name]
	mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknown, name)
	}
	return f(), nil
}

// List returns the registered names in sorted order.
func List() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
