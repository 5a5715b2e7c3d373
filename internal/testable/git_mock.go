// Copyright 2026 The git-pivot Authors
// SPDX-License-Identifier: MIT

package testable

import (
	"io"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/storer"
)

// MockGitOpener is a test double for GitOpener.
// PlainOpen returns Repo, or OpenErr, or ErrRepositoryNotExists if both are nil.
type MockGitOpener struct {
	Repo    GitRepository
	OpenErr error

	// OpenCalls records the paths passed to PlainOpen.
	OpenCalls []string
}

// PlainOpen records the call and returns Repo/OpenErr.
func (m *MockGitOpener) PlainOpen(path string) (GitRepository, error) {
	m.OpenCalls = append(m.OpenCalls, path)
	if m.OpenErr != nil {
		return nil, m.OpenErr
	}
	if m.Repo != nil {
		return m.Repo, nil
	}
	return nil, git.ErrRepositoryNotExists
}

// MockGitRepository is a test double for GitRepository.
type MockGitRepository struct {
	HeadRef *plumbing.Reference
	HeadErr error

	// Commits are served by Log in the given order.
	Commits []*object.Commit
	LogErr  error
	// IterErr, when set, fails the iterator once Commits are exhausted.
	IterErr error
	// LogCalls records LogOptions passed to Log().
	LogCalls []*git.LogOptions
	// Iters records the iterators handed out by Log().
	Iters []*CommitSliceIter
}

// Head returns HeadRef and HeadErr.
func (m *MockGitRepository) Head() (*plumbing.Reference, error) {
	return m.HeadRef, m.HeadErr
}

// Log records the call and iterates over Commits.
func (m *MockGitRepository) Log(opts *git.LogOptions) (object.CommitIter, error) {
	m.LogCalls = append(m.LogCalls, opts)
	if m.LogErr != nil {
		return nil, m.LogErr
	}
	it := &CommitSliceIter{Commits: m.Commits, Err: m.IterErr}
	m.Iters = append(m.Iters, it)
	return it, nil
}

// CommitSliceIter is an object.CommitIter over an in-memory slice.
// If Err is set, iteration fails with it once the slice is exhausted.
type CommitSliceIter struct {
	Commits []*object.Commit
	Err     error
	Closed  bool

	pos int
}

// Next returns the next commit, io.EOF at the end, or Err.
func (it *CommitSliceIter) Next() (*object.Commit, error) {
	if it.pos >= len(it.Commits) {
		if it.Err != nil {
			return nil, it.Err
		}
		return nil, io.EOF
	}
	c := it.Commits[it.pos]
	it.pos++
	return c, nil
}

// ForEach calls cb for each remaining commit. storer.ErrStop ends the
// iteration without error, matching go-git iterators.
func (it *CommitSliceIter) ForEach(cb func(*object.Commit) error) error {
	defer it.Close()
	for {
		c, err := it.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if err := cb(c); err != nil {
			if err == storer.ErrStop {
				return nil
			}
			return err
		}
	}
}

// Close marks the iterator closed.
func (it *CommitSliceIter) Close() { it.Closed = true }

// Compile-time interface checks.
var _ GitOpener = (*MockGitOpener)(nil)
var _ GitRepository = (*MockGitRepository)(nil)
var _ object.CommitIter = (*CommitSliceIter)(nil)
