// Copyright 2026 The git-pivot Authors
// SPDX-License-Identifier: MIT

package testable

import (
	"io/fs"
	"os"
)

// MockFileSystem is a test double for FileSystem. Methods call the matching
// function field when set and fall through to OsFileSystem otherwise.
//
// Files, when non-nil, serves ReadFile from memory; missing keys report
// fs.ErrNotExist.
type MockFileSystem struct {
	AbsFn          func(path string) (string, error)
	EvalSymlinksFn func(path string) (string, error)
	StatFn         func(name string) (os.FileInfo, error)
	ReadFileFn     func(name string) ([]byte, error)

	Files map[string]string
}

var real OsFileSystem

// Abs calls AbsFn if set, otherwise delegates to OsFileSystem.
func (m *MockFileSystem) Abs(path string) (string, error) {
	if m.AbsFn != nil {
		return m.AbsFn(path)
	}
	return real.Abs(path)
}

// EvalSymlinks calls EvalSymlinksFn if set, otherwise delegates to OsFileSystem.
func (m *MockFileSystem) EvalSymlinks(path string) (string, error) {
	if m.EvalSymlinksFn != nil {
		return m.EvalSymlinksFn(path)
	}
	return real.EvalSymlinks(path)
}

// Stat calls StatFn if set, otherwise delegates to OsFileSystem.
func (m *MockFileSystem) Stat(name string) (os.FileInfo, error) {
	if m.StatFn != nil {
		return m.StatFn(name)
	}
	return real.Stat(name)
}

// ReadFile serves Files, then ReadFileFn, then the real file system.
func (m *MockFileSystem) ReadFile(name string) ([]byte, error) {
	if m.Files != nil {
		data, ok := m.Files[name]
		if !ok {
			return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
		}
		return []byte(data), nil
	}
	if m.ReadFileFn != nil {
		return m.ReadFileFn(name)
	}
	return real.ReadFile(name)
}

// Compile-time interface check.
var _ FileSystem = (*MockFileSystem)(nil)
