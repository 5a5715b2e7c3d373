// Package mcpserver exposes git-pivot's reports as MCP (Model Context
// Protocol) tools.
package mcpserver

import (
	"fmt"

	"github.com/paulkoerbitz/git-pivot/internal/testable"
)

// fsys is the file system used by ResolvePath. Tests may replace it.
var fsys testable.FileSystem = testable.DefaultFS

// ResolvePath resolves a repository path to an absolute, symlink-free
// directory. An empty path means the current directory.
func ResolvePath(path string) (string, error) {
	if path == "" {
		path = "."
	}

	absPath, err := fsys.Abs(path)
	if err != nil {
		return "", fmt.Errorf("cannot resolve path %q: %w", path, err)
	}

	absPath, err = fsys.EvalSymlinks(absPath)
	if err != nil {
		return "", fmt.Errorf("cannot resolve path %q: %w", path, err)
	}

	info, err := fsys.Stat(absPath)
	if err != nil {
		return "", fmt.Errorf("path %q does not exist", path)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%q is not a directory", path)
	}
	return absPath, nil
}
