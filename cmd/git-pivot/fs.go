package main

import "github.com/paulkoerbitz/git-pivot/internal/testable"

// cmdFS is the file system implementation used by CLI commands.
// Override in tests with a testable.MockFileSystem.
var cmdFS testable.FileSystem = testable.DefaultFS

// cmdGitOpener opens repositories for CLI commands.
// Override in tests with a testable.MockGitOpener.
var cmdGitOpener testable.GitOpener = testable.DefaultGitOpener
