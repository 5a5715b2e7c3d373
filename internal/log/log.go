// Copyright 2026 The git-pivot Authors
// SPDX-License-Identifier: MIT

// Package log configures structured logging for git-pivot using log/slog.
package log

import (
	"io"
	"log/slog"
)

// Level maps the verbosity flags to a slog level. Quiet wins over verbose.
//
//   - quiet mode:   only WARN and ERROR messages
//   - normal mode:  INFO and above
//   - verbose mode: DEBUG and above
func Level(verbose, quiet bool) slog.Level {
	switch {
	case quiet:
		return slog.LevelWarn
	case verbose:
		return slog.LevelDebug
	default:
		return slog.LevelInfo
	}
}

// Setup installs a slog.TextHandler writing to w as the default logger.
// Reports go to stdout, so w is normally stderr.
func Setup(w io.Writer, verbose, quiet bool) {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: Level(verbose, quiet),
	})
	slog.SetDefault(slog.New(handler))
}
