package main

import "fmt"

// Exit codes for the git-pivot CLI.
const (
	ExitOK           = 0 // Report written.
	ExitInvalidArgs  = 1 // Invalid arguments, config or path.
	ExitTotalFailure = 3 // Repository unreadable, no output produced.
)

// exitCodeError carries a non-zero exit code through cobra's error handling.
type exitCodeError struct {
	code int
	msg  string
}

func (e *exitCodeError) Error() string { return e.msg }

// ExitCode returns the exit code for this error.
func (e *exitCodeError) ExitCode() int { return e.code }

// exitError creates an exitCodeError. If msg is empty, the error message is
// set to a generic description of the exit code.
func exitError(code int, format string, args ...any) *exitCodeError {
	msg := fmt.Sprintf(format, args...)
	if msg == "" {
		switch code {
		case ExitTotalFailure:
			msg = "git-pivot: no output produced"
		default:
			msg = "git-pivot: error"
		}
	}
	return &exitCodeError{code: code, msg: msg}
}
