package domain

import (
	"errors"
	"fmt"
)

// Domain errors.
var (
	ErrNoActiveTask        = errors.New("no active task (run 'taskmd new' first)")
	ErrAlreadyInitialized  = errors.New("taskmd already initialized")
	ErrEmptyTitle          = errors.New("title cannot be empty")
	ErrEmptyPrompt         = errors.New("prompt cannot be empty")
	ErrSplitTimeout        = errors.New("assistant did not respond within the time budget")
	ErrRateLimited         = errors.New("assistant usage limit reached; wait for the limit to reset before retrying")
	ErrUnsupportedLanguage = errors.New("unsupported language code")
)

// ExecutionError reports a failed assistant invocation.
// ExitCode is -1 when the process could not be launched at all
// (binary not found, permission denied); Message then carries the
// launch error instead of captured stderr.
type ExecutionError struct {
	Message  string
	ExitCode int
}

func (e *ExecutionError) Error() string {
	if e.ExitCode < 0 {
		return fmt.Sprintf("assistant failed to launch: %s", e.Message)
	}
	if e.Message == "" {
		return fmt.Sprintf("assistant exited with code %d", e.ExitCode)
	}
	return fmt.Sprintf("assistant exited with code %d: %s", e.ExitCode, e.Message)
}
