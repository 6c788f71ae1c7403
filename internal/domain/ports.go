package domain

import (
	"context"
	"time"
)

// TaskStore owns the single active task file and the archive directory.
// It is the only component with mutation rights over the active file.
type TaskStore interface {
	// Exists reports whether the active task file is present.
	Exists() bool

	// Read returns the active task content. ErrNoActiveTask when absent.
	Read() (*TaskContent, error)

	// Write overwrites the active task file. Callers must rotate first
	// when pre-empting an existing task.
	Write(content string) error

	// Rotate archives the active task and removes it. Returns nil with
	// no error when there is nothing to rotate.
	Rotate() (*ArchivedTaskRef, error)

	// AppendLog appends an execution log entry to the active file.
	// ErrNoActiveTask when the file vanished since the last read.
	AppendLog(entry ExecutionLogEntry) error

	// Path returns the active task file path.
	Path() string
}

// HistoryIndex derives history and status views. Read-only.
type HistoryIndex interface {
	// List returns up to limit archive entries, newest first.
	List(limit int) ([]ArchivedTaskRef, error)

	// Status summarizes the active task and archive state.
	Status() (*StatusSnapshot, error)
}

// RunInput configures an execution-mode assistant invocation.
type RunInput struct {
	// TaskFilePath is the active task file, as stored (absolute or
	// root-relative); the runner rewrites it relative to the current
	// working directory before embedding it in the instruction.
	TaskFilePath string

	// AllowEdits grants the assistant file-editing privileges.
	AllowEdits bool

	// Debug echoes the spawned command line to stderr.
	Debug bool
}

// RunResult is the outcome of an execution-mode invocation. Output is
// always InteractiveOutputSentinel; the real output went to the
// terminal. Duration is wall clock from spawn to exit and is valid on
// the failure path too, so the caller can log failed attempts.
type RunResult struct {
	Output   string
	Duration time.Duration
}

// SplitInput configures a split-mode assistant invocation.
type SplitInput struct {
	Title       string
	Description string

	// Count requests an exact number of subtasks; 0 asks for a 3-7 range.
	Count int
}

// Assistant spawns the external assistant process. Execution mode and
// split mode are distinct operations with different transports: Run
// inherits the terminal, Split captures pipes under a hard timeout.
type Assistant interface {
	Run(ctx context.Context, in RunInput) (RunResult, error)
	Split(ctx context.Context, in SplitInput) (string, error)

	// SendPrompt passes raw text to the assistant interactively.
	SendPrompt(ctx context.Context, text string) error
}

// ProjectScaffold performs the best-effort side operations of init.
// Failures here must never abort init; callers log and continue.
type ProjectScaffold interface {
	// PatchGitignore adds the taskmd entries to the project's
	// .gitignore when the root is inside a git work tree.
	PatchGitignore(root string) error

	// WriteCommandFile generates the host assistant's custom command
	// file for the project.
	WriteCommandFile(root string, loc Locale) error
}

// SettingsStore persists project settings.
type SettingsStore interface {
	Load() (*Settings, error)
	Save(s *Settings) error
}

// Logger records diagnostics to the project log file.
type Logger interface {
	Debug(category, msg string)
	Info(category, msg string)
	Warn(category, msg string)
	Error(category, msg string)
}

// Clock provides time operations for testability.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// RealClock implements Clock using the system clock.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time {
	return time.Now()
}
