// Package assistant spawns the external AI assistant process.
//
// Two invocation modes with deliberately separate implementations:
// execution mode inherits the terminal so the assistant's output is
// seen live, split mode captures pipes so the response can be parsed.
package assistant

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/taskmd/taskmd/internal/domain"
)

// SplitTimeout is the hard time budget for split-mode calls, measured
// from spawn. Not configurable per call.
const SplitTimeout = 5 * time.Minute

// rateLimitMarker appears in the assistant's stdout when its own usage
// limit was hit. Checked on stdout, not stderr.
const rateLimitMarker = "usage limit reached"

// nonInteractiveFlag makes the assistant print a response and exit
// instead of staying interactive.
const nonInteractiveFlag = "--print"

// editPermissionFlag grants file-editing privileges in execution mode.
const editPermissionFlag = "--dangerously-skip-permissions"

// Ensure Runner implements domain.Assistant.
var _ domain.Assistant = (*Runner)(nil)

// Runner invokes the configured assistant command.
type Runner struct {
	command string

	// splitTimeout exists so tests can shrink the budget; production
	// code always runs with SplitTimeout.
	splitTimeout time.Duration

	// Inherited streams for execution mode; overridable in tests.
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// New creates a Runner for the given assistant command.
func New(command string) *Runner {
	if command == "" {
		command = domain.DefaultClaudeCommand
	}
	return &Runner{
		command:      command,
		splitTimeout: SplitTimeout,
		stdin:        os.Stdin,
		stdout:       os.Stdout,
		stderr:       os.Stderr,
	}
}

// Run executes the active task interactively. The instruction
// references the task file by a path relative to the current working
// directory; absolute paths would make prompts differ between
// machines. Stdio is inherited, so the returned output is always the
// sentinel string. Duration is valid even on failure so the caller can
// record the attempt in the execution log.
func (r *Runner) Run(ctx context.Context, in domain.RunInput) (domain.RunResult, error) {
	instruction := buildRunInstruction(relativeTaskPath(in.TaskFilePath))

	var args []string
	if in.AllowEdits {
		args = append(args, editPermissionFlag)
	}
	args = append(args, nonInteractiveFlag, instruction)

	if in.Debug {
		fmt.Fprintf(r.stderr, "+ %s %s\n", r.command, strings.Join(args, " "))
	}

	// #nosec G204 - command comes from project settings
	cmd := exec.CommandContext(ctx, r.command, args...)
	cmd.Stdin = r.stdin
	cmd.Stdout = r.stdout
	cmd.Stderr = r.stderr

	start := time.Now()
	err := cmd.Run()
	res := domain.RunResult{
		Output:   domain.InteractiveOutputSentinel,
		Duration: time.Since(start),
	}
	if err != nil {
		return res, execError(err, "")
	}
	return res, nil
}

// Split asks the assistant to decompose a task into subtasks. The
// prompt goes over stdin rather than as an argument: the
// non-interactive flag conflicts with argument-based prompt delivery,
// and stdin sidesteps shell escaping and argument length limits for
// long descriptions. Stdout and stderr are captured separately.
//
// A hard timeout runs from spawn; on expiry the process is killed and
// any buffered output is discarded, so a timed-out call never returns
// partial results. The context deadline is released on every path.
func (r *Runner) Split(ctx context.Context, in domain.SplitInput) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, r.splitTimeout)
	defer cancel()

	// #nosec G204 - command comes from project settings
	cmd := exec.CommandContext(ctx, r.command, nonInteractiveFlag)
	cmd.Stdin = strings.NewReader(BuildSplitPrompt(in))
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	// Without this, Wait can block past the kill while an orphaned
	// child of the assistant keeps the output pipe open.
	cmd.WaitDelay = time.Second

	err := cmd.Run()
	if ctx.Err() == context.DeadlineExceeded {
		return "", domain.ErrSplitTimeout
	}
	if err != nil {
		// Rate-limit failures are surfaced distinctly: callers must
		// not auto-retry them on a short interval.
		if strings.Contains(stdout.String(), rateLimitMarker) {
			return "", domain.ErrRateLimited
		}
		return "", execError(err, strings.TrimSpace(stderr.String()))
	}
	return strings.TrimSpace(stdout.String()), nil
}

// SendPrompt passes raw text to the assistant with inherited stdio.
func (r *Runner) SendPrompt(ctx context.Context, text string) error {
	// #nosec G204 - command comes from project settings
	cmd := exec.CommandContext(ctx, r.command, nonInteractiveFlag, text)
	cmd.Stdin = r.stdin
	cmd.Stdout = r.stdout
	cmd.Stderr = r.stderr
	if err := cmd.Run(); err != nil {
		return execError(err, "")
	}
	return nil
}

// execError converts an exec failure into a domain.ExecutionError,
// distinguishing nonzero exits from launch failures.
func execError(err error, detail string) error {
	var ee *exec.ExitError
	if errors.As(err, &ee) {
		return &domain.ExecutionError{ExitCode: ee.ExitCode(), Message: detail}
	}
	return &domain.ExecutionError{ExitCode: -1, Message: err.Error()}
}

// relativeTaskPath rewrites the task file path relative to the current
// working directory, falling back to the path as given.
func relativeTaskPath(path string) string {
	cwd, err := os.Getwd()
	if err != nil {
		return path
	}
	rel, err := filepath.Rel(cwd, path)
	if err != nil {
		return path
	}
	return rel
}

// buildRunInstruction builds the execution-mode instruction.
func buildRunInstruction(taskPath string) string {
	return fmt.Sprintf(
		"Read the task file %s and perform the tasks described in it. "+
			"Work through the checklist in order, then exit. "+
			"Do not wait for further input.",
		taskPath,
	)
}

// BuildSplitPrompt builds the split-mode analysis prompt.
func BuildSplitPrompt(in domain.SplitInput) string {
	countReq := "between 3 and 7 subtasks"
	if in.Count > 0 {
		countReq = fmt.Sprintf("exactly %d subtasks", in.Count)
	}
	var b strings.Builder
	b.WriteString("Analyze the following task and break it down into ")
	b.WriteString(countReq)
	b.WriteString(".\n\n")
	fmt.Fprintf(&b, "Title: %s\n", in.Title)
	if in.Description != "" {
		fmt.Fprintf(&b, "Description:\n%s\n", in.Description)
	}
	b.WriteString("\nEach subtask must be actionable and independently completable.\n")
	b.WriteString("Output one subtask per line, in execution order.\n")
	b.WriteString("Do not add numbering, bullets, headings, or commentary.\n")
	return b.String()
}
