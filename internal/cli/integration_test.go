package cli

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taskmd/taskmd/internal/app"
	"github.com/taskmd/taskmd/internal/domain"
)

// newTestContainer builds a container on a throwaway project root,
// isolated from the developer's real global config.
func newTestContainer(t *testing.T) (*app.Container, string) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	root := t.TempDir()
	return app.New(root), root
}

// execute runs one command against a fresh root command tree so flag
// state never leaks between invocations.
func execute(t *testing.T, c *app.Container, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := NewRootCommand(c, "test")
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestCLI_TaskLifecycle(t *testing.T) {
	c, root := newTestContainer(t)

	// init
	stdout, _, err := execute(t, c, "init")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Initialized taskmd in "+root)
	assert.FileExists(t, domain.ConfigPath(root))
	assert.FileExists(t, domain.TaskFilePath(root))

	// init twice fails
	_, _, err = execute(t, c, "init")
	assert.ErrorIs(t, err, domain.ErrAlreadyInitialized)

	// new replaces the placeholder, archiving it
	stdout, _, err = execute(t, c, "new", "--title", "Fix login bug", "--body", "Users get logged out.")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Archived previous task")
	assert.Contains(t, stdout, "Created new task: Fix login bug")

	// status sees the active task and one archive
	stdout, _, err = execute(t, c, "status")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Fix login bug")
	assert.Contains(t, stdout, "Archived tasks: 1")
	assert.Contains(t, stdout, "Total executions: 0")

	// progress sees the initial checklist item
	stdout, _, err = execute(t, c, "progress")
	require.NoError(t, err)
	assert.Contains(t, stdout, "(0/1)")

	// archive moves the task away
	stdout, _, err = execute(t, c, "archive")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Archived task to ")
	assert.NoFileExists(t, domain.TaskFilePath(root))

	// archive again is a no-op
	stdout, _, err = execute(t, c, "archive")
	require.NoError(t, err)
	assert.Contains(t, stdout, "No active task to archive")

	// history lists both archives, newest first
	stdout, _, err = execute(t, c, "history")
	require.NoError(t, err)
	lines := bytes.Count([]byte(stdout), []byte("\n"))
	assert.Equal(t, 2, lines)
	assert.Contains(t, stdout, "Fix login bug")

	stdout, _, err = execute(t, c, "history", "--limit", "1")
	require.NoError(t, err)
	assert.Equal(t, 1, bytes.Count([]byte(stdout), []byte("\n")))

	// progress with no active task reports the domain error
	_, _, err = execute(t, c, "progress")
	assert.ErrorIs(t, err, domain.ErrNoActiveTask)
}

func TestCLI_NewRequiresTitle(t *testing.T) {
	c, _ := newTestContainer(t)
	_, _, err := execute(t, c, "new")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"title" not set`)
}

func TestCLI_NewFromDraft(t *testing.T) {
	c, root := newTestContainer(t)

	draft := root + "/draft.md"
	require.NoError(t, os.WriteFile(draft, []byte("---\ntitle: From Draft\npriority: low\n---\nbody text\n"), 0o644))

	stdout, _, err := execute(t, c, "new", "--from", draft)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Created new task: From Draft")

	data, err := os.ReadFile(domain.TaskFilePath(root))
	require.NoError(t, err)
	assert.Contains(t, string(data), "# From Draft")
	assert.Contains(t, string(data), "body text")
	assert.Contains(t, string(data), "- Priority: low")
}

func TestCLI_Lang(t *testing.T) {
	c, root := newTestContainer(t)

	stdout, _, err := execute(t, c, "lang")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Current language: en")

	stdout, _, err = execute(t, c, "lang", "ja")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Language set to ja")

	// The new container for the next invocation picks up the change.
	c2 := app.New(root)
	stdout, _, err = execute(t, c2, "lang")
	require.NoError(t, err)
	assert.Contains(t, stdout, "現在の言語: ja")
}

func TestCLI_SplitRejectsBadCount(t *testing.T) {
	c, _ := newTestContainer(t)
	_, _, err := execute(t, c, "split", "zero")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid subtask count")
}

func TestCLI_PromptRejectsNoArgs(t *testing.T) {
	c, _ := newTestContainer(t)
	_, _, err := execute(t, c, "prompt")
	require.Error(t, err)
}
