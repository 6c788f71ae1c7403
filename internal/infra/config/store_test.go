package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taskmd/taskmd/internal/domain"
)

func TestStore_Load(t *testing.T) {
	t.Run("defaults when nothing exists", func(t *testing.T) {
		store := NewWithGlobalDir(t.TempDir(), t.TempDir())
		s, err := store.Load()
		require.NoError(t, err)
		assert.Equal(t, domain.DefaultClaudeCommand, s.ClaudeCommand)
		assert.Equal(t, "en", s.Language)
	})

	t.Run("global toml overlays defaults", func(t *testing.T) {
		globalDir := t.TempDir()
		writeGlobal(t, globalDir, "claude_command = \"claude-next\"\nlanguage = \"ja\"\n")

		store := NewWithGlobalDir(t.TempDir(), globalDir)
		s, err := store.Load()
		require.NoError(t, err)
		assert.Equal(t, "claude-next", s.ClaudeCommand)
		assert.Equal(t, "ja", s.Language)
		// Fields the global file does not set keep their defaults.
		assert.Equal(t, "New Task", s.DefaultTitle)
	})

	t.Run("project json wins over global", func(t *testing.T) {
		root := t.TempDir()
		globalDir := t.TempDir()
		writeGlobal(t, globalDir, "claude_command = \"global-claude\"\nlanguage = \"ja\"\n")
		writeProject(t, root, `{"claudeCommand": "project-claude"}`)

		store := NewWithGlobalDir(root, globalDir)
		s, err := store.Load()
		require.NoError(t, err)
		assert.Equal(t, "project-claude", s.ClaudeCommand)
		// Unset project fields fall through to the global layer.
		assert.Equal(t, "ja", s.Language)
	})

	t.Run("corrupt project file is an error", func(t *testing.T) {
		root := t.TempDir()
		writeProject(t, root, "{not json")

		store := NewWithGlobalDir(root, t.TempDir())
		_, err := store.Load()
		assert.ErrorContains(t, err, "parse config")
	})

	t.Run("corrupt global file is an error", func(t *testing.T) {
		globalDir := t.TempDir()
		writeGlobal(t, globalDir, "language = [broken")

		store := NewWithGlobalDir(t.TempDir(), globalDir)
		_, err := store.Load()
		assert.ErrorContains(t, err, "parse global config")
	})
}

func TestStore_SaveLoad(t *testing.T) {
	root := t.TempDir()
	store := NewWithGlobalDir(root, t.TempDir())

	want := &domain.Settings{
		ClaudeCommand:      "claude",
		Language:           "ja",
		DefaultTitle:       "カスタム",
		DefaultDescription: "説明",
	}
	require.NoError(t, store.Save(want))

	// Save creates the marker directory and a readable JSON file.
	data, err := os.ReadFile(domain.ConfigPath(root))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"claudeCommand": "claude"`)

	got, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func writeGlobal(t *testing.T, globalDir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(globalDir, domain.GlobalConfigFileName), []byte(content), 0o644))
}

func writeProject(t *testing.T, root, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(domain.TaskmdDir(root), 0o755))
	require.NoError(t, os.WriteFile(domain.ConfigPath(root), []byte(content), 0o644))
}
