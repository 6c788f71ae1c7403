package taskfile

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taskmd/taskmd/internal/domain"
)

// fixedClock returns a preset time, advanceable by the test.
type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time { return c.now }

// nopLogger drops everything.
type nopLogger struct{}

func (nopLogger) Debug(string, string) {}
func (nopLogger) Info(string, string)  {}
func (nopLogger) Warn(string, string)  {}
func (nopLogger) Error(string, string) {}

func newTestStore(t *testing.T) (*Store, string, *fixedClock) {
	t.Helper()
	root := t.TempDir()
	clock := &fixedClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.Local)}
	return New(root, clock, nopLogger{}, domain.LocaleEN), root, clock
}

func TestStore_ReadWrite(t *testing.T) {
	store, _, _ := newTestStore(t)

	_, err := store.Read()
	assert.ErrorIs(t, err, domain.ErrNoActiveTask)
	assert.False(t, store.Exists())

	require.NoError(t, store.Write("# Hello\n"))
	assert.True(t, store.Exists())

	content, err := store.Read()
	require.NoError(t, err)
	assert.Equal(t, "# Hello\n", content.Raw)
	assert.Equal(t, store.Path(), content.Path)
	assert.Equal(t, "Hello", content.Title())
}

func TestStore_Rotate(t *testing.T) {
	t.Run("nothing to rotate", func(t *testing.T) {
		store, _, _ := newTestStore(t)
		ref, err := store.Rotate()
		require.NoError(t, err)
		assert.Nil(t, ref)
	})

	t.Run("archives and removes the active file", func(t *testing.T) {
		store, root, clock := newTestStore(t)
		require.NoError(t, store.Write("# Old Task\n\nbody\n"))

		ref, err := store.Rotate()
		require.NoError(t, err)
		require.NotNil(t, ref)

		assert.Equal(t, "Old Task", ref.Title)
		assert.True(t, ref.ArchivedAt.Equal(clock.now))
		assert.Equal(t, filepath.Join(domain.ArchiveDir(root), ref.Name), ref.Path)
		assert.False(t, store.Exists(), "active file must be removed")

		data, err := os.ReadFile(ref.Path)
		require.NoError(t, err)
		assert.Equal(t, "<!-- archived: 2025-06-01T12:00:00 -->\n# Old Task\n\nbody\n", string(data))
		assert.Equal(t, int64(len(data)), ref.Size)
	})

	t.Run("same-millisecond rotations get distinct ordered names", func(t *testing.T) {
		store, _, _ := newTestStore(t)

		var names []string
		for i := 0; i < 3; i++ {
			require.NoError(t, store.Write("# Task\n"))
			ref, err := store.Rotate()
			require.NoError(t, err)
			require.NotNil(t, ref)
			names = append(names, ref.Name)
		}

		assert.Less(t, names[0], names[1])
		assert.Less(t, names[1], names[2])
	})

	t.Run("n creations leave n-1 archives", func(t *testing.T) {
		store, root, clock := newTestStore(t)
		for i := 0; i < 4; i++ {
			ref, err := store.Rotate()
			require.NoError(t, err)
			assert.Equal(t, i > 0, ref != nil)
			require.NoError(t, store.Write("# Task\n"))
			clock.now = clock.now.Add(time.Minute)
		}

		entries, err := os.ReadDir(domain.ArchiveDir(root))
		require.NoError(t, err)
		assert.Len(t, entries, 3)
		assert.True(t, store.Exists())
	})
}

func TestStore_AppendLog(t *testing.T) {
	t.Run("no active task", func(t *testing.T) {
		store, _, _ := newTestStore(t)
		err := store.AppendLog(domain.ExecutionLogEntry{Timestamp: time.Now(), Success: true})
		assert.ErrorIs(t, err, domain.ErrNoActiveTask)
	})

	t.Run("appends a formatted block", func(t *testing.T) {
		store, _, clock := newTestStore(t)
		require.NoError(t, store.Write("# Task\n"))

		entry := domain.ExecutionLogEntry{
			Timestamp: clock.now,
			Duration:  2 * time.Second,
			Success:   true,
			Output:    domain.InteractiveOutputSentinel,
		}
		require.NoError(t, store.AppendLog(entry))
		require.NoError(t, store.AppendLog(entry))

		content, err := store.Read()
		require.NoError(t, err)
		assert.Contains(t, content.Raw, "## Execution Log - 2025-06-01 12:00:00")
		assert.Contains(t, content.Raw, "- Result: Success")
		assert.Equal(t, 2, domain.CountLogEntries(content.Raw))
	})
}
