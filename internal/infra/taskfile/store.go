// Package taskfile provides the file-based implementation of TaskStore.
package taskfile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/taskmd/taskmd/internal/domain"
)

// Ensure Store implements domain.TaskStore.
var _ domain.TaskStore = (*Store)(nil)

// Store owns the active task file and the archive directory under one
// project root. No locking: correctness assumes a single invoker at a
// time per project root.
type Store struct {
	taskPath   string
	archiveDir string
	clock      domain.Clock
	logger     domain.Logger
	locale     domain.Locale
}

// New creates a Store for the given project root.
func New(root string, clock domain.Clock, logger domain.Logger, loc domain.Locale) *Store {
	return &Store{
		taskPath:   domain.TaskFilePath(root),
		archiveDir: domain.ArchiveDir(root),
		clock:      clock,
		logger:     logger,
		locale:     loc,
	}
}

// Path returns the active task file path.
func (s *Store) Path() string {
	return s.taskPath
}

// Exists reports whether the active task file is present.
func (s *Store) Exists() bool {
	info, err := os.Stat(s.taskPath)
	return err == nil && !info.IsDir()
}

// Read returns the active task content.
func (s *Store) Read() (*domain.TaskContent, error) {
	data, err := os.ReadFile(s.taskPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, domain.ErrNoActiveTask
		}
		return nil, fmt.Errorf("read task file %s: %w", s.taskPath, err)
	}
	return &domain.TaskContent{Path: s.taskPath, Raw: string(data)}, nil
}

// Write overwrites the active task file.
func (s *Store) Write(content string) error {
	if err := os.WriteFile(s.taskPath, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write task file %s: %w", s.taskPath, err)
	}
	return nil
}

// Rotate archives the current active task and removes the original.
// The archive copy is written fully before the original is deleted: a
// failed copy aborts the rotate with the active file untouched, while
// a failed delete after a successful copy is logged and treated as
// success since the data is safe in the archive.
func (s *Store) Rotate() (*domain.ArchivedTaskRef, error) {
	data, err := os.ReadFile(s.taskPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read task file %s: %w", s.taskPath, err)
	}

	if err := os.MkdirAll(s.archiveDir, 0o755); err != nil {
		return nil, fmt.Errorf("create archive directory %s: %w", s.archiveDir, err)
	}

	now := s.clock.Now()
	name := domain.ArchiveFileName(now)
	dest := filepath.Join(s.archiveDir, name)
	// Same-millisecond rotations bump the timestamp forward so archive
	// names stay strictly ordered.
	for {
		if _, err := os.Stat(dest); errors.Is(err, os.ErrNotExist) {
			break
		}
		now = now.Add(time.Millisecond)
		name = domain.ArchiveFileName(now)
		dest = filepath.Join(s.archiveDir, name)
	}

	content := append([]byte(domain.ArchiveMarker(now)), data...)
	if err := os.WriteFile(dest, content, 0o644); err != nil {
		return nil, fmt.Errorf("write archive %s: %w", dest, err)
	}

	if err := os.Remove(s.taskPath); err != nil {
		s.logger.Warn("archive", fmt.Sprintf("remove %s after archiving: %v", s.taskPath, err))
	}

	return &domain.ArchivedTaskRef{
		Name:       name,
		Path:       dest,
		Title:      domain.FirstHeading(string(data)),
		ArchivedAt: now,
		Size:       int64(len(content)),
	}, nil
}

// AppendLog appends a formatted execution log block to the active file.
func (s *Store) AppendLog(entry domain.ExecutionLogEntry) error {
	if !s.Exists() {
		return domain.ErrNoActiveTask
	}
	f, err := os.OpenFile(s.taskPath, os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.ErrNoActiveTask
		}
		return fmt.Errorf("open task file %s for append: %w", s.taskPath, err)
	}
	defer func() { _ = f.Close() }()

	if _, err := f.WriteString(entry.Format(s.locale)); err != nil {
		return fmt.Errorf("append log to %s: %w", s.taskPath, err)
	}
	return nil
}
