// Package history derives history and status views from the archive
// directory and the active task file. Read-only.
package history

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/taskmd/taskmd/internal/domain"
)

// Ensure Index implements domain.HistoryIndex.
var _ domain.HistoryIndex = (*Index)(nil)

// Index scans the archive directory and parses the active file's
// embedded execution log.
type Index struct {
	taskPath   string
	archiveDir string
}

// New creates an Index for the given project root.
func New(root string) *Index {
	return &Index{
		taskPath:   domain.TaskFilePath(root),
		archiveDir: domain.ArchiveDir(root),
	}
}

// List returns up to limit archive entries, newest first. Filenames
// are timestamp-prefixed and zero-padded, so a lexicographic sort
// yields creation order without reading file contents.
func (x *Index) List(limit int) ([]domain.ArchivedTaskRef, error) {
	names, err := x.archiveNames()
	if err != nil {
		return nil, err
	}
	sort.Sort(sort.Reverse(sort.StringSlice(names)))
	if limit > 0 && len(names) > limit {
		names = names[:limit]
	}

	refs := make([]domain.ArchivedTaskRef, 0, len(names))
	for _, name := range names {
		path := filepath.Join(x.archiveDir, name)
		ref := domain.ArchivedTaskRef{Name: name, Path: path, Title: "Untitled"}
		// Timestamp comes from the filename, not the content; archives
		// with mangled content still list correctly.
		if t, ok := domain.ParseArchiveTime(name); ok {
			ref.ArchivedAt = t
		}
		if data, err := os.ReadFile(path); err == nil {
			ref.Title = domain.FirstHeading(string(data))
			ref.Size = int64(len(data))
		}
		refs = append(refs, ref)
	}
	return refs, nil
}

// Status summarizes the active task and archive state. Execution
// counters are re-derived from the log section on every call.
func (x *Index) Status() (*domain.StatusSnapshot, error) {
	snap := &domain.StatusSnapshot{}

	names, err := x.archiveNames()
	if err != nil {
		return nil, err
	}
	snap.ArchivedCount = len(names)

	data, err := os.ReadFile(x.taskPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return snap, nil
		}
		return nil, fmt.Errorf("read task file %s: %w", x.taskPath, err)
	}

	content := string(data)
	snap.HasActiveTask = true
	snap.ActiveTitle = domain.FirstHeading(content)
	snap.ActiveSize = int64(len(data))
	snap.TotalExecutions = domain.CountLogEntries(content)
	if t, ok := domain.LastLogTime(content); ok {
		snap.LastRun = &t
	}
	return snap, nil
}

// archiveNames lists archive entries matching the task record suffix.
// A missing archive directory means zero entries, not an error.
func (x *Index) archiveNames() ([]string, error) {
	entries, err := os.ReadDir(x.archiveDir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read archive directory %s: %w", x.archiveDir, err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || !domain.IsArchiveName(e.Name()) {
			continue
		}
		names = append(names, e.Name())
	}
	return names, nil
}
