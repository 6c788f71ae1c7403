package usecase

import (
	"context"

	"github.com/taskmd/taskmd/internal/domain"
)

// ListHistoryInput contains the parameters for listing archived tasks.
type ListHistoryInput struct {
	// Limit caps the number of entries; 0 means no cap.
	Limit int
}

// ListHistoryOutput contains archive entries, newest first.
type ListHistoryOutput struct {
	Entries []domain.ArchivedTaskRef
}

// ListHistory is the use case for listing archived tasks.
type ListHistory struct {
	index domain.HistoryIndex
}

// NewListHistory creates a new ListHistory use case.
func NewListHistory(index domain.HistoryIndex) *ListHistory {
	return &ListHistory{index: index}
}

// Execute lists archive entries, newest first.
func (uc *ListHistory) Execute(_ context.Context, in ListHistoryInput) (*ListHistoryOutput, error) {
	entries, err := uc.index.List(in.Limit)
	if err != nil {
		return nil, err
	}
	return &ListHistoryOutput{Entries: entries}, nil
}

// ShowStatusOutput contains the project status snapshot.
type ShowStatusOutput struct {
	Snapshot *domain.StatusSnapshot
}

// ShowStatus is the use case for summarizing the project task state.
type ShowStatus struct {
	index domain.HistoryIndex
}

// NewShowStatus creates a new ShowStatus use case.
func NewShowStatus(index domain.HistoryIndex) *ShowStatus {
	return &ShowStatus{index: index}
}

// Execute derives the status snapshot.
func (uc *ShowStatus) Execute(_ context.Context) (*ShowStatusOutput, error) {
	snap, err := uc.index.Status()
	if err != nil {
		return nil, err
	}
	return &ShowStatusOutput{Snapshot: snap}, nil
}

// ArchiveTaskOutput contains the result of an explicit archive.
type ArchiveTaskOutput struct {
	// Archived is nil when there was no active task to archive.
	Archived *domain.ArchivedTaskRef
}

// ArchiveTask is the use case for explicitly archiving the active task.
type ArchiveTask struct {
	store domain.TaskStore
}

// NewArchiveTask creates a new ArchiveTask use case.
func NewArchiveTask(store domain.TaskStore) *ArchiveTask {
	return &ArchiveTask{store: store}
}

// Execute rotates the active task into the archive. Rotating an empty
// project is a no-op, not an error.
func (uc *ArchiveTask) Execute(_ context.Context) (*ArchiveTaskOutput, error) {
	archived, err := uc.store.Rotate()
	if err != nil {
		return nil, err
	}
	return &ArchiveTaskOutput{Archived: archived}, nil
}
