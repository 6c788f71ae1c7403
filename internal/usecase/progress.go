package usecase

import (
	"context"

	"github.com/taskmd/taskmd/internal/domain"
)

// ShowProgressOutput contains the checklist completion summary.
type ShowProgressOutput struct {
	Progress domain.Progress
}

// ShowProgress is the use case for computing checklist progress.
type ShowProgress struct {
	store domain.TaskStore
}

// NewShowProgress creates a new ShowProgress use case.
func NewShowProgress(store domain.TaskStore) *ShowProgress {
	return &ShowProgress{store: store}
}

// Execute scans the active task's checkboxes.
func (uc *ShowProgress) Execute(_ context.Context) (*ShowProgressOutput, error) {
	content, err := uc.store.Read()
	if err != nil {
		return nil, err
	}
	return &ShowProgressOutput{Progress: domain.ComputeProgress(content.Raw)}, nil
}
