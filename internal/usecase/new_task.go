package usecase

import (
	"context"
	"fmt"

	"github.com/taskmd/taskmd/internal/domain"
)

// NewTaskInput contains the parameters for creating a new task.
type NewTaskInput struct {
	Title       string
	Description string
	Priority    string
	Tags        []string
}

// NewTaskOutput contains the result of creating a new task.
type NewTaskOutput struct {
	Title string

	// Archived is the reference to the pre-empted previous task, nil
	// when the project had no active task.
	Archived *domain.ArchivedTaskRef
}

// NewTask is the use case for creating a new active task.
type NewTask struct {
	store  domain.TaskStore
	locale domain.Locale
}

// NewNewTask creates a new NewTask use case.
func NewNewTask(store domain.TaskStore, loc domain.Locale) *NewTask {
	return &NewTask{store: store, locale: loc}
}

// Execute creates a new active task. An existing task is always
// archived first; there is no discard-instead-of-archive option.
func (uc *NewTask) Execute(_ context.Context, in NewTaskInput) (*NewTaskOutput, error) {
	if in.Title == "" {
		return nil, domain.ErrEmptyTitle
	}

	archived, err := uc.store.Rotate()
	if err != nil {
		return nil, fmt.Errorf("archive previous task: %w", err)
	}

	content := domain.RenderTaskFile(domain.TaskDraft{
		Title:       in.Title,
		Description: in.Description,
		Priority:    in.Priority,
		Tags:        in.Tags,
	}, uc.locale)
	if err := uc.store.Write(content); err != nil {
		return nil, err
	}

	return &NewTaskOutput{Title: in.Title, Archived: archived}, nil
}
