package usecase

import (
	"context"
	"fmt"

	"github.com/taskmd/taskmd/internal/domain"
)

// SplitTaskInput contains the parameters for splitting the active task.
type SplitTaskInput struct {
	// Count requests an exact number of subtasks; 0 lets the
	// assistant pick within a 3-7 range.
	Count int
}

// SplitTaskOutput contains the parsed subtasks. An empty list means
// the assistant produced nothing usable; the caller decides whether
// that counts as failure.
type SplitTaskOutput struct {
	Subtasks []string
}

// SplitTask is the use case for AI-assisted subtask decomposition.
type SplitTask struct {
	store     domain.TaskStore
	assistant domain.Assistant
	locale    domain.Locale
}

// NewSplitTask creates a new SplitTask use case.
func NewSplitTask(store domain.TaskStore, assistant domain.Assistant, loc domain.Locale) *SplitTask {
	return &SplitTask{store: store, assistant: assistant, locale: loc}
}

// Execute asks the assistant to decompose the active task and rewrites
// the Tasks section with the result. The file is only written after a
// successful response and parse; a timeout or assistant failure leaves
// the active task untouched.
func (uc *SplitTask) Execute(ctx context.Context, in SplitTaskInput) (*SplitTaskOutput, error) {
	content, err := uc.store.Read()
	if err != nil {
		return nil, err
	}

	sections := domain.ParseSections(content.Raw)
	raw, err := uc.assistant.Split(ctx, domain.SplitInput{
		Title:       content.Title(),
		Description: sections.SectionBody(domain.SectionDescription),
		Count:       in.Count,
	})
	if err != nil {
		return nil, err
	}

	subtasks := domain.ParseSubtasks(raw)
	if len(subtasks) == 0 {
		return &SplitTaskOutput{}, nil
	}

	updated := domain.ApplySubtasks(content.Raw, subtasks, uc.locale)
	if err := uc.store.Write(updated); err != nil {
		return nil, fmt.Errorf("apply subtasks: %w", err)
	}

	return &SplitTaskOutput{Subtasks: subtasks}, nil
}
