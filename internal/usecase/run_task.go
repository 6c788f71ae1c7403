package usecase

import (
	"context"
	"time"

	"github.com/taskmd/taskmd/internal/domain"
)

// RunTaskInput contains the parameters for executing the active task.
type RunTaskInput struct {
	AllowEdits bool
	Debug      bool
}

// RunTaskOutput contains the result of a task execution.
type RunTaskOutput struct {
	Duration time.Duration
}

// RunTask is the use case for executing the active task with the
// external assistant.
type RunTask struct {
	store     domain.TaskStore
	assistant domain.Assistant
	clock     domain.Clock
}

// NewRunTask creates a new RunTask use case.
func NewRunTask(store domain.TaskStore, assistant domain.Assistant, clock domain.Clock) *RunTask {
	return &RunTask{store: store, assistant: assistant, clock: clock}
}

// Execute runs the assistant against the active task. Whatever the
// outcome, an execution log entry is appended before the run error is
// re-raised: the active file never loses the record of an attempted
// run. A failure to append is itself an error, raised independently
// when the run succeeded.
func (uc *RunTask) Execute(ctx context.Context, in RunTaskInput) (*RunTaskOutput, error) {
	content, err := uc.store.Read()
	if err != nil {
		return nil, err
	}

	res, runErr := uc.assistant.Run(ctx, domain.RunInput{
		TaskFilePath: content.Path,
		AllowEdits:   in.AllowEdits,
		Debug:        in.Debug,
	})

	entry := domain.ExecutionLogEntry{
		Timestamp: uc.clock.Now(),
		Duration:  res.Duration,
		Success:   runErr == nil,
		Output:    res.Output,
	}
	if runErr != nil {
		entry.Output = runErr.Error()
	}
	appendErr := uc.store.AppendLog(entry)

	if runErr != nil {
		return nil, runErr
	}
	if appendErr != nil {
		return nil, appendErr
	}
	return &RunTaskOutput{Duration: res.Duration}, nil
}
