package usecase

import (
	"context"
	"time"

	"github.com/taskmd/taskmd/internal/domain"
)

// fakeStore is an in-memory TaskStore.
type fakeStore struct {
	content string
	exists  bool

	archived  []string
	appended  []domain.ExecutionLogEntry
	writes    []string
	rotateErr error
	writeErr  error
	appendErr error
}

func (s *fakeStore) Path() string { return "/project/TASK.md" }

func (s *fakeStore) Exists() bool { return s.exists }

func (s *fakeStore) Read() (*domain.TaskContent, error) {
	if !s.exists {
		return nil, domain.ErrNoActiveTask
	}
	return &domain.TaskContent{Path: s.Path(), Raw: s.content}, nil
}

func (s *fakeStore) Write(content string) error {
	if s.writeErr != nil {
		return s.writeErr
	}
	s.content = content
	s.exists = true
	s.writes = append(s.writes, content)
	return nil
}

func (s *fakeStore) Rotate() (*domain.ArchivedTaskRef, error) {
	if s.rotateErr != nil {
		return nil, s.rotateErr
	}
	if !s.exists {
		return nil, nil
	}
	s.archived = append(s.archived, s.content)
	ref := &domain.ArchivedTaskRef{
		Name:       "2025-06-01T12-00-00-000_task.md",
		Title:      domain.FirstHeading(s.content),
		ArchivedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.Local),
	}
	s.content = ""
	s.exists = false
	return ref, nil
}

func (s *fakeStore) AppendLog(entry domain.ExecutionLogEntry) error {
	if s.appendErr != nil {
		return s.appendErr
	}
	if !s.exists {
		return domain.ErrNoActiveTask
	}
	s.appended = append(s.appended, entry)
	s.content += entry.Format(domain.LocaleEN)
	return nil
}

// fakeAssistant records calls and returns canned responses.
type fakeAssistant struct {
	runResult domain.RunResult
	runErr    error
	runInput  *domain.RunInput

	splitResponse string
	splitErr      error
	splitInput    *domain.SplitInput

	prompts []string
}

func (a *fakeAssistant) Run(_ context.Context, in domain.RunInput) (domain.RunResult, error) {
	a.runInput = &in
	return a.runResult, a.runErr
}

func (a *fakeAssistant) Split(_ context.Context, in domain.SplitInput) (string, error) {
	a.splitInput = &in
	return a.splitResponse, a.splitErr
}

func (a *fakeAssistant) SendPrompt(_ context.Context, text string) error {
	a.prompts = append(a.prompts, text)
	return nil
}

// fakeSettings is an in-memory SettingsStore.
type fakeSettings struct {
	settings *domain.Settings
	saved    *domain.Settings
	loadErr  error
	saveErr  error
}

func (s *fakeSettings) Load() (*domain.Settings, error) {
	if s.loadErr != nil {
		return nil, s.loadErr
	}
	if s.settings == nil {
		return domain.NewDefaultSettings(domain.DefaultLocale), nil
	}
	cp := *s.settings
	return &cp, nil
}

func (s *fakeSettings) Save(settings *domain.Settings) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	cp := *settings
	s.saved = &cp
	s.settings = &cp
	return nil
}

// fakeScaffold records side-operation calls.
type fakeScaffold struct {
	gitignoreErr error
	commandErr   error

	gitignoreCalls int
	commandCalls   int
}

func (s *fakeScaffold) PatchGitignore(string) error {
	s.gitignoreCalls++
	return s.gitignoreErr
}

func (s *fakeScaffold) WriteCommandFile(string, domain.Locale) error {
	s.commandCalls++
	return s.commandErr
}

// nopLogger drops everything.
type nopLogger struct{}

func (nopLogger) Debug(string, string) {}
func (nopLogger) Info(string, string)  {}
func (nopLogger) Warn(string, string)  {}
func (nopLogger) Error(string, string) {}

// fixedClock returns a preset time.
type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }
