// Package app provides the dependency injection container for the application.
package app

import (
	"os"

	"github.com/taskmd/taskmd/internal/domain"
	"github.com/taskmd/taskmd/internal/infra/assistant"
	"github.com/taskmd/taskmd/internal/infra/config"
	"github.com/taskmd/taskmd/internal/infra/history"
	"github.com/taskmd/taskmd/internal/infra/logging"
	"github.com/taskmd/taskmd/internal/infra/project"
	"github.com/taskmd/taskmd/internal/infra/taskfile"
	"github.com/taskmd/taskmd/internal/usecase"
)

// Config holds the resolved paths for one invocation.
type Config struct {
	ProjectRoot  string // Resolved project root directory
	TaskmdDir    string // Path to .taskmd
	TaskFilePath string // Path to TASK.md
	ArchiveDir   string // Path to .taskmd/archive
	ConfigPath   string // Path to .taskmd/config.json
	LogsDir      string // Path to .taskmd/logs
}

// newConfig derives all fixed paths from the project root.
func newConfig(root string) Config {
	return Config{
		ProjectRoot:  root,
		TaskmdDir:    domain.TaskmdDir(root),
		TaskFilePath: domain.TaskFilePath(root),
		ArchiveDir:   domain.ArchiveDir(root),
		ConfigPath:   domain.ConfigPath(root),
		LogsDir:      domain.LogsDir(root),
	}
}

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for
// use cases. The locale is resolved once here and never mutated
// mid-invocation.
type Container struct {
	// Ports (interfaces bound to implementations)
	Store     domain.TaskStore
	History   domain.HistoryIndex
	Assistant domain.Assistant
	Settings  domain.SettingsStore
	Scaffold  domain.ProjectScaffold
	Clock     domain.Clock
	Logger    domain.Logger

	// Configuration
	Config Config
	Locale domain.Locale
}

// New creates a Container for the given project root.
// A missing or unreadable config falls back to defaults; commands that
// persist settings surface the real error when they touch the file.
func New(root string) *Container {
	settingsStore := config.New(root)
	settings, err := settingsStore.Load()
	if err != nil {
		settings = domain.NewDefaultSettings(domain.DefaultLocale)
	}
	loc := settings.Locale()

	cfg := newConfig(root)
	logger := logging.New(cfg.LogsDir, logging.ParseLevel(os.Getenv("TASKMD_LOG_LEVEL")))
	clock := domain.RealClock{}

	return &Container{
		Store:     taskfile.New(root, clock, logger, loc),
		History:   history.New(root),
		Assistant: assistant.New(settings.ClaudeCommand),
		Settings:  settingsStore,
		Scaffold:  project.NewScaffold(),
		Clock:     clock,
		Logger:    logger,
		Config:    cfg,
		Locale:    loc,
	}
}

// NewWithDeps creates a Container with custom dependencies for testing.
func NewWithDeps(cfg Config, store domain.TaskStore, index domain.HistoryIndex, asst domain.Assistant, settings domain.SettingsStore, clock domain.Clock, logger domain.Logger, loc domain.Locale) *Container {
	return &Container{
		Store:     store,
		History:   index,
		Assistant: asst,
		Settings:  settings,
		Scaffold:  project.NewScaffold(),
		Clock:     clock,
		Logger:    logger,
		Config:    cfg,
		Locale:    loc,
	}
}

// UseCase factory methods

// InitProjectUseCase returns a new InitProject use case.
func (c *Container) InitProjectUseCase() *usecase.InitProject {
	return usecase.NewInitProject(c.Store, c.Settings, c.Scaffold, c.Logger, c.Config.ProjectRoot, c.Locale)
}

// NewTaskUseCase returns a new NewTask use case.
func (c *Container) NewTaskUseCase() *usecase.NewTask {
	return usecase.NewNewTask(c.Store, c.Locale)
}

// RunTaskUseCase returns a new RunTask use case.
func (c *Container) RunTaskUseCase() *usecase.RunTask {
	return usecase.NewRunTask(c.Store, c.Assistant, c.Clock)
}

// SplitTaskUseCase returns a new SplitTask use case.
func (c *Container) SplitTaskUseCase() *usecase.SplitTask {
	return usecase.NewSplitTask(c.Store, c.Assistant, c.Locale)
}

// ListHistoryUseCase returns a new ListHistory use case.
func (c *Container) ListHistoryUseCase() *usecase.ListHistory {
	return usecase.NewListHistory(c.History)
}

// ShowStatusUseCase returns a new ShowStatus use case.
func (c *Container) ShowStatusUseCase() *usecase.ShowStatus {
	return usecase.NewShowStatus(c.History)
}

// ArchiveTaskUseCase returns a new ArchiveTask use case.
func (c *Container) ArchiveTaskUseCase() *usecase.ArchiveTask {
	return usecase.NewArchiveTask(c.Store)
}

// ShowProgressUseCase returns a new ShowProgress use case.
func (c *Container) ShowProgressUseCase() *usecase.ShowProgress {
	return usecase.NewShowProgress(c.Store)
}

// SendPromptUseCase returns a new SendPrompt use case.
func (c *Container) SendPromptUseCase() *usecase.SendPrompt {
	return usecase.NewSendPrompt(c.Assistant)
}

// LanguageUseCase returns a new Language use case.
func (c *Container) LanguageUseCase() *usecase.Language {
	return usecase.NewLanguage(c.Settings)
}
