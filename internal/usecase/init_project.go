// Package usecase contains application use cases.
package usecase

import (
	"context"
	"fmt"
	"os"

	"github.com/taskmd/taskmd/internal/domain"
)

// InitProjectOutput contains the result of initializing a project.
type InitProjectOutput struct {
	ProjectRoot string
	CreatedTask bool

	// Warnings from best-effort side operations that failed without
	// aborting the init.
	Warnings []string
}

// InitProject is the use case for initializing a project root.
type InitProject struct {
	store    domain.TaskStore
	settings domain.SettingsStore
	scaffold domain.ProjectScaffold
	logger   domain.Logger
	root     string
	locale   domain.Locale
}

// NewInitProject creates a new InitProject use case.
func NewInitProject(store domain.TaskStore, settings domain.SettingsStore, scaffold domain.ProjectScaffold, logger domain.Logger, root string, loc domain.Locale) *InitProject {
	return &InitProject{
		store:    store,
		settings: settings,
		scaffold: scaffold,
		logger:   logger,
		root:     root,
		locale:   loc,
	}
}

// Execute initializes the project: marker directory, default config,
// and a placeholder active task. Gitignore patching and command-file
// generation are best-effort; their failures become warnings, never
// errors, so init always completes once the core directories exist.
func (uc *InitProject) Execute(_ context.Context) (*InitProjectOutput, error) {
	if _, err := os.Stat(domain.ConfigPath(uc.root)); err == nil {
		return nil, domain.ErrAlreadyInitialized
	}

	for _, dir := range []string{domain.TaskmdDir(uc.root), domain.ArchiveDir(uc.root), domain.LogsDir(uc.root)} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	settings := domain.NewDefaultSettings(uc.locale)
	if err := uc.settings.Save(settings); err != nil {
		return nil, err
	}

	out := &InitProjectOutput{ProjectRoot: uc.root}

	if !uc.store.Exists() {
		placeholder := domain.RenderTaskFile(domain.TaskDraft{
			Title:       settings.DefaultTitle,
			Description: settings.DefaultDescription,
		}, uc.locale)
		if err := uc.store.Write(placeholder); err != nil {
			return nil, err
		}
		out.CreatedTask = true
	}

	if err := uc.scaffold.PatchGitignore(uc.root); err != nil {
		uc.warn(out, "patch .gitignore", err)
	}
	if err := uc.scaffold.WriteCommandFile(uc.root, uc.locale); err != nil {
		uc.warn(out, "write assistant command file", err)
	}

	return out, nil
}

func (uc *InitProject) warn(out *InitProjectOutput, op string, err error) {
	msg := fmt.Sprintf("%s: %v", op, err)
	out.Warnings = append(out.Warnings, msg)
	uc.logger.Warn("init", msg)
}
