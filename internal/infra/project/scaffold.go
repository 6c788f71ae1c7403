package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	git "github.com/go-git/go-git/v5"
	"github.com/taskmd/taskmd/internal/domain"
)

// Ensure Scaffold implements domain.ProjectScaffold.
var _ domain.ProjectScaffold = (*Scaffold)(nil)

// Scaffold performs the best-effort side operations of init.
type Scaffold struct{}

// NewScaffold creates a Scaffold.
func NewScaffold() *Scaffold {
	return &Scaffold{}
}

// gitignoreEntries are appended to .gitignore on init. The archive and
// logs stay local; the active task file itself is meant to be shared.
var gitignoreEntries = []string{
	domain.MarkerDirName + "/",
}

// PatchGitignore appends the taskmd entries to the project's
// .gitignore. A no-op when the root is not inside a git work tree.
func (s *Scaffold) PatchGitignore(root string) error {
	if _, err := git.PlainOpenWithOptions(root, &git.PlainOpenOptions{DetectDotGit: true}); err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return nil
		}
		return fmt.Errorf("detect git repository at %s: %w", root, err)
	}

	path := filepath.Join(root, ".gitignore")
	existing, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("read %s: %w", path, err)
	}

	present := make(map[string]bool)
	for _, line := range strings.Split(string(existing), "\n") {
		present[strings.TrimSpace(line)] = true
	}

	var missing []string
	for _, entry := range gitignoreEntries {
		if !present[entry] {
			missing = append(missing, entry)
		}
	}
	if len(missing) == 0 {
		return nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	var b strings.Builder
	if len(existing) > 0 && !strings.HasSuffix(string(existing), "\n") {
		b.WriteString("\n")
	}
	for _, entry := range missing {
		b.WriteString(entry)
		b.WriteString("\n")
	}
	if _, err := f.WriteString(b.String()); err != nil {
		return fmt.Errorf("append to %s: %w", path, err)
	}
	return nil
}

// commandFileBody is the custom command exposed to the host assistant.
var commandFileBody = map[domain.Locale]string{
	domain.LocaleEN: `Read the TASK.md file at the project root and perform the tasks
listed in its checklist, in order. Mark each checkbox done as you
complete it. Stop when every item is checked.
`,
	domain.LocaleJA: `プロジェクトルートの TASK.md を読み、チェックリストのタスクを
順番に実行してください。完了したらチェックボックスを埋めてください。
すべて完了したら終了してください。
`,
}

// WriteCommandFile generates .claude/commands/task.md so the assistant
// can be invoked on the active task from inside its own sessions.
func (s *Scaffold) WriteCommandFile(root string, loc domain.Locale) error {
	dir := filepath.Join(root, ".claude", "commands")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}
	body, ok := commandFileBody[loc]
	if !ok {
		body = commandFileBody[domain.LocaleEN]
	}
	path := filepath.Join(dir, "task.md")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
