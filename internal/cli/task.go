package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/taskmd/taskmd/internal/app"
	"github.com/taskmd/taskmd/internal/domain"
	"github.com/taskmd/taskmd/internal/locale"
	"github.com/taskmd/taskmd/internal/usecase"
)

// newNewCommand creates the new command for starting a fresh task.
func newNewCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Title       string
		Description string
		Priority    string
		Tags        []string
		From        string
	}

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Create a new active task",
		Long: `Create a new active task, replacing TASK.md.

If an active task already exists it is always archived first; there is
no way to discard it instead.

Examples:
  # Create a task
  taskmd new --title "Auth refactoring"

  # With description, priority and tags
  taskmd new --title "Fix login bug" --body "Users get logged out" \
    --priority high --tag auth --tag bug

  # Create from a draft file with YAML frontmatter
  taskmd new --from draft.md

File format for --from:
  ---
  title: Fix login flow
  priority: high
  tags: [auth, bug]
  ---
  Description here.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			input := usecase.NewTaskInput{
				Title:       opts.Title,
				Description: opts.Description,
				Priority:    opts.Priority,
				Tags:        opts.Tags,
			}

			if opts.From != "" {
				content, err := os.ReadFile(opts.From)
				if err != nil {
					return fmt.Errorf("read draft file: %w", err)
				}
				draft, err := domain.ParseTaskDraft(string(content))
				if err != nil {
					return err
				}
				input = usecase.NewTaskInput{
					Title:       draft.Title,
					Description: draft.Description,
					Priority:    draft.Priority,
					Tags:        draft.Tags,
				}
			} else if opts.Title == "" {
				return fmt.Errorf("required flag(s) \"title\" not set")
			}

			uc := c.NewTaskUseCase()
			out, err := uc.Execute(cmd.Context(), input)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if out.Archived != nil {
				_, _ = fmt.Fprintln(w, locale.T(c.Locale, "new.archived", out.Archived.Name))
			}
			_, _ = fmt.Fprintln(w, locale.T(c.Locale, "new.created", out.Title))
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Title, "title", "", "Task title (required unless --from is used)")
	cmd.Flags().StringVar(&opts.Description, "body", "", "Task description")
	cmd.Flags().StringVar(&opts.Priority, "priority", "", "Task priority (free text, e.g. high)")
	cmd.Flags().StringArrayVar(&opts.Tags, "tag", nil, "Tags (can specify multiple)")
	cmd.Flags().StringVar(&opts.From, "from", "", "Create the task from a Markdown draft file")

	return cmd
}

// newArchiveCommand creates the archive command.
func newArchiveCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "archive",
		Short: "Archive the active task",
		Long: `Move the active task into the archive directory.

The archive copy is written before the original is removed, so a crash
mid-archive never loses the task. Archiving with no active task is a
no-op.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc := c.ArchiveTaskUseCase()
			out, err := uc.Execute(cmd.Context())
			if err != nil {
				return err
			}

			if out.Archived == nil {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), locale.T(c.Locale, "archive.none"))
				return nil
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), locale.T(c.Locale, "archive.done", out.Archived.Name))
			return nil
		},
	}
}
