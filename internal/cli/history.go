package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/taskmd/taskmd/internal/app"
	"github.com/taskmd/taskmd/internal/locale"
	"github.com/taskmd/taskmd/internal/usecase"
)

// newHistoryCommand creates the history command.
func newHistoryCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Limit    int
		ShowSize bool
	}

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List archived tasks, newest first",
		Long: `List archived tasks from .taskmd/archive, newest first.

Each entry shows the archive timestamp and the task title taken from
the first heading of the archived file.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc := c.ListHistoryUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.ListHistoryInput{Limit: opts.Limit})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if len(out.Entries) == 0 {
				_, _ = fmt.Fprintln(w, locale.T(c.Locale, "history.empty"))
				return nil
			}

			for _, e := range out.Entries {
				line := fmt.Sprintf("%s  %s",
					dimStyle.Render(e.ArchivedAt.Format("2006-01-02 15:04:05")),
					titleStyle.Render(e.Title),
				)
				if opts.ShowSize {
					line += dimStyle.Render(fmt.Sprintf("  (%d bytes)", e.Size))
				}
				_, _ = fmt.Fprintln(w, line)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&opts.Limit, "limit", 0, "Maximum number of entries to show (0 = all)")
	cmd.Flags().BoolVar(&opts.ShowSize, "size", false, "Show archived file sizes")

	return cmd
}

// newStatusCommand creates the status command.
func newStatusCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Summarize the project task state",
		Long: `Summarize the project task state: active task, archive count,
total executions across all tasks, and the time of the last run.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc := c.ShowStatusUseCase()
			out, err := uc.Execute(cmd.Context())
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			snap := out.Snapshot
			if snap.HasActiveTask {
				_, _ = fmt.Fprintf(w, "%s %s\n", activeStyle.Render("Active:"), titleStyle.Render(snap.ActiveTitle))
				_, _ = fmt.Fprintf(w, "  Size: %d bytes\n", snap.ActiveSize)
			} else {
				_, _ = fmt.Fprintln(w, dimStyle.Render("No active task"))
			}
			_, _ = fmt.Fprintf(w, "Archived tasks: %d\n", snap.ArchivedCount)
			_, _ = fmt.Fprintf(w, "Total executions: %d\n", snap.TotalExecutions)
			if snap.LastRun != nil {
				_, _ = fmt.Fprintf(w, "Last run: %s\n", snap.LastRun.Format("2006-01-02 15:04:05"))
			}
			return nil
		},
	}
}
