package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/taskmd/taskmd/internal/app"
	"github.com/taskmd/taskmd/internal/locale"
)

// newProgressCommand creates the progress command.
func newProgressCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "progress",
		Short: "Show checklist completion for the active task",
		Long: `Scan the active task for Markdown checkboxes and report how many
are checked. Items are listed in file order.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc := c.ShowProgressUseCase()
			out, err := uc.Execute(cmd.Context())
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			p := out.Progress
			if p.Total == 0 {
				_, _ = fmt.Fprintln(w, locale.T(c.Locale, "progress.none"))
				return nil
			}

			_, _ = fmt.Fprintf(w, "%s %d%% (%d/%d)\n", renderBar(p.Percentage, 20), p.Percentage, p.Completed, p.Total)
			for _, item := range p.Items {
				if item.Done {
					_, _ = fmt.Fprintf(w, "  %s %s\n", doneStyle.Render("[x]"), dimStyle.Render(item.Text))
				} else {
					_, _ = fmt.Fprintf(w, "  [ ] %s\n", item.Text)
				}
			}
			return nil
		},
	}
}
