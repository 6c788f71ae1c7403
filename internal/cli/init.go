package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/taskmd/taskmd/internal/app"
	"github.com/taskmd/taskmd/internal/locale"
)

// newInitCommand creates the init command.
func newInitCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize the project for taskmd",
		Long: `Initialize a project root for taskmd.

This command creates:
- .taskmd/config.json: project settings
- .taskmd/archive/: archived task records
- .taskmd/logs/: log files
- TASK.md: placeholder active task (unless one exists)

It also patches .gitignore (when inside a git repository) and writes
the assistant's custom command file. Both are best-effort: a failure
there becomes a warning, never an error.

Error conditions:
- Already initialized: ".taskmd/config.json exists"`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc := c.InitProjectUseCase()
			out, err := uc.Execute(cmd.Context())
			if err != nil {
				return err
			}

			for _, w := range out.Warnings {
				_, _ = fmt.Fprintln(cmd.ErrOrStderr(), locale.T(c.Locale, "init.warning", w))
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), locale.T(c.Locale, "init.done", out.ProjectRoot))
			return nil
		},
	}
}
