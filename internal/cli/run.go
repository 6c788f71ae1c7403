package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/taskmd/taskmd/internal/app"
	"github.com/taskmd/taskmd/internal/locale"
	"github.com/taskmd/taskmd/internal/usecase"
)

// newRunCommand creates the run command.
func newRunCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Edit    bool
		Verbose bool
		Debug   bool
	}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Execute the active task with the assistant",
		Long: `Run the external assistant against the active task.

The assistant's output streams directly to this terminal. Whatever the
outcome, an execution log entry is appended to TASK.md recording the
result and duration.

Examples:
  # Run without edit permission (the assistant only reads)
  taskmd run

  # Grant the assistant file-editing privileges
  taskmd run --edit

  # Echo the spawned command line for troubleshooting
  taskmd run --debug`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc := c.RunTaskUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.RunTaskInput{
				AllowEdits: opts.Edit,
				Debug:      opts.Debug,
			})
			if err != nil {
				return err
			}

			if opts.Verbose {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), locale.T(c.Locale, "run.success", out.Duration.Round(timeRound)))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&opts.Edit, "edit", false, "Grant the assistant file-editing privileges")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Print a summary line after the run")
	cmd.Flags().BoolVar(&opts.Debug, "debug", false, "Echo the spawned assistant command")

	return cmd
}
