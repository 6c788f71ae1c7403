package cli

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/taskmd/taskmd/internal/app"
	"github.com/taskmd/taskmd/internal/usecase"
)

// newPromptCommand creates the prompt command.
func newPromptCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "prompt <text>...",
		Short: "Send a raw prompt to the assistant",
		Long: `Send arbitrary text straight to the assistant, bypassing the task
file. The assistant's output goes directly to the terminal.

Example:
  taskmd prompt "explain the archive layout of this project"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc := c.SendPromptUseCase()
			return uc.Execute(cmd.Context(), usecase.SendPromptInput{
				Text: strings.Join(args, " "),
			})
		},
	}
}
