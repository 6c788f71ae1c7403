package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/taskmd/taskmd/internal/app"
	"github.com/taskmd/taskmd/internal/locale"
	"github.com/taskmd/taskmd/internal/usecase"
)

// newSplitCommand creates the split command.
func newSplitCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "split [count]",
		Short: "Split the active task into subtasks",
		Long: `Ask the assistant to decompose the active task into subtasks and
rewrite the Tasks section as an unchecked checklist.

Without a count the assistant picks between 3 and 7 subtasks. The call
has a hard five-minute budget; on timeout or failure TASK.md is left
untouched. Replacing the Tasks section discards whatever was in it.

Examples:
  # Let the assistant pick the subtask count
  taskmd split

  # Request exactly 5 subtasks
  taskmd split 5`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			count := 0
			if len(args) > 0 {
				n, err := strconv.Atoi(args[0])
				if err != nil || n <= 0 {
					return fmt.Errorf("invalid subtask count %q", args[0])
				}
				count = n
			}

			uc := c.SplitTaskUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.SplitTaskInput{Count: count})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if len(out.Subtasks) == 0 {
				_, _ = fmt.Fprintln(w, locale.T(c.Locale, "split.empty"))
				return nil
			}
			_, _ = fmt.Fprintln(w, locale.T(c.Locale, "split.done", len(out.Subtasks)))
			for i, st := range out.Subtasks {
				_, _ = fmt.Fprintf(w, "  %d. %s\n", i+1, st)
			}
			return nil
		},
	}

	return cmd
}
