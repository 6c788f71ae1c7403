// Package cli provides the command-line interface for taskmd.
package cli

import (
	"github.com/spf13/cobra"
	"github.com/taskmd/taskmd/internal/app"
)

// Command group IDs.
const (
	groupSetup     = "setup"
	groupTask      = "task"
	groupAssistant = "assistant"
)

// NewRootCommand creates the root command for taskmd.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "taskmd",
		Short: "Single-task tracking CLI with AI-assisted execution",
		Long: `taskmd tracks exactly one active task per project as a plain
markdown file (TASK.md). Previous tasks are archived on rotation, and
the external AI assistant can execute the active task or split it into
subtasks.

The project root is the nearest ancestor directory containing .taskmd,
discovered git-style from the current directory. Use -C to override.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
	}

	// -C is consumed in main before the container is built; it is
	// declared here so cobra accepts and documents it.
	root.PersistentFlags().StringP("dir", "C", "", "Project root directory (skips discovery)")

	root.AddGroup(
		&cobra.Group{ID: groupSetup, Title: "Setup Commands:"},
		&cobra.Group{ID: groupTask, Title: "Task Management:"},
		&cobra.Group{ID: groupAssistant, Title: "Assistant Commands:"},
	)

	initCmd := newInitCommand(c)
	initCmd.GroupID = groupSetup

	langCmd := newLangCommand(c)
	langCmd.GroupID = groupSetup

	newCmd := newNewCommand(c)
	newCmd.GroupID = groupTask

	archiveCmd := newArchiveCommand(c)
	archiveCmd.GroupID = groupTask

	historyCmd := newHistoryCommand(c)
	historyCmd.GroupID = groupTask

	statusCmd := newStatusCommand(c)
	statusCmd.GroupID = groupTask

	progressCmd := newProgressCommand(c)
	progressCmd.GroupID = groupTask

	runCmd := newRunCommand(c)
	runCmd.GroupID = groupAssistant

	splitCmd := newSplitCommand(c)
	splitCmd.GroupID = groupAssistant

	promptCmd := newPromptCommand(c)
	promptCmd.GroupID = groupAssistant

	root.AddCommand(
		initCmd,
		langCmd,
		newCmd,
		archiveCmd,
		historyCmd,
		statusCmd,
		progressCmd,
		runCmd,
		splitCmd,
		promptCmd,
	)

	return root
}
