package cli

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// timeRound is the display granularity for durations.
const timeRound = time.Second

// Styles for human-facing output. Kept minimal: taskmd output is often
// piped, and lipgloss degrades to plain text without a TTY profile.
var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	dimStyle    = lipgloss.NewStyle().Faint(true)
	doneStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	activeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
)

// renderBar renders a fixed-width progress bar.
func renderBar(percentage, width int) string {
	if width <= 0 {
		width = 20
	}
	filled := percentage * width / 100
	if filled > width {
		filled = width
	}
	return doneStyle.Render(strings.Repeat("█", filled)) + dimStyle.Render(strings.Repeat("░", width-filled))
}
