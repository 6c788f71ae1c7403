package domain

import (
	"math"
	"regexp"
	"strings"
)

// checkboxItem matches a markdown checkbox list item: optional leading
// whitespace, a dash, a bracket holding a space or x/X, then the text.
var checkboxItem = regexp.MustCompile(`^\s*- \[([ xX])\]\s*(.*)$`)

// ProgressItem is one checklist entry in document order.
type ProgressItem struct {
	Text string
	Done bool
}

// Progress summarizes checklist completion for the active task.
type Progress struct {
	Items      []ProgressItem
	Total      int
	Completed  int
	Percentage int
}

// ComputeProgress scans content for checkbox items and derives the
// completion ratio. Percentage is 0 when no items exist.
func ComputeProgress(content string) Progress {
	var p Progress
	for _, line := range strings.Split(content, "\n") {
		m := checkboxItem.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		done := m[1] == "x" || m[1] == "X"
		p.Items = append(p.Items, ProgressItem{Text: strings.TrimSpace(m[2]), Done: done})
		p.Total++
		if done {
			p.Completed++
		}
	}
	if p.Total > 0 {
		p.Percentage = int(math.Round(float64(p.Completed) / float64(p.Total) * 100))
	}
	return p
}
