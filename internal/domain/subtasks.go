package domain

import (
	"regexp"
	"strings"
)

// enumMarker matches leading enumeration the assistant may emit despite
// being told not to: "1. ", "2) ", "(3) ", "- ", "* ".
var enumMarker = regexp.MustCompile(`^\s*(?:\(?\d+[.)]\)?|[-*]+)\s*`)

// ParseSubtasks turns the assistant's free-text split response into an
// ordered list of subtask strings. Blank lines, heading lines, and code
// fences are dropped; enumeration markers are stripped. The assistant's
// own line order is trusted as the logical task order. An empty result
// is valid; the caller decides whether that counts as failure.
func ParseSubtasks(raw string) []string {
	var subtasks []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "#") || strings.HasPrefix(line, "```") {
			continue
		}
		line = strings.TrimSpace(enumMarker.ReplaceAllString(line, ""))
		if line == "" {
			continue
		}
		subtasks = append(subtasks, line)
	}
	return subtasks
}
