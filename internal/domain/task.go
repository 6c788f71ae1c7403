// Package domain contains core business entities and interfaces.
package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Timestamp layouts.
const (
	// archiveNameLayout is the filename-safe timestamp prefix of
	// archive entries. Colons are replaced with dashes so names stay
	// portable; zero padding keeps lexicographic order == time order.
	archiveNameLayout = "2006-01-02T15-04-05"

	// archiveMarkerLayout is used in the archival marker comment.
	archiveMarkerLayout = "2006-01-02T15:04:05"

	// logTimeLayout is used in execution log entry headings.
	logTimeLayout = "2006-01-02 15:04:05"
)

// InteractiveOutputSentinel is recorded as the output of execution-mode
// runs, whose real output goes straight to the terminal.
const InteractiveOutputSentinel = "(output shown on terminal)"

// TaskContent is the active task file as read from disk.
type TaskContent struct {
	Path string
	Raw  string
}

// Title returns the first level-1 heading, or "Untitled" when none exists.
func (t *TaskContent) Title() string {
	return FirstHeading(t.Raw)
}

// FirstHeading scans content for the first level-1 heading line.
func FirstHeading(content string) string {
	for _, line := range strings.Split(content, "\n") {
		if rest, ok := strings.CutPrefix(line, "# "); ok {
			if title := strings.TrimSpace(rest); title != "" {
				return title
			}
		}
	}
	return "Untitled"
}

// ExecutionLogEntry records one assistant run against the active task.
// Entries are append-only; counts and last-run are derived by
// re-scanning the file, never stored separately.
type ExecutionLogEntry struct {
	Timestamp time.Time
	Duration  time.Duration
	Success   bool
	Output    string
}

// Format renders the entry as a markdown block for appending.
func (e ExecutionLogEntry) Format(loc Locale) string {
	result := "Success"
	if !e.Success {
		result = "Failure"
	}
	var b strings.Builder
	b.WriteString("\n---\n\n")
	fmt.Fprintf(&b, "## %s - %s\n", LogHeading(loc), e.Timestamp.Format(logTimeLayout))
	fmt.Fprintf(&b, "- Result: %s\n", result)
	fmt.Fprintf(&b, "- Duration: %s\n", e.Duration.Round(time.Millisecond))
	if out := strings.TrimSpace(e.Output); out != "" {
		b.WriteString("\n")
		b.WriteString(out)
		b.WriteString("\n")
	}
	return b.String()
}

// parseLogHeading extracts the timestamp from a log entry heading line.
// Both locale spellings are accepted regardless of the active language.
func parseLogHeading(line string) (time.Time, bool) {
	rest, ok := strings.CutPrefix(line, "## ")
	if !ok {
		return time.Time{}, false
	}
	for _, h := range logHeadings {
		if ts, found := strings.CutPrefix(rest, h+" - "); found {
			t, err := time.ParseInLocation(logTimeLayout, strings.TrimSpace(ts), time.Local)
			if err != nil {
				return time.Time{}, false
			}
			return t, true
		}
	}
	return time.Time{}, false
}

// CountLogEntries counts execution log headings in the content.
func CountLogEntries(content string) int {
	n := 0
	for _, line := range strings.Split(content, "\n") {
		if _, ok := parseLogHeading(line); ok {
			n++
		}
	}
	return n
}

// LastLogTime returns the timestamp of the final log entry heading.
func LastLogTime(content string) (time.Time, bool) {
	var last time.Time
	found := false
	for _, line := range strings.Split(content, "\n") {
		if t, ok := parseLogHeading(line); ok {
			last = t
			found = true
		}
	}
	return last, found
}

// ArchivedTaskRef identifies one immutable archive entry.
type ArchivedTaskRef struct {
	Name       string
	Path       string
	Title      string
	ArchivedAt time.Time
	Size       int64
}

// ArchiveFileName builds the archive filename for a timestamp.
// Millisecond resolution keeps names unique and strictly sortable
// across rapid successive archive operations.
func ArchiveFileName(t time.Time) string {
	return fmt.Sprintf("%s-%03d%s", t.Format(archiveNameLayout), t.Nanosecond()/int(time.Millisecond), ArchiveSuffix)
}

// ArchiveMarker is the comment prepended to archived content.
func ArchiveMarker(t time.Time) string {
	return fmt.Sprintf("<!-- archived: %s -->\n", t.Format(archiveMarkerLayout))
}

// IsArchiveName reports whether name looks like an archive entry.
func IsArchiveName(name string) bool {
	_, ok := ParseArchiveTime(name)
	return ok
}

// ParseArchiveTime extracts the timestamp from an archive filename.
// Accepts the current 3-field form (with milliseconds) and the older
// 2-field form without them.
func ParseArchiveTime(name string) (time.Time, bool) {
	base, ok := strings.CutSuffix(name, ArchiveSuffix)
	if !ok {
		return time.Time{}, false
	}
	stamp := base
	millis := 0
	if len(base) == len(archiveNameLayout)+4 && base[len(archiveNameLayout)] == '-' {
		ms, err := strconv.Atoi(base[len(archiveNameLayout)+1:])
		if err != nil {
			return time.Time{}, false
		}
		stamp, millis = base[:len(archiveNameLayout)], ms
	}
	t, err := time.ParseInLocation(archiveNameLayout, stamp, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return t.Add(time.Duration(millis) * time.Millisecond), true
}

// StatusSnapshot is a read-only summary of the project's task state.
// Execution counters are derived by scanning the active file's log
// section; a hand-edited log silently desyncs them from true history.
type StatusSnapshot struct {
	HasActiveTask   bool
	ActiveTitle     string
	ActiveSize      int64
	ArchivedCount   int
	TotalExecutions int
	LastRun         *time.Time
}
