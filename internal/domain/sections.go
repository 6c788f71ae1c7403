package domain

import "strings"

// TaskSections is a parsed view of the active task file: a preamble
// (title line and anything before the first level-2 heading) followed
// by an ordered list of sections. It exists so section surgery stays in
// one place instead of ad hoc regexes; the markdown itself remains the
// source of truth and stays human-editable.
type TaskSections struct {
	Preamble []string
	Sections []Section
}

// Section is one level-2 heading plus its body lines.
type Section struct {
	Heading string
	Kind    SectionKind
	Body    []string
}

// ParseSections splits content at level-2 headings. Unknown headings
// (including execution log entries) are preserved verbatim.
func ParseSections(content string) *TaskSections {
	ts := &TaskSections{}
	var cur *Section
	for _, line := range strings.Split(content, "\n") {
		if rest, ok := strings.CutPrefix(line, "## "); ok {
			heading := strings.TrimSpace(rest)
			ts.Sections = append(ts.Sections, Section{
				Heading: heading,
				Kind:    sectionKindForHeading(heading),
			})
			cur = &ts.Sections[len(ts.Sections)-1]
			continue
		}
		if cur == nil {
			ts.Preamble = append(ts.Preamble, line)
		} else {
			cur.Body = append(cur.Body, line)
		}
	}
	return ts
}

// Render reassembles the file content.
func (ts *TaskSections) Render() string {
	var lines []string
	lines = append(lines, ts.Preamble...)
	for _, s := range ts.Sections {
		lines = append(lines, "## "+s.Heading)
		lines = append(lines, s.Body...)
	}
	return strings.Join(lines, "\n")
}

// Find returns the first section of the given kind, or nil.
func (ts *TaskSections) Find(kind SectionKind) *Section {
	for i := range ts.Sections {
		if ts.Sections[i].Kind == kind {
			return &ts.Sections[i]
		}
	}
	return nil
}

// SectionBody returns the trimmed body text of the first section of
// the given kind, or "" when absent.
func (ts *TaskSections) SectionBody(kind SectionKind) string {
	s := ts.Find(kind)
	if s == nil {
		return ""
	}
	return strings.TrimSpace(strings.Join(s.Body, "\n"))
}

// ApplySubtasks replaces the Tasks section body with one unchecked
// checkbox line per subtask. When no Tasks section exists, one is
// inserted before the Notes section, or appended at the end.
//
// The replacement is whole-body: anything a user placed inside the
// Tasks section is discarded. Accepted data-loss trade-off of keeping
// the file free-form markdown.
func ApplySubtasks(content string, subtasks []string, loc Locale) string {
	body := make([]string, 0, len(subtasks)+2)
	body = append(body, "")
	for _, st := range subtasks {
		body = append(body, "- [ ] "+st)
	}
	body = append(body, "")

	ts := ParseSections(content)
	if s := ts.Find(SectionTasks); s != nil {
		s.Body = body
		return ts.Render()
	}

	section := Section{
		Heading: SectionHeading(SectionTasks, loc),
		Kind:    SectionTasks,
		Body:    body,
	}
	for i := range ts.Sections {
		if ts.Sections[i].Kind == SectionNotes {
			rest := append([]Section{section}, ts.Sections[i:]...)
			ts.Sections = append(ts.Sections[:i:i], rest...)
			return ts.Render()
		}
	}
	ts.Sections = append(ts.Sections, section)
	return ts.Render()
}
