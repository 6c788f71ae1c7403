package domain

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// TaskDraft carries the variables a new task file is rendered from.
type TaskDraft struct {
	Title       string
	Description string
	Priority    string
	Tags        []string
}

// RenderTaskFile renders a fresh active task file for a draft.
// The layout is plain markdown with localized section headings; users
// are expected to edit it by hand afterwards.
func RenderTaskFile(d TaskDraft, loc Locale) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n", d.Title)

	section := func(kind SectionKind, body ...string) {
		fmt.Fprintf(&b, "\n## %s\n\n", SectionHeading(kind, loc))
		for _, line := range body {
			b.WriteString(line)
			b.WriteString("\n")
		}
	}

	section(SectionDescription, d.Description)
	section(SectionPrerequisites)
	section(SectionRules)
	section(SectionTasks, "- [ ] "+d.Title)

	var meta []string
	if d.Priority != "" {
		meta = append(meta, "- Priority: "+d.Priority)
	}
	if len(d.Tags) > 0 {
		meta = append(meta, "- Tags: ["+strings.Join(d.Tags, ", ")+"]")
	}
	section(SectionContext, meta...)
	section(SectionNotes)

	return b.String()
}

// draftFrontmatter is the YAML frontmatter of a task draft file.
type draftFrontmatter struct {
	Title    string   `yaml:"title"`
	Priority string   `yaml:"priority"`
	Tags     []string `yaml:"tags"`
}

// ParseTaskDraft parses a markdown draft file: YAML frontmatter
// delimited by "---" lines, followed by the description body.
//
//	---
//	title: Fix login flow
//	priority: high
//	tags: [auth, bug]
//	---
//	Description here.
func ParseTaskDraft(content string) (TaskDraft, error) {
	lines := strings.Split(content, "\n")
	start := -1
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if strings.TrimSpace(line) == "---" {
			start = i
		}
		break
	}
	if start == -1 {
		return TaskDraft{}, fmt.Errorf("draft file has no frontmatter block")
	}

	end := -1
	for i := start + 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "---" {
			end = i
			break
		}
	}
	if end == -1 {
		return TaskDraft{}, fmt.Errorf("draft frontmatter is not closed")
	}

	var fm draftFrontmatter
	if err := yaml.Unmarshal([]byte(strings.Join(lines[start+1:end], "\n")), &fm); err != nil {
		return TaskDraft{}, fmt.Errorf("parse draft frontmatter: %w", err)
	}
	if strings.TrimSpace(fm.Title) == "" {
		return TaskDraft{}, ErrEmptyTitle
	}

	return TaskDraft{
		Title:       strings.TrimSpace(fm.Title),
		Description: strings.TrimSpace(strings.Join(lines[end+1:], "\n")),
		Priority:    strings.TrimSpace(fm.Priority),
		Tags:        fm.Tags,
	}, nil
}
