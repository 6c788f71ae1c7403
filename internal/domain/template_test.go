package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderTaskFile(t *testing.T) {
	t.Run("english layout", func(t *testing.T) {
		got := RenderTaskFile(TaskDraft{
			Title:       "Fix login bug",
			Description: "Users get logged out.",
			Priority:    "high",
			Tags:        []string{"auth", "bug"},
		}, LocaleEN)

		assert.Contains(t, got, "# Fix login bug\n")
		assert.Contains(t, got, "## Description\n\nUsers get logged out.\n")
		assert.Contains(t, got, "## Prerequisites\n")
		assert.Contains(t, got, "## Rules\n")
		assert.Contains(t, got, "## Tasks\n\n- [ ] Fix login bug\n")
		assert.Contains(t, got, "- Priority: high\n")
		assert.Contains(t, got, "- Tags: [auth, bug]\n")
		assert.Contains(t, got, "## Notes\n")
	})

	t.Run("japanese headings", func(t *testing.T) {
		got := RenderTaskFile(TaskDraft{Title: "ログイン修正"}, LocaleJA)
		assert.Contains(t, got, "## 概要")
		assert.Contains(t, got, "## タスク\n\n- [ ] ログイン修正\n")
		assert.NotContains(t, got, "## Description")
	})

	t.Run("no metadata lines without priority or tags", func(t *testing.T) {
		got := RenderTaskFile(TaskDraft{Title: "Bare"}, LocaleEN)
		assert.NotContains(t, got, "Priority:")
		assert.NotContains(t, got, "Tags:")
	})

	t.Run("rendered file parses back", func(t *testing.T) {
		got := RenderTaskFile(TaskDraft{Title: "Round Trip", Description: "d"}, LocaleEN)
		assert.Equal(t, "Round Trip", FirstHeading(got))
		ts := ParseSections(got)
		assert.Equal(t, "d", ts.SectionBody(SectionDescription))
	})
}

func TestParseTaskDraft(t *testing.T) {
	t.Run("full draft", func(t *testing.T) {
		draft, err := ParseTaskDraft("---\ntitle: Fix login flow\npriority: high\ntags: [auth, bug]\n---\nDescription here.\n")
		require.NoError(t, err)
		assert.Equal(t, "Fix login flow", draft.Title)
		assert.Equal(t, "high", draft.Priority)
		assert.Equal(t, []string{"auth", "bug"}, draft.Tags)
		assert.Equal(t, "Description here.", draft.Description)
	})

	t.Run("leading blank lines tolerated", func(t *testing.T) {
		draft, err := ParseTaskDraft("\n\n---\ntitle: Padded\n---\nbody")
		require.NoError(t, err)
		assert.Equal(t, "Padded", draft.Title)
	})

	t.Run("no frontmatter", func(t *testing.T) {
		_, err := ParseTaskDraft("# Just markdown\n")
		assert.ErrorContains(t, err, "frontmatter")
	})

	t.Run("unclosed frontmatter", func(t *testing.T) {
		_, err := ParseTaskDraft("---\ntitle: Broken\n")
		assert.ErrorContains(t, err, "not closed")
	})

	t.Run("missing title", func(t *testing.T) {
		_, err := ParseTaskDraft("---\npriority: high\n---\nbody")
		assert.ErrorIs(t, err, ErrEmptyTitle)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		_, err := ParseTaskDraft("---\ntitle: [unclosed\n---\n")
		assert.Error(t, err)
	})
}
