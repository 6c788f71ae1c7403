package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDefaultSettings(t *testing.T) {
	en := NewDefaultSettings(LocaleEN)
	assert.Equal(t, "claude", en.ClaudeCommand)
	assert.Equal(t, "en", en.Language)
	assert.Equal(t, "New Task", en.DefaultTitle)

	ja := NewDefaultSettings(LocaleJA)
	assert.Equal(t, "ja", ja.Language)
	assert.Equal(t, "新しいタスク", ja.DefaultTitle)

	// Unknown locales fall back to the default.
	fb := NewDefaultSettings(Locale("fr"))
	assert.Equal(t, "en", fb.Language)
}

func TestSettings_Locale(t *testing.T) {
	assert.Equal(t, LocaleJA, (&Settings{Language: "ja"}).Locale())
	assert.Equal(t, DefaultLocale, (&Settings{Language: "klingon"}).Locale())
	assert.Equal(t, DefaultLocale, (&Settings{}).Locale())
}

func TestSettings_ApplyLanguage(t *testing.T) {
	t.Run("swaps untouched placeholders", func(t *testing.T) {
		s := NewDefaultSettings(LocaleEN)
		s.ApplyLanguage(LocaleJA)

		assert.Equal(t, "ja", s.Language)
		assert.Equal(t, "新しいタスク", s.DefaultTitle)
		assert.Equal(t, "ここにタスクの内容を記述してください。", s.DefaultDescription)
	})

	t.Run("preserves customized text", func(t *testing.T) {
		s := NewDefaultSettings(LocaleEN)
		s.DefaultTitle = "Sprint Item"
		s.ApplyLanguage(LocaleJA)

		assert.Equal(t, "ja", s.Language)
		assert.Equal(t, "Sprint Item", s.DefaultTitle)
		// The untouched field still switches.
		assert.Equal(t, "ここにタスクの内容を記述してください。", s.DefaultDescription)
	})

	t.Run("fills empty fields", func(t *testing.T) {
		s := &Settings{Language: "en"}
		s.ApplyLanguage(LocaleJA)
		assert.Equal(t, "新しいタスク", s.DefaultTitle)
	})

	t.Run("unknown locale is a no-op", func(t *testing.T) {
		s := NewDefaultSettings(LocaleEN)
		s.ApplyLanguage(Locale("fr"))
		assert.Equal(t, "en", s.Language)
		assert.Equal(t, "New Task", s.DefaultTitle)
	})
}

func TestSupportedLocale(t *testing.T) {
	assert.True(t, SupportedLocale("en"))
	assert.True(t, SupportedLocale("ja"))
	assert.False(t, SupportedLocale("fr"))
	assert.False(t, SupportedLocale(""))
	assert.False(t, SupportedLocale("EN"))
}
