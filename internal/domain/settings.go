package domain

// DefaultClaudeCommand is the assistant invocation when settings carry none.
const DefaultClaudeCommand = "claude"

// Settings is the persisted project configuration.
// Stored as a flat JSON object in .taskmd/config.json; a global TOML
// file may provide defaults for any field (project values win).
type Settings struct {
	ClaudeCommand      string `json:"claudeCommand"`
	Language           string `json:"language"`
	DefaultTitle       string `json:"defaultTitle"`
	DefaultDescription string `json:"defaultDescription"`
}

// defaultPlaceholders holds locale-dependent new-task placeholder text.
var defaultPlaceholders = map[Locale][2]string{
	LocaleEN: {"New Task", "Describe the task here."},
	LocaleJA: {"新しいタスク", "ここにタスクの内容を記述してください。"},
}

// NewDefaultSettings returns settings populated for a locale.
func NewDefaultSettings(loc Locale) *Settings {
	ph, ok := defaultPlaceholders[loc]
	if !ok {
		ph = defaultPlaceholders[DefaultLocale]
		loc = DefaultLocale
	}
	return &Settings{
		ClaudeCommand:      DefaultClaudeCommand,
		Language:           string(loc),
		DefaultTitle:       ph[0],
		DefaultDescription: ph[1],
	}
}

// Locale returns the settings language as a Locale, falling back to
// the default for unknown codes.
func (s *Settings) Locale() Locale {
	if SupportedLocale(s.Language) {
		return Locale(s.Language)
	}
	return DefaultLocale
}

// ApplyLanguage switches the language and re-derives every
// locale-dependent default in one step. Fields the user customized
// away from any known placeholder are left alone.
func (s *Settings) ApplyLanguage(loc Locale) {
	prev := defaultPlaceholders[s.Locale()]
	next, ok := defaultPlaceholders[loc]
	if !ok {
		return
	}
	s.Language = string(loc)
	if s.DefaultTitle == prev[0] || s.DefaultTitle == "" {
		s.DefaultTitle = next[0]
	}
	if s.DefaultDescription == prev[1] || s.DefaultDescription == "" {
		s.DefaultDescription = next[1]
	}
}
