package domain

// Locale identifies the active message and heading language.
// It is resolved once per invocation from settings and threaded
// explicitly; nothing mutates it mid-command.
type Locale string

// Supported locales.
const (
	LocaleEN Locale = "en"
	LocaleJA Locale = "ja"
)

// DefaultLocale is the fallback when settings carry no language.
const DefaultLocale = LocaleEN

// SupportedLocale reports whether code names a supported locale.
func SupportedLocale(code string) bool {
	switch Locale(code) {
	case LocaleEN, LocaleJA:
		return true
	}
	return false
}

// SectionKind identifies a well-known section of the task file.
type SectionKind int

const (
	SectionUnknown SectionKind = iota
	SectionDescription
	SectionPrerequisites
	SectionRules
	SectionTasks
	SectionContext
	SectionNotes
)

// sectionHeadings maps each known section to its heading text per locale.
// Heading matching is tolerant of both spellings regardless of the
// active locale, so files survive a language switch.
var sectionHeadings = map[SectionKind]map[Locale]string{
	SectionDescription:   {LocaleEN: "Description", LocaleJA: "概要"},
	SectionPrerequisites: {LocaleEN: "Prerequisites", LocaleJA: "前提条件"},
	SectionRules:         {LocaleEN: "Rules", LocaleJA: "ルール"},
	SectionTasks:         {LocaleEN: "Tasks", LocaleJA: "タスク"},
	SectionContext:       {LocaleEN: "Context", LocaleJA: "コンテキスト"},
	SectionNotes:         {LocaleEN: "Notes", LocaleJA: "メモ"},
}

// logHeadings is the execution log entry heading per locale.
var logHeadings = map[Locale]string{
	LocaleEN: "Execution Log",
	LocaleJA: "実行ログ",
}

// SectionHeading returns the heading text for a section in a locale.
func SectionHeading(kind SectionKind, loc Locale) string {
	if h, ok := sectionHeadings[kind][loc]; ok {
		return h
	}
	return sectionHeadings[kind][LocaleEN]
}

// LogHeading returns the execution log heading for a locale.
func LogHeading(loc Locale) string {
	if h, ok := logHeadings[loc]; ok {
		return h
	}
	return logHeadings[LocaleEN]
}

// sectionKindForHeading resolves a heading text to its section kind,
// accepting any supported locale's spelling.
func sectionKindForHeading(heading string) SectionKind {
	for kind, byLocale := range sectionHeadings {
		for _, h := range byLocale {
			if heading == h {
				return kind
			}
		}
	}
	return SectionUnknown
}
