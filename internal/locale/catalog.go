// Package locale holds the user-facing message catalog.
// The active locale is an explicit value resolved once per invocation
// and threaded through; there is no mutable language singleton.
package locale

import (
	"fmt"

	"github.com/taskmd/taskmd/internal/domain"
)

// messages maps key -> locale -> text.
var messages = map[string]map[domain.Locale]string{
	"init.done": {
		domain.LocaleEN: "Initialized taskmd in %s",
		domain.LocaleJA: "%s で taskmd を初期化しました",
	},
	"init.warning": {
		domain.LocaleEN: "Warning: %s",
		domain.LocaleJA: "警告: %s",
	},
	"new.created": {
		domain.LocaleEN: "Created new task: %s",
		domain.LocaleJA: "新しいタスクを作成しました: %s",
	},
	"new.archived": {
		domain.LocaleEN: "Archived previous task to %s",
		domain.LocaleJA: "前のタスクを %s にアーカイブしました",
	},
	"archive.done": {
		domain.LocaleEN: "Archived task to %s",
		domain.LocaleJA: "タスクを %s にアーカイブしました",
	},
	"archive.none": {
		domain.LocaleEN: "No active task to archive",
		domain.LocaleJA: "アーカイブするタスクがありません",
	},
	"run.success": {
		domain.LocaleEN: "Task execution finished in %s",
		domain.LocaleJA: "タスクの実行が %s で完了しました",
	},
	"split.done": {
		domain.LocaleEN: "Split task into %d subtasks",
		domain.LocaleJA: "タスクを %d 個のサブタスクに分割しました",
	},
	"split.empty": {
		domain.LocaleEN: "The assistant returned no subtasks",
		domain.LocaleJA: "アシスタントはサブタスクを返しませんでした",
	},
	"history.empty": {
		domain.LocaleEN: "No archived tasks",
		domain.LocaleJA: "アーカイブされたタスクはありません",
	},
	"lang.current": {
		domain.LocaleEN: "Current language: %s",
		domain.LocaleJA: "現在の言語: %s",
	},
	"lang.set": {
		domain.LocaleEN: "Language set to %s",
		domain.LocaleJA: "言語を %s に設定しました",
	},
	"progress.none": {
		domain.LocaleEN: "No checklist items in the active task",
		domain.LocaleJA: "アクティブなタスクにチェックリストがありません",
	},
}

// T translates key for the locale, formatting args into the message.
// Unknown locales fall back to English; unknown keys return the key
// itself so a missed catalog entry is visible, not fatal.
func T(loc domain.Locale, key string, args ...any) string {
	byLocale, ok := messages[key]
	if !ok {
		return key
	}
	msg, ok := byLocale[loc]
	if !ok {
		msg = byLocale[domain.LocaleEN]
	}
	if len(args) == 0 {
		return msg
	}
	return fmt.Sprintf(msg, args...)
}
