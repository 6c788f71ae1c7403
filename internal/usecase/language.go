package usecase

import (
	"context"

	"github.com/taskmd/taskmd/internal/domain"
)

// Language is the use case for reading and changing the active locale.
type Language struct {
	settings domain.SettingsStore
}

// NewLanguage creates a new Language use case.
func NewLanguage(settings domain.SettingsStore) *Language {
	return &Language{settings: settings}
}

// Get returns the configured language code.
func (uc *Language) Get(_ context.Context) (string, error) {
	s, err := uc.settings.Load()
	if err != nil {
		return "", err
	}
	return string(s.Locale()), nil
}

// Set switches the language and re-derives all locale-dependent
// defaults in one save, rather than mutating shared state piecemeal.
func (uc *Language) Set(_ context.Context, code string) error {
	if !domain.SupportedLocale(code) {
		return domain.ErrUnsupportedLanguage
	}
	s, err := uc.settings.Load()
	if err != nil {
		return err
	}
	s.ApplyLanguage(domain.Locale(code))
	return uc.settings.Save(s)
}
