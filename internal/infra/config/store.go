// Package config persists project settings.
//
// The project file is a flat JSON object at .taskmd/config.json. A
// global TOML file (~/.config/taskmd/config.toml) may supply defaults;
// project values take precedence.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"github.com/taskmd/taskmd/internal/domain"
)

// Ensure Store implements domain.SettingsStore.
var _ domain.SettingsStore = (*Store)(nil)

// Store loads and saves settings for one project root.
type Store struct {
	projectPath string // .taskmd/config.json
	globalDir   string // e.g. ~/.config/taskmd
}

// New creates a Store for the given project root.
func New(root string) *Store {
	return &Store{
		projectPath: domain.ConfigPath(root),
		globalDir:   defaultGlobalDir(),
	}
}

// NewWithGlobalDir creates a Store with a custom global config
// directory. Useful for testing.
func NewWithGlobalDir(root, globalDir string) *Store {
	return &Store{
		projectPath: domain.ConfigPath(root),
		globalDir:   globalDir,
	}
}

// defaultGlobalDir returns the global config directory.
func defaultGlobalDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return domain.GlobalTaskmdDir(configHome)
}

// globalSettings mirrors domain.Settings with TOML tags.
type globalSettings struct {
	ClaudeCommand      string `toml:"claude_command"`
	Language           string `toml:"language"`
	DefaultTitle       string `toml:"default_title"`
	DefaultDescription string `toml:"default_description"`
}

// Load returns the merged settings: built-in defaults, overlaid with
// the global TOML file, overlaid with the project JSON file. Missing
// files are fine; a present-but-unreadable file is an error.
func (s *Store) Load() (*domain.Settings, error) {
	merged := domain.NewDefaultSettings(domain.DefaultLocale)

	if g, err := s.loadGlobal(); err != nil {
		return nil, err
	} else if g != nil {
		overlay(merged, g)
	}

	data, err := os.ReadFile(s.projectPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return merged, nil
		}
		return nil, fmt.Errorf("read config %s: %w", s.projectPath, err)
	}
	var project domain.Settings
	if err := json.Unmarshal(data, &project); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", s.projectPath, err)
	}
	overlay(merged, &project)
	return merged, nil
}

// Save writes the project JSON file, creating .taskmd as needed.
func (s *Store) Save(settings *domain.Settings) error {
	dir := filepath.Dir(s.projectPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create config directory %s: %w", dir, err)
	}
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(s.projectPath, data, 0o644); err != nil {
		return fmt.Errorf("write config %s: %w", s.projectPath, err)
	}
	return nil
}

// loadGlobal reads the global TOML defaults, nil when absent.
func (s *Store) loadGlobal() (*domain.Settings, error) {
	if s.globalDir == "" {
		return nil, nil
	}
	path := filepath.Join(s.globalDir, domain.GlobalConfigFileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read global config %s: %w", path, err)
	}
	var g globalSettings
	if err := toml.Unmarshal(data, &g); err != nil {
		return nil, fmt.Errorf("parse global config %s: %w", path, err)
	}
	return &domain.Settings{
		ClaudeCommand:      g.ClaudeCommand,
		Language:           g.Language,
		DefaultTitle:       g.DefaultTitle,
		DefaultDescription: g.DefaultDescription,
	}, nil
}

// overlay copies non-empty fields of src over dst.
func overlay(dst, src *domain.Settings) {
	if src.ClaudeCommand != "" {
		dst.ClaudeCommand = src.ClaudeCommand
	}
	if src.Language != "" {
		dst.Language = src.Language
	}
	if src.DefaultTitle != "" {
		dst.DefaultTitle = src.DefaultTitle
	}
	if src.DefaultDescription != "" {
		dst.DefaultDescription = src.DefaultDescription
	}
}
