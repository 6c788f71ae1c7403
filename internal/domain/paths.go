package domain

import "path/filepath"

// Fixed file and directory names under the project root.
const (
	MarkerDirName  = ".taskmd"
	TaskFileName   = "TASK.md"
	ArchiveDirName = "archive"
	ConfigFileName = "config.json"
	LogsDirName    = "logs"

	// ArchiveSuffix marks archive entries as task records.
	ArchiveSuffix = "_task.md"

	// GlobalConfigFileName is the TOML defaults file under the
	// user config directory (e.g. ~/.config/taskmd).
	GlobalConfigFileName = "config.toml"
)

// TaskmdDir returns the marker directory path for a project root.
func TaskmdDir(root string) string {
	return filepath.Join(root, MarkerDirName)
}

// TaskFilePath returns the active task file path for a project root.
func TaskFilePath(root string) string {
	return filepath.Join(root, TaskFileName)
}

// ArchiveDir returns the archive directory path for a project root.
func ArchiveDir(root string) string {
	return filepath.Join(root, MarkerDirName, ArchiveDirName)
}

// ConfigPath returns the project config file path for a project root.
func ConfigPath(root string) string {
	return filepath.Join(root, MarkerDirName, ConfigFileName)
}

// LogsDir returns the log directory path for a project root.
func LogsDir(root string) string {
	return filepath.Join(root, MarkerDirName, LogsDirName)
}

// GlobalTaskmdDir returns the global config directory under configHome.
func GlobalTaskmdDir(configHome string) string {
	return filepath.Join(configHome, "taskmd")
}
