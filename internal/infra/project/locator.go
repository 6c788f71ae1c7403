// Package project locates the project root directory.
package project

import (
	"os"
	"path/filepath"

	"github.com/taskmd/taskmd/internal/domain"
)

// Locate resolves the project root for this invocation.
// An explicit directory is returned verbatim; later operations create
// it as needed. Otherwise the current working directory and every
// ancestor up to and including the filesystem root are probed for a
// .taskmd marker directory, git-style.
func Locate(explicitDir string) string {
	cwd, err := os.Getwd()
	if err != nil {
		cwd = "."
	}
	return LocateFrom(cwd, explicitDir)
}

// LocateFrom is Locate with an explicit starting directory.
// Stat errors during the walk are treated as "not found at this level"
// so the locator always returns a usable path. When no ancestor has
// the marker, the starting directory is returned for fresh init.
func LocateFrom(startDir, explicitDir string) string {
	if explicitDir != "" {
		return explicitDir
	}
	dir := startDir
	for {
		info, err := os.Stat(filepath.Join(dir, domain.MarkerDirName))
		if err == nil && info.IsDir() {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return startDir
		}
		dir = parent
	}
}
