package appdir

import (
	"os"
	"path/filepath"
)

var appDirCache string

// AppDir returns ~/.strbuilder-go, or a directory under the temp dir when no
// home is available.
func AppDir() string {
	if appDirCache == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			home = os.TempDir()
		}
		appDirCache = filepath.Join(home, ".strbuilder-go")
	}
	return appDirCache
}

// EnsureDir creates AppDir if missing.
func EnsureDir() error {
	return os.MkdirAll(AppDir(), 0755)
}
