package log

import (
	"fmt"
	"path/filepath"

	"github.com/rs/zerolog"

	"strbuilder-go/pkg/appdir"
)

// DefaultDBPath is where InitApp stores logs for app.
func DefaultDBPath(app string) string {
	return filepath.Join(appdir.AppDir(), app+".db")
}

// InitApp stores logs for app in DefaultDBPath, creating the application
// directory when needed.
func InitApp(app string, level zerolog.Level) error {
	if err := appdir.EnsureDir(); err != nil {
		return fmt.Errorf("failed to create app dir: %w", err)
	}
	return Init(DefaultDBPath(app), level)
}
