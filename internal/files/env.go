package files

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	// DefaultDirName defines the folder under the user's home directory.
	DefaultDirName = ".timelog"
	// HomeEnv overrides every other source of the logbook directory.
	HomeEnv = "TIMELOG_HOME"
)

// ResolveBasePath determines where timelog keeps monthly logbooks. TIMELOG_HOME
// wins over the config file's logbook_dir, which wins over ~/.timelog.
func ResolveBasePath(cfg Config) (string, error) {
	if override, ok := os.LookupEnv(HomeEnv); ok {
		override = strings.TrimSpace(override)
		if override != "" {
			return normalizePath(override)
		}
	}

	if dir := strings.TrimSpace(cfg.LogbookDir); dir != "" {
		return normalizePath(dir)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, DefaultDirName), nil
}

func normalizePath(input string) (string, error) {
	if strings.HasPrefix(input, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		input = filepath.Join(home, strings.TrimPrefix(input, "~"))
	}
	return input, nil
}
