package files

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tailscale/hujson"
)

// Config holds the optional settings read from the user's config file.
type Config struct {
	LogbookDir   string `json:"logbook_dir,omitempty"`
	PreviewStyle string `json:"preview_style,omitempty"`
	PreviewWidth int    `json:"preview_width,omitempty"`
}

// DefaultConfig returns the settings used when no config file exists.
func DefaultConfig() Config {
	return Config{
		PreviewStyle: "auto",
		PreviewWidth: 100,
	}
}

// ConfigPath returns $XDG_CONFIG_HOME/timelog/config.json, falling back to
// ~/.config/timelog/config.json. It is empty when neither can be determined.
func ConfigPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "timelog", "config.json")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "timelog", "config.json")
}

// LoadConfig reads the config file at ConfigPath. A missing file yields the
// defaults. The file may contain comments and trailing commas.
func LoadConfig() (Config, error) {
	return loadConfigFile(ConfigPath())
}

func loadConfigFile(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	standard, err := hujson.Standardize(data)
	if err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}

	var file Config
	if err := json.Unmarshal(standard, &file); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}

	if file.LogbookDir != "" {
		cfg.LogbookDir = file.LogbookDir
	}
	if file.PreviewStyle != "" {
		cfg.PreviewStyle = file.PreviewStyle
	}
	if file.PreviewWidth > 0 {
		cfg.PreviewWidth = file.PreviewWidth
	}
	return cfg, nil
}
