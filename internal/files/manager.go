package files

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/natefinch/atomic"
)

// Manager centralizes where monthly logbooks live on disk and how files are named.
type Manager struct {
	basePath string
}

// NewManager constructs a Manager rooted at the provided directory. If basePath
// is empty, it falls back to ResolveBasePath with the default config.
func NewManager(basePath string) (*Manager, error) {
	var err error
	if basePath == "" {
		basePath, err = ResolveBasePath(DefaultConfig())
		if err != nil {
			return nil, err
		}
	}
	abs, err := filepath.Abs(basePath)
	if err != nil {
		return nil, err
	}

	return &Manager{basePath: abs}, nil
}

// BasePath returns the root directory storing all log files.
func (m *Manager) BasePath() string {
	return m.basePath
}

// MonthPath resolves the absolute path to the markdown file for the supplied time.
// The file may not exist.
func (m *Manager) MonthPath(t time.Time) string {
	yearDir := filepath.Join(m.basePath, fmt.Sprintf("%04d", t.Year()))
	return filepath.Join(yearDir, fmt.Sprintf("%04d-%02d.md", t.Year(), t.Month()))
}

// ReadMonth returns the path and contents of the logbook for t's month.
func (m *Manager) ReadMonth(t time.Time) (string, string, error) {
	if m == nil {
		return "", "", errors.New("files.Manager is nil")
	}

	path := m.MonthPath(t)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return path, "", fmt.Errorf("%w %s", ErrMonthNotFound, t.Format("2006-01"))
		}
		return path, "", fmt.Errorf("read month file: %w", err)
	}
	return path, string(data), nil
}

// WriteFile replaces path with content atomically. An existing file keeps its
// permissions.
func WriteFile(path, content string) error {
	if err := atomic.WriteFile(path, strings.NewReader(content)); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
