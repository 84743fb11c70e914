package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/faizmokh/timelog/internal/files"
	"github.com/faizmokh/timelog/internal/logbook"
)

const sampleLog = `## 2024-01-15

| Time | Task |
|---|---|
| 9:00-10:30 | Build |
`

const overlappingLog = `## 2024-01-15

| Time | Task |
|---|---|
| 9:00-10:00 | Build |
| 9:30-11:00 | Review |
`

func executeCommand(t *testing.T, cmd *cobra.Command, args ...string) string {
	t.Helper()
	out, err := executeCommandErr(cmd, args...)
	if err != nil {
		t.Fatalf("cmd.Execute(%q): %v\n%s", args, err, out)
	}
	return out
}

func executeCommandErr(cmd *cobra.Command, args ...string) (string, error) {
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

// testEnvironment serves default configuration and mgr without touching the
// user's home directory.
func testEnvironment(mgr *files.Manager) *Environment {
	return configEnvironment(files.DefaultConfig(), mgr)
}

func configEnvironment(cfg files.Config, mgr *files.Manager) *Environment {
	return &Environment{
		Config:  func() (files.Config, error) { return cfg, nil },
		Manager: func() (*files.Manager, error) { return mgr, nil },
	}
}

func newTestRoot(t *testing.T, mgr *files.Manager) *cobra.Command {
	t.Helper()
	return NewRootCommand(context.Background(), testEnvironment(mgr))
}

func assertContains(t *testing.T, output, want string) {
	t.Helper()
	if !strings.Contains(output, want) {
		t.Fatalf("output %q missing substring %q", output, want)
	}
}

func newTempManager(t *testing.T) *files.Manager {
	t.Helper()
	base := t.TempDir()
	mgr, err := files.NewManager(base)
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	return mgr
}

func writeTempFile(t *testing.T, path, content string) string {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	return string(data)
}

func processed(t *testing.T, text string) string {
	t.Helper()
	result, err := logbook.Process(text)
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	return result.Text
}

func TestResolveDate(t *testing.T) {
	got, err := resolveDate("2024-02-29")
	if err != nil {
		t.Fatalf("resolveDate: %v", err)
	}
	if got.Format("2006-01-02") != "2024-02-29" {
		t.Fatalf("resolveDate() = %s", got)
	}

	if _, err := resolveDate("2024-02-30"); err == nil {
		t.Fatalf("expected error for invalid date")
	}
}

func TestCountNoun(t *testing.T) {
	if got := countNoun(1, "table"); got != "1 table" {
		t.Fatalf("countNoun(1) = %q", got)
	}
	if got := countNoun(0, "task"); got != "0 tasks" {
		t.Fatalf("countNoun(0) = %q", got)
	}
}
