package cli

import (
	"context"
	"path/filepath"
	"testing"
)

func clearEnvironment(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", "")
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("TIMELOG_HOME", "")
}

func TestRootCommandWithoutHome(t *testing.T) {
	clearEnvironment(t)
	path := writeTempFile(t, filepath.Join(t.TempDir(), "log.md"), sampleLog)

	out := executeCommand(t, NewRootCommand(context.Background(), LoadEnvironment()), path)
	if out != processed(t, sampleLog) {
		t.Fatalf("unexpected output:\n%s", out)
	}

	if _, err := executeCommandErr(NewRootCommand(context.Background(), LoadEnvironment()), "month"); err == nil {
		t.Fatalf("month without a logbook directory: expected error")
	}
}

func TestRootCommandIgnoresMalformedConfig(t *testing.T) {
	clearEnvironment(t)
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)
	writeTempFile(t, filepath.Join(xdg, "timelog", "config.json"), "{")
	path := writeTempFile(t, filepath.Join(t.TempDir(), "log.md"), sampleLog)

	out := executeCommand(t, NewRootCommand(context.Background(), LoadEnvironment()), path)
	if out != processed(t, sampleLog) {
		t.Fatalf("unexpected output:\n%s", out)
	}

	for _, args := range [][]string{{"month"}, {"preview", path}} {
		_, err := executeCommandErr(NewRootCommand(context.Background(), LoadEnvironment()), args...)
		if err == nil {
			t.Fatalf("%q: expected config error", args)
		}
		assertContains(t, err.Error(), "parse config")
	}
}

func TestLoadEnvironmentUsesConfiguredDirectory(t *testing.T) {
	clearEnvironment(t)
	xdg := t.TempDir()
	logbooks := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)
	writeTempFile(t, filepath.Join(xdg, "timelog", "config.json"),
		"{\n  // monthly files\n  \"logbook_dir\": \""+filepath.ToSlash(logbooks)+"\",\n}\n")

	env := LoadEnvironment()
	mgr, err := env.Manager()
	if err != nil {
		t.Fatalf("Manager: %v", err)
	}
	if mgr.BasePath() != logbooks {
		t.Fatalf("BasePath() = %q, want %q", mgr.BasePath(), logbooks)
	}

	again, err := env.Manager()
	if err != nil || again != mgr {
		t.Fatalf("Manager() resolved twice: %p, %p (%v)", mgr, again, err)
	}
}

func TestRootCommandProcessesFileNamedLikeSubcommand(t *testing.T) {
	dir := t.TempDir()
	writeTempFile(t, filepath.Join(dir, "version"), sampleLog)
	t.Chdir(dir)

	out := executeCommand(t, newTestRoot(t, newTempManager(t)), "./version")
	if out != processed(t, sampleLog) {
		t.Fatalf("unexpected output:\n%s", out)
	}
}
