package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/faizmokh/timelog/internal/files"
	"github.com/faizmokh/timelog/internal/logbook"
)

type processOptions struct {
	write bool
	check bool
}

func runProcess(cmd *cobra.Command, arg string, opts processOptions) error {
	in, err := readInput(cmd, arg)
	if err != nil {
		return err
	}
	if opts.write && in.path == "" {
		return errors.New("--write needs a file argument")
	}

	result, err := logbook.Process(in.text)
	if err != nil {
		return err
	}
	slog.Debug("processed document",
		"source", in.name(),
		"tables", len(result.Tables),
		"tasks", len(result.Tasks),
		"minutes", result.TotalMinutes(),
	)

	changed := result.Text != in.text
	switch {
	case opts.check:
		if changed {
			return fmt.Errorf("%s is %w", in.name(), ErrNotUpToDate)
		}
		return nil
	case opts.write:
		if !changed {
			slog.Debug("file already up to date", "path", in.path)
			return nil
		}
		return files.WriteFile(in.path, result.Text)
	default:
		_, err := io.WriteString(cmd.OutOrStdout(), result.Text)
		return err
	}
}
