package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
)

type input struct {
	// path is empty for stdin.
	path string
	text string
}

func (in input) name() string {
	if in.path == "" {
		return "stdin"
	}
	return in.path
}

func inputArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

// readInput reads the named file, or the command's stdin for "" and "-".
func readInput(cmd *cobra.Command, arg string) (input, error) {
	if arg == "" || arg == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return input{}, fmt.Errorf("read stdin: %w", err)
		}
		return input{text: string(data)}, nil
	}

	data, err := os.ReadFile(arg)
	if err != nil {
		return input{}, fmt.Errorf("read input: %w", err)
	}
	return input{path: arg, text: string(data)}, nil
}

func resolveDate(dateFlag string) (time.Time, error) {
	if dateFlag == "" {
		now := time.Now().In(time.Local)
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()), nil
	}

	parsed, err := time.ParseInLocation("2006-01-02", dateFlag, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date: %w", err)
	}
	return parsed, nil
}

func countNoun(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
