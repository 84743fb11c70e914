package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/faizmokh/timelog/internal/files"
	"github.com/faizmokh/timelog/internal/logbook"
)

func newMonthCommand(env *Environment) *cobra.Command {
	var (
		dateFlag string
		write    bool
	)

	cmd := &cobra.Command{
		Use:   "month",
		Short: "Process the logbook file of a month.",
		Long:  "month processes <logbook dir>/YYYY/YYYY-MM.md for the month containing --date and prints the result, or rewrites the file with --write.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := resolveDate(dateFlag)
			if err != nil {
				return err
			}

			manager, err := env.Manager()
			if err != nil {
				return err
			}

			path, text, err := manager.ReadMonth(date)
			if err != nil {
				return err
			}

			result, err := logbook.Process(text)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}

			if !write {
				_, err := io.WriteString(cmd.OutOrStdout(), result.Text)
				return err
			}

			if result.Text != text {
				if err := files.WriteFile(path, result.Text); err != nil {
					return err
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated %s (%s, total %s)\n",
				path,
				countNoun(len(result.Tables), "table"),
				logbook.FormatMinutes(result.TotalMinutes()),
			)
			return nil
		},
	}

	cmd.Flags().StringVar(&dateFlag, "date", "", "Any date in the target month, YYYY-MM-DD (default: today)")
	cmd.Flags().BoolVarP(&write, "write", "w", false, "Rewrite the month file in place")

	return cmd
}
