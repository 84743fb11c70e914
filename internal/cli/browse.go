package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/faizmokh/timelog/internal/ui"
)

func newBrowseCommand(ctx context.Context, env *Environment) *cobra.Command {
	var dateFlag string

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse monthly table and task totals interactively.",
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

			m := ui.NewModel(manager, date)
			if _, err := tea.NewProgram(m, tea.WithContext(ctx), tea.WithAltScreen()).Run(); err != nil {
				return fmt.Errorf("run TUI: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dateFlag, "date", "", "Any date in the first month to show, YYYY-MM-DD (default: today)")

	return cmd
}
