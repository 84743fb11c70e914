package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/faizmokh/timelog/internal/logbook"
)

var summaryStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))

func newPreviewCommand(env *Environment) *cobra.Command {
	var (
		style string
		width int
	)

	cmd := &cobra.Command{
		Use:   "preview [file|-]",
		Short: "Render the processed document in the terminal.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := readInput(cmd, inputArg(args))
			if err != nil {
				return err
			}

			result, err := logbook.Process(in.text)
			if err != nil {
				return err
			}

			cfg, err := env.Config()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("style") {
				style = cfg.PreviewStyle
			}
			if !cmd.Flags().Changed("width") {
				width = cfg.PreviewWidth
			}

			out, err := renderPreview(result, style, width)
			if err != nil {
				return err
			}
			_, err = io.WriteString(cmd.OutOrStdout(), out)
			return err
		},
	}

	cmd.Flags().StringVar(&style, "style", "", "Glamour style: auto, dark, light, notty, ascii, ... (default: preview_style from config, or auto)")
	cmd.Flags().IntVar(&width, "width", 0, "Word wrap width (default: preview_width from config, or 100)")

	return cmd
}

func renderPreview(result *logbook.Result, style string, width int) (string, error) {
	opts := []glamour.TermRendererOption{glamour.WithWordWrap(width)}
	if style == "" || style == "auto" {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStandardStyle(style))
	}

	renderer, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return "", fmt.Errorf("preview style %q: %w", style, err)
	}
	body, err := renderer.Render(result.Text)
	if err != nil {
		return "", fmt.Errorf("render preview: %w", err)
	}

	return body + summaryStyle.Render(summaryLine(result)) + "\n", nil
}

func summaryLine(result *logbook.Result) string {
	return fmt.Sprintf("%s, %s, total %s",
		countNoun(len(result.Tables), "table"),
		countNoun(len(result.Tasks), "task"),
		logbook.FormatMinutes(result.TotalMinutes()),
	)
}
