package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCommand creates the top-level Cobra command. Run without a
// subcommand it rewrites a single document.
func NewRootCommand(ctx context.Context, env *Environment) *cobra.Command {
	var (
		verbose bool
		opts    processOptions
	)

	cmd := &cobra.Command{
		Use:   "timelog [file|-]",
		Short: "Add durations and totals to Markdown time-log tables.",
		Long: `timelog reads a Markdown document (a file, or stdin when the argument is "-" or absent)
and rewrites every table with a Time column: each row gets a Duration, each table a
"Total working time" row, and the document a Task Totals section. Running it again on
its own output changes nothing.

Subcommand names take precedence over file names: to process a file called
"month" or "version", pass it as ./month or ./version.`,
		Args: cobra.MaximumNArgs(1),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			setupLogging(cmd.ErrOrStderr(), verbose)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProcess(cmd, inputArg(args), opts)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug details to stderr")
	cmd.Flags().BoolVarP(&opts.write, "write", "w", false, "Rewrite the file in place instead of printing it")
	cmd.Flags().BoolVar(&opts.check, "check", false, "Fail if the file is not already up to date")
	cmd.MarkFlagsMutuallyExclusive("write", "check")

	cmd.AddCommand(
		newMonthCommand(env),
		newPreviewCommand(env),
		newBrowseCommand(ctx, env),
		newVersionCommand(),
	)

	return cmd
}

// ExecuteCommand executes the Cobra root command. Configuration is only read
// by the subcommands that need it.
func ExecuteCommand(ctx context.Context) error {
	cmd := NewRootCommand(ctx, LoadEnvironment())
	return cmd.Execute()
}

// Main is a helper used by cmd/timelog/main.go to keep wiring contained in one package.
func Main(ctx context.Context) {
	if err := ExecuteCommand(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
