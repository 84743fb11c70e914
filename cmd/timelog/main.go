// Package main provides timelog, which adds durations and totals to Markdown
// time-log tables.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/faizmokh/timelog/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cli.Main(ctx)
}
