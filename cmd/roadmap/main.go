// Package main provides the entry point for the roadmap CLI.
package main

import (
	"context"
	"os"

	"github.com/mrz1836/roadmap/internal/cli"
	"github.com/mrz1836/roadmap/internal/signal"
)

// Build information set via ldflags.
var (
	version = "" //nolint:gochecknoglobals // set by ldflags
	commit  = "" //nolint:gochecknoglobals // set by ldflags
	date    = "" //nolint:gochecknoglobals // set by ldflags
)

func main() {
	handler := signal.NewHandler(context.Background())

	err := cli.Execute(handler.Context(), cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	})

	// os.Exit skips defers, so tear down explicitly.
	handler.Stop()
	cli.CloseLogFile()
	os.Exit(cli.ExitCodeForError(err))
}
