// Package main provides the entry point for the preftune CLI tool.
package main

import (
	"context"
	"os"

	"github.com/tunelab/preftune/cmd/preftune/app"
)

// Version information populated by goreleaser.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	application, err := app.New(version, commit, date)
	if err != nil {
		app.ExitOnError(err)
	}

	// An interrupt kills the current trainer subprocess and aborts the
	// whole sweep; completed points stay on disk.
	ctx, cancel := app.ContextWithSignals(context.Background())
	defer cancel()

	if err := application.Execute(ctx, os.Args[1:]); err != nil {
		app.ExitOnError(err)
	}
}
