// Package main is the entry point for the binit CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/binit/cmd/binit/commands"
	"go.trai.ch/binit/internal/app"
	_ "go.trai.ch/binit/internal/wiring"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// The config path must be known before the component graph is built.
	if path := commands.ConfigPathFromArgs(os.Args[1:]); path != "" {
		if err := os.Setenv("BINIT_CONFIG", path); err != nil {
			_, _ = os.Stderr.WriteString("Error: " + err.Error() + "\n")
			return 1
		}
	}

	components, _, err := graft.ExecuteFor[*app.Components](ctx)
	if err != nil {
		// Logger is not available yet if initialization failed.
		_, _ = os.Stderr.WriteString("Error: " + err.Error() + "\n")
		return 1
	}

	cli := commands.New(components.App)

	if err := cli.Execute(ctx); err != nil {
		// zerr prints a pretty error report with stack trace and metadata when using %+v
		_, _ = fmt.Fprintf(os.Stderr, "%+v\n", err)
		return 1
	}
	return 0
}
