// Package main is the entry point for the taxlin tool.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"github.com/lineagetools/taxlin/cmd/taxlin/commands"
	"github.com/lineagetools/taxlin/internal/app"
	"github.com/lineagetools/taxlin/internal/core/domain"
	_ "github.com/lineagetools/taxlin/internal/wiring"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	components, _, err := graft.ExecuteFor[*app.Components](ctx)
	if err != nil {
		// Logger is not available yet if initialization failed
		_, _ = os.Stderr.WriteString("Error: " + err.Error() + "\n")
		return 1
	}

	cli := commands.New(components.App)

	if err := cli.Execute(ctx); err != nil {
		components.Logger.Error(err)
		if errors.Is(err, domain.ErrAllLookupsFailed) {
			return 2
		}
		return 1
	}
	return 0
}
