package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/katalvlaran/mazepath/internal/app"
	"github.com/katalvlaran/mazepath/internal/cli"
)

// main is the entrypoint for the mazepath command.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := cli.LoadEnv(); err != nil {
		slog.Warn("Ignoring .env file.", "error", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := run(ctx, os.Stdout, os.Stderr, os.Args[1:])
	stop()
	if exitErr := cli.FromError(err); exitErr != nil {
		fmt.Fprintln(os.Stderr, exitErr.Message)
		os.Exit(exitErr.Code)
	}
}

// run parses args and executes one application run.
func run(ctx context.Context, outW, errW io.Writer, args []string) error {
	cfg, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}
	return app.NewApp(outW, errW, cfg).Run(ctx)
}
