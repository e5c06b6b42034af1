package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/katalvlaran/amidakuji/internal/app"
	"github.com/katalvlaran/amidakuji/internal/cli"
)

// main is the entrypoint for the amidakuji command.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		if exitErr, ok := err.(*cli.ExitError); ok {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error handling.
func run(outW, logW io.Writer, args []string) error {
	appConfig, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	ctx := context.Background()
	a, err := app.NewApp(ctx, outW, logW, appConfig)
	if err != nil {
		return err
	}
	return a.Run(ctx, appConfig)
}
