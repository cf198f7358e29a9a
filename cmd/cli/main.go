package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/specialistvlad/linesort/internal/app"
	"github.com/specialistvlad/linesort/internal/cli"
)

// main is the entrypoint for the linesort application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// The real main function handles errors and exit codes.
	if err := run(ctx, os.Stdin, os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error handling.
func run(ctx context.Context, inR io.Reader, outW, logW io.Writer, args []string) (err error) {
	if inR == nil {
		inR = strings.NewReader("")
	}
	// Prompt answers and input read from "-" share one buffer, so data
	// following the answers is not lost.
	stdin := bufio.NewReader(inR)

	appConfig, shouldExit, err := cli.Parse(args, stdin, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	// The sorting engines panic on programmer errors; report those as a
	// failed run instead of a stack trace.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("application panicked: %v", r)
		}
	}()

	linesortApp, err := app.NewApp(ctx, stdin, outW, logW, appConfig)
	if err != nil {
		return fmt.Errorf("application startup failed: %w", err)
	}

	return linesortApp.Run(ctx)
}
