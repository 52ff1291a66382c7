package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/vk/tickseq/internal/app"
	"github.com/vk/tickseq/internal/cli"
	"github.com/vk/tickseq/internal/config"
	"github.com/vk/tickseq/internal/hcl"
)

// main is the entrypoint for the tickseq application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx, os.Stdout, os.Args[1:])
	stop()

	if err != nil {
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
func run(ctx context.Context, outW io.Writer, args []string) error {
	if err := cli.LoadEnv(".env"); err != nil {
		return err
	}

	appConfig, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	tickseq, err := startApp(outW, appConfig, hcl.NewLoader())
	if err != nil {
		return err
	}
	return tickseq.Run(ctx)
}

// startApp builds the App. A misbehaving module panics during startup; the
// panic is reported like any other startup error. Panics during Run are not
// recovered here.
func startApp(outW io.Writer, appConfig *app.Config, loader config.Loader) (a *app.App, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("application startup panicked: %v", r)
		}
	}()
	return app.NewApp(outW, appConfig, loader)
}
