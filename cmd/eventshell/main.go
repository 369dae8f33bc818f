// Command eventshell runs the navigation engine against a live
// backend, driven by navigation targets read from stdin. After each
// navigation the rendered page is echoed, which makes the whole
// routing and rendering pipeline observable from a terminal.
package main

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/target/eventshell/internal/bootstrap"
	"github.com/target/eventshell/internal/devseed"
	"github.com/target/eventshell/internal/ports"
)

func main() {
	ctx := context.Background()
	logger := bootstrap.InitLogger()
	if err := run(ctx, logger); err != nil {
		logger.ErrorContext(ctx, "fatal error", "error", err)
		os.Exit(1) //nolint:forbidigo // Main entrypoint should exit with non-zero status on fatal errors.
	}
}

func run(ctx context.Context, logger *slog.Logger) error {
	cfg, err := bootstrap.LoadConfig()
	if err != nil {
		return err
	}
	logger.InfoContext(ctx, "starting eventshell",
		"backend", cfg.Backend.URL,
		"session_store", cfg.Session.Store,
		"dev", cfg.IsDev)

	app, err := bootstrap.BuildApp(cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := app.Close(); cerr != nil {
			logger.ErrorContext(ctx, "close app failed", "error", cerr)
		}
	}()

	if cfg.ShouldSeed() {
		if err := devseed.Run(ctx, devseed.Services{
			Users:  app.Services.Users,
			Events: app.Services.Events,
		}, logger); err != nil {
			logger.WarnContext(ctx, "dev seed incomplete", "error", err)
		}
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return app.Engine.Run(ctx)
	})
	g.Go(func() error {
		return readTargets(ctx, app, logger)
	})

	app.Engine.GoRaw("")

	if err := g.Wait(); err != nil && ctx.Err() == nil {
		return err
	}
	logger.InfoContext(ctx, "eventshell stopped")
	return nil
}

// readTargets feeds stdin lines to the engine as navigation targets
// and echoes the rendered page after each one. "logout" and "quit" are
// commands, everything else is a target.
func readTargets(ctx context.Context, app *bootstrap.App, logger *slog.Logger) error {
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		switch line {
		case "quit", "exit":
			return context.Canceled
		case "logout":
			app.Engine.Logout(ctx)
		case "":
			continue
		default:
			app.Engine.GoRaw(line)
		}
		// Give the engine a beat to process before echoing.
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(100 * time.Millisecond):
		}
		echoPage(app)
	}
	if err := scanner.Err(); err != nil {
		logger.ErrorContext(ctx, "read stdin", "error", err)
		return err
	}
	return context.Canceled
}

func echoPage(app *bootstrap.App) {
	page, _ := app.Doc.HTML(ports.RegionApp)
	fmt.Println("---")
	fmt.Println(page)
	for _, region := range []ports.Region{ports.RegionTitle, ports.RegionContent} {
		if markup, ok := app.Doc.HTML(region); ok {
			fmt.Printf("[%s]\n%s\n", region, markup)
		}
	}
}
