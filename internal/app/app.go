package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/savioruz/kickmatch/config"
	"golang.org/x/sync/errgroup"
)

//go:generate go run github.com/google/wire/cmd/wire

const _readinessTimeout = 10 * time.Second

func Run(cfg *config.Config) {
	app, err := InitializeApp(cfg)
	if err != nil {
		panic(fmt.Sprintf("failed to initialize application: %v", err))
	}

	defer app.PG.Close()
	defer app.Redis.Close()

	if err := app.ready(context.Background()); err != nil {
		app.Logger.Fatal(fmt.Errorf("app - Run - ready: %w", err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app.Scheduler.Start()
	app.HTTPServer.Start()

	app.Logger.Info("app - Run - %s %s started", cfg.App.Name, cfg.App.Version)

	select {
	case <-ctx.Done():
		app.Logger.Info("app - Run - shutdown requested")
	case err = <-app.HTTPServer.Notify():
		app.Logger.Error(fmt.Errorf("app - Run - httpServer.Notify: %w", err))
	}

	// Jobs must drain before the deferred pool closes.
	app.Scheduler.Stop()

	if err := app.HTTPServer.Shutdown(); err != nil {
		app.Logger.Error(fmt.Errorf("app - Run - httpServer.Shutdown: %w", err))
	}
}

// ready pings the stores concurrently.
func (a *Application) ready(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, _readinessTimeout)
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := a.PG.Ping(ctx); err != nil {
			return fmt.Errorf("postgres: %w", err)
		}

		return nil
	})

	g.Go(func() error {
		if err := a.Redis.Ping(ctx); err != nil {
			return fmt.Errorf("redis: %w", err)
		}

		return nil
	})

	return g.Wait()
}
