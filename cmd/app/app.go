// Package main is the entry point for the PTAX disclosure HTTP service.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"ptaxservice/internal/config"
	"ptaxservice/internal/provider"
	"ptaxservice/internal/service"
)

// App holds all application dependencies and manages their lifecycle.
type App struct {
	cfg        *config.Config
	logger     *zap.SugaredLogger
	httpServer *http.Server
}

// NewApp initializes all dependencies and returns a ready-to-run App.
func NewApp(cfg *config.Config, logger *zap.SugaredLogger) *App {
	app := &App{
		cfg:    cfg,
		logger: logger,
	}
	app.initHTTP(app.newConversionService())
	return app
}

func (app *App) newConversionService() *service.ConversionService {
	sgs := provider.NewSGSProvider(
		app.cfg.SGS.BaseURL,
		app.cfg.SGS.Series,
		app.cfg.SGS.Timeout,
		app.cfg.SGS.UserAgent,
	)
	rates := provider.NewLoggedRatesProvider(sgs, app.logger, "sgs")
	resolver := service.NewPTAXResolver(rates, app.cfg.Location())

	app.logger.Infow("Rate provider configured",
		"base_url", app.cfg.SGS.BaseURL,
		"series", app.cfg.SGS.Series,
		"timeout_sec", app.cfg.SGS.Timeout,
		"timezone", app.cfg.Location().String(),
	)
	return service.NewConversionService(resolver, app.logger)
}

// Run starts the HTTP server, blocking until the context is canceled.
func (app *App) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		app.logger.Infow("HTTP server listening", "port", app.cfg.Server.Port)
		if err := app.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server error: %w", err)
		}
		return nil
	})

	// Graceful shutdown: triggered by context cancellation (signal or server failure).
	g.Go(func() error {
		<-ctx.Done()
		return app.shutdown()
	})

	return g.Wait()
}

// shutdown stops accepting new requests and drains in-flight ones.
func (app *App) shutdown() error {
	app.logger.Infow("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := app.httpServer.Shutdown(shutdownCtx); err != nil {
		app.logger.Errorw("HTTP server shutdown error", "error", err)
		return fmt.Errorf("http shutdown: %w", err)
	}

	app.logger.Infow("Shutdown complete")
	return nil
}
