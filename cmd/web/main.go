// Command web serves the dashboard API. It builds the model once at startup
// from the configured dataset and exposes it as JSON; POST /api/reload
// rebuilds it on demand.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"memberpulse/internal/config"
	"memberpulse/internal/dataset"
	"memberpulse/internal/infrastructure"
	"memberpulse/internal/services"
	transport "memberpulse/internal/transport/http"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "web: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := infrastructure.MustInitializeLogger(cfg.Logging)

	service := services.NewDashboardService(dataset.NewLoader(cfg.Dataset, logger), logger)

	// Build the initial model before accepting traffic. A failed first load
	// is not fatal: the server starts anyway and reports MODEL_NOT_READY
	// until a reload succeeds.
	ctx := context.Background()
	if _, err := service.Refresh(ctx, time.Time{}); err != nil {
		logger.ErrorContext(ctx, "initial model build failed", "error", err)
	}

	router := transport.NewRouter(cfg, service, logger)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.InfoContext(ctx, "server starting", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server: %w", err)
	case sig := <-stop:
		logger.InfoContext(ctx, "shutting down", "signal", sig.String())
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	logger.InfoContext(ctx, "server stopped")
	return nil
}
