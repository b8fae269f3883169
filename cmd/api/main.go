package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"tip-time/internal/config"
	"tip-time/internal/money"
	"tip-time/internal/observability"
	"tip-time/internal/server"
)

func main() {

	ctx := context.Background()

	// Logger
	err := observability.InitLogger()
	if err != nil {
		panic(err)
	}
	defer observability.SyncLogger()

	// Config
	if err := config.LoadDotEnv(); err != nil {
		observability.Logger.Fatal("loading .env", zap.Error(err))
	}

	cfg, err := config.Parse(os.Args[1:])
	if err != nil {
		observability.Logger.Fatal("parsing config", zap.Error(err))
	}

	money.SetDefault(money.MustFormatter(cfg.Locale))

	// Telemetry
	shutdownTelemetry, err := initTelemetry(ctx, cfg)
	if err != nil {
		observability.Logger.Fatal("initialising telemetry", zap.Error(err))
	}
	defer shutdownTelemetry(ctx)

	// Router
	router := server.NewRouter()

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		observability.Logger.Info("server started",
			zap.String("addr", cfg.Addr),
			zap.String("locale", cfg.Locale),
			zap.Bool("otel_export", cfg.ExportTelemetry),
		)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			observability.Logger.Fatal("server failed", zap.Error(err))
		}
	}()

	waitForShutdown(srv, cfg.ShutdownTimeout)
}

func waitForShutdown(srv *http.Server, timeout time.Duration) {

	stop := make(chan os.Signal, 1)

	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		observability.Logger.Error("graceful shutdown failed", zap.Error(err))
		return
	}
	observability.Logger.Info("server stopped")
}
