package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/pribylovaa/go-news-etl/internal/config"
	"github.com/pribylovaa/go-news-etl/internal/pipeline"
	"github.com/pribylovaa/go-news-etl/internal/service"
	"github.com/pribylovaa/go-news-etl/internal/storage/minio"
	"github.com/pribylovaa/go-news-etl/internal/storage/postgres"
	"github.com/pribylovaa/go-news-etl/pkg/log"
)

// Константы для определения окружения.
const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "", "path to config file (overrides CONFIG_PATH env)")
	flag.Parse()

	cfg := config.MustLoad(configPath)

	lg := setupLogger(cfg.Env)
	slog.SetDefault(lg)
	lg.Info("starting etl-service", "env", cfg.Env)

	rootCtx, rootCancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer rootCancel()

	dbCtx, dbCancel := context.WithTimeout(rootCtx, cfg.Timeouts.Storage)
	store, err := postgres.New(dbCtx, cfg.DB.URL)
	dbCancel()
	if err != nil {
		lg.Error("postgres_connect_failed", slog.String("err", err.Error()))
		os.Exit(1)
	}
	defer store.Close()
	lg.Info("postgres_connected")

	s3Ctx, s3Cancel := context.WithTimeout(rootCtx, cfg.Timeouts.Storage)
	blobs, err := minio.New(s3Ctx, cfg)
	s3Cancel()
	if err != nil {
		lg.Error("minio_connect_failed", slog.String("err", err.Error()))
		os.Exit(1)
	}
	lg.Info("minio_connected")

	var prober *pipeline.Prober
	if cfg.Probe.Enabled {
		prober = pipeline.NewProber(&http.Client{}, pipeline.RetryPolicy{
			MaxAttempts: cfg.Probe.MaxAttempts,
			Backoff:     cfg.Probe.Backoff,
			Timeout:     cfg.Probe.Timeout,
		})
	}

	svc := service.New(store, blobs, *cfg, prober)
	lg.Info("service_initialized")

	runCtx, runCancel := context.WithTimeout(rootCtx, cfg.Timeouts.Run)
	defer runCancel()
	runCtx = log.Into(runCtx, lg)

	stats, err := svc.Run(runCtx, blobs)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRegistryUnavailable):
			lg.Error("run_aborted_registry_unavailable", slog.String("err", err.Error()))
		case errors.Is(err, service.ErrSinkUnavailable):
			lg.Error("run_aborted_sink_unavailable", slog.String("err", err.Error()))
		default:
			lg.Error("run_failed", slog.String("err", err.Error()))
		}
		os.Exit(1)
	}

	lg.Info("etl_run_complete",
		slog.String("run_id", stats.RunID.String()),
		slog.Int("raw", stats.Counts.Raw),
		slog.Int("accepted", stats.Counts.Accepted),
		slog.Int("rejected", stats.Counts.Rejected),
		slog.Int("duplicates_dropped", stats.Counts.DuplicatesDropped),
		slog.Int("write_failures", stats.Counts.WriteFailures),
	)
}

// setupLogger настраивает slog по окружению.
func setupLogger(env string) *slog.Logger {
	var lg *slog.Logger

	switch env {
	case envLocal:
		lg = slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	case envDev:
		lg = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	case envProd:
		lg = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		)
	default:
		lg = slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	}

	return lg
}
