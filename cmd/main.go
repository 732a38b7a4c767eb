package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/arzan03/ArtistryCamp/internal/config"
	"github.com/arzan03/ArtistryCamp/internal/db"
	"github.com/arzan03/ArtistryCamp/internal/handlers"
	"github.com/arzan03/ArtistryCamp/internal/logger"
	"github.com/arzan03/ArtistryCamp/internal/metrics"
	"github.com/arzan03/ArtistryCamp/internal/services"
	"github.com/arzan03/ArtistryCamp/internal/storage"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	logger.SetupDefault(os.Stdout, cfg.LogLevel)

	ctx := context.Background()

	var (
		users      services.UserStore
		classes    services.ClassStore
		selections services.SelectionStore
		checks     []handlers.HealthCheck
	)

	switch cfg.StoreDriver {
	case config.DriverMemory:
		mem := db.NewMemory()
		users, classes, selections = mem.Users(), mem.Classes(), mem.Selections()
		checks = append(checks, handlers.HealthCheck{Name: "store", Ping: mem.Ping})
		slog.Warn("using in-memory store, data is lost on restart")
	default:
		mongoDB, err := db.ConnectMongoDB(ctx, cfg.MongoURI, cfg.DBName, cfg.DBTimeout)
		if err != nil {
			log.Fatalf("mongo: %v", err)
		}
		defer func() {
			if err := mongoDB.Disconnect(context.Background()); err != nil {
				slog.Error("mongo disconnect", slog.String("error", err.Error()))
			}
		}()
		users, classes, selections = mongoDB.Users(), mongoDB.Classes(), mongoDB.Selections()
		checks = append(checks, handlers.HealthCheck{Name: "store", Ping: mongoDB.Ping})
	}

	var images handlers.ImageUploader
	if cfg.Minio.Enabled() {
		imageStore, err := storage.NewMinio(ctx, cfg.Minio)
		if err != nil {
			log.Fatalf("minio: %v", err)
		}
		images = imageStore
		checks = append(checks, handlers.HealthCheck{Name: "images", Ping: imageStore.Ping})
	} else {
		slog.Info("MINIO_ENDPOINT not set, class image uploads disabled")
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	app := handlers.NewApp(handlers.Deps{
		Tokens:       services.NewTokenService(cfg.TokenSecret),
		Users:        services.NewUserDirectory(users),
		Classes:      services.NewClassRegistry(classes),
		Selections:   services.NewSelectionLedger(selections),
		Images:       images,
		Metrics:      metrics.NewCollector(registry),
		Gatherer:     registry,
		HealthChecks: checks,
		DBTimeout:    cfg.DBTimeout,
		JWTRateLimit: cfg.JWTRateLimit,
		CorsOrigins:  cfg.CorsOrigins,
		AccessLog:    true,
	})

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		slog.Info("shutting down")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			slog.Error("shutdown", slog.String("error", err.Error()))
		}
	}()

	slog.Info("Artistry camp is running", slog.String("port", cfg.Port))
	if err := app.Listen(":" + cfg.Port); err != nil {
		slog.Error("listen", slog.String("error", err.Error()))
	}
}
