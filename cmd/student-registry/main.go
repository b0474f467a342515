// main is the entry point of the student-registry service.
//
// Startup sequence: load config, initialise the logger, open the
// configured storage backend, build the router, start the HTTP server
// in a goroutine, then block until SIGINT/SIGTERM and shut down
// gracefully.
//
// Running the server:
//
//	go run ./cmd/student-registry --config=config/local.yaml
//
// or, with the environment variable:
//
//	CONFIG_PATH=config/local.yaml go run ./cmd/student-registry
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/meera-joshi/student-registry/internal/config"
	"github.com/meera-joshi/student-registry/internal/http/router"
	"github.com/meera-joshi/student-registry/internal/storage"
	"github.com/meera-joshi/student-registry/internal/storage/postgres"
	"github.com/meera-joshi/student-registry/internal/storage/sqlite"
)

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)
	// Handlers log through the package-level slog functions.
	slog.SetDefault(log)

	log.Info("starting student-registry",
		slog.String("env", cfg.Env),
		slog.String("storage", cfg.Storage.Driver),
	)

	// The rest of the code only sees the storage.Storage interface;
	// the concrete backend is decided here and nowhere else.
	store, err := openStorage(cfg)
	if err != nil {
		log.Error("failed to initialise storage",
			slog.String("error", err.Error()))
		os.Exit(1)
	}

	log.Info("storage initialised", slog.String("driver", cfg.Storage.Driver))

	server := &http.Server{
		Addr:    cfg.HTTPServer.Addr,
		Handler: router.New(store),

		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("server started", slog.String("address", cfg.HTTPServer.Addr))

		if err := server.ListenAndServe(); err != nil &&
			err != http.ErrServerClosed {
			log.Error("server encountered an error",
				slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)
	<-done

	log.Info("shutdown signal received, stopping server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("failed to shutdown server gracefully",
			slog.String("error", err.Error()))
		os.Exit(1)
	}

	log.Info("server stopped gracefully")
}

// openStorage constructs the backend named by cfg.Storage.Driver.
func openStorage(cfg *config.Config) (storage.Storage, error) {
	switch cfg.Storage.Driver {
	case "postgres":
		return postgres.New(cfg)
	case "sqlite", "":
		return sqlite.New(cfg)
	default:
		return nil, fmt.Errorf("unknown storage driver: %q", cfg.Storage.Driver)
	}
}

// setupLogger returns a *slog.Logger configured for the given
// environment: human-readable text at debug level in dev, JSON for
// staging and prod so log aggregators can ingest it.
func setupLogger(env string) *slog.Logger {
	switch env {
	case "prod":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	case "staging":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	default:
		return slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	}
}
