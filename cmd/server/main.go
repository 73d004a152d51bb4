package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/neexbeast/tripsaver/internal/api"
	"github.com/neexbeast/tripsaver/internal/cache"
	"github.com/neexbeast/tripsaver/internal/config"
	"github.com/neexbeast/tripsaver/internal/destination"
	"github.com/neexbeast/tripsaver/internal/readiness"
	"github.com/neexbeast/tripsaver/internal/recommend"
	"github.com/neexbeast/tripsaver/internal/scoring"
	"github.com/neexbeast/tripsaver/internal/storage"
)

func main() {
	seed := flag.Bool("seed", false, "upsert the built-in catalog into Postgres before serving")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "err", err)
		os.Exit(1)
	}

	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))

	if err := run(cfg, *seed, log); err != nil {
		log.Error("server exited with error", "err", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, seed bool, log *slog.Logger) error {
	ctx := context.Background()

	var (
		live        destination.Source
		invalidator api.CatalogInvalidator
		dbPinger    api.Pinger
		redisPinger api.Pinger
	)

	// PostgreSQL: optional unless it backs the catalog or -seed is set.
	if cfg.DatabaseURL != "" {
		pool, err := storage.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("connecting to database: %w", err)
		}
		defer pool.Close()
		dbPinger = pool

		n, err := storage.RunMigrations(ctx, pool, cfg.MigrationsDir, log)
		if err != nil {
			return fmt.Errorf("running migrations: %w", err)
		}
		log.Info("migrations applied", "count", n)

		repo := storage.NewRepository(pool)
		if seed {
			n, err := repo.Seed(ctx, destination.StaticRecords())
			if err != nil {
				return fmt.Errorf("seeding catalog: %w", err)
			}
			log.Info("catalog seeded", "count", n)
		}
		if cfg.CatalogBackend == config.BackendPostgres {
			live = repo
		}
	} else if seed {
		return errors.New("-seed requires DATABASE_URL")
	}

	if cfg.CatalogBackend == config.BackendDataAPI {
		live = destination.NewDataAPIClient(cfg.DataAPIURL, cfg.DataAPIKey)
	}

	// Redis: read-through cache in front of the live catalog.
	if cfg.RedisURL != "" {
		redisClient, err := cache.Connect(ctx, cfg.RedisURL)
		if err != nil {
			return fmt.Errorf("connecting to redis: %w", err)
		}
		defer func() { _ = redisClient.Close() }()
		redisPinger = cache.NewPinger(redisClient)

		if live != nil {
			cached := cache.NewCachedSource(cache.NewCacheWithTTL(redisClient, cfg.CatalogCacheTTL), live, log)
			live, invalidator = cached, cached
		}
	}

	var source destination.Source = destination.NewStaticSource()
	if live != nil {
		source = destination.NewResilientSource(live, source, destination.DefaultBreakerSettings(), log)
	}
	log.Info("catalog source configured", "backend", cfg.CatalogBackend, "cached", invalidator != nil)

	// Wire dependencies.
	engine := recommend.NewEngine(source, scoring.NewScorer(log), readiness.NewEvaluator(log), log)
	handlers := api.NewHandlers(engine, invalidator, log)
	router := api.NewRouter(handlers, cfg.BearerToken, cfg.RateLimitPerMin, dbPinger, redisPinger, log)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown on SIGINT / SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.Error("server goroutine panicked", "recover", r)
				errCh <- fmt.Errorf("server panicked: %v", r)
			}
		}()
		log.Info("server starting", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("listening: %w", err)
		}
	}()

	select {
	case sig := <-quit:
		log.Info("shutdown signal received", "signal", sig)
	case err := <-errCh:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}

	log.Info("server shut down cleanly")
	return nil
}
