package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"flowboard/internal/board"
	"flowboard/internal/cachestore"
	"flowboard/internal/config"
	"flowboard/internal/gateway"
	"flowboard/internal/handlers"
	"flowboard/internal/monitoring"
	"flowboard/internal/services"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	blobs, err := newBlobStore(cfg)
	if err != nil {
		log.Fatalf("failed to open cache store: %v", err)
	}
	store := cachestore.NewStore(blobs)
	defer store.Close()

	var httpClient *http.Client
	if cfg.Remote.Timeout > 0 {
		httpClient = &http.Client{Timeout: cfg.Remote.Timeout}
	}
	gw := gateway.NewClient(cfg.Remote.BaseURL, httpClient, store.Token)

	breaker := services.NewBreaker(&services.BreakerConfig{
		MaxFailures:      cfg.Breaker.MaxFailures,
		Cooldown:         cfg.Breaker.Cooldown,
		HalfOpenMaxCalls: cfg.Breaker.HalfOpenMaxCalls,
	})

	taskService := services.NewTaskService(gw, store, breaker)
	teamService := services.NewTeamService(gw, store, breaker)
	dashboardService := services.NewDashboardService(gw, breaker)

	taskBoard := board.New(taskService)
	defer taskBoard.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Populate the board up front; offline startup serves the cache.
	listed, err := taskService.List(ctx, gateway.TaskFilter{})
	if err != nil {
		log.Fatalf("failed to load board: %v", err)
	}
	taskBoard.SetTasks(listed.Tasks)
	log.Printf("board loaded with %d tasks from %s", len(listed.Tasks), listed.Source)

	if cfg.Refresh.Enabled {
		refresher := services.NewRefresher(gw, gw, store, breaker, cfg.Refresh.Interval)
		refresher.Start(ctx)
		defer refresher.Stop()
	}

	metrics := monitoring.NewMetrics()
	health := monitoring.NewHealthChecker()
	health.Register("cache_store", func(ctx context.Context) error {
		return store.Health()
	})
	health.Register("remote_backend", func(ctx context.Context) error {
		if breaker.State() == services.BreakerOpen {
			return services.ErrRemoteUnavailable
		}
		return nil
	})

	router := handlers.NewRouter(cfg, handlers.Deps{
		Tasks:     handlers.NewTaskHandler(taskService, taskBoard),
		Team:      handlers.NewTeamHandler(teamService),
		Dashboard: handlers.NewDashboardHandler(dashboardService),
		Session:   handlers.NewSessionHandler(store),
		Metrics:   metrics,
		Health:    health,
	})

	server := &http.Server{
		Addr:         cfg.GetServerAddr(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		log.Printf("dashboard API listening on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("forced shutdown: %v", err)
	}
}

func newBlobStore(cfg *config.Config) (cachestore.BlobStore, error) {
	switch cfg.Cache.Backend {
	case "redis":
		return cachestore.NewRedisStore(&cachestore.RedisConfig{
			Addr:         cfg.Cache.RedisAddr,
			Password:     cfg.Cache.RedisPassword,
			DB:           cfg.Cache.RedisDB,
			PoolSize:     cfg.Cache.RedisPoolSize,
			DialTimeout:  5 * time.Second,
			ReadTimeout:  cfg.Cache.RedisTimeout,
			WriteTimeout: cfg.Cache.RedisTimeout,
		}), nil
	case "sqlite":
		return cachestore.NewSQLStore(cfg.Cache.SQLitePath)
	case "memory":
		return cachestore.NewMemoryStore(), nil
	default:
		return cachestore.NewFileStore(cfg.Cache.Dir)
	}
}
