package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/astrolaunch/launchpad/internal/auth"
	"github.com/astrolaunch/launchpad/internal/cache"
	"github.com/astrolaunch/launchpad/internal/config"
	"github.com/astrolaunch/launchpad/internal/db"
	httpx "github.com/astrolaunch/launchpad/internal/http"
	"github.com/astrolaunch/launchpad/internal/observability"
	"github.com/astrolaunch/launchpad/internal/repo"
	"github.com/astrolaunch/launchpad/internal/repo/memory"
	"github.com/astrolaunch/launchpad/internal/repo/postgres"
	"github.com/astrolaunch/launchpad/internal/seed"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	// .env is optional; real deployments configure through the environment
	_ = godotenv.Load()

	cfg := config.Load()

	log := observability.NewLogger(cfg.Env)

	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "err", err)
		os.Exit(1)
	}

	if os.Getenv("JWT_SECRET") == "" {
		log.Warn("JWT_SECRET not set, using the dev fallback; never run like this outside dev")
	}

	// tracing is opt-in

	if cfg.TracingEnabled {
		shutdownTracer, err := observability.InitTracer(context.Background(), "launchpad", cfg.OTLPEndpoint)

		if err != nil {
			log.Error("tracer init failed", "err", err)
			os.Exit(1)
		}

		defer func() {
			ctx, cancel := config.WithTimeout(5 * time.Second)
			defer cancel()
			_ = shutdownTracer(ctx)
		}()
	}

	reg := prometheus.NewRegistry()
	prom := observability.NewProm(reg)

	// pick the storage backend: postgres when DATABASE_URL is set, process
	// memory otherwise

	var stores repo.Stores
	var ping func() error

	if cfg.DBURL != "" {
		pool, err := db.NewPool(cfg.DBURL)

		if err != nil {
			log.Error("database connection failed", "err", err)
			os.Exit(1)
		}

		defer pool.Close()

		ctx, cancel := config.WithTimeout(10 * time.Second)

		err = db.EnsureSchema(ctx, pool)
		cancel()

		if err != nil {
			log.Error("schema bootstrap failed", "err", err)
			os.Exit(1)
		}

		stores = repo.Stores{
			Users:     postgres.NewUsersRepo(pool, prom),
			Rockets:   postgres.NewRocketsRepo(pool, prom),
			Missions:  postgres.NewMissionsRepo(pool, prom),
			Teams:     postgres.NewTeamsRepo(pool, prom),
			Schedules: postgres.NewSchedulesRepo(pool, prom),
		}

		ping = func() error {
			ctx, cancel := config.WithTimeout(1 * time.Second)
			defer cancel()
			return pool.Ping(ctx)
		}

		log.Info("storage backend", "kind", "postgres")
	} else {
		stores = repo.Stores{
			Users:     memory.NewUsersRepo(),
			Rockets:   memory.NewRocketsRepo(),
			Missions:  memory.NewMissionsRepo(),
			Teams:     memory.NewTeamsRepo(),
			Schedules: memory.NewSchedulesRepo(),
		}

		log.Info("storage backend", "kind", "memory")
	}

	// one-time bootstrap: admin account (if configured) and default content

	bootCtx, bootCancel := config.WithTimeout(15 * time.Second)

	if err := db.EnsureAdminUser(bootCtx, stores.Users, cfg); err != nil {
		bootCancel()
		log.Error("admin bootstrap failed", "err", err)
		os.Exit(1)
	}

	if err := seed.Content(bootCtx, stores); err != nil {
		bootCancel()
		log.Error("content seeding failed", "err", err)
		os.Exit(1)
	}
	bootCancel()

	// list cache: redis when configured, in-process otherwise

	var listCache cache.Cache

	if cfg.RedisAddr != "" {
		redisCache := cache.NewRedis(cache.RedisConfig{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		}, cfg.CacheTTL())

		defer redisCache.Close()

		listCache = redisCache
		log.Info("list cache", "kind", "redis", "addr", cfg.RedisAddr)
	} else {
		listCache = cache.NewMemory(cfg.CacheTTL())
	}

	jwtManager := auth.NewManager(cfg.JWTSecret, cfg.TokenTTL())

	router := httpx.NewRouter(httpx.Deps{
		Log:       log,
		Cfg:       cfg,
		JWT:       jwtManager,
		Stores:    stores,
		Prom:      prom,
		Metrics:   promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
		ListCache: listCache,
		Ping:      ping,
	})

	// server set up
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Info("Server starting", "port", cfg.Port, "env", cfg.Env)
		err := srv.ListenAndServe()

		if err != nil && err != http.ErrServerClosed {
			log.Error("server failed", "err", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	log.Info("server shutting down")

	shutdownCh := make(chan struct{})

	go func() {
		defer close(shutdownCh)

		ctx, cancel := config.WithTimeout(10 * time.Second)

		defer cancel()

		err := srv.Shutdown(ctx)

		if err != nil {
			log.Error("graceful shutdown failed", "err", err)

			return
		}
	}()

	select {
	case <-shutdownCh:
		log.Info("shutdown complete")

	case <-time.After(12 * time.Second):
		log.Error("shutdown timed out")
	}
}
