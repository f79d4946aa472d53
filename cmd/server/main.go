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

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/supremehato/valorant-vision/internal/config"
	"github.com/supremehato/valorant-vision/internal/gateway"
	"github.com/supremehato/valorant-vision/internal/handlers"
	"github.com/supremehato/valorant-vision/internal/logic"
	"github.com/supremehato/valorant-vision/internal/worker"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "valorant-vision: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return fmt.Errorf("failed to init logger: %w", err)
	}
	defer logger.Sync() //nolint:errcheck
	sugar := logger.Sugar()

	httpClient := gateway.NewHTTPClient(cfg.UpstreamTimeout)

	// The direct upstream doubles as the proxy's key injector. Without a
	// key it reports itself unconfigured and the proxy answers 500.
	upstream := gateway.NewUpstream(cfg.HenrikBaseURL, cfg.HenrikAPIKey, httpClient)

	var transport gateway.Transport = upstream
	if cfg.UseProxy() {
		transport = gateway.NewProxyTransport(cfg.ProxyURL, httpClient)
		sugar.Infow("No API key configured, routing upstream calls through proxy", "proxy", cfg.ProxyURL)
	}

	var g gateway.Gateway = gateway.NewClient(transport, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var (
		rdb    *redis.Client
		warmer *worker.Pool
	)
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return fmt.Errorf("invalid REDIS_URL: %w", err)
		}
		rdb = redis.NewClient(opts)
		defer rdb.Close()

		pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
		if err := rdb.Ping(pingCtx).Err(); err != nil {
			sugar.Warnw("Redis unreachable at startup, continuing without warm cache", "error", err)
		}
		cancel()

		cachedGateway := gateway.NewCachedGateway(g, rdb, gateway.CacheTTL{
			Account:     cfg.CacheTTLAccount,
			MMR:         cfg.CacheTTLMMR,
			Matches:     cfg.CacheTTLMatches,
			Leaderboard: cfg.CacheTTLLeaderboard,
		}, logger)
		g = cachedGateway

		warmer = worker.NewPool(worker.PoolConfig{
			WorkerCount: cfg.WorkerCount,
			QueueSize:   cfg.QueueSize,
			Interval:    cfg.WarmInterval,
			Regions:     logic.RegionValues(),
			Refresher:   cachedGateway,
			Logger:      logger,
		})
		warmer.Start(ctx)
		defer warmer.Stop()
	}

	hcfg := handlers.Config{
		Stats:    gateway.NewService(g, logger),
		Upstream: upstream,
		Redis:    rdb,
		Logger:   logger,
		PageSize: cfg.MatchPageSize,
	}
	if warmer != nil {
		hcfg.Warmer = warmer
	}
	h := handlers.New(hcfg)

	server := &http.Server{
		Addr: fmt.Sprintf(":%d", cfg.Port),
		Handler: h.Routes(handlers.RouterConfig{
			AllowedOrigins:        cfg.AllowedOrigins,
			MaxConcurrentRequests: cfg.MaxConcurrentRequests,
			RequestTimeout:        cfg.UpstreamTimeout * 3,
		}),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.UpstreamTimeout*3 + 5*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		sugar.Infow("Starting server", "addr", server.Addr, "env", cfg.Env, "cache", rdb != nil)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case err := <-serverErr:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
		sugar.Info("Shutting down server")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	sugar.Info("Server stopped")
	return nil
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsDevelopment() {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
