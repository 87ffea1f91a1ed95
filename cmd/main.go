package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"talentlens/internal/adapters/cache"
	"talentlens/internal/adapters/http/api"
	"talentlens/internal/adapters/upstream"
	"talentlens/internal/app"
	"talentlens/internal/config"
	"talentlens/pkg/logger"
	"talentlens/pkg/metrics"
)

// HTTP server timeout constants.
const (
	readTimeout          = 15 * time.Second
	writeTimeout         = 15 * time.Second
	idleTimeout          = 60 * time.Second
	readHeaderTimeout    = 5 * time.Second
	shutdownTimeout      = 30 * time.Second
	cacheMetricsInterval = 15 * time.Second
)

func main() {
	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration (defaults -> optional file -> .env -> env)
	cfg, err := config.Load(ctx)
	if err != nil {
		// Logger is not available yet.
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		os.Exit(1)
	}

	// Initialize logging: JSON in production, text locally.
	logOpts := []logger.Option{}
	if !cfg.Development() {
		logOpts = append(logOpts, logger.WithJSON())
	}
	if err := logger.Init(logOpts...); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}
	log := logger.Get()

	// Apply configured log level (fallback to info on invalid input)
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		log.Warn(ctx, "invalid log_level; falling back to info",
			logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	profiles := cache.New(cache.WithCapacity(cfg.CacheCapacity))

	upstreamClient := upstream.New(cfg.UpstreamBaseURL,
		upstream.WithTimeout(time.Duration(cfg.UpstreamTimeoutMS)*time.Millisecond),
		upstream.WithRetry(cfg.RetryAttempts, time.Duration(cfg.RetryDelayMS)*time.Millisecond),
	)

	svc := app.New(
		app.WithLogger(log.Named("app")),
		app.WithUpstream(upstreamClient),
		app.WithCache(profiles),
		app.WithMockMode(cfg.UseMockData),
		app.WithMockFallback(cfg.MockFallback),
	)

	go startCacheMetricsUpdater(ctx, svc)

	server := api.NewServer(svc,
		api.WithLogger(log.Named("http")),
		api.WithDevelopmentMode(cfg.Development()),
		api.WithRequestLogging(cfg.RequestLogging),
		api.WithPageSizes(cfg.SearchDefaultSize, cfg.SearchMaxSize),
		api.WithRateLimit(cfg.RateLimitRequests, time.Duration(cfg.RateLimitWindowMinutes)*time.Minute),
		api.WithAllowedOrigins(cfg.Origins()),
	)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           server.Router(),
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	go func() {
		log.Info(ctx, "starting HTTP server",
			logger.String("addr", cfg.Addr),
			logger.String("environment", cfg.Environment),
			logger.String("upstream", cfg.UpstreamBaseURL),
			logger.Bool("mock_mode", cfg.UseMockData),
			logger.Bool("mock_fallback", cfg.MockFallback))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error(ctx, "HTTP server failed", logger.Error(err))
			stop()
		}
	}()

	// Wait for shutdown signal
	<-ctx.Done()
	log.Info(ctx, "shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error(ctx, "server shutdown failed", logger.Error(err))
	}

	log.Info(ctx, "server stopped")
}

// startCacheMetricsUpdater keeps the cache size gauge fresh even when no
// requests are flowing.
func startCacheMetricsUpdater(ctx context.Context, svc *app.Service) {
	ticker := time.NewTicker(cacheMetricsInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			metrics.UpdateCacheSize(svc.CachedProfiles(ctx))
		}
	}
}
