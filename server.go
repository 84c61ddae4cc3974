package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"

	_ "github.com/warehouse-netops/channel-planner/docs"
)

// newHTTPServer builds the http.Server (package-level variable for testing)
var newHTTPServer = func(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// serverShutdown shuts the server down gracefully (package-level variable for testing)
var serverShutdown = func(ctx context.Context, server *http.Server) error {
	return server.Shutdown(ctx)
}

func runServer(addr string) error {
	// load config
	serverAddr = getEnv(EnvServerAddr, addr)
	reportDir = getEnv(EnvReportDir, DefaultReportDir)

	// Report store backs all persistence; refuse to start without it.
	store, err := newReportStore(reportDir)
	if err != nil {
		return err
	}
	reportStoreInstance = store
	logger.Info("Report store ready", zap.String("dir", reportDir))

	// Cache TTL override (seconds)
	cacheTimeout := DefaultCacheTimeout
	if ttlStr := getEnv(EnvCacheTTL, ""); ttlStr != "" {
		if ttl, err := strconv.Atoi(ttlStr); err == nil && ttl > 0 {
			cacheTimeout = time.Duration(ttl) * time.Second
		}
	}
	reportCacheInstance = newReportCache(cacheTimeout)
	logger.Info("Report cache configured", zap.Duration("ttl", cacheTimeout))

	// Load middleware authentication config (for incoming API requests)
	middlewareAuth = getEnv(EnvMiddlewareAuth, "false") == "true"
	authKey = getEnv(EnvAuthKey, DefaultAuthKey)

	// Return error if middleware auth is enabled but AUTH_KEY is not set
	// This prevents the server from starting in an insecure state
	if middlewareAuth && authKey == "" {
		return fmt.Errorf("MIDDLEWARE_AUTH is enabled but AUTH_KEY is not set. " +
			"Set AUTH_KEY environment variable or disable MIDDLEWARE_AUTH")
	}
	logger.Info("Middleware authentication", zap.Bool("enabled", middlewareAuth))

	// start worker pool
	planWorkerPool.Start()
	defer planWorkerPool.Stop()

	// Load rate limit configuration
	rateLimitRequests := DefaultRateLimitRequests
	if rlReqStr := getEnv(EnvRateLimitRequests, ""); rlReqStr != "" {
		if rlReq, err := strconv.Atoi(rlReqStr); err == nil && rlReq > 0 {
			rateLimitRequests = rlReq
		}
	}
	rateLimitWindow := time.Duration(DefaultRateLimitWindow) * time.Second
	if rlWinStr := getEnv(EnvRateLimitWindow, ""); rlWinStr != "" {
		if rlWin, err := strconv.Atoi(rlWinStr); err == nil && rlWin > 0 {
			rateLimitWindow = time.Duration(rlWin) * time.Second
		}
	}
	logger.Info("Rate limiting configured",
		zap.Int("requests", rateLimitRequests),
		zap.Duration("window", rateLimitWindow))

	// Load CORS config - default to "*" (allow all origins)
	originsStr := getEnv(EnvCORSAllowedOrigins, DefaultCORSAllowedOrigins)
	corsOrigins := strings.Split(originsStr, ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}
	corsMaxAge := DefaultCORSMaxAge
	if corsMaxAgeStr := getEnv(EnvCORSMaxAge, ""); corsMaxAgeStr != "" {
		if maxAge, err := strconv.Atoi(corsMaxAgeStr); err == nil && maxAge > 0 {
			corsMaxAge = maxAge
		}
	}
	logger.Info("CORS enabled", zap.Strings("allowed_origins", corsOrigins))

	// router
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
	r.Use(middleware.Timeout(DefaultRequestTimeout))
	// Apply rate limiting middleware
	rl := newRateLimiter(rateLimitRequests, rateLimitWindow)
	rl.StartCleanup() // Start background cleanup to prevent memory leaks
	defer rl.StopCleanup()
	r.Use(rateLimitMiddleware(rl))

	// Start auth attempt tracker cleanup for brute force protection
	authTracker.StartCleanup()
	defer authTracker.StopCleanup()
	r.Use(securityHeadersMiddleware)
	r.Use(corsMiddleware(corsOrigins, corsMaxAge))

	// Health, metrics and documentation endpoints - intentionally outside
	// authentication so load balancers, Prometheus and developers can reach
	// them without API credentials.
	r.Get("/health", healthCheckHandler)
	r.Get("/metrics", promhttp.Handler().ServeHTTP)
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Route("/api/v1/planner", func(r chi.Router) {
		// Apply API key authentication middleware if enabled
		if middlewareAuth {
			r.Use(apiKeyAuthMiddleware)
		}
		r.Post("/plan", createPlanHandler)
		r.Get("/report/{facility}", getReportHandler)
		r.Get("/report/{facility}/grid", getGridHandler)
		r.Get("/channels/{band}", getChannelsHandler)
		r.Get("/interference/catalog", getInterferenceCatalogHandler)
		r.Get("/capacity/weights", getDeviceWeightsHandler)
		r.Post("/cache/clear", clearCacheHandler)
	})

	// server
	server := newHTTPServer(serverAddr, r)

	// start server
	serverErr := make(chan error, 1)
	go func() {
		logger.Info("Server listening", zap.String("address", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		return err
	case <-quit:
		logger.Info("Shutdown signal received, starting graceful shutdown...")

		ctx, cancel := context.WithTimeout(context.Background(), DefaultShutdownTimeout)
		defer cancel()

		if err := serverShutdown(ctx, server); err != nil {
			return err
		}

		logger.Info("Server exited properly")
		return nil
	}
}
