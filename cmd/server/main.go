// Package main is the entry point for the route console API.
//
//	@title						Route Console API
//	@version					1.0.0
//	@description				Operator console API for managing locations and transportations and searching routes on the upstream network service.
//
//	@contact.name				API Support
//	@contact.url				https://github.com/skyroute/route-console/issues
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:3000
//	@BasePath					/
//
//	@schemes					http https
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

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	// Import generated docs for swagger
	_ "github.com/skyroute/route-console/docs"

	consolehttp "github.com/skyroute/route-console/internal/adapter/http"
	"github.com/skyroute/route-console/internal/adapter/http/middleware"
	"github.com/skyroute/route-console/internal/adapter/upstream"
	"github.com/skyroute/route-console/internal/config"
	"github.com/skyroute/route-console/internal/infrastructure/logger"
	"github.com/skyroute/route-console/internal/infrastructure/timeutil"
	"github.com/skyroute/route-console/internal/presentation"
	"github.com/skyroute/route-console/internal/usecase"
)

const (
	shutdownTimeout = 10 * time.Second

	// sessionSweepInterval is how often idle search sessions are evicted
	sessionSweepInterval = time.Minute
)

func main() {
	cfg := config.MustLoad()

	logger.Init(logger.Config{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		ServiceName: "route-console",
	})
	log := logger.Get()

	log.Info().
		Str("env", cfg.App.Env).
		Int("port", cfg.Server.Port).
		Str("upstream", cfg.Upstream.BaseURL).
		Str("timezone", cfg.Search.OperatorTimezone).
		Msg("Configuration loaded")

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	middleware.SetupWithConfig(e, log.Logger, middleware.Options{
		Recovery: middleware.RecoveryConfig{
			DisableStackAll:   true,
			DisablePrintStack: cfg.IsProduction(),
		},
		RateLimit: middleware.RateLimitConfig{
			Enabled:      cfg.RateLimit.Enabled,
			RequestLimit: cfg.RateLimit.Requests,
			WindowLength: cfg.RateLimit.Window,
		},
	})

	setupRoutes(ctx, e, cfg, log)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		log.Info().Str("address", addr).Msg("Starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	gracefulShutdown(e, stop, log)
}

// setupRoutes wires the upstream client, use cases and handlers.
func setupRoutes(ctx context.Context, e *echo.Echo, cfg *config.Config, log *logger.Logger) {
	client := upstream.NewClient(upstream.Config{
		BaseURL: cfg.Upstream.BaseURL,
		Timeout: cfg.Upstream.Timeout,
		Headers: cfg.Upstream.Headers,
		Breaker: upstream.BreakerConfig{
			Name:             "upstream",
			FailureThreshold: cfg.Upstream.BreakerFailureThreshold,
			Timeout:          cfg.Upstream.BreakerTimeout,
		},
	}, log.WithComponent("upstream").Logger)

	clock := timeutil.NewRealClock()
	search := usecase.NewRouteSearchUseCase(client, &usecase.Config{
		Location:    cfg.OperatorLocation(),
		VerifyShape: cfg.Search.VerifyRouteShape,
		Clock:       clock,
		Logger:      log,
	})

	sessions := usecase.NewSessions(search, cfg.Search.SessionIdleTTL, clock)
	go sessions.Run(ctx, sessionSweepInterval)

	handler := consolehttp.NewHandler(consolehttp.Dependencies{
		Locations:       client,
		Transportations: client,
		Search:          search,
		Sessions:        sessions,
		Directory:       presentation.NewDirectoryLoader(client, cfg.Search.LocationLookupSize, log),
		Upstream:        client,
		Location:        cfg.OperatorLocation(),
		Logger:          log,
	})
	consolehttp.RegisterRoutes(e, handler)

	e.GET("/swagger/*", echoSwagger.WrapHandler)
}

// gracefulShutdown handles graceful server shutdown on interrupt signals.
func gracefulShutdown(e *echo.Echo, stop context.CancelFunc, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Info().Msg("Shutting down server...")
	stop()

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Error during server shutdown")
	}

	log.Info().Msg("Server stopped")
}
