// Package app assembles and runs the HTTP server.
package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/quickhirelabor/quickhire/internal/config"
	"github.com/quickhirelabor/quickhire/internal/data"
	"github.com/quickhirelabor/quickhire/internal/data/repository"
	"github.com/quickhirelabor/quickhire/internal/handler"
	"github.com/quickhirelabor/quickhire/internal/logging/logger"
	"github.com/quickhirelabor/quickhire/internal/logging/observes"
	"github.com/quickhirelabor/quickhire/internal/middleware"
	"github.com/quickhirelabor/quickhire/internal/service"
	"github.com/quickhirelabor/quickhire/internal/validation"
)

// App represents the assembled application.
type App struct {
	config  *config.Config
	logger  *logger.Logger
	data    *data.Data
	handler *handler.Handler
	server  *http.Server
	cleanup []func()
}

// New builds the application from configuration: storage, repositories,
// services and the HTTP surface.
func New(cfg *config.Config) (*App, error) {
	logCleanup, err := logger.New(cfg.Logger)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	log := logger.StdLogger()

	if err := observes.NewSentry(&observes.SentryOptions{
		Dsn:         cfg.Observes.Sentry.Dsn,
		Name:        cfg.AppName,
		Environment: cfg.RunMode,
	}); err != nil {
		logCleanup()
		return nil, fmt.Errorf("init sentry: %w", err)
	}

	d, err := data.New(cfg.Data, log)
	if err != nil {
		logCleanup()
		return nil, fmt.Errorf("init data layer: %w", err)
	}
	if cfg.Data.Database.Migrate {
		if err := data.Migrate(context.Background(), d); err != nil {
			d.Close()
			logCleanup()
			return nil, fmt.Errorf("migrate schema: %w", err)
		}
	}

	if err := validation.RegisterBindings(); err != nil {
		d.Close()
		logCleanup()
		return nil, err
	}

	repos := repository.New(d)
	services := service.New(cfg, d, repos, log)

	switch cfg.RunMode {
	case gin.DebugMode, gin.TestMode:
		gin.SetMode(cfg.RunMode)
	default:
		gin.SetMode(gin.ReleaseMode)
	}

	return &App{
		config:  cfg,
		logger:  log,
		data:    d,
		handler: handler.New(services, d, log),
		cleanup: []func(){logCleanup},
	}, nil
}

// Run starts the server and blocks until shutdown.
func (a *App) Run() error {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Trace())
	router.Use(middleware.RequestLogger(a.logger))

	a.handler.RegisterRoutes(router)

	addr := a.config.Addr()
	a.server = &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		a.logger.Info(context.Background(), "starting server", "addr", addr)
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Error(context.Background(), "server failed", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	a.logger.Info(context.Background(), "shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := a.server.Shutdown(ctx); err != nil {
		a.logger.Error(context.Background(), "server forced to shutdown", "error", err)
		a.Close()
		return err
	}

	a.Close()
	a.logger.Info(context.Background(), "server exited")
	return nil
}

// Close releases the application's resources.
func (a *App) Close() {
	if a.data != nil {
		if err := a.data.Close(); err != nil {
			a.logger.Error(context.Background(), "close data layer", "error", err)
		}
		a.data = nil
	}
	for _, fn := range a.cleanup {
		fn()
	}
	a.cleanup = nil
}
