// Package main provides the entry point for the league API server.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/festy23/league_manager/internal/config"
	"github.com/festy23/league_manager/internal/database/database"
	"github.com/festy23/league_manager/internal/database/migrate"
	"github.com/festy23/league_manager/internal/health"
	leagueRouter "github.com/festy23/league_manager/internal/league/router"
	"github.com/festy23/league_manager/internal/middleware"
	"github.com/festy23/league_manager/pkg/logger"
)

func main() {
	if err := config.LoadDotEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to load .env: %v\n", err)
		os.Exit(1)
	}

	cfg := config.LoadFromEnv()
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.NewWithConfig(cfg.Logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Errorw("server stopped with error", "error", err)
		os.Exit(1)
	}
}

// run serves the league API until ctx is cancelled, then shuts down gracefully.
func run(ctx context.Context, cfg config.Config, log *zap.SugaredLogger) error {
	db, err := database.New()
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer func() {
		if closeErr := database.Close(db); closeErr != nil {
			log.Warnw("failed to close database", "error", closeErr)
		}
	}()
	log.Infow("connected to database", "driver", db.Dialector.Name())

	if cfg.MigrationsEnabled {
		if err := migrate.Migrate(db); err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}
		log.Info("migrations applied")
	}

	gin.SetMode(cfg.GinMode)
	srv := &http.Server{
		Addr:         cfg.Server.GetAddress(),
		Handler:      newEngine(cfg, db, log),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Infow("server listening", "address", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()
		log.Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// newEngine builds the gin engine with middleware and every route.
func newEngine(cfg config.Config, db *gorm.DB, log *zap.SugaredLogger) *gin.Engine {
	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.Recovery(log),
		middleware.Logger(log),
		middleware.CORS(cfg.CORS),
	)

	health.New(db, log).RegisterRoutes(r)
	leagueRouter.RegisterRoutes(r, db, log)

	return r
}
