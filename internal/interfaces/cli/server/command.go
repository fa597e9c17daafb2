package server

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"luma/internal/infrastructure/config"
	"luma/internal/infrastructure/database"
	"luma/internal/infrastructure/planstore"
	httpRouter "luma/internal/interfaces/http"
	"luma/internal/shared/logger"
)

var env string

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start the HTTP server",
		Long:  `Start the Luma HTTP server with the specified configuration.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	cfg.Server.Mode = mapEnvToGinMode(env)

	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log := logger.NewLogger()
	log.Infow("starting server", "environment", env)

	gin.DefaultWriter = io.Discard
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, nuHandlers int) {}

	// The download store opens lazily on first use. A failed open here is
	// not fatal: the catalog still serves, download endpoints report
	// storage as unavailable.
	store := database.NewStore(&cfg.Database)
	if err := store.Init(); err != nil {
		log.Warnw("download store unavailable", "error", err, "path", cfg.Database.Path)
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Errorw("failed to close download store", "error", err)
		}
	}()

	plans := planstore.New(log)
	if cfg.Catalog.SeedDefaults {
		if err := planstore.Seed(context.Background(), plans, log); err != nil {
			return fmt.Errorf("failed to seed plan catalog: %w", err)
		}
	}

	router := httpRouter.NewRouter(store, plans, cfg, log)

	// WriteTimeout stays 0: /api/plans/events holds its response open for
	// the lifetime of the subscription.
	srv := &http.Server{
		Addr:        cfg.Server.GetAddr(),
		Handler:     router.Engine(),
		ReadTimeout: 15 * time.Second,
		IdleTimeout: 60 * time.Second,
	}

	go func() {
		log.Infow("server starting", "address", cfg.Server.GetAddr(), "mode", cfg.Server.Mode)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("failed to start server", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "error", err)
		return err
	}

	log.Infow("server exited gracefully")
	return nil
}

func mapEnvToGinMode(env string) string {
	switch env {
	case "production":
		return gin.ReleaseMode
	case "test":
		return gin.TestMode
	default:
		return gin.DebugMode
	}
}
