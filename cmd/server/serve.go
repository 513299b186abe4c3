package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ftfltech/careers-api/internal/config"
	"github.com/ftfltech/careers-api/internal/platform/logger"
	"github.com/ftfltech/careers-api/internal/platform/postgres"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long:  "Start the HTTP API server. With --migrate, pending database migrations are applied first.",
	RunE:  runServe,
}

func init() {
	registerServeFlags(serveCmd)
	rootCmd.AddCommand(serveCmd)
}

func registerServeFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("migrate", false, "apply pending migrations before starting")
}

func runServe(cmd *cobra.Command, _ []string) error {
	migrate, err := cmd.Flags().GetBool("migrate")
	if err != nil {
		return err
	}

	cfg, log, err := loadConfigAndLogger()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(commandContext(cmd.Context()), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := newApplication(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}
	defer app.cleanup()

	if migrate {
		if err := postgres.NewMigrator(app.db, log).Up(ctx); err != nil {
			return err
		}
	}

	return app.Run(ctx)
}

// loadConfigAndLogger loads configuration and installs the process logger.
func loadConfigAndLogger() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.Setup(cfg.Server.LogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	log.Info("server configuration loaded",
		slog.Int("port", cfg.Server.Port),
		slog.String("log_level", cfg.Server.LogLevel),
		slog.Bool("blob_configured", cfg.Blob.CloudinaryURL != ""),
		slog.Bool("cache_configured", cfg.Cache.RedisURL != ""))
	return cfg, log, nil
}

// commandContext returns ctx, or a background context when cobra ran without one.
func commandContext(ctx context.Context) context.Context {
	if ctx == nil {
		return context.Background()
	}
	return ctx
}
