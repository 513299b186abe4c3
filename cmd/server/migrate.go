package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ftfltech/careers-api/internal/platform/postgres"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Manage the database schema",
	Long:  "Run the embedded goose migrations against the configured database.",
}

func init() {
	migrateCmd.AddCommand(
		newMigrateSubcommand("up", "Apply all pending migrations", func(ctx context.Context, m *postgres.Migrator, _ *slog.Logger) error {
			return m.Up(ctx)
		}),
		newMigrateSubcommand("down", "Roll back the most recent migration", func(ctx context.Context, m *postgres.Migrator, _ *slog.Logger) error {
			return m.Down(ctx)
		}),
		newMigrateSubcommand("reset", "Roll back every migration", func(ctx context.Context, m *postgres.Migrator, _ *slog.Logger) error {
			return m.Reset(ctx)
		}),
		newMigrateSubcommand("status", "Print the status of every migration", func(ctx context.Context, m *postgres.Migrator, _ *slog.Logger) error {
			return m.Status(ctx)
		}),
		newMigrateSubcommand("version", "Print the current schema version", func(ctx context.Context, m *postgres.Migrator, log *slog.Logger) error {
			version, err := m.Version(ctx)
			if err != nil {
				return err
			}
			log.Info("current schema version", slog.Int64("version", version))
			return nil
		}),
	)
	rootCmd.AddCommand(migrateCmd)
}

type migrateFunc func(ctx context.Context, m *postgres.Migrator, log *slog.Logger) error

func newMigrateSubcommand(use, short string, fn migrateFunc) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := commandContext(cmd.Context())

			cfg, log, err := loadConfigAndLogger()
			if err != nil {
				return err
			}

			db, err := postgres.Open(ctx, cfg.Database.URL)
			if err != nil {
				return err
			}
			defer func() {
				if err := db.Close(); err != nil {
					log.Error("error closing database connection", slog.String("error", err.Error()))
				}
			}()

			if err := fn(ctx, postgres.NewMigrator(db, log), log); err != nil {
				return fmt.Errorf("migrate %s: %w", use, err)
			}
			return nil
		},
	}
}
