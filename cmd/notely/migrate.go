package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"notely/internal/gateway/db"
)

// Константы для сообщений сервиса.
const (
	LogMigrationsApplied    = "migrations applied"
	LogMigrationsRolledBack = "migrations rolled back"
)

var rollbackSteps int

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Manage the database schema",
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply all pending migrations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()
		cfg, log, err := bootstrap(ctx)
		if err != nil {
			return err
		}

		if err := db.Migrate(ctx, &cfg.Postgres, cfg.MigrationsDir); err != nil {
			log.Error(ctx, db.ErrDBMigrations, zap.Error(err))
			return fmt.Errorf("migrate up: %w", err)
		}

		log.Info(ctx, LogMigrationsApplied, zap.String("dir", cfg.MigrationsDir))
		return nil
	},
}

var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Roll back the most recent migrations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()
		cfg, log, err := bootstrap(ctx)
		if err != nil {
			return err
		}

		if err := db.Rollback(ctx, &cfg.Postgres, cfg.MigrationsDir, rollbackSteps); err != nil {
			log.Error(ctx, db.ErrDBRollback, zap.Error(err))
			return fmt.Errorf("migrate down: %w", err)
		}

		log.Info(ctx, LogMigrationsRolledBack, zap.Int("steps", rollbackSteps))
		return nil
	},
}

func init() {
	migrateDownCmd.Flags().IntVarP(&rollbackSteps, "steps", "n", 1, "number of migrations to roll back")
	migrateCmd.AddCommand(migrateUpCmd, migrateDownCmd)
	rootCmd.AddCommand(migrateCmd)
}
