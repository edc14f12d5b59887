// Package db управляет подключением к базе данных заметок и ее схемой.
package db

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"notely/internal/gateway/config"
	"notely/pkg/db/postgres"
	"notely/pkg/logger"
)

// Константы для сообщений логгера.
const (
	LogDBInitializing    = "initializing notely database"
	LogDBInitialized     = "notely database initialized successfully"
	LogMigrationStarting = "starting database migrations"
	LogRollbackStarting  = "rolling back database migrations"
)

// Константы для сообщений об ошибках.
const (
	ErrDBInit       = "failed to initialize notely database"
	ErrDBMigrations = "failed to apply notely database migrations"
	ErrDBRollback   = "failed to roll back notely database migrations"
	ErrDBConnection = "failed to connect to notely database"
	ErrGetPath      = "failed to get path"
)

// DB представляет соединение с базой данных заметок.
type DB struct {
	database *postgres.Database
}

// New инициализирует соединение с базой данных, предварительно применив миграции.
func New(ctx context.Context, cfg *config.PostgresConfig, migrationsDir string) (*DB, error) {
	log := logger.Log(ctx)

	log.Info(ctx, LogDBInitializing,
		zap.String("host", cfg.Host),
		zap.Int("port", cfg.Port),
		zap.String("database", cfg.Database),
		zap.Int("min_conn", cfg.MinConn),
		zap.Int("max_conn", cfg.MaxConn))

	if err := Migrate(ctx, cfg, migrationsDir); err != nil {
		return nil, err
	}

	database, err := postgres.New(ctx, cfg.GetDSN(), cfg.MinConn, cfg.MaxConn)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrDBConnection, err)
	}

	log.Info(ctx, LogDBInitialized)

	return &DB{
		database: database,
	}, nil
}

// Migrate применяет все новые миграции из migrationsDir.
func Migrate(ctx context.Context, cfg *config.PostgresConfig, migrationsDir string) error {
	migrationsPath, err := MigrationsURL(migrationsDir)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrDBMigrations, err)
	}

	logger.Log(ctx).Info(ctx, LogMigrationStarting, zap.String("migrations_path", migrationsPath))
	if err := postgres.MigrateDSN(ctx, cfg.GetConnectionURL(), migrationsPath); err != nil {
		return fmt.Errorf("%s: %w", ErrDBMigrations, err)
	}
	return nil
}

// Rollback откатывает steps последних миграций.
func Rollback(ctx context.Context, cfg *config.PostgresConfig, migrationsDir string, steps int) error {
	migrationsPath, err := MigrationsURL(migrationsDir)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrDBRollback, err)
	}

	logger.Log(ctx).Info(ctx, LogRollbackStarting,
		zap.String("migrations_path", migrationsPath),
		zap.Int("steps", steps))
	if err := postgres.RollbackDSN(ctx, cfg.GetConnectionURL(), migrationsPath, steps); err != nil {
		return fmt.Errorf("%s: %w", ErrDBRollback, err)
	}
	return nil
}

// MigrationsURL превращает путь к каталогу миграций в file:// URL.
func MigrationsURL(migrationsDir string) (string, error) {
	if filepath.IsAbs(migrationsDir) {
		return "file://" + migrationsDir, nil
	}
	absPath, err := filepath.Abs(migrationsDir)
	if err != nil {
		return "", fmt.Errorf("%s: %w", ErrGetPath, err)
	}
	return "file://" + absPath, nil
}

// Close закрывает соединение с базой данных.
func (db *DB) Close(ctx context.Context) {
	db.database.Close(ctx)
}

// Pool возвращает пул соединений с базой данных.
func (db *DB) Pool() *pgxpool.Pool {
	return db.database.Pool()
}

// Ping проверяет соединение с базой данных.
func (db *DB) Ping(ctx context.Context) error {
	return db.database.Ping(ctx)
}

// Database возвращает доступ к базовой реализации для расширенных операций.
func (db *DB) Database() *postgres.Database {
	return db.database
}
