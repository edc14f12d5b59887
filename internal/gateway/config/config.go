// Package config содержит конфигурацию сервиса заметок.
package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"notely/pkg/logger"
)

// Константы ошибок и сообщений для конфигурации.
const (
	LogLoadingConfig    = "Loading notely configuration"
	LogConfigLoaded     = "Configuration loaded successfully"
	LogDotEnvSkipped    = "No .env file found, using process environment"
	ErrFailedLoadConfig = "Failed to load configuration"
	ErrFailedLoadDotEnv = "Failed to load .env file"
	ErrInvalidConfig    = "Invalid configuration"
)

// Config представляет полную конфигурацию приложения.
type Config struct {
	HTTP          HTTPConfig       `yaml:"http"`
	GRPC          GRPCServerConfig `yaml:"grpc"`
	Postgres      PostgresConfig   `yaml:"postgres"`
	JWT           JWTConfig        `yaml:"jwt"`
	Logging       LoggingConfig    `yaml:"logging"`
	Shutdown      ShutdownConfig   `yaml:"shutdown"`
	MigrationsDir string           `yaml:"migrations_dir" env:"NOTELY_MIGRATIONS_DIR" env-default:"migrations"`
}

// Load загружает конфигурацию. Сначала подхватывается необязательный .env,
// затем YAML-файл path (если задан), переменные окружения имеют приоритет.
func Load(ctx context.Context, path string) (*Config, error) {
	log := logger.Log(ctx)

	log.Info(ctx, LogLoadingConfig, zap.String("path", path))

	if err := godotenv.Load(); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.Error(ctx, ErrFailedLoadDotEnv, zap.Error(err))
			return nil, fmt.Errorf("%s: %w", ErrFailedLoadDotEnv, err)
		}
		log.Debug(ctx, LogDotEnvSkipped)
	}

	var cfg Config
	var err error
	if path != "" {
		err = cleanenv.ReadConfig(path, &cfg)
	} else {
		err = cleanenv.ReadEnv(&cfg)
	}
	if err != nil {
		log.Error(ctx, ErrFailedLoadConfig, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", ErrFailedLoadConfig, err)
	}

	if _, err := cfg.JWT.GetTTL(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrInvalidConfig, err)
	}

	log.Info(ctx, LogConfigLoaded,
		zap.String("http_address", cfg.HTTP.GetAddress()),
		zap.String("grpc_address", cfg.GRPC.GetAddress()),
		zap.String("postgres_host", cfg.Postgres.Host),
		zap.Int("postgres_port", cfg.Postgres.Port),
		zap.String("log_level", cfg.Logging.Level),
		zap.String("log_mode", cfg.Logging.Mode),
		zap.Int("shutdown_timeout_seconds", cfg.Shutdown.Timeout),
		zap.String("jwt_expires_in", cfg.JWT.ExpiresIn))

	return &cfg, nil
}

// GetEnvironment возвращает режим работы логгера.
func (c *LoggingConfig) GetEnvironment() logger.Environment {
	if c.Mode == "development" {
		return logger.Development
	}
	return logger.Production
}
