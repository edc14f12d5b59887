package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"notely/internal/gateway/config"
	"notely/pkg/logger"
)

// Константы для переменных окружения.
const (
	EnvLoggerMode  = "NOTELY_LOGGER_MODE"
	EnvLoggerLevel = "NOTELY_LOGGER_LEVEL"
)

// Константы для сообщений об ошибках.
const (
	ErrInitLogger           = "failed to initialize logger"
	ErrLoadConfig           = "failed to load configuration"
	ErrInitLoggerWithConfig = "failed to initialize logger with configuration settings"
)

var (
	configPath string
	appLogger  *logger.Logger
)

var rootCmd = &cobra.Command{
	Use:   "notely",
	Short: "Notes REST API with JWT authentication and full-text search",
	Long: `Notely serves a JSON API for registering users, issuing bearer tokens
and managing private notes stored in PostgreSQL.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to an optional YAML configuration file")
}

// bootstrap поднимает логгер по переменным окружения, загружает конфигурацию
// и пересоздает логгер с настройками из нее.
func bootstrap(ctx context.Context) (*config.Config, *logger.Logger, error) {
	env := logger.Development
	if strings.ToLower(os.Getenv(EnvLoggerMode)) == "production" {
		env = logger.Production
	}

	log, err := logger.NewLogger(env, os.Getenv(EnvLoggerLevel))
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", ErrInitLogger, err)
	}
	logger.SetGlobalLogger(log)
	appLogger = log

	cfg, err := config.Load(ctx, configPath)
	if err != nil {
		log.Error(ctx, ErrLoadConfig, zap.Error(err))
		return nil, nil, fmt.Errorf("%s: %w", ErrLoadConfig, err)
	}

	finalLogger, err := logger.NewLogger(cfg.Logging.GetEnvironment(), cfg.Logging.Level)
	if err != nil {
		log.Error(ctx, ErrInitLoggerWithConfig, zap.Error(err))
		return nil, nil, fmt.Errorf("%s: %w", ErrInitLoggerWithConfig, err)
	}
	logger.SetGlobalLogger(finalLogger)
	appLogger = finalLogger

	return cfg, finalLogger, nil
}
