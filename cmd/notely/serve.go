package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	authpg "notely/internal/auth/adapters/postgres"
	authservices "notely/internal/auth/adapters/services"
	authapp "notely/internal/auth/app"
	grpcAdapter "notely/internal/gateway/adapters/grpc"
	httpServer "notely/internal/gateway/app/http"
	"notely/internal/gateway/config"
	"notely/internal/gateway/db"
	"notely/internal/gateway/resilience"
	notespg "notely/internal/notes/adapters/postgres"
	notesapp "notely/internal/notes/app"
	"notely/pkg/logger"
	"notely/pkg/shutdown"
)

// Константы для сообщений сервиса.
const (
	LogServiceStarting = "starting notely"
	LogHTTPListening   = "HTTP server listening"
	LogHTTPStopped     = "HTTP server stopped"
	LogServiceStopped  = "notely stopped"
)

// Константы для сообщений об ошибках.
const (
	ErrInvalidTTL     = "invalid token lifetime"
	ErrInitDatabase   = "failed to initialize database"
	ErrStartGRPC      = "failed to start gRPC server"
	ErrHTTPServer     = "HTTP server failed"
	ErrShutdownFailed = "graceful shutdown finished with errors"
)

const maxConnectBackoff = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Apply migrations and start the HTTP API and gRPC health server",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, log, err := bootstrap(cmd.Context())
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(logger.NewContext(cmd.Context(), log))
	defer cancel()

	log.Info(ctx, LogServiceStarting, zap.String("version", version))

	ttl, err := cfg.JWT.GetTTL()
	if err != nil {
		log.Error(ctx, ErrInvalidTTL, zap.Error(err))
		return fmt.Errorf("%s: %w", ErrInvalidTTL, err)
	}

	var database *db.DB
	err = resilience.NewRetry("postgres", resilience.Config{
		MaxAttempts:    cfg.Postgres.ConnectAttempts,
		InitialBackoff: cfg.Postgres.ConnectBackoff,
		MaxBackoff:     maxConnectBackoff,
	}).Execute(ctx, func(ctx context.Context) error {
		var connectErr error
		database, connectErr = db.New(ctx, &cfg.Postgres, cfg.MigrationsDir)
		return connectErr
	})
	if err != nil {
		log.Error(ctx, ErrInitDatabase, zap.Error(err))
		return fmt.Errorf("%s: %w", ErrInitDatabase, err)
	}

	app := newHTTPApp(cfg, ttl, database)

	grpcServer := grpcAdapter.New(&cfg.GRPC)
	if err := grpcServer.Start(ctx); err != nil {
		database.Close(ctx)
		log.Error(ctx, ErrStartGRPC, zap.Error(err))
		return fmt.Errorf("%s: %w", ErrStartGRPC, err)
	}

	httpErr := make(chan error, 1)
	go func() {
		addr := cfg.HTTP.GetAddress()
		log.Info(ctx, LogHTTPListening, zap.String("address", addr))
		if err := app.Listen(addr, fiber.ListenConfig{DisableStartupMessage: true}); err != nil {
			log.Error(ctx, ErrHTTPServer, zap.Error(err))
			httpErr <- err
			cancel()
		}
	}()

	shutdownErr := shutdown.Wait(ctx, cfg.Shutdown.GetTimeout(),
		func(ctx context.Context) error {
			grpcServer.Stop(ctx)
			return nil
		},
		func(ctx context.Context) error {
			defer database.Close(ctx)
			if err := app.ShutdownWithContext(ctx); err != nil {
				return err
			}
			log.Info(ctx, LogHTTPStopped)
			return nil
		},
	)
	if shutdownErr != nil {
		log.Error(ctx, ErrShutdownFailed, zap.Error(shutdownErr))
	}

	select {
	case err := <-httpErr:
		return errors.Join(fmt.Errorf("%s: %w", ErrHTTPServer, err), shutdownErr)
	default:
	}

	log.Info(ctx, LogServiceStopped)
	return shutdownErr
}

// newHTTPApp собирает репозитории, сценарии и маршруты поверх пула базы.
func newHTTPApp(cfg *config.Config, ttl time.Duration, database *db.DB) *fiber.App {
	userRepo := authpg.NewRepositoryFactory(database.Pool()).UserRepository()
	noteRepo := notespg.NewRepositoryFactory(database.Pool()).NoteRepository()
	svc := authservices.NewServiceFactory(cfg.JWT.Secret, ttl, cfg.JWT.BCryptCost)

	app := httpServer.NewApp(cfg.HTTP.ReadTimeout, cfg.HTTP.WriteTimeout)
	httpServer.SetupRouter(app, httpServer.Dependencies{
		AuthUseCase: authapp.NewAuthUseCase(userRepo, svc.PasswordService(), svc.TokenService()),
		UserUseCase: authapp.NewUserUseCase(userRepo),
		NoteUseCase: notesapp.NewNoteUseCase(noteRepo),
		Database:    database,
	})
	return app
}
