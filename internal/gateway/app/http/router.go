// Package http содержит компоненты для HTTP сервера.
package http

import (
	"context"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v3"

	authapi "notely/internal/auth/ports/api"
	"notely/internal/gateway/app/http/auth"
	"notely/internal/gateway/app/http/middleware"
	"notely/internal/gateway/app/http/notes"
	"notely/internal/gateway/app/http/response"
	"notely/internal/gateway/app/http/validation"
	notesapi "notely/internal/notes/ports/api"
)

// Константы проверки состояния.
const (
	StatusOK     = "ok"
	MsgHealthy   = "Service is healthy"
	MsgUnhealthy = "Database is unavailable"
)

// Pinger проверяет доступность хранилища.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Dependencies - сценарии, которые обслуживает HTTP API.
type Dependencies struct {
	AuthUseCase authapi.AuthUseCase
	UserUseCase authapi.UserUseCase
	NoteUseCase notesapi.NoteUseCase
	Database    Pinger
}

// NewApp создает fiber приложение с единым обработчиком ошибок.
func NewApp(readTimeout, writeTimeout time.Duration) *fiber.App {
	return fiber.New(fiber.Config{
		AppName:      "notely",
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		ErrorHandler: response.ErrorHandler,
	})
}

// SetupRouter настраивает маршрутизацию для HTTP сервера.
func SetupRouter(app *fiber.App, deps Dependencies) {
	validator := validation.New()
	authHandler := auth.NewHandler(deps.AuthUseCase, deps.UserUseCase, validator)
	notesHandler := notes.NewHandler(deps.NoteUseCase, validator)
	gate := middleware.NewAuthMiddleware(deps.AuthUseCase)

	// Middleware для всех запросов.
	app.Use(middleware.NewRequestIDMiddleware())
	app.Use(middleware.NewLoggerMiddleware(response.ErrorHandler))
	app.Use(middleware.NewRecoveryMiddleware())

	api := app.Group("/api")
	api.Get("/health", healthHandler(deps.Database))

	// Auth routes.
	authRoutes := api.Group("/auth")
	authRoutes.Post("/register", authHandler.Register)
	authRoutes.Post("/login", authHandler.Login)
	authRoutes.Get("/profile", gate.Protect(authHandler.GetProfile))

	// Маршруты заметок. /search объявлен раньше /:id.
	notesRoutes := api.Group("/notes")
	notesRoutes.Post("/", gate.Protect(notesHandler.CreateNote))
	notesRoutes.Get("/", gate.Protect(notesHandler.ListNotes))
	notesRoutes.Get("/search", gate.Protect(notesHandler.SearchNotes))
	notesRoutes.Get("/:"+notes.ParamNoteID, gate.Protect(notesHandler.GetNote))
	notesRoutes.Put("/:"+notes.ParamNoteID, gate.Protect(notesHandler.UpdateNote))
	notesRoutes.Delete("/:"+notes.ParamNoteID, gate.Protect(notesHandler.DeleteNote))

	// Обработчик для несуществующих маршрутов.
	app.Use(func(c fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, fmt.Sprintf("Route %s not found", c.OriginalURL()))
	})
}

func healthHandler(database Pinger) fiber.Handler {
	return func(c fiber.Ctx) error {
		requestCtx := response.Context(c)
		if database != nil {
			if err := database.Ping(requestCtx); err != nil {
				return response.Fail(c, fiber.StatusServiceUnavailable, MsgUnhealthy)
			}
		}
		return response.Success(c, fiber.Map{"status": StatusOK}, MsgHealthy)
	}
}
