// Package auth содержит HTTP обработчики регистрации, входа и профиля.
package auth

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"notely/internal/auth/domain/entities"
	"notely/internal/auth/ports/api"
	"notely/internal/gateway/app/dto"
	"notely/internal/gateway/app/http/binding"
	"notely/internal/gateway/app/http/response"
	"notely/internal/gateway/app/http/validation"
	"notely/pkg/logger"
)

// Константы для логирования.
const (
	LogHandlerRegister   = "auth handler: register"
	LogHandlerLogin      = "auth handler: login"
	LogHandlerGetProfile = "auth handler: get profile"
)

// Сообщения успешных ответов.
const (
	MsgRegistered       = "User registered successfully"
	MsgLoggedIn         = "Login successful"
	MsgProfileRetrieved = "Profile retrieved successfully"
)

// Handler содержит HTTP обработчики для авторизации.
type Handler struct {
	authUseCase api.AuthUseCase
	userUseCase api.UserUseCase
	validator   *validation.Validator
}

// NewHandler создает новый экземпляр обработчика авторизации.
func NewHandler(authUseCase api.AuthUseCase, userUseCase api.UserUseCase, validator *validation.Validator) *Handler {
	return &Handler{
		authUseCase: authUseCase,
		userUseCase: userUseCase,
		validator:   validator,
	}
}

// Register обрабатывает запрос на регистрацию нового пользователя.
func (h *Handler) Register(c fiber.Ctx) error {
	requestCtx := response.Context(c)
	logger.Log(requestCtx).Debug(requestCtx, LogHandlerRegister)

	var req dto.RegisterRequest
	if err := binding.Body(c, h.validator, &req); err != nil {
		return err
	}

	result, err := h.authUseCase.Register(requestCtx, req.Username, req.Email, req.Password)
	if err != nil {
		return fmt.Errorf("registering user: %w", err)
	}

	return response.Created(c, dto.NewAuthResponse(result), MsgRegistered)
}

// Login обрабатывает запрос на вход пользователя.
func (h *Handler) Login(c fiber.Ctx) error {
	requestCtx := response.Context(c)
	logger.Log(requestCtx).Debug(requestCtx, LogHandlerLogin)

	var req dto.LoginRequest
	if err := binding.Body(c, h.validator, &req); err != nil {
		return err
	}

	result, err := h.authUseCase.Login(requestCtx, req.Email, req.Password)
	if err != nil {
		return fmt.Errorf("logging in: %w", err)
	}

	return response.Success(c, dto.NewAuthResponse(result), MsgLoggedIn)
}

// GetProfile возвращает профиль аутентифицированного пользователя.
func (h *Handler) GetProfile(c fiber.Ctx, identity entities.Identity) error {
	requestCtx := response.Context(c)
	logger.Log(requestCtx).Debug(requestCtx, LogHandlerGetProfile)

	user, err := h.userUseCase.GetUserProfile(requestCtx, identity.UserID)
	if err != nil {
		return fmt.Errorf("getting user profile: %w", err)
	}

	return response.Success(c, dto.NewProfileResponse(user), MsgProfileRetrieved)
}
