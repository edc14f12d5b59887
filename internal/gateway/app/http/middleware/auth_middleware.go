package middleware

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"notely/internal/auth/domain/entities"
	"notely/internal/auth/domain/services"
	"notely/internal/auth/ports/api"
	"notely/internal/gateway/app/http/response"
	"notely/pkg/logger"
)

// Константы для логирования.
const (
	LogAuthMiddleware = "auth middleware"
	LogTokenMissing   = "no bearer token provided"
	LogTokenRejected  = "bearer token rejected"

	bearerPrefix = "Bearer "
)

// ProtectedHandler - обработчик, которому нужен аутентифицированный пользователь.
type ProtectedHandler func(c fiber.Ctx, identity entities.Identity) error

// AuthMiddleware проверяет bearer-токен и разрешает пользователя.
type AuthMiddleware struct {
	authUseCase api.AuthUseCase
}

// NewAuthMiddleware создает промежуточное ПО аутентификации.
func NewAuthMiddleware(authUseCase api.AuthUseCase) *AuthMiddleware {
	return &AuthMiddleware{authUseCase: authUseCase}
}

// Protect оборачивает обработчик: без действительного токена он не вызывается.
func (m *AuthMiddleware) Protect(next ProtectedHandler) fiber.Handler {
	return func(c fiber.Ctx) error {
		requestCtx := response.Context(c)
		log := logger.Log(requestCtx).With(zap.String("middleware", "auth"))
		log.Debug(requestCtx, LogAuthMiddleware)

		header := c.Get(fiber.HeaderAuthorization)
		if !strings.HasPrefix(header, bearerPrefix) {
			log.Debug(requestCtx, LogTokenMissing)
			return fiber.NewError(fiber.StatusUnauthorized, response.MsgAccessRequired)
		}

		identity, err := m.authUseCase.Authenticate(requestCtx, strings.TrimPrefix(header, bearerPrefix))
		if err != nil {
			gateErr := authError(err)
			if gateErr.Code >= fiber.StatusInternalServerError {
				log.Error(requestCtx, LogTokenRejected, zap.Error(err))
			} else {
				log.Debug(requestCtx, LogTokenRejected, zap.Error(err))
			}
			return gateErr
		}

		requestCtx = logger.NewUserIDContext(requestCtx, identity.UserID)
		response.SetContext(c, requestCtx)

		return next(c, identity)
	}
}

func authError(err error) *fiber.Error {
	switch {
	case errors.Is(err, services.ErrInvalidJWTToken), errors.Is(err, services.ErrExpiredJWTToken):
		return fiber.NewError(fiber.StatusUnauthorized, response.MsgInvalidToken)
	case errors.Is(err, entities.ErrUserNotFound):
		return fiber.NewError(fiber.StatusUnauthorized, response.MsgUserNotFound)
	default:
		return fiber.NewError(fiber.StatusInternalServerError, response.MsgAuthenticationErr)
	}
}
