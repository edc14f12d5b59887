// Package middleware содержит промежуточное ПО для HTTP обработчиков.
package middleware

import (
	"time"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"notely/internal/gateway/app/http/response"
	"notely/pkg/logger"
)

// Константы для логирования.
const (
	LogRequestStarted   = "Request started"
	LogRequestCompleted = "Request completed"
	LogRequestFailed    = "Request failed"
	LogErrorHandler     = "Error handler failed"
)

// NewLoggerMiddleware создает промежуточное ПО для логирования HTTP запросов.
// Ошибка цепочки передается в errorHandler здесь, чтобы в журнал попал итоговый статус.
func NewLoggerMiddleware(errorHandler fiber.ErrorHandler) fiber.Handler {
	return func(c fiber.Ctx) error {
		start := time.Now()
		requestCtx := response.Context(c)

		log := logger.Log(requestCtx).With(
			zap.String("path", c.Path()),
			zap.String("method", c.Method()),
			zap.String("ip", c.IP()),
		)

		log.Debug(requestCtx, LogRequestStarted)

		chainErr := c.Next()
		if chainErr != nil {
			if err := errorHandler(c, chainErr); err != nil {
				log.Error(requestCtx, LogErrorHandler, zap.Error(err))
			}
		}

		// Контекст мог дополниться идентификатором пользователя.
		requestCtx = response.Context(c)
		logFields := []zap.Field{
			zap.Int("status", c.Response().StatusCode()),
			zap.Duration("latency", time.Since(start)),
		}

		if chainErr != nil {
			log.Info(requestCtx, LogRequestFailed, append(logFields, zap.Error(chainErr))...)
			return nil
		}

		log.Info(requestCtx, LogRequestCompleted, logFields...)
		return nil
	}
}
