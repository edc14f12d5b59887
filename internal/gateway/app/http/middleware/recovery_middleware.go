package middleware

import (
	"fmt"
	"runtime/debug"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"notely/internal/gateway/app/http/response"
	"notely/pkg/logger"
)

// LogServerPanic - сообщение о перехваченной панике.
const LogServerPanic = "Server panic"

// NewRecoveryMiddleware превращает панику обработчика во внутреннюю ошибку сервера.
func NewRecoveryMiddleware() fiber.Handler {
	return func(c fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				requestCtx := response.Context(c)
				logger.Log(requestCtx).Error(requestCtx, LogServerPanic,
					zap.String("error", fmt.Sprintf("%v", r)),
					zap.String("stack", string(debug.Stack())),
				)

				err = response.Fail(c, fiber.StatusInternalServerError, response.MsgInternal)
			}
		}()

		return c.Next()
	}
}
