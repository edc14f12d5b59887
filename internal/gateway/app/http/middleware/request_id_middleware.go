package middleware

import (
	"github.com/gofiber/fiber/v3"

	"notely/internal/gateway/app/http/response"
	"notely/pkg/logger"
)

// HeaderRequestID - заголовок с идентификатором запроса.
const HeaderRequestID = "X-Request-ID"

// NewRequestIDMiddleware присваивает запросу идентификатор и кладет его в контекст логгера.
// Идентификатор из входящего заголовка сохраняется.
func NewRequestIDMiddleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		requestID := c.Get(HeaderRequestID)
		if requestID == "" {
			requestID = logger.GenerateRequestID()
		}
		c.Set(HeaderRequestID, requestID)

		response.SetContext(c, logger.NewRequestIDContext(c.Context(), requestID))

		return c.Next()
	}
}
