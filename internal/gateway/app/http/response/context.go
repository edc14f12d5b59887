package response

import (
	"context"

	"github.com/gofiber/fiber/v3"
)

type contextKey struct{}

// SetContext сохраняет контекст запроса с полями логирования.
func SetContext(c fiber.Ctx, ctx context.Context) {
	c.Locals(contextKey{}, ctx)
}

// Context возвращает контекст запроса, сохраненный middleware.
func Context(c fiber.Ctx) context.Context {
	if ctx, ok := c.Locals(contextKey{}).(context.Context); ok {
		return ctx
	}
	return c.Context()
}
