// Package binding разбирает и проверяет тела HTTP запросов.
package binding

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"notely/internal/gateway/app/http/response"
	"notely/internal/gateway/app/http/validation"
)

// Request - DTO, который умеет приводить свои поля к каноническому виду.
type Request interface {
	Normalize()
}

// Body разбирает JSON тело в dst, нормализует и проверяет его.
// Пустое тело эквивалентно пустому объекту.
func Body(c fiber.Ctx, v *validation.Validator, dst Request) error {
	if len(c.Body()) > 0 {
		if err := c.Bind().JSON(dst); err != nil {
			return fmt.Errorf("%w: %w", response.ErrInvalidBody, err)
		}
	}

	dst.Normalize()

	if err := v.Struct(dst); err != nil {
		return fmt.Errorf("validating %T: %w", dst, err)
	}
	return nil
}
