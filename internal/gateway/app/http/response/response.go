// Package response формирует единый конверт ответов HTTP API.
package response

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"notely/internal/notes/domain/entities"
)

// Envelope - успешный ответ. Для списков дополнительно заполняется Pagination.
type Envelope struct {
	Success    bool        `json:"success"`
	Data       any         `json:"data"`
	Message    string      `json:"message,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

// ErrorEnvelope - ответ с ошибкой.
type ErrorEnvelope struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// Pagination - метаданные страницы.
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
	Pages int `json:"pages"`
}

// NewPagination преобразует доменные метаданные страницы.
func NewPagination(p entities.Pagination) *Pagination {
	return &Pagination{
		Page:  p.Page,
		Limit: p.Limit,
		Total: p.Total,
		Pages: p.Pages,
	}
}

// Success отправляет {success:true, data, message} с кодом 200.
func Success(c fiber.Ctx, data any, message string) error {
	return send(c, fiber.StatusOK, Envelope{Success: true, Data: data, Message: message})
}

// Created отправляет успешный ответ с кодом 201.
func Created(c fiber.Ctx, data any, message string) error {
	return send(c, fiber.StatusCreated, Envelope{Success: true, Data: data, Message: message})
}

// Paginated отправляет страницу данных с метаданными пагинации.
func Paginated(c fiber.Ctx, data any, pagination entities.Pagination, message string) error {
	return send(c, fiber.StatusOK, Envelope{
		Success:    true,
		Data:       data,
		Message:    message,
		Pagination: NewPagination(pagination),
	})
}

// Fail отправляет {success:false, error}.
func Fail(c fiber.Ctx, status int, message string) error {
	return send(c, status, ErrorEnvelope{Success: false, Error: message})
}

func send(c fiber.Ctx, status int, body any) error {
	if err := c.Status(status).JSON(body); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}
