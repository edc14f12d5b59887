package response

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	authentities "notely/internal/auth/domain/entities"
	authservices "notely/internal/auth/domain/services"
	"notely/internal/gateway/app/http/validation"
	noteentities "notely/internal/notes/domain/entities"
	"notely/pkg/logger"
)

// Тексты ошибок, отдаваемые клиенту.
const (
	MsgInvalidBody       = "Invalid request body"
	MsgUserExists        = "User with this email or username already exists"
	MsgInvalidCreds      = "Invalid email or password"
	MsgUserNotFound      = "User not found"
	MsgNoteNotFound      = "Note not found"
	MsgNoValidUpdates    = "No valid updates provided"
	MsgSearchRequired    = "Search query is required"
	MsgInternal          = "Internal server error"
	MsgAccessRequired    = "Access token required"
	MsgInvalidToken      = "Invalid or expired token"
	MsgAuthenticationErr = "Authentication error"

	LogUnhandledError = "unhandled request error"
)

// ErrInvalidBody возвращается, когда тело запроса не удалось разобрать.
var ErrInvalidBody = errors.New("invalid request body")

type mapping struct {
	target  error
	status  int
	message string
}

var mappings = []mapping{
	{target: ErrInvalidBody, status: fiber.StatusBadRequest, message: MsgInvalidBody},
	{target: authentities.ErrUserAlreadyExists, status: fiber.StatusBadRequest, message: MsgUserExists},
	{target: authservices.ErrInvalidCredentials, status: fiber.StatusUnauthorized, message: MsgInvalidCreds},
	{target: authentities.ErrUserNotFound, status: fiber.StatusNotFound, message: MsgUserNotFound},
	{target: noteentities.ErrNoteNotFound, status: fiber.StatusNotFound, message: MsgNoteNotFound},
	{target: noteentities.ErrNoValidUpdates, status: fiber.StatusBadRequest, message: MsgNoValidUpdates},
	{target: noteentities.ErrEmptySearchQuery, status: fiber.StatusBadRequest, message: MsgSearchRequired},
}

// Translate сопоставляет ошибку с кодом ответа и текстом для клиента.
func Translate(err error) (int, string) {
	for _, m := range mappings {
		if errors.Is(err, m.target) {
			return m.status, m.message
		}
	}

	var validationErr *validation.Error
	if errors.As(err, &validationErr) {
		return fiber.StatusBadRequest, validationErr.Error()
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return fiberErr.Code, fiberErr.Message
	}

	return fiber.StatusInternalServerError, MsgInternal
}

// ErrorHandler - единственная точка преобразования ошибок обработчиков в ответ.
func ErrorHandler(c fiber.Ctx, err error) error {
	status, message := Translate(err)

	if status >= fiber.StatusInternalServerError {
		ctx := Context(c)
		logger.Log(ctx).Error(ctx, LogUnhandledError,
			zap.String("path", c.Path()),
			zap.String("method", c.Method()),
			zap.Error(err))
	}

	return Fail(c, status, message)
}
