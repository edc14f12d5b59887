package services

import (
	"errors"
	"time"

	"notely/internal/auth/domain/entities"
)

// Ошибки домена аутентификации.
var (
	ErrInvalidCredentials    = errors.New("invalid email or password")
	ErrTokenGenerationFailed = errors.New("failed to generate authentication token")
)

// AuthResult - результат регистрации или входа: токен и пользователь, которому он выдан.
type AuthResult struct {
	Token     string
	ExpiresAt time.Time
	User      *entities.User
}
