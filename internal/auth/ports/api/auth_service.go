// Package api описывает входящие порты сервиса аутентификации.
package api

import (
	"context"

	"notely/internal/auth/domain/entities"
	"notely/internal/auth/domain/services"
)

// AuthUseCase определяет операции регистрации, входа и проверки токена.
type AuthUseCase interface {
	Register(ctx context.Context, username, email, password string) (*services.AuthResult, error)

	Login(ctx context.Context, email, password string) (*services.AuthResult, error)

	// Authenticate проверяет bearer-токен и возвращает существующего пользователя.
	Authenticate(ctx context.Context, token string) (entities.Identity, error)
}
