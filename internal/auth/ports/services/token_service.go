package services

import (
	"context"
	"time"
)

// TokenService выпускает и проверяет подписанные токены доступа.
type TokenService interface {
	GenerateAccessToken(ctx context.Context, userID string) (string, time.Time, error)

	ValidateAccessToken(ctx context.Context, token string) (string, error)
}
