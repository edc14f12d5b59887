// Package repositories описывает хранилища сервиса аутентификации.
package repositories

import (
	"context"

	"notely/internal/auth/domain/entities"
)

// UserRepository определяет операции хранения пользователей.
// Отсутствующая запись всегда возвращается как entities.ErrUserNotFound.
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) (*entities.User, error)

	FindByID(ctx context.Context, id string) (*entities.User, error)

	FindByEmail(ctx context.Context, email string) (*entities.User, error)

	ExistsByEmailOrUsername(ctx context.Context, email, username string) (bool, error)
}
