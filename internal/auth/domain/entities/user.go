// Package entities содержит доменные сущности пользователя.
package entities

import (
	"errors"
	"time"
)

var (
	ErrEmptyUserID       = errors.New("user ID cannot be empty")
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user with this email or username already exists")
)

// User представляет учетную запись.
type User struct {
	ID           string
	Email        string
	Username     string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Identity - аутентифицированный пользователь, которого auth gate передает защищенным обработчикам.
type Identity struct {
	UserID   string
	Username string
	Email    string
}

// Identity возвращает идентичность пользователя.
func (u *User) Identity() Identity {
	return Identity{
		UserID:   u.ID,
		Username: u.Username,
		Email:    u.Email,
	}
}
