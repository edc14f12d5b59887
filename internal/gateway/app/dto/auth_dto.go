// Package dto содержит объекты передачи данных HTTP API.
package dto

import (
	"strings"
	"time"

	"notely/internal/auth/domain/entities"
	"notely/internal/auth/domain/services"
)

// RegisterRequest содержит данные для регистрации пользователя.
type RegisterRequest struct {
	Username string `json:"username" validate:"min=3,max=30,username" message:"Username must be between 3 and 30 characters" message_username:"Username can only contain letters, numbers, and underscores"`
	Email    string `json:"email" validate:"required,email,max=255" message:"Please provide a valid email" message_max:"Email must be at most 255 characters"`
	Password string `json:"password" validate:"min=6,maxbytes=72" message:"Password must be at least 6 characters long" message_maxbytes:"Password must be at most 72 bytes long"`
}

// Normalize убирает пробелы по краям и приводит email к нижнему регистру.
func (r *RegisterRequest) Normalize() {
	r.Username = strings.TrimSpace(r.Username)
	r.Email = normalizeEmail(r.Email)
}

// LoginRequest содержит данные для входа пользователя.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email" message:"Please provide a valid email"`
	Password string `json:"password" validate:"required" message:"Password is required"`
}

// Normalize приводит email к каноническому виду.
func (r *LoginRequest) Normalize() {
	r.Email = normalizeEmail(r.Email)
}

// UserResponse - публичные поля пользователя.
type UserResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// ProfileResponse содержит данные профиля пользователя.
type ProfileResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AuthResponse возвращается при регистрации и входе.
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// NewUserResponse собирает публичное представление пользователя.
func NewUserResponse(user *entities.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}
}

// NewProfileResponse собирает ответ профиля.
func NewProfileResponse(user *entities.User) ProfileResponse {
	return ProfileResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

// NewAuthResponse собирает ответ с токеном.
func NewAuthResponse(result *services.AuthResult) AuthResponse {
	return AuthResponse{
		Token: result.Token,
		User:  NewUserResponse(result.User),
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
