// Package postgres содержит хранилище пользователей на PostgreSQL.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"notely/internal/auth/domain/entities"
	"notely/internal/auth/ports/repositories"
	"notely/pkg/logger"
)

// uniqueViolation - код ошибки PostgreSQL при нарушении уникального ограничения.
const uniqueViolation = "23505"

const (
	msgUserNotFound       = "user not found"
	msgDuplicateUser      = "unique constraint violated on user insert"
	errCtxQueryUserByID   = "error querying user by id"
	errCtxQueryUserByMail = "error querying user by email"
	errCtxCreateUser      = "error creating user"
	errCtxCheckUser       = "error checking user existence"
)

const userColumns = `id, email, username, password_hash, created_at, updated_at`

// PgxPoolInterface - подмножество pgxpool.Pool, которое использует репозиторий.
type PgxPoolInterface interface {
	QueryRow(ctx context.Context, query string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, query string, args ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, query string, args ...interface{}) (pgx.Rows, error)
}

// UserRepository реализует repositories.UserRepository для Postgres.
type UserRepository struct {
	pool PgxPoolInterface
}

// NewUserRepository создает новый экземпляр репозитория пользователей.
func NewUserRepository(pool PgxPoolInterface) repositories.UserRepository {
	return &UserRepository{pool: pool}
}

// FindByID находит пользователя по ID. Некорректный UUID считается отсутствующей записью.
func (r *UserRepository) FindByID(ctx context.Context, id string) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("repository", "user"), zap.String("method", "FindByID"))

	if _, err := uuid.Parse(id); err != nil {
		log.Debug(ctx, msgUserNotFound, zap.String("id", id))
		return nil, entities.ErrUserNotFound
	}

	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	user, err := scanUser(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, msgUserNotFound, zap.String("id", id))
			return nil, entities.ErrUserNotFound
		}
		log.Error(ctx, errCtxQueryUserByID, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxQueryUserByID, err)
	}

	return user, nil
}

// FindByEmail находит пользователя по email.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("repository", "user"), zap.String("method", "FindByEmail"))

	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	user, err := scanUser(r.pool.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, msgUserNotFound, zap.String("email", email))
			return nil, entities.ErrUserNotFound
		}
		log.Error(ctx, errCtxQueryUserByMail, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxQueryUserByMail, err)
	}

	return user, nil
}

// ExistsByEmailOrUsername сообщает, занят ли email или username.
func (r *UserRepository) ExistsByEmailOrUsername(ctx context.Context, email, username string) (bool, error) {
	log := logger.Log(ctx).With(zap.String("repository", "user"), zap.String("method", "ExistsByEmailOrUsername"))

	query := `SELECT EXISTS (SELECT 1 FROM users WHERE email = $1 OR username = $2)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, email, username).Scan(&exists); err != nil {
		log.Error(ctx, errCtxCheckUser, zap.Error(err))
		return false, fmt.Errorf("%s: %w", errCtxCheckUser, err)
	}

	return exists, nil
}

// Create создает нового пользователя. Нарушение уникальности возвращается как entities.ErrUserAlreadyExists.
func (r *UserRepository) Create(ctx context.Context, user *entities.User) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("repository", "user"), zap.String("method", "Create"))

	query := `
        INSERT INTO users (email, username, password_hash)
        VALUES ($1, $2, $3)
        RETURNING ` + userColumns

	createdUser, err := scanUser(r.pool.QueryRow(ctx, query,
		user.Email,
		user.Username,
		user.PasswordHash,
	))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			log.Debug(ctx, msgDuplicateUser, zap.String("constraint", pgErr.ConstraintName))
			return nil, fmt.Errorf("%s: %w", errCtxCreateUser, entities.ErrUserAlreadyExists)
		}
		log.Error(ctx, errCtxCreateUser, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxCreateUser, err)
	}

	return createdUser, nil
}

func scanUser(row pgx.Row) (*entities.User, error) {
	var user entities.User
	err := row.Scan(
		&user.ID,
		&user.Email,
		&user.Username,
		&user.PasswordHash,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}
