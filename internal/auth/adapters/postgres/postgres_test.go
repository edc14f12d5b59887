package postgres_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notely/internal/auth/adapters/postgres"
	"notely/internal/auth/domain/entities"
	"notely/internal/auth/ports/repositories"
	"notely/pkg/logger"
)

const testUserID = "0b6d2f52-8c43-4c8e-9d3f-3a5e1c7b9f10"

var (
	userColumns = []string{"id", "email", "username", "password_hash", "created_at", "updated_at"}
	errDatabase = errors.New("database error")
)

func testContext(t *testing.T) context.Context {
	t.Helper()
	testLogger, err := logger.NewLogger(logger.Development, "debug")
	require.NoError(t, err)
	return logger.NewContext(context.Background(), testLogger)
}

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock
}

func TestRepositoryFactory(t *testing.T) {
	mock := newMock(t)

	factory := postgres.NewRepositoryFactory(mock)

	require.NotNil(t, factory)
	assert.Implements(t, (*repositories.UserRepository)(nil), factory.UserRepository())
	assert.Same(t, factory.UserRepository(), factory.UserRepository())
}

func TestUserRepositoryFindByID(t *testing.T) {
	ctx := testContext(t)
	now := time.Now().UTC()

	t.Run("found", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectQuery("SELECT (.+) FROM users WHERE id = \\$1").
			WithArgs(testUserID).
			WillReturnRows(pgxmock.NewRows(userColumns).
				AddRow(testUserID, "alice@example.com", "alice", "hash", now, now))

		user, err := postgres.NewUserRepository(mock).FindByID(ctx, testUserID)

		require.NoError(t, err)
		assert.Equal(t, testUserID, user.ID)
		assert.Equal(t, "alice", user.Username)
		assert.Equal(t, "alice@example.com", user.Email)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing row maps to ErrUserNotFound", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectQuery("SELECT (.+) FROM users WHERE id = \\$1").
			WithArgs(testUserID).
			WillReturnRows(pgxmock.NewRows(userColumns))

		user, err := postgres.NewUserRepository(mock).FindByID(ctx, testUserID)

		require.ErrorIs(t, err, entities.ErrUserNotFound)
		assert.Nil(t, user)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("malformed id does not reach the database", func(t *testing.T) {
		mock := newMock(t)

		user, err := postgres.NewUserRepository(mock).FindByID(ctx, "not-a-uuid")

		require.ErrorIs(t, err, entities.ErrUserNotFound)
		assert.Nil(t, user)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("database error", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectQuery("SELECT (.+) FROM users WHERE id = \\$1").
			WithArgs(testUserID).
			WillReturnError(errDatabase)

		user, err := postgres.NewUserRepository(mock).FindByID(ctx, testUserID)

		require.ErrorIs(t, err, errDatabase)
		assert.NotErrorIs(t, err, entities.ErrUserNotFound)
		assert.Nil(t, user)
	})
}

func TestUserRepositoryFindByEmail(t *testing.T) {
	ctx := testContext(t)
	now := time.Now().UTC()

	t.Run("found", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectQuery("SELECT (.+) FROM users WHERE email = \\$1").
			WithArgs("alice@example.com").
			WillReturnRows(pgxmock.NewRows(userColumns).
				AddRow(testUserID, "alice@example.com", "alice", "hash", now, now))

		user, err := postgres.NewUserRepository(mock).FindByEmail(ctx, "alice@example.com")

		require.NoError(t, err)
		assert.Equal(t, "hash", user.PasswordHash)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectQuery("SELECT (.+) FROM users WHERE email = \\$1").
			WithArgs("nobody@example.com").
			WillReturnRows(pgxmock.NewRows(userColumns))

		_, err := postgres.NewUserRepository(mock).FindByEmail(ctx, "nobody@example.com")

		require.ErrorIs(t, err, entities.ErrUserNotFound)
	})
}

func TestUserRepositoryExistsByEmailOrUsername(t *testing.T) {
	ctx := testContext(t)

	tests := []struct {
		name    string
		rows    *pgxmock.Rows
		err     error
		want    bool
		wantErr bool
	}{
		{name: "taken", rows: pgxmock.NewRows([]string{"exists"}).AddRow(true), want: true},
		{name: "free", rows: pgxmock.NewRows([]string{"exists"}).AddRow(false), want: false},
		{name: "database error", err: errDatabase, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := newMock(t)
			expectation := mock.ExpectQuery("SELECT EXISTS").WithArgs("alice@example.com", "alice")
			if tt.err != nil {
				expectation.WillReturnError(tt.err)
			} else {
				expectation.WillReturnRows(tt.rows)
			}

			exists, err := postgres.NewUserRepository(mock).ExistsByEmailOrUsername(ctx, "alice@example.com", "alice")

			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, exists)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUserRepositoryCreate(t *testing.T) {
	ctx := testContext(t)
	now := time.Now().UTC()
	input := &entities.User{Email: "alice@example.com", Username: "alice", PasswordHash: "hash"}

	t.Run("success", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectQuery("INSERT INTO users").
			WithArgs("alice@example.com", "alice", "hash").
			WillReturnRows(pgxmock.NewRows(userColumns).
				AddRow(testUserID, "alice@example.com", "alice", "hash", now, now))

		user, err := postgres.NewUserRepository(mock).Create(ctx, input)

		require.NoError(t, err)
		assert.Equal(t, testUserID, user.ID)
		assert.Equal(t, now, user.CreatedAt)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unique violation maps to ErrUserAlreadyExists", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectQuery("INSERT INTO users").
			WithArgs("alice@example.com", "alice", "hash").
			WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})

		user, err := postgres.NewUserRepository(mock).Create(ctx, input)

		require.ErrorIs(t, err, entities.ErrUserAlreadyExists)
		assert.Nil(t, user)
	})

	t.Run("other database error", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectQuery("INSERT INTO users").
			WithArgs("alice@example.com", "alice", "hash").
			WillReturnError(errDatabase)

		_, err := postgres.NewUserRepository(mock).Create(ctx, input)

		require.ErrorIs(t, err, errDatabase)
		assert.NotErrorIs(t, err, entities.ErrUserAlreadyExists)
	})
}
