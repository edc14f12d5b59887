package db_test

import (
	"context"
	"errors"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/undefinedlabs/go-mpatch"

	"notely/internal/gateway/config"
	"notely/internal/gateway/db"
	"notely/pkg/db/postgres"
	"notely/pkg/logger"
)

const (
	errUnpatchMsg  = "failed to unpatch"
	migrationsPath = "./migrations"
)

var (
	errMigration  = errors.New("migration error")
	errConnection = errors.New("connection error")
	errPath       = errors.New("path error")
)

func safeUnpatch(t *testing.T, p *mpatch.Patch) {
	t.Helper()
	if err := p.Unpatch(); err != nil {
		t.Errorf("%s: %v", errUnpatchMsg, err)
	}
}

func testConfig() *config.PostgresConfig {
	return &config.PostgresConfig{
		Host:     "testhost",
		Port:     5432,
		User:     "testuser",
		Password: "testpass",
		Database: "testdb",
		MinConn:  1,
		MaxConn:  10,
	}
}

func patchMigrate(t *testing.T, err error) {
	t.Helper()
	patch, patchErr := mpatch.PatchMethod(postgres.MigrateDSN, func(_ context.Context, _, _ string) error {
		return err
	})
	require.NoError(t, patchErr)
	t.Cleanup(func() { safeUnpatch(t, patch) })
}

func TestNew(t *testing.T) {
	testLogger, err := logger.NewLogger(logger.Development, "info")
	require.NoError(t, err)
	logger.SetGlobalLogger(testLogger)
	ctx := context.Background()
	cfg := testConfig()

	t.Run("successful database creation", func(t *testing.T) {
		migratePatch, err := mpatch.PatchMethod(postgres.MigrateDSN, func(_ context.Context, dsn, path string) error {
			assert.Equal(t, cfg.GetConnectionURL(), dsn)
			assert.Contains(t, path, "file://")
			return nil
		})
		require.NoError(t, err)
		defer safeUnpatch(t, migratePatch)

		expected := &postgres.Database{}
		newPatch, err := mpatch.PatchMethod(postgres.New, func(_ context.Context, dsn string, minConn, maxConn int) (*postgres.Database, error) {
			assert.Equal(t, cfg.GetDSN(), dsn)
			assert.Equal(t, cfg.MinConn, minConn)
			assert.Equal(t, cfg.MaxConn, maxConn)
			return expected, nil
		})
		require.NoError(t, err)
		defer safeUnpatch(t, newPatch)

		database, err := db.New(ctx, cfg, migrationsPath)

		require.NoError(t, err)
		assert.Same(t, expected, database.Database())
	})

	t.Run("migration error", func(t *testing.T) {
		patchMigrate(t, errMigration)

		database, err := db.New(ctx, cfg, migrationsPath)

		require.ErrorIs(t, err, errMigration)
		assert.Nil(t, database)
		assert.ErrorContains(t, err, db.ErrDBMigrations)
	})

	t.Run("database connection error", func(t *testing.T) {
		patchMigrate(t, nil)
		newPatch, err := mpatch.PatchMethod(postgres.New, func(_ context.Context, _ string, _, _ int) (*postgres.Database, error) {
			return nil, errConnection
		})
		require.NoError(t, err)
		defer safeUnpatch(t, newPatch)

		database, err := db.New(ctx, cfg, migrationsPath)

		require.ErrorIs(t, err, errConnection)
		assert.Nil(t, database)
		assert.ErrorContains(t, err, db.ErrDBConnection)
	})

	t.Run("absolute path error", func(t *testing.T) {
		absPatch, err := mpatch.PatchMethod(filepath.Abs, func(_ string) (string, error) {
			return "", errPath
		})
		require.NoError(t, err)
		defer safeUnpatch(t, absPatch)

		database, err := db.New(ctx, cfg, "./relative/path")

		require.ErrorIs(t, err, errPath)
		assert.Nil(t, database)
		assert.ErrorContains(t, err, db.ErrGetPath)
	})
}

func TestRollback(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig()

	t.Run("passes steps through", func(t *testing.T) {
		patch, err := mpatch.PatchMethod(postgres.RollbackDSN, func(_ context.Context, dsn, path string, steps int) error {
			assert.Equal(t, cfg.GetConnectionURL(), dsn)
			assert.Equal(t, "file:///srv/migrations", path)
			assert.Equal(t, 2, steps)
			return nil
		})
		require.NoError(t, err)
		defer safeUnpatch(t, patch)

		require.NoError(t, db.Rollback(ctx, cfg, "/srv/migrations", 2))
	})

	t.Run("wraps failure", func(t *testing.T) {
		patch, err := mpatch.PatchMethod(postgres.RollbackDSN, func(_ context.Context, _, _ string, _ int) error {
			return errMigration
		})
		require.NoError(t, err)
		defer safeUnpatch(t, patch)

		err = db.Rollback(ctx, cfg, "/srv/migrations", 1)

		require.ErrorIs(t, err, errMigration)
		assert.ErrorContains(t, err, db.ErrDBRollback)
	})
}

func TestMigrationsURL(t *testing.T) {
	abs, err := db.MigrationsURL("/opt/notely/migrations")
	require.NoError(t, err)
	assert.Equal(t, "file:///opt/notely/migrations", abs)

	rel, err := db.MigrationsURL("migrations")
	require.NoError(t, err)
	expected, err := filepath.Abs("migrations")
	require.NoError(t, err)
	assert.Equal(t, "file://"+expected, rel)
}

func TestClose(t *testing.T) {
	ctx := context.Background()
	patchMigrate(t, nil)

	newPatch, err := mpatch.PatchMethod(postgres.New, func(_ context.Context, _ string, _, _ int) (*postgres.Database, error) {
		return &postgres.Database{}, nil
	})
	require.NoError(t, err)
	defer safeUnpatch(t, newPatch)

	closeCalled := false
	closePatch, err := mpatch.PatchInstanceMethodByName(reflect.TypeOf(&postgres.Database{}), "Close", func(_ *postgres.Database, _ context.Context) {
		closeCalled = true
	})
	require.NoError(t, err)
	defer safeUnpatch(t, closePatch)

	database, err := db.New(ctx, testConfig(), migrationsPath)
	require.NoError(t, err)

	database.Close(ctx)

	assert.True(t, closeCalled)
	assert.Error(t, database.Ping(ctx))
}
