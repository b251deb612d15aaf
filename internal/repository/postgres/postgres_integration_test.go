//go:build integration
// +build integration

package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"weatherfav/internal/domain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupIntegrationStorage(t *testing.T) *PostgresStorage {
	t.Helper()
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("weatherfav"),
		tcpostgres.WithUsername("postgres"),
		tcpostgres.WithPassword("postgres"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = testcontainers.TerminateContainer(container) })

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	storage, err := NewStorage(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = storage.Close() })

	return storage
}

func TestIntegration_FavoritesLifecycle(t *testing.T) {
	ctx := context.Background()
	storage := setupIntegrationStorage(t)

	user, err := storage.UserCreate(ctx, models.User{Username: "alice", PasswordHash: "h", Salt: "s"})
	require.NoError(t, err)

	_, err = storage.UserCreate(ctx, models.User{Username: "alice", PasswordHash: "h", Salt: "s"})
	assert.ErrorIs(t, err, models.ErrConflict)

	boston, err := storage.FavoriteCreate(ctx, models.FavoriteCity{UserID: user.ID, City: "Boston"})
	require.NoError(t, err)
	_, err = storage.FavoriteCreate(ctx, models.FavoriteCity{UserID: user.ID, City: "Paris"})
	require.NoError(t, err)

	_, err = storage.FavoriteCreate(ctx, models.FavoriteCity{UserID: user.ID, City: "Boston"})
	assert.ErrorIs(t, err, models.ErrConflict)

	cities, err := storage.FavoriteListByUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Boston", "Paris"}, cities)

	err = storage.WithinTx(ctx, func(ctx context.Context) error {
		return storage.FavoriteSoftDelete(ctx, user.ID, "Boston")
	})
	require.NoError(t, err)

	deleted, err := storage.FavoriteGet(ctx, user.ID, "Boston")
	require.NoError(t, err)
	assert.True(t, deleted.Deleted)

	// повторное добавление восстанавливает ту же строку
	revived, err := storage.FavoriteCreate(ctx, models.FavoriteCity{UserID: user.ID, City: "Boston"})
	require.NoError(t, err)
	assert.Equal(t, boston.ID, revived.ID)
	assert.False(t, revived.Deleted)

	cleared, err := storage.FavoriteSoftDeleteByUser(ctx, user.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Boston", "Paris"}, cleared)

	cities, err = storage.FavoriteListByUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, cities)
}

func TestIntegration_RollbackAndReset(t *testing.T) {
	ctx := context.Background()
	storage := setupIntegrationStorage(t)

	user, err := storage.UserCreate(ctx, models.User{Username: "bob", PasswordHash: "h", Salt: "s"})
	require.NoError(t, err)

	errBoom := errors.New("boom")
	err = storage.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := storage.FavoriteCreate(ctx, models.FavoriteCity{UserID: user.ID, City: "Rome"}); err != nil {
			return err
		}
		return errBoom
	})
	assert.ErrorIs(t, err, errBoom)

	_, err = storage.FavoriteGet(ctx, user.ID, "Rome")
	assert.ErrorIs(t, err, models.ErrUnfound)

	require.NoError(t, storage.Reset(ctx))

	_, err = storage.UserGetByUsername(ctx, "bob")
	assert.ErrorIs(t, err, models.ErrUnfound)
}
