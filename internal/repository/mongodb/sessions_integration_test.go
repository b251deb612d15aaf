//go:build integration
// +build integration

package mongodb

import (
	"context"
	"testing"

	"weatherfav/internal/domain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
)

func setupSessionStorage(t *testing.T) *SessionStorage {
	t.Helper()
	ctx := context.Background()

	container, err := mongodb.Run(ctx, "mongo:7")
	require.NoError(t, err)
	t.Cleanup(func() { _ = testcontainers.TerminateContainer(container) })

	uri, err := container.ConnectionString(ctx)
	require.NoError(t, err)

	storage, err := NewSessionStorage(ctx, uri, "weatherfav_test")
	require.NoError(t, err)
	t.Cleanup(func() { _ = storage.Close(context.Background()) })

	return storage
}

func TestSessionStorage_Lifecycle(t *testing.T) {
	ctx := context.Background()
	storage := setupSessionStorage(t)

	_, err := storage.SessionFind(ctx, 1)
	assert.ErrorIs(t, err, models.ErrUnfound)

	assert.ErrorIs(t, storage.SessionUpdateCities(ctx, 1, []string{"Boston"}), models.ErrUnfound)

	require.NoError(t, storage.SessionCreate(ctx, models.SessionRecord{UserID: 1}))
	assert.ErrorIs(t, storage.SessionCreate(ctx, models.SessionRecord{UserID: 1}), models.ErrConflict)

	record, err := storage.SessionFind(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, record.Cities)

	require.NoError(t, storage.SessionUpdateCities(ctx, 1, []string{"Boston", "Paris"}))

	record, err = storage.SessionFind(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"Boston", "Paris"}, record.Cities)
	assert.False(t, record.UpdatedAt.IsZero())
}

func TestSessionStorage_Purge(t *testing.T) {
	ctx := context.Background()
	storage := setupSessionStorage(t)

	require.NoError(t, storage.SessionCreate(ctx, models.SessionRecord{UserID: 1, Cities: []string{"Boston"}}))
	require.NoError(t, storage.SessionCreate(ctx, models.SessionRecord{UserID: 2}))

	require.NoError(t, storage.SessionPurge(ctx))

	_, err := storage.SessionFind(ctx, 1)
	assert.ErrorIs(t, err, models.ErrUnfound)

	// уникальный индекс пережил очистку
	require.NoError(t, storage.SessionCreate(ctx, models.SessionRecord{UserID: 1}))
	assert.ErrorIs(t, storage.SessionCreate(ctx, models.SessionRecord{UserID: 1}), models.ErrConflict)
}
