package inmemory

import (
	"context"
	"errors"
	"testing"

	"weatherfav/internal/domain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInmemoryStorage_Users(t *testing.T) {
	ctx := context.Background()
	m := NewStorage()

	alice, err := m.UserCreate(ctx, models.User{Username: "alice", PasswordHash: "h", Salt: "s"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), alice.ID)
	assert.False(t, alice.CreatedAt.IsZero())

	_, err = m.UserCreate(ctx, models.User{Username: "alice", PasswordHash: "h2"})
	assert.ErrorIs(t, err, models.ErrConflict)

	_, err = m.UserCreate(ctx, models.User{Username: "", PasswordHash: "h"})
	assert.ErrorIs(t, err, models.ErrInvalidData)

	require.NoError(t, m.UserUpdatePassword(ctx, "alice", "h3", "s3"))
	got, err := m.UserGetByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "h3", got.PasswordHash)
	assert.Equal(t, "s3", got.Salt)

	assert.ErrorIs(t, m.UserUpdatePassword(ctx, "bob", "h", "s"), models.ErrUnfound)
	assert.ErrorIs(t, m.UserDelete(ctx, "bob"), models.ErrUnfound)
	require.NoError(t, m.UserDelete(ctx, "alice"))

	_, err = m.UserGetByUsername(ctx, "alice")
	assert.ErrorIs(t, err, models.ErrUnfound)
}

func TestInmemoryStorage_Favorites(t *testing.T) {
	ctx := context.Background()
	m := NewStorage()

	boston, err := m.FavoriteCreate(ctx, models.FavoriteCity{UserID: 1, City: "Boston"})
	require.NoError(t, err)
	_, err = m.FavoriteCreate(ctx, models.FavoriteCity{UserID: 1, City: "Paris"})
	require.NoError(t, err)

	// тот же город у другого пользователя не конфликтует
	_, err = m.FavoriteCreate(ctx, models.FavoriteCity{UserID: 2, City: "Boston"})
	require.NoError(t, err)

	_, err = m.FavoriteCreate(ctx, models.FavoriteCity{UserID: 1, City: "Boston"})
	assert.ErrorIs(t, err, models.ErrConflict)

	cities, err := m.FavoriteListByUser(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"Boston", "Paris"}, cities)

	require.NoError(t, m.FavoriteSoftDelete(ctx, 1, "Boston"))
	assert.ErrorIs(t, m.FavoriteSoftDelete(ctx, 1, "Boston"), models.ErrUnfound)
	assert.ErrorIs(t, m.FavoriteSoftDelete(ctx, 1, "Tokyo"), models.ErrUnfound)

	deleted, err := m.FavoriteGet(ctx, 1, "Boston")
	require.NoError(t, err)
	assert.True(t, deleted.Deleted)

	revived, err := m.FavoriteCreate(ctx, models.FavoriteCity{UserID: 1, City: "Boston"})
	require.NoError(t, err)
	assert.Equal(t, boston.ID, revived.ID)
	assert.False(t, revived.Deleted)

	cleared, err := m.FavoriteSoftDeleteByUser(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"Boston", "Paris"}, cleared)

	cities, err = m.FavoriteListByUser(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, cities)

	others, err := m.FavoriteListByUser(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"Boston"}, others)
}

func TestInmemoryStorage_UserDeleteCascades(t *testing.T) {
	ctx := context.Background()
	m := NewStorage()

	alice, err := m.UserCreate(ctx, models.User{Username: "alice", PasswordHash: "h"})
	require.NoError(t, err)
	_, err = m.FavoriteCreate(ctx, models.FavoriteCity{UserID: alice.ID, City: "Boston"})
	require.NoError(t, err)

	require.NoError(t, m.UserDelete(ctx, "alice"))

	_, err = m.FavoriteGet(ctx, alice.ID, "Boston")
	assert.ErrorIs(t, err, models.ErrUnfound)
}

func TestInmemoryStorage_Reset(t *testing.T) {
	ctx := context.Background()
	m := NewStorage()

	_, err := m.UserCreate(ctx, models.User{Username: "alice", PasswordHash: "h"})
	require.NoError(t, err)
	require.NoError(t, m.Reset(ctx))

	_, err = m.UserGetByUsername(ctx, "alice")
	assert.ErrorIs(t, err, models.ErrUnfound)

	bob, err := m.UserCreate(ctx, models.User{Username: "bob", PasswordHash: "h"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), bob.ID)
}

func TestSessionStorage(t *testing.T) {
	ctx := context.Background()
	s := NewSessionStorage()

	_, err := s.SessionFind(ctx, 1)
	assert.ErrorIs(t, err, models.ErrUnfound)
	assert.ErrorIs(t, s.SessionUpdateCities(ctx, 1, []string{"Boston"}), models.ErrUnfound)

	require.NoError(t, s.SessionCreate(ctx, models.SessionRecord{UserID: 1}))
	assert.ErrorIs(t, s.SessionCreate(ctx, models.SessionRecord{UserID: 1}), models.ErrConflict)

	record, err := s.SessionFind(ctx, 1)
	require.NoError(t, err)
	assert.NotNil(t, record.Cities)
	assert.Empty(t, record.Cities)

	cities := []string{"Boston", "Paris"}
	require.NoError(t, s.SessionUpdateCities(ctx, 1, cities))
	cities[0] = "mutated"

	record, err = s.SessionFind(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"Boston", "Paris"}, record.Cities)
	assert.False(t, record.UpdatedAt.IsZero())
}

func TestSessionStorage_Purge(t *testing.T) {
	ctx := context.Background()
	s := NewSessionStorage()

	require.NoError(t, s.SessionCreate(ctx, models.SessionRecord{UserID: 1, Cities: []string{"Boston"}}))
	require.NoError(t, s.SessionCreate(ctx, models.SessionRecord{UserID: 2}))

	require.NoError(t, s.SessionPurge(ctx))

	_, err := s.SessionFind(ctx, 1)
	assert.ErrorIs(t, err, models.ErrUnfound)
	_, err = s.SessionFind(ctx, 2)
	assert.ErrorIs(t, err, models.ErrUnfound)

	// после очистки сессию можно создать заново
	assert.NoError(t, s.SessionCreate(ctx, models.SessionRecord{UserID: 1}))
}

func TestInmemoryStorage_WithinTxRollback(t *testing.T) {
	ctx := context.Background()
	m := NewStorage()
	errSave := errors.New("save failed")

	for _, city := range []string{"Boston", "Paris"} {
		_, err := m.FavoriteCreate(ctx, models.FavoriteCity{UserID: 1, City: city})
		require.NoError(t, err)
	}

	err := m.WithinTx(ctx, func(ctx context.Context) error {
		cleared, err := m.FavoriteSoftDeleteByUser(ctx, 1)
		require.NoError(t, err)
		require.Equal(t, []string{"Boston", "Paris"}, cleared)
		return errSave
	})
	assert.ErrorIs(t, err, errSave)

	cities, err := m.FavoriteListByUser(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"Boston", "Paris"}, cities, "откат возвращает удаленные города")

	err = m.WithinTx(ctx, func(ctx context.Context) error {
		return m.FavoriteSoftDelete(ctx, 1, "Boston")
	})
	require.NoError(t, err)

	cities, err = m.FavoriteListByUser(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"Paris"}, cities, "коммит сохраняет удаление")

	// удаление вне транзакции не журналируется
	require.NoError(t, m.FavoriteSoftDelete(ctx, 1, "Paris"))
	cities, err = m.FavoriteListByUser(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, cities)
}
