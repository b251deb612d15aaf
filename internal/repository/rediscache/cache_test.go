package rediscache

import (
	"context"
	"testing"
	"time"

	"weatherfav/internal/domain/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T, ttl time.Duration) (*FavoritesCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return New(client, ttl), mr
}

func TestFavoritesCache_RoundTrip(t *testing.T) {
	ctx := context.Background()
	cache, mr := newTestCache(t, 0)

	fav := models.FavoriteCity{
		ID:        42,
		UserID:    7,
		City:      "Boston",
		CreatedAt: time.Date(2024, 3, 1, 12, 30, 0, 123, time.UTC),
	}

	_, hit, err := cache.Get(ctx, 7, "Boston")
	require.NoError(t, err)
	assert.False(t, hit)

	require.NoError(t, cache.Set(ctx, fav, 0))

	// все поля хранятся строками
	assert.Equal(t, "42", mr.HGet("favorite:7:Boston", "id"))
	assert.Equal(t, "false", mr.HGet("favorite:7:Boston", "deleted"))

	got, hit, err := cache.Get(ctx, 7, "Boston")
	require.NoError(t, err)
	require.True(t, hit)
	assert.Equal(t, fav, got)

	// без TTL запись не истекает
	assert.Zero(t, mr.TTL("favorite:7:Boston"))
}

func TestFavoritesCache_TTL(t *testing.T) {
	ctx := context.Background()
	cache, mr := newTestCache(t, time.Minute)

	require.NoError(t, cache.Set(ctx, models.FavoriteCity{ID: 1, UserID: 1, City: "Paris"}, 0))
	assert.Equal(t, time.Minute, mr.TTL("favorite:1:Paris"))

	mr.FastForward(2 * time.Minute)

	_, hit, err := cache.Get(ctx, 1, "Paris")
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestFavoritesCache_DeletedFlagDecoding(t *testing.T) {
	tests := []struct {
		name  string
		value *string
		want  bool
	}{
		{name: "true в нижнем регистре", value: ptr("true"), want: true},
		{name: "TRUE в верхнем регистре", value: ptr("TRUE"), want: true},
		{name: "False", value: ptr("False"), want: false},
		{name: "флаг отсутствует", value: nil, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			cache, mr := newTestCache(t, 0)

			mr.HSet("favorite:1:Oslo", "id", "5", "user_id", "1", "city", "Oslo")
			if tt.value != nil {
				mr.HSet("favorite:1:Oslo", "deleted", *tt.value)
			}

			got, hit, err := cache.Get(ctx, 1, "Oslo")
			require.NoError(t, err)
			require.True(t, hit)
			assert.Equal(t, tt.want, got.Deleted)
			assert.Equal(t, int64(5), got.ID)
		})
	}
}

func TestFavoritesCache_CorruptedEntry(t *testing.T) {
	cache, mr := newTestCache(t, 0)
	mr.HSet("favorite:1:Rome", "id", "not-a-number", "city", "Rome")

	_, hit, err := cache.Get(context.Background(), 1, "Rome")
	assert.False(t, hit)
	assert.ErrorIs(t, err, ErrCorruptedEntry)
}

func TestFavoritesCache_DeleteAndPurge(t *testing.T) {
	ctx := context.Background()
	cache, mr := newTestCache(t, 0)

	for _, city := range []string{"Boston", "Paris", "Rome"} {
		require.NoError(t, cache.Set(ctx, models.FavoriteCity{ID: 1, UserID: 1, City: city}, 0))
	}
	require.NoError(t, mr.Set("unrelated", "keep"))

	require.NoError(t, cache.Delete(ctx, 1, "Boston", "Paris"))
	assert.False(t, mr.Exists("favorite:1:Boston"))
	assert.False(t, mr.Exists("favorite:1:Paris"))
	assert.True(t, mr.Exists("favorite:1:Rome"))

	require.NoError(t, cache.Delete(ctx, 1))

	require.NoError(t, cache.Purge(ctx))
	assert.False(t, mr.Exists("favorite:1:Rome"))
	assert.False(t, mr.Exists("favorite-version:1:Boston"))
	assert.True(t, mr.Exists("unrelated"))
}

func TestFavoritesCache_VersionGuardsSet(t *testing.T) {
	ctx := context.Background()
	cache, mr := newTestCache(t, 0)
	boston := models.FavoriteCity{ID: 1, UserID: 1, City: "Boston"}

	version, err := cache.Version(ctx, 1, "Boston")
	require.NoError(t, err)
	assert.Zero(t, version)

	// удаление между чтением версии и записью
	require.NoError(t, cache.Delete(ctx, 1, "Boston"))

	require.NoError(t, cache.Set(ctx, boston, version))
	assert.False(t, mr.Exists("favorite:1:Boston"), "устаревшая запись не кэшируется")

	version, err = cache.Version(ctx, 1, "Boston")
	require.NoError(t, err)
	assert.Equal(t, int64(1), version)
	assert.Equal(t, versionTTL, mr.TTL("favorite-version:1:Boston"))

	require.NoError(t, cache.Set(ctx, boston, version))
	assert.True(t, mr.Exists("favorite:1:Boston"))

	// версии других городов не меняются
	other, err := cache.Version(ctx, 1, "Paris")
	require.NoError(t, err)
	assert.Zero(t, other)
}

func TestFavoritesCache_VersionCorrupted(t *testing.T) {
	cache, mr := newTestCache(t, 0)
	require.NoError(t, mr.Set("favorite-version:1:Oslo", "abc"))

	_, err := cache.Version(context.Background(), 1, "Oslo")
	assert.Error(t, err)
	assert.Error(t, cache.Set(context.Background(), models.FavoriteCity{UserID: 1, City: "Oslo"}, 0))
}

func TestFavoritesCache_PingFails(t *testing.T) {
	cache, mr := newTestCache(t, 0)
	mr.Close()

	assert.Error(t, cache.Ping(context.Background()))
}

func ptr(s string) *string { return &s }
