package rediscache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"weatherfav/internal/domain/models"

	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix     = "favorite:"
	versionPrefix = "favorite-version:"
	scanBatchSize = 100
	pingTimeout   = 5 * time.Second

	// счетчик версий живет дольше любого чтения из хранилища
	versionTTL = time.Hour
)

// Поля хэша; все значения хранятся строками
const (
	fieldID        = "id"
	fieldUserID    = "user_id"
	fieldCity      = "city"
	fieldDeleted   = "deleted"
	fieldCreatedAt = "created_at"
)

var ErrCorruptedEntry = errors.New("corrupted cache entry")

var errStaleVersion = errors.New("cache entry version changed")

// FavoritesCache - read-through кэш избранных городов в хэшах Redis
type FavoritesCache struct {
	client redis.UniversalClient
	ttl    time.Duration
}

func New(client redis.UniversalClient, ttl time.Duration) *FavoritesCache {
	return &FavoritesCache{client: client, ttl: ttl}
}

// Connect создает клиента и проверяет соединение
func Connect(ctx context.Context, addr, password string, db int, ttl time.Duration) (*FavoritesCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	c := New(client, ttl)
	if err := c.Ping(ctx); err != nil {
		_ = client.Close()
		return nil, err
	}
	return c, nil
}

func Key(userID int64, city string) string {
	return fmt.Sprintf("%s%d:%s", keyPrefix, userID, city)
}

func versionKey(userID int64, city string) string {
	return fmt.Sprintf("%s%d:%s", versionPrefix, userID, city)
}

// Version - счетчик инвалидаций ключа; отсутствующий счетчик равен 0
func (c *FavoritesCache) Version(ctx context.Context, userID int64, city string) (int64, error) {
	version, err := c.client.Get(ctx, versionKey(userID, city)).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to read cache version: %w", err)
	}
	return version, nil
}

// Get возвращает запись и признак попадания в кэш
func (c *FavoritesCache) Get(ctx context.Context, userID int64, city string) (models.FavoriteCity, bool, error) {
	fields, err := c.client.HGetAll(ctx, Key(userID, city)).Result()
	if err != nil {
		return models.FavoriteCity{}, false, fmt.Errorf("failed to read cache: %w", err)
	}
	if len(fields) == 0 {
		return models.FavoriteCity{}, false, nil
	}

	fav, err := decode(fields)
	if err != nil {
		return models.FavoriteCity{}, false, err
	}
	return fav, true, nil
}

// Set кэширует запись, только если с момента чтения version ключ не инвалидировали.
// Устаревшая запись молча пропускается.
func (c *FavoritesCache) Set(ctx context.Context, fav models.FavoriteCity, version int64) error {
	key := Key(fav.UserID, fav.City)
	vkey := versionKey(fav.UserID, fav.City)

	err := c.client.Watch(ctx, func(tx *redis.Tx) error {
		current, err := tx.Get(ctx, vkey).Int64()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		if current != version {
			return errStaleVersion
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Del(ctx, key)
			pipe.HSet(ctx, key, encode(fav))
			if c.ttl > 0 {
				pipe.Expire(ctx, key, c.ttl)
			}
			return nil
		})
		return err
	}, vkey)

	switch {
	case err == nil, errors.Is(err, errStaleVersion), errors.Is(err, redis.TxFailedErr):
		return nil
	default:
		return fmt.Errorf("failed to write cache: %w", err)
	}
}

// Delete удаляет записи для перечисленных городов пользователя
func (c *FavoritesCache) Delete(ctx context.Context, userID int64, cities ...string) error {
	if len(cities) == 0 {
		return nil
	}

	// инкремент версии отменяет заполнения, начатые до удаления
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, city := range cities {
			vkey := versionKey(userID, city)
			pipe.Incr(ctx, vkey)
			pipe.Expire(ctx, vkey, versionTTL)
			pipe.Del(ctx, Key(userID, city))
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to invalidate cache: %w", err)
	}
	return nil
}

// Purge удаляет все записи избранного и их версии (используется при init-db)
func (c *FavoritesCache) Purge(ctx context.Context) error {
	for _, prefix := range []string{keyPrefix, versionPrefix} {
		if err := c.purgePrefix(ctx, prefix); err != nil {
			return err
		}
	}
	return nil
}

func (c *FavoritesCache) purgePrefix(ctx context.Context, prefix string) error {
	iter := c.client.Scan(ctx, 0, prefix+"*", scanBatchSize).Iterator()

	batch := make([]string, 0, scanBatchSize)
	for iter.Next(ctx) {
		batch = append(batch, iter.Val())
		if len(batch) == scanBatchSize {
			if err := c.client.Del(ctx, batch...).Err(); err != nil {
				return fmt.Errorf("failed to purge cache: %w", err)
			}
			batch = batch[:0]
		}
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to scan cache: %w", err)
	}

	if len(batch) > 0 {
		if err := c.client.Del(ctx, batch...).Err(); err != nil {
			return fmt.Errorf("failed to purge cache: %w", err)
		}
	}
	return nil
}

func (c *FavoritesCache) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := c.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}

func (c *FavoritesCache) Close() error {
	return c.client.Close()
}

func encode(fav models.FavoriteCity) map[string]any {
	return map[string]any{
		fieldID:        strconv.FormatInt(fav.ID, 10),
		fieldUserID:    strconv.FormatInt(fav.UserID, 10),
		fieldCity:      fav.City,
		fieldDeleted:   strconv.FormatBool(fav.Deleted),
		fieldCreatedAt: fav.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func decode(fields map[string]string) (models.FavoriteCity, error) {
	var (
		fav models.FavoriteCity
		err error
	)

	if v, ok := fields[fieldID]; ok {
		if fav.ID, err = strconv.ParseInt(v, 10, 64); err != nil {
			return models.FavoriteCity{}, fmt.Errorf("%w: id %q", ErrCorruptedEntry, v)
		}
	}
	if v, ok := fields[fieldUserID]; ok {
		if fav.UserID, err = strconv.ParseInt(v, 10, 64); err != nil {
			return models.FavoriteCity{}, fmt.Errorf("%w: user_id %q", ErrCorruptedEntry, v)
		}
	}
	if v, ok := fields[fieldCreatedAt]; ok && v != "" {
		if fav.CreatedAt, err = time.Parse(time.RFC3339Nano, v); err != nil {
			return models.FavoriteCity{}, fmt.Errorf("%w: created_at %q", ErrCorruptedEntry, v)
		}
	}

	fav.City = fields[fieldCity]
	// отсутствующий флаг считается false
	fav.Deleted = strings.EqualFold(fields[fieldDeleted], "true")

	return fav, nil
}
