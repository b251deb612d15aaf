package favorites

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"weatherfav/internal/domain/models"

	"github.com/rs/zerolog"
)

/*
FavoritesStorage - основное (авторитетное) хранилище избранных городов
*/

//go:generate mockgen -source=favorites.go -destination=../../mocks/mock_favorites.go -package=mocks
type FavoritesStorage interface {
	FavoriteCreate(ctx context.Context, fav models.FavoriteCity) (models.FavoriteCity, error) // insert or revive
	FavoriteGet(ctx context.Context, userID int64, city string) (models.FavoriteCity, error)
	FavoriteSoftDelete(ctx context.Context, userID int64, city string) error
	FavoriteListByUser(ctx context.Context, userID int64) ([]string, error)
	FavoriteSoftDeleteByUser(ctx context.Context, userID int64) ([]string, error)

	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// FavoritesCache - best-effort кэш, ошибки только логируются.
// Set с версией, прочитанной до обращения к хранилищу, ничего не пишет,
// если между чтением и записью ключ успели инвалидировать.
type FavoritesCache interface {
	Get(ctx context.Context, userID int64, city string) (models.FavoriteCity, bool, error)
	Version(ctx context.Context, userID int64, city string) (int64, error)
	Set(ctx context.Context, fav models.FavoriteCity, version int64) error
	Delete(ctx context.Context, userID int64, cities ...string) error
}

// NoopCache используется, когда Redis не настроен
type NoopCache struct{}

func (NoopCache) Get(context.Context, int64, string) (models.FavoriteCity, bool, error) {
	return models.FavoriteCity{}, false, nil
}

func (NoopCache) Version(context.Context, int64, string) (int64, error) { return 0, nil }

func (NoopCache) Set(context.Context, models.FavoriteCity, int64) error { return nil }

func (NoopCache) Delete(context.Context, int64, ...string) error { return nil }

type Service struct {
	storage FavoritesStorage
	cache   FavoritesCache
	log     *zerolog.Logger
}

func NewService(storage FavoritesStorage, cache FavoritesCache, log *zerolog.Logger) *Service {
	if cache == nil {
		cache = NoopCache{}
	}
	if log == nil {
		nop := zerolog.Nop()
		log = &nop
	}
	return &Service{
		storage: storage,
		cache:   cache,
		log:     log,
	}
}

// Add добавляет город в избранное. Активный дубликат - models.ErrConflict.
func (s *Service) Add(ctx context.Context, userID int64, city string) (models.FavoriteCity, error) {
	city, err := validate(userID, city)
	if err != nil {
		return models.FavoriteCity{}, err
	}

	fav, err := s.storage.FavoriteCreate(ctx, models.FavoriteCity{UserID: userID, City: city})
	if err != nil {
		if errors.Is(err, models.ErrConflict) {
			return models.FavoriteCity{}, err
		}
		return models.FavoriteCity{}, fmt.Errorf("failed to add favorite: %w", err)
	}

	s.invalidate(ctx, userID, city)
	return fav, nil
}

// Get читает сначала кэш, при промахе хранилище, и заполняет кэш
func (s *Service) Get(ctx context.Context, userID int64, city string) (models.FavoriteCity, error) {
	city, err := validate(userID, city)
	if err != nil {
		return models.FavoriteCity{}, err
	}

	cached, hit, err := s.cache.Get(ctx, userID, city)
	if err != nil {
		s.log.Warn().Err(err).Int64("user_id", userID).Str("city", city).Msg("cache read failed")
	}
	if err == nil && hit {
		if cached.Deleted {
			return models.FavoriteCity{}, fmt.Errorf("%w: city '%s'", models.ErrUnfound, city)
		}
		return cached, nil
	}

	// версия читается до хранилища, иначе параллельное удаление не отменит заполнение
	version, versionErr := s.cache.Version(ctx, userID, city)
	if versionErr != nil {
		s.log.Warn().Err(versionErr).Int64("user_id", userID).Str("city", city).Msg("cache version read failed")
	}

	fav, err := s.storage.FavoriteGet(ctx, userID, city)
	if err != nil {
		if errors.Is(err, models.ErrUnfound) {
			return models.FavoriteCity{}, err
		}
		return models.FavoriteCity{}, fmt.Errorf("failed to get favorite: %w", err)
	}
	if fav.Deleted {
		return models.FavoriteCity{}, fmt.Errorf("%w: city '%s'", models.ErrUnfound, city)
	}

	if versionErr != nil {
		return fav, nil
	}
	if err := s.cache.Set(ctx, fav, version); err != nil {
		s.log.Warn().Err(err).Int64("user_id", userID).Str("city", city).Msg("cache write failed")
	}
	return fav, nil
}

func (s *Service) Delete(ctx context.Context, userID int64, city string) error {
	city, err := validate(userID, city)
	if err != nil {
		return err
	}

	err = s.storage.WithinTx(ctx, func(ctx context.Context) error {
		return s.storage.FavoriteSoftDelete(ctx, userID, city)
	})
	if err != nil {
		if errors.Is(err, models.ErrUnfound) {
			return err
		}
		return fmt.Errorf("failed to delete favorite: %w", err)
	}

	s.invalidate(ctx, userID, city)
	return nil
}

// List - активные города пользователя в порядке добавления
func (s *Service) List(ctx context.Context, userID int64) ([]string, error) {
	if userID <= 0 {
		return nil, models.ErrInvalidData
	}

	cities, err := s.storage.FavoriteListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list favorites: %w", err)
	}
	return cities, nil
}

// EnsurePresent добавляет город, если его нет; уже активный город не ошибка
func (s *Service) EnsurePresent(ctx context.Context, userID int64, city string) error {
	city, err := validate(userID, city)
	if err != nil {
		return err
	}

	if _, err := s.storage.FavoriteCreate(ctx, models.FavoriteCity{UserID: userID, City: city}); err != nil {
		if errors.Is(err, models.ErrConflict) {
			return nil
		}
		return fmt.Errorf("failed to restore favorite '%s': %w", city, err)
	}

	s.invalidate(ctx, userID, city)
	return nil
}

// Clear мягко удаляет все активные города пользователя и возвращает их.
// save получает ровно удаленный список внутри той же транзакции: если он
// вернет ошибку, удаление откатывается.
func (s *Service) Clear(ctx context.Context, userID int64, save func(ctx context.Context, cities []string) error) ([]string, error) {
	if userID <= 0 {
		return nil, models.ErrInvalidData
	}

	var cleared []string
	err := s.storage.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		cleared, err = s.storage.FavoriteSoftDeleteByUser(ctx, userID)
		if err != nil {
			return err
		}
		if save != nil {
			return save(ctx, cleared)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to clear favorites: %w", err)
	}

	s.invalidate(ctx, userID, cleared...)
	return cleared, nil
}

func (s *Service) invalidate(ctx context.Context, userID int64, cities ...string) {
	if len(cities) == 0 {
		return
	}
	if err := s.cache.Delete(ctx, userID, cities...); err != nil {
		s.log.Warn().Err(err).Int64("user_id", userID).Strs("cities", cities).Msg("cache invalidation failed")
	}
}

func validate(userID int64, city string) (string, error) {
	city = strings.TrimSpace(city)
	if userID <= 0 || city == "" || !models.NameFits(city) {
		return "", models.ErrInvalidData
	}
	return city, nil
}
