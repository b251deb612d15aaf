package inmemory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"weatherfav/internal/domain/models"
)

const initLastID = 0

type favoriteKey struct {
	userID int64
	city   string
}

// InmemoryStorage - хранилище пользователей и избранного для запуска без БД
type InmemoryStorage struct {
	mu sync.RWMutex

	users     map[string]models.User
	favorites map[favoriteKey]models.FavoriteCity

	lastUserID     int64
	lastFavoriteID int64
}

func NewStorage() *InmemoryStorage {
	return &InmemoryStorage{
		users:          make(map[string]models.User),
		favorites:      make(map[favoriteKey]models.FavoriteCity),
		lastUserID:     initLastID,
		lastFavoriteID: initLastID,
	}
}

func (m *InmemoryStorage) UserCreate(ctx context.Context, user models.User) (models.User, error) {
	if err := ctx.Err(); err != nil {
		return models.User{}, err
	}
	if user.Username == "" || user.PasswordHash == "" {
		return models.User{}, models.ErrInvalidData
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.users[user.Username]; exists {
		return models.User{}, fmt.Errorf("%w: user with username '%s'", models.ErrConflict, user.Username)
	}

	m.lastUserID++
	user.ID = m.lastUserID
	user.CreatedAt = time.Now().UTC()
	m.users[user.Username] = user
	return user, nil
}

func (m *InmemoryStorage) UserGetByUsername(ctx context.Context, username string) (models.User, error) {
	if err := ctx.Err(); err != nil {
		return models.User{}, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	user, exists := m.users[username]
	if !exists {
		return models.User{}, fmt.Errorf("%w: user '%s'", models.ErrUnfound, username)
	}
	return user, nil
}

func (m *InmemoryStorage) UserDelete(ctx context.Context, username string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	user, exists := m.users[username]
	if !exists {
		return fmt.Errorf("%w: user '%s'", models.ErrUnfound, username)
	}
	delete(m.users, username)

	// аналог ON DELETE CASCADE
	for key := range m.favorites {
		if key.userID == user.ID {
			delete(m.favorites, key)
		}
	}
	return nil
}

func (m *InmemoryStorage) UserUpdatePassword(ctx context.Context, username, passwordHash, salt string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	user, exists := m.users[username]
	if !exists {
		return fmt.Errorf("%w: user '%s'", models.ErrUnfound, username)
	}
	user.PasswordHash = passwordHash
	user.Salt = salt
	m.users[username] = user
	return nil
}

func (m *InmemoryStorage) FavoriteCreate(ctx context.Context, fav models.FavoriteCity) (models.FavoriteCity, error) {
	if err := ctx.Err(); err != nil {
		return models.FavoriteCity{}, err
	}
	if fav.UserID <= 0 || fav.City == "" {
		return models.FavoriteCity{}, models.ErrInvalidData
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	key := favoriteKey{userID: fav.UserID, city: fav.City}
	if existing, exists := m.favorites[key]; exists {
		if !existing.Deleted {
			return models.FavoriteCity{}, fmt.Errorf("%w: city '%s'", models.ErrConflict, fav.City)
		}
		existing.Deleted = false
		m.favorites[key] = existing
		return existing, nil
	}

	m.lastFavoriteID++
	created := models.FavoriteCity{
		ID:        m.lastFavoriteID,
		UserID:    fav.UserID,
		City:      fav.City,
		CreatedAt: time.Now().UTC(),
	}
	m.favorites[key] = created
	return created, nil
}

func (m *InmemoryStorage) FavoriteGet(ctx context.Context, userID int64, city string) (models.FavoriteCity, error) {
	if err := ctx.Err(); err != nil {
		return models.FavoriteCity{}, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	fav, exists := m.favorites[favoriteKey{userID: userID, city: city}]
	if !exists {
		return models.FavoriteCity{}, fmt.Errorf("%w: city '%s'", models.ErrUnfound, city)
	}
	return fav, nil
}

func (m *InmemoryStorage) FavoriteSoftDelete(ctx context.Context, userID int64, city string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	key := favoriteKey{userID: userID, city: city}
	fav, exists := m.favorites[key]
	if !exists || fav.Deleted {
		return fmt.Errorf("%w: city '%s'", models.ErrUnfound, city)
	}
	fav.Deleted = true
	m.favorites[key] = fav
	m.journal(ctx, key)
	return nil
}

func (m *InmemoryStorage) FavoriteListByUser(ctx context.Context, userID int64) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	return citiesByID(m.activeFavorites(userID)), nil
}

func (m *InmemoryStorage) FavoriteSoftDeleteByUser(ctx context.Context, userID int64) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	active := m.activeFavorites(userID)
	for _, fav := range active {
		key := favoriteKey{userID: userID, city: fav.City}
		fav.Deleted = true
		m.favorites[key] = fav
		m.journal(ctx, key)
	}
	return citiesByID(active), nil
}

type ctxKeyTx struct{}

// txJournal - мягко удаленные в транзакции ключи, которые вернутся при откате
type txJournal struct {
	deleted []favoriteKey
}

// WithinTx откатывает мягкие удаления, если fn вернула ошибку
func (m *InmemoryStorage) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(ctxKeyTx{}).(*txJournal); ok {
		return fn(ctx)
	}

	journal := &txJournal{}
	if err := fn(context.WithValue(ctx, ctxKeyTx{}, journal)); err != nil {
		m.rollback(journal)
		return err
	}
	return nil
}

// journal вызывается под m.mu
func (m *InmemoryStorage) journal(ctx context.Context, key favoriteKey) {
	if j, ok := ctx.Value(ctxKeyTx{}).(*txJournal); ok {
		j.deleted = append(j.deleted, key)
	}
}

func (m *InmemoryStorage) rollback(j *txJournal) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, key := range j.deleted {
		if fav, exists := m.favorites[key]; exists && fav.Deleted {
			fav.Deleted = false
			m.favorites[key] = fav
		}
	}
}

// Reset - аналог init-db: очищает все данные
func (m *InmemoryStorage) Reset(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.users = make(map[string]models.User)
	m.favorites = make(map[favoriteKey]models.FavoriteCity)
	m.lastUserID = initLastID
	m.lastFavoriteID = initLastID
	return nil
}

func (m *InmemoryStorage) Ping(ctx context.Context) error {
	return ctx.Err()
}

func (m *InmemoryStorage) Close() error {
	return nil
}

func (m *InmemoryStorage) activeFavorites(userID int64) []models.FavoriteCity {
	var result []models.FavoriteCity
	for key, fav := range m.favorites {
		if key.userID == userID && !fav.Deleted {
			result = append(result, fav)
		}
	}
	return result
}

func citiesByID(favs []models.FavoriteCity) []string {
	sort.Slice(favs, func(i, j int) bool {
		return favs[i].ID < favs[j].ID
	})

	cities := make([]string, 0, len(favs))
	for _, fav := range favs {
		cities = append(cities, fav.City)
	}
	return cities
}
