// Package session restores a user's favorites on login from the city list
// saved at the previous logout, and saves that list again on logout.
package session

import (
	"context"
	"errors"
	"fmt"

	"weatherfav/internal/domain/models"

	"github.com/rs/zerolog"
)

//go:generate mockgen -source=session.go -destination=../../mocks/mock_session.go -package=mocks
type SessionStorage interface {
	SessionFind(ctx context.Context, userID int64) (models.SessionRecord, error)
	SessionCreate(ctx context.Context, record models.SessionRecord) error
	SessionUpdateCities(ctx context.Context, userID int64, cities []string) error // update only
}

type FavoritesManager interface {
	EnsurePresent(ctx context.Context, userID int64, city string) error
	Clear(ctx context.Context, userID int64, save func(ctx context.Context, cities []string) error) ([]string, error)
}

type Service struct {
	sessions  SessionStorage
	favorites FavoritesManager
	locks     *userLocks
	log       *zerolog.Logger
}

func NewService(sessions SessionStorage, favorites FavoritesManager, log *zerolog.Logger) *Service {
	if log == nil {
		nop := zerolog.Nop()
		log = &nop
	}
	return &Service{
		sessions:  sessions,
		favorites: favorites,
		locks:     newUserLocks(),
		log:       log,
	}
}

// Login восстанавливает избранное из сохраненной сессии в сохраненном порядке.
// При первом входе создается пустая сессия.
func (s *Service) Login(ctx context.Context, userID int64) error {
	if userID <= 0 {
		return models.ErrInvalidData
	}

	unlock := s.locks.lock(userID)
	defer unlock()

	record, err := s.sessions.SessionFind(ctx, userID)
	if err != nil {
		if !errors.Is(err, models.ErrUnfound) {
			return fmt.Errorf("failed to find session: %w", err)
		}

		err = s.sessions.SessionCreate(ctx, models.SessionRecord{UserID: userID, Cities: []string{}})
		// параллельный вход из другого процесса уже создал запись
		if err != nil && !errors.Is(err, models.ErrConflict) {
			return fmt.Errorf("failed to create session: %w", err)
		}

		s.log.Debug().Int64("user_id", userID).Msg("session created")
		return nil
	}

	for _, city := range record.Cities {
		if err := s.favorites.EnsurePresent(ctx, userID, city); err != nil {
			return fmt.Errorf("failed to hydrate favorites: %w", err)
		}
	}

	s.log.Debug().Int64("user_id", userID).Int("cities", len(record.Cities)).Msg("session hydrated")
	return nil
}

// Logout сохраняет текущий список городов в сессию и только потом очищает избранное
func (s *Service) Logout(ctx context.Context, userID int64) error {
	if userID <= 0 {
		return models.ErrInvalidData
	}

	unlock := s.locks.lock(userID)
	defer unlock()

	// сохраняется ровно тот список, который был очищен
	cities, err := s.favorites.Clear(ctx, userID, func(ctx context.Context, cleared []string) error {
		return s.sessions.SessionUpdateCities(ctx, userID, cleared)
	})
	if err != nil {
		if errors.Is(err, models.ErrUnfound) {
			return fmt.Errorf("%w: no active session", models.ErrUnfound)
		}
		return fmt.Errorf("failed to save session: %w", err)
	}

	s.log.Debug().Int64("user_id", userID).Int("cities", len(cities)).Msg("session saved")
	return nil
}
