package admin

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
)

type Storage interface {
	Ping(ctx context.Context) error
	Reset(ctx context.Context) error
}

// CachePurger удаляет все кэшированные записи избранного
type CachePurger interface {
	Purge(ctx context.Context) error
}

// SessionPurger удаляет сохраненные сессии. После сброса id пользователей
// начинаются заново, и старая сессия досталась бы новому пользователю.
type SessionPurger interface {
	SessionPurge(ctx context.Context) error
}

type Service struct {
	storage  Storage
	cache    CachePurger
	sessions SessionPurger
	log      *zerolog.Logger
}

// NewService: cache может быть nil, если Redis не настроен
func NewService(storage Storage, cache CachePurger, sessions SessionPurger, log *zerolog.Logger) *Service {
	if log == nil {
		nop := zerolog.Nop()
		log = &nop
	}
	return &Service{storage: storage, cache: cache, sessions: sessions, log: log}
}

func (s *Service) PingDataBase(ctx context.Context) error {
	if err := s.storage.Ping(ctx); err != nil {
		return fmt.Errorf("database is unavailable: %w", err)
	}
	return nil
}

// InitDB пересоздает схему, затем очищает сессии и кэш, которые ссылаются на старые id
func (s *Service) InitDB(ctx context.Context) error {
	if err := s.storage.Reset(ctx); err != nil {
		return fmt.Errorf("failed to reset database: %w", err)
	}

	if err := s.sessions.SessionPurge(ctx); err != nil {
		return fmt.Errorf("failed to purge sessions: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.Purge(ctx); err != nil {
			return fmt.Errorf("failed to purge cache: %w", err)
		}
	}

	s.log.Info().Msg("database reinitialized")
	return nil
}
