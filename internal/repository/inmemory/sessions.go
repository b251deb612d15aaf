package inmemory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"weatherfav/internal/domain/models"
)

// SessionStorage - хранилище сессий в памяти, когда MongoDB не настроена
type SessionStorage struct {
	mu       sync.RWMutex
	sessions map[int64]models.SessionRecord
}

func NewSessionStorage() *SessionStorage {
	return &SessionStorage{
		sessions: make(map[int64]models.SessionRecord),
	}
}

func (s *SessionStorage) SessionFind(ctx context.Context, userID int64) (models.SessionRecord, error) {
	if err := ctx.Err(); err != nil {
		return models.SessionRecord{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	record, exists := s.sessions[userID]
	if !exists {
		return models.SessionRecord{}, fmt.Errorf("%w: session for user %d", models.ErrUnfound, userID)
	}
	record.Cities = append(make([]string, 0, len(record.Cities)), record.Cities...)
	return record, nil
}

func (s *SessionStorage) SessionCreate(ctx context.Context, record models.SessionRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.sessions[record.UserID]; exists {
		return fmt.Errorf("%w: session for user %d", models.ErrConflict, record.UserID)
	}
	record.Cities = append(make([]string, 0, len(record.Cities)), record.Cities...)
	record.UpdatedAt = time.Now().UTC()
	s.sessions[record.UserID] = record
	return nil
}

// SessionUpdateCities перезаписывает список городов, не создавая запись
func (s *SessionStorage) SessionUpdateCities(ctx context.Context, userID int64, cities []string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	record, exists := s.sessions[userID]
	if !exists {
		return fmt.Errorf("%w: session for user %d", models.ErrUnfound, userID)
	}
	record.Cities = append(make([]string, 0, len(cities)), cities...)
	record.UpdatedAt = time.Now().UTC()
	s.sessions[userID] = record
	return nil
}

// SessionPurge удаляет все сессии (используется при init-db)
func (s *SessionStorage) SessionPurge(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions = make(map[int64]models.SessionRecord)
	return nil
}

func (s *SessionStorage) Ping(ctx context.Context) error {
	return ctx.Err()
}

func (s *SessionStorage) Close(ctx context.Context) error {
	return nil
}
