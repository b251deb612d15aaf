package users

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"weatherfav/internal/domain/models"

	"golang.org/x/crypto/bcrypt"
)

const saltBytes = 16

//go:generate mockgen -source=users.go -destination=../../mocks/mock_users.go -package=mocks
type UserStorage interface {
	UserCreate(ctx context.Context, user models.User) (models.User, error)
	UserGetByUsername(ctx context.Context, username string) (models.User, error)
	UserDelete(ctx context.Context, username string) error
	UserUpdatePassword(ctx context.Context, username, passwordHash, salt string) error
}

// Service управляет учетными записями. Пароль хранится как bcrypt(salt + password).
type Service struct {
	storage UserStorage
	cost    int
}

func NewService(storage UserStorage) *Service {
	return &Service{
		storage: storage,
		cost:    bcrypt.DefaultCost,
	}
}

func (s *Service) Create(ctx context.Context, username, password string) (models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" || !models.NameFits(username) {
		return models.User{}, models.ErrInvalidData
	}

	hash, salt, err := s.hashPassword(password)
	if err != nil {
		return models.User{}, err
	}

	user, err := s.storage.UserCreate(ctx, models.User{
		Username:     username,
		PasswordHash: hash,
		Salt:         salt,
	})
	if err != nil {
		if errors.Is(err, models.ErrConflict) {
			return models.User{}, err
		}
		return models.User{}, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

func (s *Service) Delete(ctx context.Context, username string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return models.ErrInvalidData
	}

	if err := s.storage.UserDelete(ctx, username); err != nil {
		if errors.Is(err, models.ErrUnfound) {
			return err
		}
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}

// CheckPassword возвращает false без ошибки, если пользователя нет
func (s *Service) CheckPassword(ctx context.Context, username, password string) (bool, error) {
	user, err := s.storage.UserGetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, models.ErrUnfound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to get user: %w", err)
	}
	return matches(user, password), nil
}

func (s *Service) GetIDByUsername(ctx context.Context, username string) (int64, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return 0, models.ErrInvalidData
	}

	user, err := s.storage.UserGetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, models.ErrUnfound) {
			return 0, err
		}
		return 0, fmt.Errorf("failed to get user: %w", err)
	}
	return user.ID, nil
}

// UpdatePassword меняет пароль, если старый совпал; при несовпадении false без ошибки
func (s *Service) UpdatePassword(ctx context.Context, username, oldPassword, newPassword string) (bool, error) {
	username = strings.TrimSpace(username)
	if username == "" || newPassword == "" {
		return false, models.ErrInvalidData
	}

	user, err := s.storage.UserGetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, models.ErrUnfound) {
			return false, err
		}
		return false, fmt.Errorf("failed to get user: %w", err)
	}

	if !matches(user, oldPassword) {
		return false, nil
	}

	hash, salt, err := s.hashPassword(newPassword)
	if err != nil {
		return false, err
	}

	if err := s.storage.UserUpdatePassword(ctx, username, hash, salt); err != nil {
		return false, fmt.Errorf("failed to update password: %w", err)
	}
	return true, nil
}

func (s *Service) hashPassword(password string) (hash, salt string, err error) {
	raw := make([]byte, saltBytes)
	if _, err := rand.Read(raw); err != nil {
		return "", "", fmt.Errorf("failed to generate salt: %w", err)
	}
	salt = hex.EncodeToString(raw)

	hashed, err := bcrypt.GenerateFromPassword([]byte(salt+password), s.cost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", "", fmt.Errorf("%w: password is too long", models.ErrInvalidData)
		}
		return "", "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), salt, nil
}

func matches(user models.User, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(user.Salt+password)) == nil
}
