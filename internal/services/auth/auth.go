package auth

import (
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"weatherfav/internal/domain/models"

	"github.com/golang-jwt/jwt/v4"
)

const minSecretKeyBytes = 32

// Authentication выдает и проверяет access-токены HS256
type Authentication struct {
	secretKey []byte
	accessExp time.Duration
	now       func() time.Time
}

type Claims struct {
	jwt.RegisteredClaims
	UserID int64
}

func NewAuthentication(secretKey string, accessExp time.Duration) (*Authentication, error) {
	key, err := base64.StdEncoding.DecodeString(secretKey)
	if err != nil || len(key) < minSecretKeyBytes {
		return nil, errors.New("invalid JWT secret key: must be at least 32 bytes when decoded")
	}
	if accessExp <= 0 {
		return nil, errors.New("invalid JWT access expiration: must be positive")
	}

	return &Authentication{
		secretKey: key,
		accessExp: accessExp,
		now:       time.Now,
	}, nil
}

// Generate возвращает подписанный токен и время его истечения
func (a *Authentication) Generate(userID int64) (string, time.Time, error) {
	if userID <= 0 {
		return "", time.Time{}, models.ErrInvalidData
	}

	now := a.now()
	expiresAt := now.Add(a.accessExp)
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		UserID: userID,
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secretKey)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return token, expiresAt, nil
}

// Validate проверяет подпись и срок действия и возвращает id пользователя
func (a *Authentication) Validate(tokenString string) (int64, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return a.secretKey, nil
		})
	if err != nil {
		return 0, fmt.Errorf("%w: %v", models.ErrUnauthorized, err)
	}

	if !token.Valid || claims.UserID <= 0 {
		return 0, fmt.Errorf("%w: token is not valid", models.ErrUnauthorized)
	}
	return claims.UserID, nil
}
