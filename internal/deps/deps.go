// Package deps describes the services the HTTP layer depends on.
package deps

import (
	"context"
	"encoding/json"
	"time"

	"weatherfav/internal/domain/models"
)

//go:generate mockgen -destination=mocks/deps_mock.go -package=mocks weatherfav/internal/deps UserService,FavoritesService,SessionService,TokenService,WeatherService,AdminService

type UserService interface {
	Create(ctx context.Context, username, password string) (models.User, error)
	Delete(ctx context.Context, username string) error
	CheckPassword(ctx context.Context, username, password string) (bool, error)
	GetIDByUsername(ctx context.Context, username string) (int64, error)
	UpdatePassword(ctx context.Context, username, oldPassword, newPassword string) (bool, error)
}

type FavoritesService interface {
	Add(ctx context.Context, userID int64, city string) (models.FavoriteCity, error)
	Get(ctx context.Context, userID int64, city string) (models.FavoriteCity, error)
	Delete(ctx context.Context, userID int64, city string) error
	List(ctx context.Context, userID int64) ([]string, error)
}

type SessionService interface {
	Login(ctx context.Context, userID int64) error
	Logout(ctx context.Context, userID int64) error
}

type TokenService interface {
	Generate(userID int64) (string, time.Time, error)
	Validate(token string) (int64, error)
}

type WeatherService interface {
	Current(ctx context.Context, city string) (json.RawMessage, error)
	Forecast(ctx context.Context, city string) (json.RawMessage, error)
}

type AdminService interface {
	PingDataBase(ctx context.Context) error
	InitDB(ctx context.Context) error
}
