package dto

import (
	"time"

	"weatherfav/internal/domain/models"
)

// DTO БД для таблицы favorites
type (
	FavoriteDB struct {
		ID        int64     `db:"id"`
		UserID    int64     `db:"user_id"`
		City      string    `db:"city"`
		Deleted   bool      `db:"deleted"`
		CreatedAt time.Time `db:"created_at"`
	}
)

func FavoriteDBToDomain(f FavoriteDB) models.FavoriteCity {
	return models.FavoriteCity{
		ID:        f.ID,
		UserID:    f.UserID,
		City:      f.City,
		Deleted:   f.Deleted,
		CreatedAt: f.CreatedAt,
	}
}

func FavoriteDBFromDomain(f models.FavoriteCity) FavoriteDB {
	return FavoriteDB{
		ID:        f.ID,
		UserID:    f.UserID,
		City:      f.City,
		Deleted:   f.Deleted,
		CreatedAt: f.CreatedAt,
	}
}
