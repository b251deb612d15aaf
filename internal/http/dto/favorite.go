package dto

import (
	"time"

	"weatherfav/internal/domain/models"
)

// Request
type FavoriteRequest struct {
	User string `json:"user"`
	City string `json:"city"`
}

// Response
type (
	FavoriteResponse struct {
		ID        int64     `json:"id"`
		User      string    `json:"user"`
		City      string    `json:"city"`
		Deleted   bool      `json:"deleted"`
		CreatedAt time.Time `json:"created_at"`
	}

	FavoritesListResponse struct {
		User      string   `json:"user"`
		Favorites []string `json:"favorites"`
	}
)

// Domain → Response
func FavoriteResponseFromDomain(fav models.FavoriteCity, username string) FavoriteResponse {
	return FavoriteResponse{
		ID:        fav.ID,
		User:      username,
		City:      fav.City,
		Deleted:   fav.Deleted,
		CreatedAt: fav.CreatedAt,
	}
}

func FavoritesListResponseFromDomain(username string, cities []string) FavoritesListResponse {
	if cities == nil {
		cities = []string{}
	}
	return FavoritesListResponse{User: username, Favorites: cities}
}
