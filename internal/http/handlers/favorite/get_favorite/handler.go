package get_favorite

import (
	"context"
	"net/http"

	"weatherfav/internal/domain/models"
	"weatherfav/internal/http/dto"
	"weatherfav/internal/http/httputils"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

type ServiceUsers interface {
	GetIDByUsername(ctx context.Context, username string) (int64, error)
}

type ServiceFavorites interface {
	Get(ctx context.Context, userID int64, city string) (models.FavoriteCity, error)
}

func HandlerGetFavorite(users ServiceUsers, favorites ServiceFavorites, log zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		log := log.With().Str("handler", "HandlerGetFavorite").Logger()

		vars := mux.Vars(r)
		username, city := vars["user"], vars["city"]

		userID, err := users.GetIDByUsername(ctx, username)
		if err != nil {
			httputils.WriteError(w, log, err)
			return
		}

		fav, err := favorites.Get(ctx, userID, city)
		if err != nil {
			httputils.WriteError(w, log, err)
			return
		}

		httputils.WriteJSONResponse(w, http.StatusOK, dto.FavoriteResponseFromDomain(fav, username))
	}
}
