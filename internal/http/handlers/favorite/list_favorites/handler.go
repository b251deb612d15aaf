package list_favorites

import (
	"context"
	"net/http"

	"weatherfav/internal/http/dto"
	"weatherfav/internal/http/httputils"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

type ServiceUsers interface {
	GetIDByUsername(ctx context.Context, username string) (int64, error)
}

type ServiceFavorites interface {
	List(ctx context.Context, userID int64) ([]string, error)
}

func HandlerListFavorites(users ServiceUsers, favorites ServiceFavorites, log zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		log := log.With().Str("handler", "HandlerListFavorites").Logger()

		username := mux.Vars(r)["user"]

		userID, err := users.GetIDByUsername(ctx, username)
		if err != nil {
			httputils.WriteError(w, log, err)
			return
		}

		cities, err := favorites.List(ctx, userID)
		if err != nil {
			httputils.WriteError(w, log, err)
			return
		}

		httputils.WriteJSONResponse(w, http.StatusOK, dto.FavoritesListResponseFromDomain(username, cities))
	}
}
