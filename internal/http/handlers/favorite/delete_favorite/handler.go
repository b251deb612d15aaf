package delete_favorite

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"weatherfav/internal/http/dto"
	"weatherfav/internal/http/httputils"

	"github.com/rs/zerolog"
)

type ServiceUsers interface {
	GetIDByUsername(ctx context.Context, username string) (int64, error)
}

type ServiceFavorites interface {
	Delete(ctx context.Context, userID int64, city string) error
}

func HandlerDeleteFavorite(users ServiceUsers, favorites ServiceFavorites, log zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		log := log.With().Str("handler", "HandlerDeleteFavorite").Logger()

		var req dto.FavoriteRequest
		if err := httputils.DecodeJSON(r, &req, false); err != nil {
			httputils.WriteError(w, log, err)
			return
		}
		city := strings.TrimSpace(req.City)
		if city == "" {
			httputils.WriteJSONError(w, http.StatusBadRequest, "city is required")
			return
		}

		userID, err := httputils.ResolveUserID(ctx, users, strings.TrimSpace(req.User))
		if err != nil {
			httputils.WriteError(w, log, err)
			return
		}

		if err := favorites.Delete(ctx, userID, city); err != nil {
			httputils.WriteError(w, log, err)
			return
		}

		httputils.WriteJSONResponse(w, http.StatusOK, dto.MessageResponse{
			Message: fmt.Sprintf("City '%s' removed from favorites", city),
		})
	}
}
