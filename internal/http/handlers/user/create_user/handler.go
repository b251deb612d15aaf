package create_user

import (
	"context"
	"net/http"

	"weatherfav/internal/domain/models"
	"weatherfav/internal/http/dto"
	"weatherfav/internal/http/httputils"

	"github.com/rs/zerolog"
)

type ServiceUsers interface {
	Create(ctx context.Context, username, password string) (models.User, error)
}

func HandlerCreateUser(svc ServiceUsers, log zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := log.With().Str("handler", "HandlerCreateUser").Logger()

		var req dto.CredentialsRequest
		if err := httputils.DecodeJSON(r, &req, false); err != nil {
			httputils.WriteError(w, log, err)
			return
		}
		if !req.Valid() {
			httputils.WriteJSONError(w, http.StatusBadRequest, "username and password are required")
			return
		}

		user, err := svc.Create(r.Context(), req.Username, req.Password)
		if err != nil {
			httputils.WriteError(w, log, err)
			return
		}

		log.Info().Int64("user_id", user.ID).Str("username", user.Username).Msg("user created")
		httputils.WriteJSONResponse(w, http.StatusCreated, dto.UserStatusResponse{
			Status:   "created",
			Username: user.Username,
		})
	}
}
