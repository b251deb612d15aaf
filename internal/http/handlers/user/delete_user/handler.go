package delete_user

import (
	"context"
	"net/http"
	"strings"

	"weatherfav/internal/http/dto"
	"weatherfav/internal/http/httputils"

	"github.com/rs/zerolog"
)

type ServiceUsers interface {
	Delete(ctx context.Context, username string) error
}

func HandlerDeleteUser(svc ServiceUsers, log zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := log.With().Str("handler", "HandlerDeleteUser").Logger()

		var req dto.UsernameRequest
		if err := httputils.DecodeJSON(r, &req, false); err != nil {
			httputils.WriteError(w, log, err)
			return
		}
		username := strings.TrimSpace(req.Username)
		if username == "" {
			httputils.WriteJSONError(w, http.StatusBadRequest, "username is required")
			return
		}

		if err := svc.Delete(r.Context(), username); err != nil {
			httputils.WriteError(w, log, err)
			return
		}

		httputils.WriteJSONResponse(w, http.StatusOK, dto.UserStatusResponse{
			Status:   "deleted",
			Username: username,
		})
	}
}
