package update_password

import (
	"context"
	"net/http"
	"strings"

	"weatherfav/internal/domain/models"
	"weatherfav/internal/http/dto"
	"weatherfav/internal/http/httputils"

	"github.com/rs/zerolog"
)

type ServiceUsers interface {
	UpdatePassword(ctx context.Context, username, oldPassword, newPassword string) (bool, error)
}

func HandlerUpdatePassword(svc ServiceUsers, log zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := log.With().Str("handler", "HandlerUpdatePassword").Logger()

		var req dto.UpdatePasswordRequest
		if err := httputils.DecodeJSON(r, &req, false); err != nil {
			httputils.WriteError(w, log, err)
			return
		}
		if strings.TrimSpace(req.Username) == "" || req.OldPassword == "" || req.NewPassword == "" {
			httputils.WriteJSONError(w, http.StatusBadRequest, "username, old_password and new_password are required")
			return
		}

		updated, err := svc.UpdatePassword(r.Context(), req.Username, req.OldPassword, req.NewPassword)
		if err != nil {
			httputils.WriteError(w, log, err)
			return
		}
		if !updated {
			httputils.WriteError(w, log, models.ErrUnauthorized)
			return
		}

		httputils.WriteJSONResponse(w, http.StatusOK, dto.MessageResponse{Message: "Password updated"})
	}
}
