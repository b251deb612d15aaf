package logout

import (
	"context"
	"net/http"
	"strings"

	"weatherfav/internal/http/dto"
	"weatherfav/internal/http/httputils"

	"github.com/rs/zerolog"
)

type ServiceUsers interface {
	GetIDByUsername(ctx context.Context, username string) (int64, error)
}

type ServiceSession interface {
	Logout(ctx context.Context, userID int64) error
}

// HandlerLogout сохраняет избранное в сессию; без username берется пользователь из токена
func HandlerLogout(users ServiceUsers, sessions ServiceSession, log zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		log := log.With().Str("handler", "HandlerLogout").Logger()

		var req dto.UsernameRequest
		if err := httputils.DecodeJSON(r, &req, true); err != nil {
			httputils.WriteError(w, log, err)
			return
		}

		userID, err := httputils.ResolveUserID(ctx, users, strings.TrimSpace(req.Username))
		if err != nil {
			httputils.WriteError(w, log, err)
			return
		}

		if err := sessions.Logout(ctx, userID); err != nil {
			httputils.WriteError(w, log, err)
			return
		}

		http.SetCookie(w, &http.Cookie{
			Name:     httputils.AuthCookieName,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
		})

		log.Info().Int64("user_id", userID).Msg("user logged out")
		httputils.WriteJSONResponse(w, http.StatusOK, dto.MessageResponse{Message: "Logout successful"})
	}
}
