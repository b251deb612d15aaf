package login

import (
	"context"
	"net/http"
	"time"

	"weatherfav/internal/domain/models"
	"weatherfav/internal/http/dto"
	"weatherfav/internal/http/httputils"

	"github.com/rs/zerolog"
)

type ServiceUsers interface {
	CheckPassword(ctx context.Context, username, password string) (bool, error)
	GetIDByUsername(ctx context.Context, username string) (int64, error)
}

type ServiceSession interface {
	Login(ctx context.Context, userID int64) error
}

type TokenIssuer interface {
	Generate(userID int64) (string, time.Time, error)
}

// HandlerLogin проверяет пароль, восстанавливает избранное из сессии и выдает токен
func HandlerLogin(users ServiceUsers, sessions ServiceSession, tokens TokenIssuer, log zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		log := log.With().Str("handler", "HandlerLogin").Logger()

		var req dto.CredentialsRequest
		if err := httputils.DecodeJSON(r, &req, false); err != nil {
			httputils.WriteError(w, log, err)
			return
		}
		if !req.Valid() {
			httputils.WriteJSONError(w, http.StatusBadRequest, "username and password are required")
			return
		}

		ok, err := users.CheckPassword(ctx, req.Username, req.Password)
		if err != nil {
			httputils.WriteError(w, log, err)
			return
		}
		if !ok {
			httputils.WriteError(w, log, models.ErrUnauthorized)
			return
		}

		userID, err := users.GetIDByUsername(ctx, req.Username)
		if err != nil {
			httputils.WriteError(w, log, err)
			return
		}

		if err := sessions.Login(ctx, userID); err != nil {
			httputils.WriteError(w, log, err)
			return
		}

		token, expiresAt, err := tokens.Generate(userID)
		if err != nil {
			httputils.WriteError(w, log, err)
			return
		}

		http.SetCookie(w, &http.Cookie{
			Name:     httputils.AuthCookieName,
			Value:    token,
			Path:     "/",
			Expires:  expiresAt,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})

		log.Info().Int64("user_id", userID).Msg("user logged in")
		httputils.WriteJSONResponse(w, http.StatusOK, dto.LoginResponse{
			Message: "Login successful",
			Token:   token,
		})
	}
}
