package auth

import (
	"net/http"
	"strings"

	"weatherfav/internal/http/httputils"

	"github.com/rs/zerolog"
)

type TokenValidator interface {
	Validate(token string) (int64, error)
}

// MiddlewareAuth кладет id пользователя из валидного токена в контекст.
// Запрос без токена или с невалидным токеном проходит дальше без пользователя.
func MiddlewareAuth(tokens TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := tokenFromRequest(r)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			userID, err := tokens.Validate(token)
			if err != nil {
				zerolog.Ctx(r.Context()).Debug().Err(err).Msg("ignoring invalid auth token")
				next.ServeHTTP(w, r)
				return
			}

			ctx := httputils.WithUserID(r.Context(), userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// tokenFromRequest: сначала заголовок Authorization, затем кука
func tokenFromRequest(r *http.Request) string {
	if header := r.Header.Get(httputils.HeaderAuthorization); strings.HasPrefix(header, httputils.BearerPrefix) {
		return strings.TrimSpace(strings.TrimPrefix(header, httputils.BearerPrefix))
	}

	if cookie, err := r.Cookie(httputils.AuthCookieName); err == nil {
		return cookie.Value
	}
	return ""
}
