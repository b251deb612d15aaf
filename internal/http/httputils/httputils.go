package httputils

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"weatherfav/internal/domain/models"

	"github.com/rs/zerolog"
)

const (
	msgInternalError = "internal server error"
	msgUpstreamError = "weather service unavailable"
)

type ctxKeyUserID struct{}

// WithUserID кладет id аутентифицированного пользователя в контекст
func WithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, ctxKeyUserID{}, userID)
}

func UserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(ctxKeyUserID{}).(int64)
	return userID, ok && userID > 0
}

// StatusFromError сопоставляет доменные ошибки с HTTP статусами
func StatusFromError(err error) int {
	switch {
	case errors.Is(err, models.ErrInvalidData),
		errors.Is(err, models.ErrConflict),
		errors.Is(err, models.ErrUnfound):
		return http.StatusBadRequest
	case errors.Is(err, models.ErrUnauthorized):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// WriteError пишет {"error": ...}; подробности 5xx остаются только в логе
func WriteError(w http.ResponseWriter, log zerolog.Logger, err error) {
	status := StatusFromError(err)

	message := err.Error()
	if status >= http.StatusInternalServerError {
		log.Error().Err(err).Int("status", status).Msg("request failed")
		message = msgInternalError
		if errors.Is(err, models.ErrUpstream) {
			message = msgUpstreamError
		}
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	WriteJSONError(w, status, message)
}

func WriteJSONError(w http.ResponseWriter, status int, message string) {
	w.Header().Set(HeaderContentType, MIMEApplicationJSON)
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(struct {
		Error string `json:"error"`
	}{Error: message})
}

func WriteJSONResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set(HeaderContentType, MIMEApplicationJSON)
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// DecodeJSON разбирает тело запроса; пустое тело допустимо, если allowEmpty
func DecodeJSON(r *http.Request, dst any, allowEmpty bool) error {
	if r.Body == nil {
		if allowEmpty {
			return nil
		}
		return models.ErrInvalidData
	}

	err := json.NewDecoder(r.Body).Decode(dst)
	if err == nil {
		return nil
	}
	if errors.Is(err, io.EOF) && allowEmpty {
		return nil
	}
	return fmt.Errorf("%w: %v", models.ErrInvalidData, err)
}

type UserResolver interface {
	GetIDByUsername(ctx context.Context, username string) (int64, error)
}

// ResolveUserID берет id по имени из запроса, иначе из токена
func ResolveUserID(ctx context.Context, users UserResolver, username string) (int64, error) {
	if username != "" {
		return users.GetIDByUsername(ctx, username)
	}
	if userID, ok := UserIDFromContext(ctx); ok {
		return userID, nil
	}
	return 0, models.ErrInvalidData
}
