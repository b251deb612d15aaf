package dbcheck

import (
	"context"
	"net/http"

	"weatherfav/internal/http/dto"
	"weatherfav/internal/http/httputils"

	"github.com/rs/zerolog"
)

type ServiceAdmin interface {
	PingDataBase(ctx context.Context) error
}

func HandlerDBCheck(svc ServiceAdmin, log zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := log.With().Str("handler", "HandlerDBCheck").Logger()

		if err := svc.PingDataBase(r.Context()); err != nil {
			log.Error().Err(err).Msg("database check failed")
			httputils.WriteJSONError(w, http.StatusInternalServerError, "database is unavailable")
			return
		}

		httputils.WriteJSONResponse(w, http.StatusOK, dto.DBCheckResponse{DatabaseStatus: "healthy"})
	}
}
