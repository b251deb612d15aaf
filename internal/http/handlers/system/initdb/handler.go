package initdb

import (
	"context"
	"net/http"

	"weatherfav/internal/http/dto"
	"weatherfav/internal/http/httputils"

	"github.com/rs/zerolog"
)

type ServiceAdmin interface {
	InitDB(ctx context.Context) error
}

// HandlerInitDB удаляет и заново создает все таблицы
func HandlerInitDB(svc ServiceAdmin, log zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := log.With().Str("handler", "HandlerInitDB").Logger()

		if err := svc.InitDB(r.Context()); err != nil {
			httputils.WriteError(w, log, err)
			return
		}

		httputils.WriteJSONResponse(w, http.StatusOK, dto.InitDBResponse{
			Status:  "success",
			Message: "Database tables dropped and recreated",
		})
	}
}
