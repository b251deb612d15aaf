package weather

import (
	"context"
	"encoding/json"
	"net/http"

	"weatherfav/internal/http/httputils"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

type ServiceWeather interface {
	Current(ctx context.Context, city string) (json.RawMessage, error)
	Forecast(ctx context.Context, city string) (json.RawMessage, error)
}

type lookupFunc func(ctx context.Context, city string) (json.RawMessage, error)

func HandlerCurrent(svc ServiceWeather, log zerolog.Logger) http.HandlerFunc {
	return handleLookup(svc.Current, log.With().Str("handler", "HandlerCurrent").Logger())
}

func HandlerForecast(svc ServiceWeather, log zerolog.Logger) http.HandlerFunc {
	return handleLookup(svc.Forecast, log.With().Str("handler", "HandlerForecast").Logger())
}

// payload провайдера отдается без изменений
func handleLookup(lookup lookupFunc, log zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		city := mux.Vars(r)["city"]

		payload, err := lookup(r.Context(), city)
		if err != nil {
			httputils.WriteError(w, log, err)
			return
		}

		w.Header().Set(httputils.HeaderContentType, httputils.MIMEApplicationJSON)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(payload)
	}
}
