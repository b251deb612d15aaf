package health

import (
	"net/http"

	"weatherfav/internal/http/dto"
	"weatherfav/internal/http/httputils"
)

func HandlerHealth() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httputils.WriteJSONResponse(w, http.StatusOK, dto.HealthResponse{Status: "healthy"})
	}
}
