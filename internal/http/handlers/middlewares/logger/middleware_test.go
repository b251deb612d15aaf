package logger

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"weatherfav/internal/http/httputils"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestMiddlewareLogging(t *testing.T) {
	tests := []struct {
		name          string
		handler       http.HandlerFunc
		requestID     string
		wantStatus    int
		wantLogFields []string
	}{
		{
			name: "Успешный запрос",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusCreated)
			},
			requestID:     "req-1",
			wantStatus:    http.StatusCreated,
			wantLogFields: []string{`"status":201`, `"request_id":"req-1"`, `"message":"request completed"`},
		},
		{
			name: "Клиентская ошибка",
			handler: func(w http.ResponseWriter, r *http.Request) {
				httputils.WriteJSONError(w, http.StatusBadRequest, "bad")
			},
			wantStatus:    http.StatusBadRequest,
			wantLogFields: []string{`"status":400`, `"message":"client error"`},
		},
		{
			name: "Паника превращается в 500",
			handler: func(w http.ResponseWriter, r *http.Request) {
				panic("boom")
			},
			wantStatus:    http.StatusInternalServerError,
			wantLogFields: []string{`"panic":"boom"`, `"status":500`, `"message":"server error"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			log := zerolog.New(&buf)

			req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
			if tt.requestID != "" {
				req.Header.Set(httputils.HeaderRequestID, tt.requestID)
			}
			w := httptest.NewRecorder()

			MiddlewareLogging(&log)(tt.handler).ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.NotEmpty(t, w.Header().Get(httputils.HeaderRequestID))
			if tt.requestID != "" {
				assert.Equal(t, tt.requestID, w.Header().Get(httputils.HeaderRequestID))
			}
			for _, field := range tt.wantLogFields {
				assert.Contains(t, buf.String(), field)
			}
		})
	}
}

func TestMiddlewareLogging_ContextLogger(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		zerolog.Ctx(r.Context()).Info().Msg("inside handler")
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(httputils.HeaderRequestID, "abc")
	MiddlewareLogging(&log)(handler).ServeHTTP(httptest.NewRecorder(), req)

	assert.Contains(t, buf.String(), `"request_id":"abc","message":"inside handler"`)
}
