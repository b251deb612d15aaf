package logger

import (
	"fmt"
	"net/http"
	"runtime/debug"
	"time"

	"weatherfav/internal/http/httputils"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const slowRequestThreshold = 100 * time.Millisecond

type responseRecorder struct {
	http.ResponseWriter
	statusCode  int
	size        int
	wroteHeader bool
}

func (r *responseRecorder) WriteHeader(statusCode int) {
	if r.wroteHeader {
		return
	}
	r.statusCode = statusCode
	r.wroteHeader = true
	r.ResponseWriter.WriteHeader(statusCode)
}

func (r *responseRecorder) Write(b []byte) (int, error) {
	if !r.wroteHeader {
		r.WriteHeader(http.StatusOK)
	}
	size, err := r.ResponseWriter.Write(b)
	r.size += size
	return size, err
}

// MiddlewareLogging логирует каждый запрос с X-Request-ID и превращает панику в 500
func MiddlewareLogging(log *zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			requestID := r.Header.Get(httputils.HeaderRequestID)
			if requestID == "" {
				requestID = uuid.NewString()
			}
			w.Header().Set(httputils.HeaderRequestID, requestID)

			reqLog := log.With().Str("request_id", requestID).Logger()
			recorder := &responseRecorder{ResponseWriter: w}

			reqLog.Debug().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Str("ip", r.RemoteAddr).
				Msg("request started")

			defer func() {
				if err := recover(); err != nil {
					reqLog.Error().
						Str("panic", fmt.Sprintf("%v", err)).
						Str("stack", string(debug.Stack())).
						Msg("request panic")
					if !recorder.wroteHeader {
						httputils.WriteJSONError(recorder, http.StatusInternalServerError, "internal server error")
					}
				}

				duration := time.Since(start)

				var msg string
				switch {
				case recorder.statusCode >= 500:
					msg = "server error"
				case recorder.statusCode >= 400:
					msg = "client error"
				default:
					msg = "request completed"
				}

				logEntry := reqLog.Info().
					Str("method", r.Method).
					Str("path", r.URL.Path).
					Int("status", recorder.statusCode).
					Dur("duration_ms", duration).
					Int("bytes", recorder.size).
					Str("ip", r.RemoteAddr)

				if duration > slowRequestThreshold {
					logEntry = logEntry.Bool("slow", true)
				}

				logEntry.Msg(msg)
			}()

			next.ServeHTTP(recorder, r.WithContext(reqLog.WithContext(r.Context())))
		})
	}
}
