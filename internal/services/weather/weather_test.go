package weather

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"weatherfav/internal/domain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_RequestShape(t *testing.T) {
	var gotPath string
	var gotQuery map[string]string

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = map[string]string{
			"q":     r.URL.Query().Get("q"),
			"appid": r.URL.Query().Get("appid"),
			"units": r.URL.Query().Get("units"),
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"name":"Boston","main":{"temp":12.5}}`))
	}))
	defer upstream.Close()

	client := NewClient(upstream.URL+"/data/2.5", "secret", time.Second)

	payload, err := client.Current(context.Background(), "Boston")
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Boston","main":{"temp":12.5}}`, string(payload))
	assert.Equal(t, "/data/2.5/weather", gotPath)
	assert.Equal(t, map[string]string{"q": "Boston", "appid": "secret", "units": "metric"}, gotQuery)

	_, err = client.Forecast(context.Background(), "New York")
	require.NoError(t, err)
	assert.Equal(t, "/data/2.5/forecast", gotPath)
	assert.Equal(t, "New York", gotQuery["q"])
}

func TestClient_UpstreamFailures(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "Статус 404 от провайдера",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNotFound)
				_, _ = w.Write([]byte(`{"cod":"404","message":"city not found"}`))
			},
		},
		{
			name: "Статус 500 от провайдера",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
		},
		{
			name: "Невалидный JSON",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`<html>oops</html>`))
			},
		},
		{
			name: "Таймаут",
			handler: func(w http.ResponseWriter, r *http.Request) {
				time.Sleep(200 * time.Millisecond)
				_, _ = w.Write([]byte(`{}`))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			upstream := httptest.NewServer(tt.handler)
			defer upstream.Close()

			client := NewClient(upstream.URL+"/", "key", 50*time.Millisecond)
			_, err := client.Current(context.Background(), "Boston")
			assert.ErrorIs(t, err, models.ErrUpstream)
		})
	}
}

func TestClient_NetworkError(t *testing.T) {
	upstream := httptest.NewServer(http.NotFoundHandler())
	addr := upstream.URL
	upstream.Close()

	client := NewClient(addr, "key", time.Second)
	_, err := client.Forecast(context.Background(), "Boston")
	assert.ErrorIs(t, err, models.ErrUpstream)
}

func TestClient_EmptyCity(t *testing.T) {
	client := NewClient("http://localhost/", "key", time.Second)
	_, err := client.Current(context.Background(), "  ")
	assert.ErrorIs(t, err, models.ErrInvalidData)
}
