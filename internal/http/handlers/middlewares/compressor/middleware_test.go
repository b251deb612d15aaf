package compressor

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"weatherfav/internal/http/httputils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func echoHandler(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	httputils.WriteJSONResponse(w, http.StatusOK, map[string]string{"echo": string(body)})
}

func TestMiddlewareCompressing_Response(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("hello"))
	req.Header.Set(httputils.HeaderAcceptEncoding, "gzip, deflate")
	w := httptest.NewRecorder()

	MiddlewareCompressing()(http.HandlerFunc(echoHandler)).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, httputils.EncodingGzip, w.Header().Get(httputils.HeaderContentEncoding))

	gz, err := gzip.NewReader(w.Body)
	require.NoError(t, err)
	body, err := io.ReadAll(gz)
	require.NoError(t, err)
	assert.JSONEq(t, `{"echo":"hello"}`, string(body))
}

func TestMiddlewareCompressing_Request(t *testing.T) {
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	_, err := gz.Write([]byte("compressed body"))
	require.NoError(t, err)
	require.NoError(t, gz.Close())

	req := httptest.NewRequest(http.MethodPost, "/", &buf)
	req.Header.Set(httputils.HeaderContentEncoding, httputils.EncodingGzip)
	w := httptest.NewRecorder()

	MiddlewareCompressing()(http.HandlerFunc(echoHandler)).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get(httputils.HeaderContentEncoding))
	assert.JSONEq(t, `{"echo":"compressed body"}`, w.Body.String())
}

func TestMiddlewareCompressing_InvalidGzip(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("not gzip"))
	req.Header.Set(httputils.HeaderContentEncoding, httputils.EncodingGzip)
	w := httptest.NewRecorder()

	MiddlewareCompressing()(http.HandlerFunc(echoHandler)).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"invalid gzip data"}`, w.Body.String())
}
