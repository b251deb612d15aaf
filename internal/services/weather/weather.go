// Package weather proxies current-weather and forecast lookups to an
// OpenWeatherMap-compatible provider and returns its payload as is.
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"weatherfav/internal/domain/models"
)

const (
	endpointCurrent  = "weather"
	endpointForecast = "forecast"
	unitsMetric      = "metric"
	maxPayloadBytes  = 1 << 20
)

type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

// NewClient ожидает baseURL со слэшем на конце
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		apiKey:     apiKey,
	}
}

func (c *Client) Current(ctx context.Context, city string) (json.RawMessage, error) {
	return c.get(ctx, endpointCurrent, city)
}

func (c *Client) Forecast(ctx context.Context, city string) (json.RawMessage, error) {
	return c.get(ctx, endpointForecast, city)
}

func (c *Client) get(ctx context.Context, endpoint, city string) (json.RawMessage, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return nil, models.ErrInvalidData
	}

	query := url.Values{}
	query.Set("q", city)
	query.Set("appid", c.apiKey)
	query.Set("units", unitsMetric)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+endpoint+"?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to build request: %v", models.ErrUpstream, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s request failed: %v", models.ErrUpstream, endpoint, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxPayloadBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read %s response: %v", models.ErrUpstream, endpoint, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: %s returned status %d", models.ErrUpstream, endpoint, resp.StatusCode)
	}

	if !json.Valid(body) {
		return nil, fmt.Errorf("%w: %s returned invalid JSON", models.ErrUpstream, endpoint)
	}

	return json.RawMessage(body), nil
}
