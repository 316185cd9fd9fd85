// Package weather provides a client for the current-conditions provider
// consumed by the carbon-risk calculation.
package weather

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rotisserie/eris"
)

const defaultBaseURL = "https://api.openweathermap.org/data/2.5"

// Client fetches current weather conditions.
type Client interface {
	Current(ctx context.Context, location string) (*Observation, error)
}

// Observation is the current-conditions payload keyed by location.
type Observation struct {
	Main Main `json:"main"`
	Wind Wind `json:"wind"`
}

// Main holds temperature (°C) and relative humidity (%).
type Main struct {
	Temp     float64 `json:"temp"`
	Humidity float64 `json:"humidity"`
}

// Wind holds wind speed (m/s).
type Wind struct {
	Speed float64 `json:"speed"`
}

// Option configures the client.
type Option func(*httpClient)

// WithBaseURL overrides the default API base URL.
func WithBaseURL(u string) Option {
	return func(c *httpClient) {
		c.baseURL = u
	}
}

// WithHTTPClient overrides the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *httpClient) {
		c.http = hc
	}
}

type httpClient struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

// NewClient creates a weather client.
func NewClient(apiKey string, opts ...Option) Client {
	c := &httpClient{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		http: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

func (c *httpClient) Current(ctx context.Context, location string) (*Observation, error) {
	q := url.Values{}
	q.Set("q", location)
	q.Set("appid", c.apiKey)
	q.Set("units", "metric")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/weather?"+q.Encode(), nil)
	if err != nil {
		return nil, eris.Wrap(err, "weather: create request")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, eris.Wrap(err, "weather: send request")
	}
	defer resp.Body.Close() //nolint:errcheck

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, eris.Wrap(err, "weather: read response")
	}

	if resp.StatusCode != http.StatusOK {
		return nil, eris.Errorf("weather: unexpected status %d: %s", resp.StatusCode, string(respBody))
	}

	var obs Observation
	if err := json.Unmarshal(respBody, &obs); err != nil {
		return nil, eris.Wrap(err, "weather: unmarshal response")
	}

	return &obs, nil
}
