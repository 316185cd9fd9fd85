// Package riskassess provides a client for the proprietary risk-assessment
// service consumed by the underwriting advisor.
package riskassess

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/rotisserie/eris"
)

const defaultBaseURL = "https://risk.sellsadvisors.com/v1"

// Client scores a client record.
type Client interface {
	// Assess returns a risk score in [0,100] for the given client record.
	Assess(ctx context.Context, client map[string]any) (float64, error)
}

// Option configures the client.
type Option func(*httpClient)

// WithBaseURL overrides the default API base URL.
func WithBaseURL(url string) Option {
	return func(c *httpClient) {
		c.baseURL = url
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

// NewClient creates a risk-assessment client.
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

type assessResponse struct {
	Score float64 `json:"score"`
}

func (c *httpClient) Assess(ctx context.Context, client map[string]any) (float64, error) {
	body, err := json.Marshal(client)
	if err != nil {
		return 0, eris.Wrap(err, "riskassess: marshal request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/assess", bytes.NewReader(body))
	if err != nil {
		return 0, eris.Wrap(err, "riskassess: create request")
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, eris.Wrap(err, "riskassess: send request")
	}
	defer resp.Body.Close() //nolint:errcheck

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, eris.Wrap(err, "riskassess: read response")
	}

	if resp.StatusCode != http.StatusOK {
		return 0, eris.Errorf("riskassess: unexpected status %d: %s", resp.StatusCode, string(respBody))
	}

	var result assessResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return 0, eris.Wrap(err, "riskassess: unmarshal response")
	}

	if result.Score < 0 || result.Score > 100 {
		return 0, eris.Errorf("riskassess: score %g out of range [0,100]", result.Score)
	}

	return result.Score, nil
}
