// Package emissions provides a client for the CO2e estimation provider
// consumed by the carbon-risk calculation.
package emissions

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/rotisserie/eris"
)

const defaultBaseURL = "https://api.climatiq.io/data/v1"

// Client estimates greenhouse-gas emissions.
type Client interface {
	Estimate(ctx context.Context, industry string, size any) (*Estimate, error)
}

// Estimate holds CO2-equivalent tonnage for an industry/size pairing.
type Estimate struct {
	CO2e float64 `json:"co2e"`
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

// NewClient creates an emissions client.
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

type estimateRequest struct {
	Industry string `json:"industry"`
	Size     any    `json:"size,omitempty"`
}

func (c *httpClient) Estimate(ctx context.Context, industry string, size any) (*Estimate, error) {
	body, err := json.Marshal(estimateRequest{Industry: industry, Size: size})
	if err != nil {
		return nil, eris.Wrap(err, "emissions: marshal request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/estimate", bytes.NewReader(body))
	if err != nil {
		return nil, eris.Wrap(err, "emissions: create request")
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, eris.Wrap(err, "emissions: send request")
	}
	defer resp.Body.Close() //nolint:errcheck

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, eris.Wrap(err, "emissions: read response")
	}

	if resp.StatusCode != http.StatusOK {
		return nil, eris.Errorf("emissions: unexpected status %d: %s", resp.StatusCode, string(respBody))
	}

	var est Estimate
	if err := json.Unmarshal(respBody, &est); err != nil {
		return nil, eris.Wrap(err, "emissions: unmarshal response")
	}

	return &est, nil
}
