// Package forecastio is a typed client for the Dark Sky (forecast.io)
// weather API: build a Forecast or Time Machine request for a pair of
// coordinates, execute it, and get back the decoded response or a
// typed error.
package forecastio

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"
)

// DefaultBaseURL is the production endpoint of the Forecast API.
const DefaultBaseURL = "https://api.darksky.net/forecast"

// Client talks to the Forecast API. The API key travels in each
// request rather than in the client, so a single client can serve
// multiple keys.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL points the client at an alternate endpoint. Used in
// tests and by API-compatible upstreams.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// NewClient creates a Forecast API client.
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Forecast retrieves current conditions and the upcoming forecast for
// the location in the request.
func (c *Client) Forecast(ctx context.Context, request ForecastRequest) (*Response, error) {
	return c.get(ctx, request.URL(c.baseURL))
}

// TimeMachine retrieves conditions for the location at the point in
// time named by the request.
func (c *Client) TimeMachine(ctx context.Context, request TimeMachineRequest) (*Response, error) {
	return c.get(ctx, request.URL(c.baseURL))
}

func (c *Client) get(ctx context.Context, url string) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to make request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, decodeAPIError(resp)
	}

	var response Response
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if calls := resp.Header.Get("X-Forecast-API-Calls"); calls != "" {
		if n, err := strconv.Atoi(calls); err == nil {
			response.APICalls = n
		}
	}
	response.ResponseTime = resp.Header.Get("X-Response-Time")

	return &response, nil
}

// decodeAPIError reads a non-2xx body into an APIError. A body that is
// not the documented {"code":N,"error":"..."} shape still yields an
// APIError carrying the HTTP status.
func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err == nil && len(body) > 0 {
		_ = json.Unmarshal(body, apiErr)
	}

	return apiErr
}
