// Package transport is the single choke point between this client and the
// backend proxy. Every caller distinguishes failures purely by the status
// carried on APIError, never by inspecting raw response bodies.
package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/OzgurKaptann/mini-market-dashboard/pkg/config"
)

// APIError is a normalized non-2xx response from the proxy.
type APIError struct {
	Status int
	Detail string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("HTTP %d", e.Status)
}

// Client executes JSON requests against the backend proxy
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a new proxy client
func NewClient(cfg *config.APIConfig) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL: cfg.BaseURL,
	}
}

// Do executes one request. The body, if non-nil, is JSON-encoded. The bearer
// token is attached only when non-empty. On a non-2xx status the returned
// error is an *APIError whose Detail is taken from the body's "detail"
// field when the body parses; a body that does not parse yields an absent
// detail, not an error by itself. Successful bodies are decoded into out
// when out is non-nil; an undecodable success body leaves out untouched.
// No retries, no logging.
func (c *Client) Do(ctx context.Context, method, path string, body, out interface{}, token string) error {
	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{
			Status: resp.StatusCode,
			Detail: extractDetail(raw),
		}
	}

	if out != nil {
		// Best effort: a non-JSON success body reads as absent
		_ = json.Unmarshal(raw, out)
	}

	return nil
}

// Get executes a GET request
func (c *Client) Get(ctx context.Context, path string, out interface{}, token string) error {
	return c.Do(ctx, http.MethodGet, path, nil, out, token)
}

// Post executes a POST request
func (c *Client) Post(ctx context.Context, path string, body, out interface{}, token string) error {
	return c.Do(ctx, http.MethodPost, path, body, out, token)
}

// Health checks the proxy's health endpoint
func (c *Client) Health(ctx context.Context) error {
	return c.Get(ctx, "/health", nil, "")
}

func extractDetail(raw []byte) string {
	var parsed struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return ""
	}
	return parsed.Detail
}
