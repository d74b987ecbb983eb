// Package shortener talks to an optional URL-shortening service so
// article links stay readable in narrow tables.
package shortener

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// Request asks the shortener for a compact alias of URL.
type Request struct {
	URL string `json:"url"`
}

// Response carries the shortened result.
type Response struct {
	Result string `json:"result"`
}

// Client calls the shortening service.
type Client struct {
	baseURL string
	client  *http.Client
	logger  *slog.Logger
}

// NewClient creates a shortener client for the service at baseURL.
func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
		logger:  logger.With("component", "shortener"),
	}
}

// Shorten returns a compact alias for rawURL. Shortening is cosmetic:
// any failure is logged and the original URL comes back unchanged so
// rendering is never blocked on this service.
func (c *Client) Shorten(ctx context.Context, rawURL string) string {
	short, err := c.shorten(ctx, rawURL)
	if err != nil {
		c.logger.Debug("shorten failed, keeping original", "url", rawURL, "error", err)
		return rawURL
	}
	return short
}

func (c *Client) shorten(ctx context.Context, rawURL string) (string, error) {
	body, err := json.Marshal(Request{URL: rawURL})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/shorten", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("shorten: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return "", fmt.Errorf("shorten: HTTP %d", resp.StatusCode)
	}

	var parsed Response
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", fmt.Errorf("parse response: %w", err)
	}
	if parsed.Result == "" {
		return "", fmt.Errorf("shorten: empty result")
	}
	return parsed.Result, nil
}
