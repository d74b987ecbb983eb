package cli

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// Client fetches rendered tables from a termnews server.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	Logger     *slog.Logger
}

// NewClient creates a termnews client.
func NewClient(baseURL string, logger *slog.Logger) *Client {
	return &Client{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{},
		Logger:     logger,
	}
}

// GetTable performs a GET and returns the plain-text body. Non-200
// answers carry the server's message (argument errors arrive as 400s
// with the parse failure as the body).
func (c *Client) GetTable(path string, query url.Values) (string, error) {
	u := c.BaseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	c.Logger.Debug("HTTP request", "url", u)

	resp, err := c.HTTPClient.Get(u)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	c.Logger.Debug("HTTP response", "status", resp.StatusCode, "bytes", len(body))

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("server: %s", strings.TrimSpace(string(body)))
	}
	return string(body), nil
}

// displayQuery builds the query string shared by every command from
// the persistent flags.
func displayQuery() url.Values {
	q := url.Values{}
	if flagWidth > 0 {
		q.Set("w", strconv.Itoa(flagWidth))
	}
	if flagPlain {
		q.Set("plain", "1")
	}
	return q
}
