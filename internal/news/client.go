// Package news is the client for the upstream news API.
package news

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/me/termnews/pkg/model"
)

// DefaultBaseURL is the production news API endpoint.
const DefaultBaseURL = "https://newsapi.org"

// ClientConfig holds upstream API configuration.
type ClientConfig struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// DefaultClientConfig returns configuration pointing at the production
// endpoint. The API key still has to be supplied by the caller.
func DefaultClientConfig() ClientConfig {
	return ClientConfig{
		BaseURL: DefaultBaseURL,
		Timeout: 10 * time.Second,
	}
}

// HeadlinesQuery narrows a top-headlines lookup. Fields are the raw
// strings from the parsed request; empty fields are omitted from the
// upstream call, which validates ranges itself.
type HeadlinesQuery struct {
	Query    string
	Country  string
	Category string
	Page     string
	PageSize string
}

// SourcesQuery narrows a source-index lookup.
type SourcesQuery struct {
	Category string
	Language string
	Country  string
}

// APIError is a structured error answer from the upstream API.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("news api error %s: %s", e.Code, e.Message)
}

// Client calls the news API over HTTP.
type Client struct {
	baseURL string
	apiKey  string
	client  *http.Client
	logger  *slog.Logger
}

// NewClient creates a news API client.
func NewClient(cfg ClientConfig, logger *slog.Logger) *Client {
	return &Client{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		client:  &http.Client{Timeout: cfg.Timeout},
		logger:  logger.With("component", "news"),
	}
}

// Wire types. The upstream nests the outlet under "source" and names
// fields in camelCase; we flatten into pkg/model records.

type wireArticle struct {
	Source struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	} `json:"source"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	URL         string    `json:"url"`
	PublishedAt time.Time `json:"publishedAt"`
}

type wireSource struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	URL         string `json:"url"`
}

type apiResponse struct {
	Status   string        `json:"status"`
	Code     string        `json:"code"`
	Message  string        `json:"message"`
	Articles []wireArticle `json:"articles"`
	Sources  []wireSource  `json:"sources"`
}

// TopHeadlines fetches current headlines matching q.
func (c *Client) TopHeadlines(ctx context.Context, q HeadlinesQuery) ([]model.Article, error) {
	params := url.Values{}
	setNonEmpty(params, "q", q.Query)
	setNonEmpty(params, "country", q.Country)
	setNonEmpty(params, "category", q.Category)
	setNonEmpty(params, "page", q.Page)
	setNonEmpty(params, "pageSize", q.PageSize)

	resp, err := c.get(ctx, "/v2/top-headlines", params)
	if err != nil {
		return nil, err
	}

	articles := make([]model.Article, 0, len(resp.Articles))
	for _, a := range resp.Articles {
		articles = append(articles, model.Article{
			Section:     a.Source.Name,
			Title:       a.Title,
			Description: a.Description,
			URL:         a.URL,
			PublishedAt: a.PublishedAt,
		})
	}
	return articles, nil
}

// Sources fetches the index of queryable outlets matching q.
func (c *Client) Sources(ctx context.Context, q SourcesQuery) ([]model.Source, error) {
	params := url.Values{}
	setNonEmpty(params, "category", q.Category)
	setNonEmpty(params, "language", q.Language)
	setNonEmpty(params, "country", q.Country)

	resp, err := c.get(ctx, "/v2/top-headlines/sources", params)
	if err != nil {
		return nil, err
	}

	sources := make([]model.Source, 0, len(resp.Sources))
	for _, s := range resp.Sources {
		sources = append(sources, model.Source{
			ID:          s.ID,
			Name:        s.Name,
			Description: s.Description,
			URL:         s.URL,
		})
	}
	return sources, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values) (*apiResponse, error) {
	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	if c.apiKey != "" {
		req.Header.Set("X-Api-Key", c.apiKey)
	}

	c.logger.Debug("news api call", "path", path, "params", params.Encode())

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("news api %s: %w", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	var parsed apiResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("news api %s: HTTP %d: %w", path, resp.StatusCode, err)
	}
	if parsed.Status != "ok" {
		return nil, &APIError{Code: parsed.Code, Message: parsed.Message}
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("news api %s: HTTP %d", path, resp.StatusCode)
	}
	return &parsed, nil
}

func setNonEmpty(params url.Values, key, value string) {
	if value != "" {
		params.Set(key, value)
	}
}
