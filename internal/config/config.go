package config

import "time"

// ServerConfig holds configuration for the termnews server.
type ServerConfig struct {
	Addr           string        // Listen address (default ":8080")
	LogLevel       string        // Log level: debug, info, warn, error
	LogFormat      string        // Log format: text, json
	NewsAPIURL     string        // Upstream news API base URL
	NewsAPIKey     string        // Upstream news API key (or NEWS_API_KEY env)
	ShortenerURL   string        // URL shortener base URL; empty disables shortening
	RequestTimeout time.Duration // Per-request upstream timeout
}

// DefaultServerConfig returns sensible defaults.
func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		Addr:           ":8080",
		LogLevel:       "info",
		LogFormat:      "text",
		NewsAPIURL:     "https://newsapi.org",
		RequestTimeout: 10 * time.Second,
	}
}
