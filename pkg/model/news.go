// Package model holds the domain records exchanged between the news
// client, the formatters, and the HTTP layer.
package model

import "time"

// Article is one headline as reported by the upstream news API.
// URLs are assumed valid (and already shortened when a shortener is
// configured) by the time an Article reaches the formatter.
type Article struct {
	Section     string    `json:"section"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	URL         string    `json:"url"`
	PublishedAt time.Time `json:"published_at"`
}

// Source is one queryable outlet from the upstream source index.
type Source struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	URL         string `json:"url"`
}
