// Package server is the HTTP layer of termnews: it turns request paths
// and subdomains into parsed options, drives the upstream news client,
// and answers with rendered plain-text tables.
package server

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/me/termnews/internal/config"
	"github.com/me/termnews/internal/news"
	"github.com/me/termnews/pkg/model"
)

// NewsAPI abstracts the upstream news client for testability.
type NewsAPI interface {
	TopHeadlines(ctx context.Context, q news.HeadlinesQuery) ([]model.Article, error)
	Sources(ctx context.Context, q news.SourcesQuery) ([]model.Source, error)
}

// URLShortener shortens article links; implementations must degrade to
// the original URL instead of failing.
type URLShortener interface {
	Shorten(ctx context.Context, rawURL string) string
}

// Server is the termnews HTTP server.
type Server struct {
	router    chi.Router
	logger    *slog.Logger
	config    config.ServerConfig
	news      NewsAPI
	shortener URLShortener // optional; nil disables shortening
}

// Option configures optional Server dependencies.
type Option func(*Server)

// WithShortener sets the URL shortener used for article links.
func WithShortener(sh URLShortener) Option {
	return func(s *Server) {
		s.shortener = sh
	}
}

// New creates a Server with all routes registered.
func New(cfg config.ServerConfig, api NewsAPI, logger *slog.Logger, opts ...Option) *Server {
	s := &Server{
		router: chi.NewRouter(),
		logger: logger.With("component", "server"),
		config: cfg,
		news:   api,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Handler returns the http.Handler for this server.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) routes() {
	r := s.router

	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(requestIDMiddleware)
	r.Use(loggingMiddleware(s.logger))

	r.Get("/", s.handleHeadlines)
	r.Get("/help", s.handleHelp)
	r.Get("/sources", s.handleSources)
	r.Get("/{args}", s.handleHeadlines)
}
