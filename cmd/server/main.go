package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/me/termnews/internal/config"
	"github.com/me/termnews/internal/logging"
	"github.com/me/termnews/internal/news"
	"github.com/me/termnews/internal/server"
	"github.com/me/termnews/internal/shortener"
)

func main() {
	cfg := config.DefaultServerConfig()

	flag.StringVar(&cfg.Addr, "addr", cfg.Addr, "Listen address")
	flag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	flag.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log format (text, json)")
	flag.StringVar(&cfg.NewsAPIURL, "news-api-url", cfg.NewsAPIURL, "News API base URL")
	flag.StringVar(&cfg.NewsAPIKey, "news-api-key", cfg.NewsAPIKey, "News API key (or NEWS_API_KEY env)")
	flag.StringVar(&cfg.ShortenerURL, "shortener-url", cfg.ShortenerURL, "URL shortener base URL (empty disables shortening)")
	flag.DurationVar(&cfg.RequestTimeout, "request-timeout", cfg.RequestTimeout, "Upstream request timeout")
	debug := flag.Bool("debug", false, "Shorthand for --log-level=debug")
	flag.Parse()

	if *debug {
		cfg.LogLevel = "debug"
	}
	if cfg.NewsAPIKey == "" {
		cfg.NewsAPIKey = os.Getenv("NEWS_API_KEY")
	}

	logger := logging.New(logging.Config{
		Level:  logging.ParseLevel(cfg.LogLevel),
		Format: cfg.LogFormat,
	})

	if cfg.NewsAPIKey == "" {
		fmt.Fprintln(os.Stderr, "news API key required: use -news-api-key or NEWS_API_KEY")
		os.Exit(1)
	}

	newsClient := news.NewClient(news.ClientConfig{
		BaseURL: cfg.NewsAPIURL,
		APIKey:  cfg.NewsAPIKey,
		Timeout: cfg.RequestTimeout,
	}, logger)

	var serverOpts []server.Option
	if cfg.ShortenerURL != "" {
		serverOpts = append(serverOpts,
			server.WithShortener(shortener.NewClient(cfg.ShortenerURL, cfg.RequestTimeout, logger)))
		logger.Info("url shortening enabled", "url", cfg.ShortenerURL)
	}

	srv := server.New(cfg, newsClient, logger, serverOpts...)

	httpServer := &http.Server{
		Addr:    cfg.Addr,
		Handler: srv.Handler(),
	}

	// Graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("server starting", "addr", cfg.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		fmt.Fprintf(os.Stderr, "shutdown error: %v\n", err)
		os.Exit(1)
	}
	logger.Info("server stopped")
}
