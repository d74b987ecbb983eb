package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/me/termnews/internal/args"
	"github.com/me/termnews/internal/news"
	"github.com/me/termnews/internal/style"
	"github.com/me/termnews/internal/table"
)

func (s *Server) handleHelp(w http.ResponseWriter, r *http.Request) {
	respondText(w, http.StatusOK, finish(r, table.FormatHelp()))
}

func (s *Server) handleSources(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	sources, err := s.news.Sources(r.Context(), news.SourcesQuery{
		Category: query.Get("category"),
		Language: query.Get("language"),
		Country:  query.Get("country"),
	})
	if err != nil {
		s.logger.Error("sources lookup failed", "error", err,
			"request_id", RequestIDFromContext(r.Context()))
		respondText(w, http.StatusBadGateway, "Could not reach the news API, try again later.\n")
		return
	}

	respondText(w, http.StatusOK, finish(r, table.FormatSources(sources, displayOptions(r))))
}

func (s *Server) handleHeadlines(w http.ResponseWriter, r *http.Request) {
	rec := args.Parse(chi.URLParam(r, "args"))
	if rec.Err != "" {
		respondText(w, http.StatusBadRequest, rec.Err+"\n")
		return
	}

	q := news.HeadlinesQuery{
		Category: rec.Args["category"],
		Page:     rec.Args["page"],
		PageSize: rec.Args["n"],
	}
	if rec.HasQuery {
		q.Query = rec.Query
	}
	if country, ok := args.ParseSubdomain(subdomains(r.Host)); ok {
		q.Country = country
	}

	articles, err := s.news.TopHeadlines(r.Context(), q)
	if err != nil {
		s.logger.Error("headlines lookup failed", "error", err,
			"request_id", RequestIDFromContext(r.Context()))
		respondText(w, http.StatusBadGateway, "Could not reach the news API, try again later.\n")
		return
	}

	if s.shortener != nil {
		for i := range articles {
			articles[i].URL = s.shortener.Shorten(r.Context(), articles[i].URL)
		}
	}

	opts := displayOptions(r)
	if n, ok := rec.Args["n"]; ok {
		opts["n"] = n
	}

	respondText(w, http.StatusOK, finish(r, table.FormatArticles(articles, opts)))
}

// displayOptions flattens the query string into the formatter's option
// map, first value wins.
func displayOptions(r *http.Request) map[string]string {
	opts := make(map[string]string)
	for key, values := range r.URL.Query() {
		if len(values) > 0 {
			opts[key] = values[0]
		}
	}
	return opts
}

// finish strips ANSI styling when the client asked for plain output.
// Padding is computed on visible widths, so stripping after layout
// cannot shift columns.
func finish(r *http.Request, rendered string) string {
	switch r.URL.Query().Get("plain") {
	case "1", "true", "yes":
		return style.Strip(rendered)
	}
	return rendered
}
