package server

import (
	"io"
	"net/http"
)

// respondText writes body verbatim as the plain-text response. The
// formatters already terminate their output with a newline.
func respondText(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	io.WriteString(w, body)
}
