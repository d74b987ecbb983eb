package cli

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestGetTable(t *testing.T) {
	const table = "+---+\n| x |\n+---+\n"
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/sources" {
			t.Errorf("path = %q, want /sources", r.URL.Path)
		}
		if r.URL.Query().Get("w") != "80" {
			t.Errorf("w = %q, want 80", r.URL.Query().Get("w"))
		}
		w.Write([]byte(table))
	}))
	defer ts.Close()

	c := NewClient(ts.URL, testLogger())
	q := url.Values{}
	q.Set("w", "80")
	body, err := c.GetTable("/sources", q)
	if err != nil {
		t.Fatalf("GetTable: %v", err)
	}
	if body != table {
		t.Errorf("body = %q, want %q", body, table)
	}
}

func TestGetTable_ServerError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte("bogus is not a valid argument\n"))
	}))
	defer ts.Close()

	c := NewClient(ts.URL, testLogger())
	_, err := c.GetTable("/query,bogus=1", nil)
	if err == nil {
		t.Fatal("expected error for 400 response")
	}
	if !strings.Contains(err.Error(), "bogus is not a valid argument") {
		t.Errorf("error %q does not carry the server message", err)
	}
}
