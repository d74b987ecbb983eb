package table

import (
	"strings"
	"testing"

	"github.com/me/termnews/internal/style"
	"github.com/me/termnews/pkg/model"
)

func testSources() []model.Source {
	return []model.Source{
		{
			ID:          "abc-news",
			Name:        "ABC News",
			Description: "Your trusted source for breaking news and analysis.",
			URL:         "https://abcnews.go.com",
		},
		{
			ID:          "wired",
			Name:        "Wired",
			Description: "In-depth coverage of current and future trends in technology.",
			URL:         "https://www.wired.com",
		},
	}
}

// lineWidths asserts every rendered line occupies exactly width
// visible columns, the invariant the whole layout engine exists for.
func lineWidths(t *testing.T, rendered string, width int) {
	t.Helper()
	for i, line := range strings.Split(strings.TrimRight(rendered, "\n"), "\n") {
		if got := style.Width(line); got != width {
			t.Errorf("line %d: visible width = %d, want %d: %q", i, got, width, line)
		}
	}
}

func TestFormatSources_Layout(t *testing.T) {
	out := FormatSources(testSources(), nil)

	if !strings.HasSuffix(out, "\n") {
		t.Error("output does not end with a newline")
	}
	lineWidths(t, out, DefaultWidth)

	for _, want := range []string{"abc-news", "wired", "ABC News", "Wired", "https://www.wired.com"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
	if !strings.Contains(out, "Source") || !strings.Contains(out, "Description") {
		t.Error("header labels missing")
	}
}

func TestFormatSources_IDColumnTracksLongestID(t *testing.T) {
	sources := []model.Source{{ID: "an-unusually-long-source-id", Name: "X", Description: "Y", URL: "https://x.example"}}
	out := FormatSources(sources, nil)

	lineWidths(t, out, DefaultWidth)
	if !strings.Contains(out, "an-unusually-long-source-id") {
		t.Error("long ID missing from output")
	}
}

func TestFormatSources_WidthOption(t *testing.T) {
	out := FormatSources(testSources(), map[string]string{"w": "100"})
	lineWidths(t, out, 100)

	// Unusable width values fall back to the default.
	out = FormatSources(testSources(), map[string]string{"w": "broken"})
	lineWidths(t, out, DefaultWidth)
}

func TestFormatSources_NarrowWarning(t *testing.T) {
	narrow := FormatSources(testSources(), map[string]string{"w": "69"})
	if !strings.Contains(narrow, "Warning:") {
		t.Error("width 69: warning row missing")
	}
	lineWidths(t, narrow, 69)

	wide := FormatSources(testSources(), map[string]string{"w": "70"})
	if strings.Contains(wide, "Warning:") {
		t.Error("width 70: unexpected warning row")
	}
}

func TestFormatSources_Empty(t *testing.T) {
	out := FormatSources(nil, nil)
	lineWidths(t, out, DefaultWidth)
	if !strings.Contains(out, "Source") {
		t.Error("header missing for empty source list")
	}
}
