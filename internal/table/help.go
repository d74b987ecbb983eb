package table

import (
	"strings"

	"github.com/me/termnews/internal/style"
)

// helpEntries is the static route reference rendered by FormatHelp.
var helpEntries = []struct {
	route string
	usage string
}{
	{"/help", "Show this reference."},
	{"/sources", "List queryable outlets. Narrow with category=<name> or language=<code> query parameters."},
	{"/<query>", "Fetch headlines. The first comma chunk without = is free-text search; + stands for a space."},
	{"n=<count>", "Show at most <count> articles."},
	{"page=<number>", "Page through upstream results."},
	{"category=<name>", "business, entertainment, general, health, science, sports or technology."},
	{"?w=<columns>", "Lay the table out for a terminal <columns> wide (default 72)."},
	{"?i=<index>", "Skip the first <index> articles."},
}

// FormatHelp renders the static usage reference. Same output every
// call; there is no external input.
func FormatHelp() string {
	routeWidth := 0
	for _, e := range helpEntries {
		if len(e.route) > routeWidth {
			routeWidth = len(e.route)
		}
	}
	routeWidth += 2
	usageWidth := DefaultWidth - routeWidth - 3
	widths := []int{routeWidth, usageWidth}

	var b strings.Builder
	b.WriteString(rule(widths))
	b.WriteByte('\n')
	row(&b, []string{style.Bold("Route"), style.Bold("Usage")}, widths, alignCenter)
	b.WriteString(rule(widths))
	b.WriteByte('\n')
	for _, e := range helpEntries {
		row(&b, []string{e.route, wrapText(e.usage, usageWidth-2)}, widths, alignLeft)
		b.WriteString(rule(widths))
		b.WriteByte('\n')
	}

	return b.String()
}
