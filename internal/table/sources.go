// Package table lays out news records as fixed-width bordered tables
// for display in a text terminal.
//
// All format functions are pure: column widths derive from the caller's
// display options (falling back to DefaultWidth), cell text is wrapped
// by wrapText, and the rendered table comes back as one string with a
// trailing newline. Display options never fail; unusable values fall
// back to defaults, and the only signal for a questionable layout is
// the warning row on widths below 70.
package table

import (
	"strings"

	"github.com/me/termnews/internal/style"
	"github.com/me/termnews/pkg/model"
)

const sourceIDLabel = "Source"

// FormatSources renders the queryable source index as a two-column
// table: the source ID on the left, its name, description, and URL on
// the right.
func FormatSources(sources []model.Source, opts map[string]string) string {
	width := effectiveWidth(opts)

	idWidth := len(sourceIDLabel)
	for _, s := range sources {
		if len(s.ID) > idWidth {
			idWidth = len(s.ID)
		}
	}
	idWidth += 2
	descWidth := width - idWidth - 3
	widths := []int{idWidth, descWidth}

	var b strings.Builder
	b.WriteString(rule(widths))
	b.WriteByte('\n')
	row(&b, []string{style.Bold(sourceIDLabel), style.Bold("Description")}, widths, alignCenter)
	b.WriteString(rule(widths))
	b.WriteByte('\n')

	for _, s := range sources {
		desc := strings.Join([]string{
			wrapText(s.Name, descWidth-2),
			wrapText(s.Description, descWidth-2),
			style.Underline(s.URL),
		}, "\n")
		row(&b, []string{s.ID, desc}, widths, alignLeft)
		b.WriteString(rule(widths))
		b.WriteByte('\n')
	}

	if width < narrowWidth {
		warningRow(&b, width)
	}

	return b.String()
}
