package table

import (
	"strings"

	"github.com/me/termnews/internal/style"
)

// Low-level table plumbing shared by the format functions.
//
// A table is a stack of rows separated by rule lines. Every cell may
// hold multiple lines of pre-wrapped text; shorter cells in a row are
// padded with blank lines. Widths are inner cell widths: a row renders
// as "|" + cell + "|" + cell + "|", so the total display width is the
// sum of the cell widths plus one border per cell plus one.

type alignment int

const (
	alignLeft alignment = iota
	alignCenter
)

// rule renders the horizontal line between rows, e.g. +----+------+.
func rule(widths []int) string {
	var b strings.Builder
	b.WriteByte('+')
	for _, w := range widths {
		if w < 0 {
			w = 0
		}
		b.WriteString(strings.Repeat("-", w))
		b.WriteByte('+')
	}
	return b.String()
}

// fitLeft pads line to width w with a one-space left margin. Padding
// counts visible characters so styled text lines up with plain text.
func fitLeft(line string, w int) string {
	pad := w - style.Width(line) - 1
	if pad < 0 {
		pad = 0
	}
	return " " + line + strings.Repeat(" ", pad)
}

// fitCenter centers line within width w, again on visible width.
func fitCenter(line string, w int) string {
	gap := w - style.Width(line)
	if gap < 0 {
		gap = 0
	}
	left := gap / 2
	return strings.Repeat(" ", left) + line + strings.Repeat(" ", gap-left)
}

// row renders one band of cells. Each cell's text is split on newlines;
// the band is as tall as its tallest cell. The rendered band ends in a
// newline.
func row(b *strings.Builder, cells []string, widths []int, align alignment) {
	split := make([][]string, len(cells))
	height := 1
	for i, c := range cells {
		split[i] = strings.Split(c, "\n")
		if len(split[i]) > height {
			height = len(split[i])
		}
	}

	for line := 0; line < height; line++ {
		b.WriteByte('|')
		for i := range cells {
			var text string
			if line < len(split[i]) {
				text = split[i][line]
			}
			if align == alignCenter {
				b.WriteString(fitCenter(text, widths[i]))
			} else {
				b.WriteString(fitLeft(text, widths[i]))
			}
			b.WriteByte('|')
		}
		b.WriteByte('\n')
	}
}

// warningRow appends the narrow-terminal warning as a full-width cell.
func warningRow(b *strings.Builder, width int) {
	const warning = "Warning: terminal width below 70 columns may garble the " +
		"table. Set w=<columns> to match your terminal width."
	row(b, []string{wrapText(warning, width-4)}, []int{width - 2}, alignLeft)
	b.WriteString(rule([]int{width - 2}))
	b.WriteByte('\n')
}
