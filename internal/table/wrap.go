package table

import (
	"regexp"
	"strings"
)

var newlineRuns = regexp.MustCompile(`[\r\n]+`)

// wrapText greedily wraps text so that no line reaches maxLineLength.
//
// CR/LF runs collapse to single spaces before the text is split on
// spaces. Every appended word counts with its trailing separator
// space, and a word joins the current line only while that count stays
// strictly below maxLineLength; otherwise it starts the next line.
// Trailing spaces are normalized away afterwards, but they decide the
// wrap points, so a rendered line tops out one short of the limit. A
// single word of maxLineLength or more is never broken mid-word, it
// just occupies its own (overlong) line.
func wrapText(text string, maxLineLength int) string {
	if maxLineLength < 1 {
		maxLineLength = 1
	}
	words := strings.Split(newlineRuns.ReplaceAllString(text, " "), " ")

	var lines []string
	var line []string
	lineLen := 0
	for _, word := range words {
		if len(line) > 0 && lineLen+len(word) >= maxLineLength {
			lines = append(lines, strings.Join(line, " "))
			line, lineLen = nil, 0
		}
		line = append(line, word)
		lineLen += len(word) + 1
	}
	lines = append(lines, strings.Join(line, " "))

	return strings.Join(lines, "\n")
}
