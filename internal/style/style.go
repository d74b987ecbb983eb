// Package style decorates already-laid-out text with ANSI attributes.
//
// Layout code must stay blind to styling, so decorators are applied
// after wrapping and all width arithmetic goes through Width, which
// counts visible characters only. Strip undoes every decoration,
// letting callers serve plain output without re-running layout.
package style

import "regexp"

const (
	bold      = "\x1b[1m"
	dim       = "\x1b[2m"
	underline = "\x1b[4m"
	reset     = "\x1b[0m"
)

var ansiSeq = regexp.MustCompile("\x1b\\[[0-9;]*m")

// Bold renders s with the bold attribute.
func Bold(s string) string {
	if s == "" {
		return s
	}
	return bold + s + reset
}

// Dim renders s with the faint attribute.
func Dim(s string) string {
	if s == "" {
		return s
	}
	return dim + s + reset
}

// Underline renders s underlined. Used for URLs so they stand out as
// links in a terminal.
func Underline(s string) string {
	if s == "" {
		return s
	}
	return underline + s + reset
}

// Strip removes every ANSI SGR sequence from s.
func Strip(s string) string {
	return ansiSeq.ReplaceAllString(s, "")
}

// Width reports the number of visible characters in s, ignoring ANSI
// sequences.
func Width(s string) int {
	return len(Strip(s))
}
