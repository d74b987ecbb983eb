package table

import (
	"strings"
	"testing"
)

func TestWrapText(t *testing.T) {
	tests := []struct {
		name string
		text string
		max  int
		want string
	}{
		{
			name: "greedy packing",
			text: "the quick brown fox",
			max:  10,
			want: "the quick\nbrown fox",
		},
		{
			name: "fits on one line",
			text: "abcd efgh",
			max:  10,
			want: "abcd efgh",
		},
		{
			// "abcde " occupies 6 columns with its separator, and
			// 6+4 reaches the limit, so the word wraps even though
			// the visible line would have fit exactly.
			name: "separator space counts toward the limit",
			text: "abcde efgh",
			max:  10,
			want: "abcde\nefgh",
		},
		{
			name: "overlong word is not split",
			text: "a extraordinarily b",
			max:  10,
			want: "a\nextraordinarily\nb",
		},
		{
			name: "newline runs collapse to spaces",
			text: "foo\r\nbar\n\nbaz",
			max:  40,
			want: "foo bar baz",
		},
		{
			name: "empty input",
			text: "",
			max:  10,
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := wrapText(tt.text, tt.max); got != tt.want {
				t.Errorf("wrapText(%q, %d) = %q, want %q", tt.text, tt.max, got, tt.want)
			}
		})
	}
}

func TestWrapText_Deterministic(t *testing.T) {
	const text = "one two three four five six seven eight nine ten"
	first := wrapText(text, 12)
	for i := 0; i < 5; i++ {
		if got := wrapText(text, 12); got != first {
			t.Fatalf("wrapText run %d = %q, differs from first run %q", i, got, first)
		}
	}
}

func TestWrapText_PreservesWords(t *testing.T) {
	// Unwrapping and collapsing whitespace must reproduce the
	// normalized word sequence: wrapping never splits or drops words.
	texts := []string{
		"a b c d e f g",
		"some considerably longer words interleaved with tiny ones a b c",
		"line\r\nbreaks\nin the\r\n\r\ninput",
	}
	for _, text := range texts {
		wrapped := wrapText(text, 14)
		got := strings.Join(strings.Fields(wrapped), " ")
		want := strings.Join(strings.Fields(newlineRuns.ReplaceAllString(text, " ")), " ")
		if got != want {
			t.Errorf("word sequence changed:\n got %q\nwant %q", got, want)
		}
		for _, line := range strings.Split(wrapped, "\n") {
			for _, word := range strings.Fields(line) {
				if !strings.Contains(text, word) {
					t.Errorf("line %q contains fragment %q not present in input", line, word)
				}
			}
		}
	}
}
