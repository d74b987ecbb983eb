// Package args decomposes the raw request argument string and the
// request subdomains into validated query options.
//
// The argument string is whatever follows the route prefix: comma
// separated chunks, each either key=value or (chunk 0 only) free text
// with + standing for a space, e.g. "bitcoin+price,n=5,category=tech".
package args

import "strings"

// recognized is the fixed set of argument keys Parse accepts.
// Display-only options (w, i, n aliases) arrive through the query
// string and are validated by the formatter, not here.
var recognized = map[string]bool{
	"n":        true,
	"page":     true,
	"category": true,
}

// Record is the outcome of parsing one argument string.
//
// Parse never fails; malformed input is reported through Err, which
// holds the FIRST malformed chunk encountered. Parsing continues past
// an error, so later valid chunks still populate Args and a later
// duplicate key overwrites an earlier one.
type Record struct {
	// Query is the free-text search term from chunk 0, with every +
	// replaced by a space. Only meaningful when HasQuery is true.
	Query    string
	HasQuery bool

	// Args maps recognized keys (n, page, category) to their values.
	Args map[string]string

	// Err is the user-facing message for the first malformed chunk,
	// empty when the whole string parsed cleanly.
	Err string
}

// fail records msg unless an earlier chunk already failed.
func (r *Record) fail(msg string) {
	if r.Err == "" {
		r.Err = msg
	}
}

// Parse splits raw on commas and interprets each chunk.
//
// Chunk 0 without an = is the free-text query. Every other chunk (and
// chunk 0 when it contains =) must split on = into exactly two parts
// with a recognized key. An empty raw string degenerates to a single
// empty chunk, yielding an empty query.
func Parse(raw string) Record {
	rec := Record{Args: make(map[string]string)}

	for i, chunk := range strings.Split(raw, ",") {
		if i == 0 && !strings.Contains(chunk, "=") {
			rec.Query = strings.ReplaceAll(chunk, "+", " ")
			rec.HasQuery = true
			continue
		}
		parts := strings.Split(chunk, "=")
		if len(parts) != 2 {
			rec.fail("Unable to parse " + chunk)
			continue
		}
		key, value := parts[0], parts[1]
		if !recognized[key] {
			rec.fail(key + " is not a valid argument")
			continue
		}
		rec.Args[key] = value
	}

	return rec
}
