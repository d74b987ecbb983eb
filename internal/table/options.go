package table

import "strconv"

const (
	// DefaultWidth is the table width used when the client supplies no
	// usable w/width option. 72 keeps the classic 80-column terminal
	// comfortable.
	DefaultWidth = 72

	// narrowWidth is the width below which rendering is presumed
	// unreliable and a warning row is appended.
	narrowWidth = 70
)

// positiveInt returns the value of the first of keys in opts that
// parses as a positive integer, else def. Malformed or non-positive
// values silently fall back; bad display options never become errors.
func positiveInt(opts map[string]string, def int, keys ...string) int {
	for _, k := range keys {
		if n, err := strconv.Atoi(opts[k]); err == nil && n > 0 {
			return n
		}
	}
	return def
}

// nonNegativeInt is positiveInt but admitting zero.
func nonNegativeInt(opts map[string]string, def int, keys ...string) int {
	for _, k := range keys {
		if n, err := strconv.Atoi(opts[k]); err == nil && n >= 0 {
			return n
		}
	}
	return def
}

// effectiveWidth resolves the w/width display option.
func effectiveWidth(opts map[string]string) int {
	return positiveInt(opts, DefaultWidth, "w", "width")
}
