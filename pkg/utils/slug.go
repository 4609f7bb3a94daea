package utils

import (
	"strings"
	"unicode"
)

// Slugify derives a URL-safe identifier from a title: lowercase ASCII
// letters and digits, runs of anything else collapsed to single dashes.
// The same title always yields the same slug.
func Slugify(title string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(title) {
		switch {
		case r >= 'a' && r <= 'z', unicode.IsDigit(r):
			b.WriteRune(r)
			dash = false
		default:
			if !dash && b.Len() > 0 {
				b.WriteByte('-')
				dash = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}
