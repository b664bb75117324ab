// Package docclass infers which employee an uploaded document belongs to and
// what kind of document it is, from the filename alone. It is pure string
// computation: no I/O, no state between calls, safe for concurrent use.
package docclass

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize canonicalizes a raw filename into a comparison-safe token space:
// Unicode lowercasing, accent stripping (e.g. "José" -> "jose"), every
// non-alphanumeric character collapsed to a single space, trimmed ends.
// The output contains only lowercase ASCII letters, digits and single spaces.
// Idempotent; empty input yields an empty string.
func Normalize(text string) string {
	lowered := strings.ToLower(text)

	stripped, _, err := transform.String(stripMarks, lowered)
	if err != nil {
		// transform only fails on malformed UTF-8; fall back to the
		// lowered input and let the ASCII filter below drop the rest.
		stripped = lowered
	}

	var b strings.Builder
	b.Grow(len(stripped))
	for _, r := range stripped {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		} else {
			b.WriteByte(' ')
		}
	}

	return strings.Join(strings.Fields(b.String()), " ")
}
