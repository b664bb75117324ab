package docclass

import (
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// Property: Normalize is idempotent — normalizing already-normalized text is
// a no-op for any input string.
func TestNormalizeIdempotenceProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 500

	properties := gopter.NewProperties(parameters)

	properties.Property("normalize(normalize(s)) == normalize(s)", prop.ForAll(
		func(s string) bool {
			once := Normalize(s)
			return Normalize(once) == once
		},
		gen.AnyString(),
	))

	properties.TestingRun(t)
}

// Property: the output alphabet is exactly lowercase ASCII letters, digits
// and single interior spaces, with no leading or trailing whitespace.
func TestNormalizeOutputAlphabetProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 500

	properties := gopter.NewProperties(parameters)

	properties.Property("output contains only [a-z0-9] and single spaces", prop.ForAll(
		func(s string) bool {
			out := Normalize(s)
			if out != strings.TrimSpace(out) {
				return false
			}
			if strings.Contains(out, "  ") {
				return false
			}
			for _, r := range out {
				valid := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == ' '
				if !valid {
					return false
				}
			}
			return true
		},
		gen.AnyString(),
	))

	properties.TestingRun(t)
}
