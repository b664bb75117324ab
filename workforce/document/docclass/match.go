package docclass

import (
	"strings"

	"plantel/workforce/employee"
)

const (
	// Name tokens must be longer than 2 characters to qualify; this drops
	// initials and short particles ("de", "la") that would otherwise match
	// almost any filename.
	minQualifyingTokenLen = 3

	// An employee is a candidate only when at least this many of its name
	// tokens appear in the filename. One token is never enough: a shared
	// first name must not misfile a document onto the wrong employee.
	minMatchedTokens = 2
)

// QualifyingTokens normalizes a full name and returns the distinct tokens
// eligible to participate in matching. Duplicates are dropped so a repeated
// name token ("Juan Juan García") counts once toward the threshold.
func QualifyingTokens(fullName string) []string {
	var tokens []string
	seen := make(map[string]struct{})
	for _, t := range strings.Fields(Normalize(fullName)) {
		if len(t) < minQualifyingTokenLen {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		tokens = append(tokens, t)
	}
	return tokens
}

// MatchEmployee finds the roster employee whose name best matches the
// normalized filename text. Match strength is the ratio of matched to
// qualifying name tokens; ties keep the earliest roster entry. Returns nil
// and zero strength when no employee reaches the two-token threshold.
func MatchEmployee(normalizedText string, roster []employee.Employee) (*employee.Employee, float64) {
	var best *employee.Employee
	var bestStrength float64

	for i := range roster {
		tokens := QualifyingTokens(string(roster[i].FullName))
		if len(tokens) < minMatchedTokens {
			// Fewer than two qualifying tokens can never reach the threshold.
			continue
		}

		matched := 0
		for _, t := range tokens {
			if strings.Contains(normalizedText, t) {
				matched++
			}
		}
		if matched < minMatchedTokens {
			continue
		}

		strength := float64(matched) / float64(len(tokens))
		if strength > bestStrength {
			best = &roster[i]
			bestStrength = strength
		}
	}

	return best, bestStrength
}
