package docclass

import "plantel/workforce/employee"

// Confidence is the trust tier attached to a classification. The review
// workflow branches on it: high results are auto-accepted, everything else
// goes to a human.
type Confidence string

const (
	ConfidenceLow    Confidence = "low"
	ConfidenceMedium Confidence = "medium"
	ConfidenceHigh   Confidence = "high"
)

// Result is the outcome of classifying one filename against a roster.
type Result struct {
	// Employee points at the matched roster entry, nil when no employee
	// reached the match threshold.
	Employee *employee.Employee

	// DocumentCategory is a category id from the configured table,
	// FallbackCategoryID when no keyword matched.
	DocumentCategory string

	// Confidence tier derived from the two stages above.
	Confidence Confidence

	// MatchStrength is the employee matcher's token ratio, zero without a
	// match. Informational; callers branch on Confidence, not on this.
	MatchStrength float64
}

// Classify runs the full pipeline over a raw filename: normalize, pick a
// category, match an employee, assemble the confidence tier.
//
//	employee matched + non-fallback category -> high
//	employee matched + fallback category     -> medium
//	no employee matched                      -> low
func Classify(fileName string, roster []employee.Employee) Result {
	normalized := Normalize(fileName)

	categoryID := ClassifyCategory(normalized, Categories)
	matched, strength := MatchEmployee(normalized, roster)

	confidence := ConfidenceLow
	if matched != nil {
		if categoryID != FallbackCategoryID {
			confidence = ConfidenceHigh
		} else {
			confidence = ConfidenceMedium
		}
	}

	return Result{
		Employee:         matched,
		DocumentCategory: categoryID,
		Confidence:       confidence,
		MatchStrength:    strength,
	}
}
