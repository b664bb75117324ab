package document

import (
	"time"

	"plantel/pkg/kernel"
	"plantel/workforce/document/docclass"
)

// ReviewStatus tracks the human-review lifecycle of a classified document.
type ReviewStatus string

const (
	ReviewStatusAutoAccepted  ReviewStatus = "AUTO_ACCEPTED"  // High confidence, filed without review
	ReviewStatusPendingReview ReviewStatus = "PENDING_REVIEW" // Awaiting human confirmation
	ReviewStatusConfirmed     ReviewStatus = "CONFIRMED"      // Reviewer confirmed the classification
	ReviewStatusReassigned    ReviewStatus = "REASSIGNED"     // Reviewer overrode employee and/or category
)

type Document struct {
	ID       kernel.DocumentID `db:"id" json:"id"`
	TenantID kernel.TenantID   `db:"tenant_id" json:"tenant_id"`

	// EmployeeID is the employee the document was filed against; nil when the
	// classifier found no match and no reviewer assigned one yet.
	EmployeeID *kernel.EmployeeID `db:"employee_id" json:"employee_id,omitempty"`

	// File metadata
	FileName    string           `db:"file_name" json:"file_name"`
	ContentType string           `db:"content_type" json:"content_type"`
	SizeBytes   int64            `db:"size_bytes" json:"size_bytes"`
	StoragePath kernel.BucketURL `db:"storage_path" json:"storage_path"`

	// Classification output persisted alongside the file
	Category      string             `db:"category" json:"category"`
	Confidence    docclass.Confidence `db:"confidence" json:"confidence"`
	MatchStrength float64            `db:"match_strength" json:"match_strength"`

	// Review lifecycle
	ReviewStatus ReviewStatus   `db:"review_status" json:"review_status"`
	ReviewedBy   *kernel.UserID `db:"reviewed_by" json:"reviewed_by,omitempty"`
	ReviewedAt   *time.Time     `db:"reviewed_at" json:"reviewed_at,omitempty"`

	UploadedBy kernel.UserID `db:"uploaded_by" json:"uploaded_by"`
	CreatedAt  time.Time     `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time     `db:"updated_at" json:"updated_at"`
}

// ============================================================================
// Domain Methods
// ============================================================================

// NeedsReview checks if the document still awaits human confirmation
func (d *Document) NeedsReview() bool {
	return d.ReviewStatus == ReviewStatusPendingReview
}

// IsReviewed checks if a human already acted on the classification
func (d *Document) IsReviewed() bool {
	return d.ReviewStatus == ReviewStatusConfirmed || d.ReviewStatus == ReviewStatusReassigned
}

// HasEmployee checks if the document is filed against an employee
func (d *Document) HasEmployee() bool {
	return d.EmployeeID != nil
}

// ApplyClassification records a classifier result on the document. High
// confidence auto-accepts; anything lower goes to the review queue. Reviewed
// documents are left untouched: a human decision always beats the classifier.
func (d *Document) ApplyClassification(result docclass.Result) {
	if d.IsReviewed() {
		return
	}

	d.Category = result.DocumentCategory
	d.Confidence = result.Confidence
	d.MatchStrength = result.MatchStrength
	if result.Employee != nil {
		id := result.Employee.ID
		d.EmployeeID = &id
	} else {
		d.EmployeeID = nil
	}

	if result.Confidence == docclass.ConfidenceHigh {
		d.ReviewStatus = ReviewStatusAutoAccepted
	} else {
		d.ReviewStatus = ReviewStatusPendingReview
	}
	d.UpdatedAt = time.Now()
}

// Confirm marks the current classification as reviewed and correct
func (d *Document) Confirm(reviewer kernel.UserID) error {
	if d.IsReviewed() {
		return ErrDocumentAlreadyReviewed()
	}

	now := time.Now()
	d.ReviewStatus = ReviewStatusConfirmed
	d.ReviewedBy = &reviewer
	d.ReviewedAt = &now
	d.UpdatedAt = now
	return nil
}

// Reassign overrides the classification with a reviewer's decision. Either
// field may be nil to keep the classifier's value.
func (d *Document) Reassign(reviewer kernel.UserID, employeeID *kernel.EmployeeID, category *string) error {
	if d.IsReviewed() {
		return ErrDocumentAlreadyReviewed()
	}
	if employeeID == nil && category == nil {
		return ErrInvalidReviewDecision()
	}

	if employeeID != nil {
		d.EmployeeID = employeeID
	}
	if category != nil {
		if _, ok := docclass.CategoryByID(*category); !ok {
			return ErrUnknownCategory().WithDetail("category", *category)
		}
		d.Category = *category
	}

	now := time.Now()
	d.ReviewStatus = ReviewStatusReassigned
	d.ReviewedBy = &reviewer
	d.ReviewedAt = &now
	d.UpdatedAt = now
	return nil
}
