package document

import (
	"time"

	"plantel/pkg/kernel"
	"plantel/workforce/document/docclass"
)

// ============================================================================
// Request DTOs
// ============================================================================

// UploadDocumentRequest - Request assembled by the API layer from a multipart upload
type UploadDocumentRequest struct {
	TenantID    kernel.TenantID `json:"tenant_id" validate:"required"`
	FileName    string          `json:"file_name" validate:"required"`
	ContentType string          `json:"content_type"`
	Data        []byte          `json:"-"`
	UploadedBy  kernel.UserID   `json:"uploaded_by" validate:"required"`
}

// ReviewDecisionRequest - Reviewer override of a classification. Nil fields
// keep the classifier's value; at least one must be set.
type ReviewDecisionRequest struct {
	EmployeeID *kernel.EmployeeID `json:"employee_id,omitempty"`
	Category   *string            `json:"category,omitempty"`
}

// ============================================================================
// Response DTOs
// ============================================================================

// ClassificationResponse - The classification persisted with a document
type ClassificationResponse struct {
	EmployeeID          *kernel.EmployeeID  `json:"employee_id,omitempty"`
	Category            string              `json:"category"`
	CategoryDisplayName string              `json:"category_display_name"`
	Confidence          docclass.Confidence `json:"confidence"`
	MatchStrength       float64             `json:"match_strength"`
	NeedsReview         bool                `json:"needs_review"`
}

// DocumentResponse - Full document response
type DocumentResponse struct {
	ID             kernel.DocumentID      `json:"id"`
	TenantID       kernel.TenantID        `json:"tenant_id"`
	FileName       string                 `json:"file_name"`
	ContentType    string                 `json:"content_type"`
	SizeBytes      int64                  `json:"size_bytes"`
	Classification ClassificationResponse `json:"classification"`
	ReviewStatus   ReviewStatus           `json:"review_status"`
	ReviewedBy     *kernel.UserID         `json:"reviewed_by,omitempty"`
	ReviewedAt     *time.Time             `json:"reviewed_at,omitempty"`
	UploadedBy     kernel.UserID          `json:"uploaded_by"`
	CreatedAt      time.Time              `json:"created_at"`
	UpdatedAt      time.Time              `json:"updated_at"`
}

// DownloadURLResponse - Time-limited download link for a stored file
type DownloadURLResponse struct {
	DocumentID kernel.DocumentID `json:"document_id"`
	URL        string            `json:"url"`
	ExpiresAt  time.Time         `json:"expires_at"`
}

// CategoryResponse - One entry of the category configuration
type CategoryResponse struct {
	ID          string   `json:"id"`
	DisplayName string   `json:"display_name"`
	Keywords    []string `json:"keywords"`
	Fallback    bool     `json:"fallback"`
}

// ReclassifyResponse - Acknowledgement of a queued reclassification pass
type ReclassifyResponse struct {
	TaskID   kernel.TaskID   `json:"task_id"`
	TenantID kernel.TenantID `json:"tenant_id"`
	Message  string          `json:"message"`
}

// ============================================================================
// Mapper Functions
// ============================================================================

// ToDocumentResponse converts a Document domain model to DocumentResponse DTO
func ToDocumentResponse(d *Document) *DocumentResponse {
	displayName := d.Category
	if c, ok := docclass.CategoryByID(d.Category); ok {
		displayName = c.DisplayName
	}

	return &DocumentResponse{
		ID:          d.ID,
		TenantID:    d.TenantID,
		FileName:    d.FileName,
		ContentType: d.ContentType,
		SizeBytes:   d.SizeBytes,
		Classification: ClassificationResponse{
			EmployeeID:          d.EmployeeID,
			Category:            d.Category,
			CategoryDisplayName: displayName,
			Confidence:          d.Confidence,
			MatchStrength:       d.MatchStrength,
			NeedsReview:         d.NeedsReview(),
		},
		ReviewStatus: d.ReviewStatus,
		ReviewedBy:   d.ReviewedBy,
		ReviewedAt:   d.ReviewedAt,
		UploadedBy:   d.UploadedBy,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

// ToCategoryResponses converts the configured category table to DTOs
func ToCategoryResponses() []CategoryResponse {
	out := make([]CategoryResponse, 0, len(docclass.Categories))
	for _, c := range docclass.Categories {
		out = append(out, CategoryResponse{
			ID:          c.ID,
			DisplayName: c.DisplayName,
			Keywords:    c.Keywords,
			Fallback:    c.ID == docclass.FallbackCategoryID,
		})
	}
	return out
}
