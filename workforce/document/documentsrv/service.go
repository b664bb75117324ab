package documentsrv

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"plantel/pkg/fsx"
	"plantel/pkg/kernel"
	"plantel/pkg/logx"
	"plantel/workforce/document"
	"plantel/workforce/document/docclass"
	"plantel/workforce/employee"

	"github.com/google/uuid"
)

const (
	// MaxFileSizeBytes caps uploads at 10 MB
	MaxFileSizeBytes = 10 << 20

	// DownloadURLExpiry is how long a presigned download link stays valid
	DownloadURLExpiry = 15 * time.Minute
)

// SupportedExtensions lists the file extensions accepted for upload
var SupportedExtensions = []string{".pdf", ".jpg", ".jpeg", ".png", ".doc", ".docx"}

type Service struct {
	repo         document.Repository
	employeeRepo employee.Repository
	fs           fsx.FileSystem
	queue        document.TaskQueue
}

// NewService creates a new document service
func NewService(
	repo document.Repository,
	employeeRepo employee.Repository,
	fs fsx.FileSystem,
	queue document.TaskQueue,
) *Service {
	return &Service{
		repo:         repo,
		employeeRepo: employeeRepo,
		fs:           fs,
		queue:        queue,
	}
}

// ============================================================================
// Upload & Classify
// ============================================================================

// UploadDocument stores the file, classifies it against the tenant's roster,
// and persists the document with its classification.
func (s *Service) UploadDocument(ctx context.Context, req document.UploadDocumentRequest) (*document.DocumentResponse, error) {
	logx.Infof("Uploading document: TenantID=%s, FileName=%s, Size=%d", req.TenantID, req.FileName, len(req.Data))

	if err := s.validateUpload(req); err != nil {
		return nil, err
	}

	docID := kernel.NewDocumentID(uuid.NewString())
	storagePath := s.fs.Join("tenants", string(req.TenantID), "documents", string(docID)+strings.ToLower(filepath.Ext(req.FileName)))

	// Store file first so a persisted document always has its file behind it
	if err := s.fs.WriteFile(ctx, storagePath, req.Data); err != nil {
		return nil, document.ErrStorageFailed().
			WithDetail("file_name", req.FileName).
			WithDetails(map[string]interface{}{
				"tenant_id": req.TenantID,
				"error":     err.Error(),
			})
	}

	// Classify against the tenant roster
	roster, err := s.employeeRepo.ListRoster(ctx, req.TenantID)
	if err != nil {
		s.cleanupStoredFile(ctx, storagePath)
		return nil, document.ErrRegistry.NewWithCause(document.CodeInvalidDocumentData, err).
			WithDetail("tenant_id", req.TenantID)
	}
	result := docclass.Classify(req.FileName, roster)

	now := time.Now()
	doc := &document.Document{
		ID:          docID,
		TenantID:    req.TenantID,
		FileName:    req.FileName,
		ContentType: req.ContentType,
		SizeBytes:   int64(len(req.Data)),
		StoragePath: kernel.BucketURL(storagePath),
		UploadedBy:  req.UploadedBy,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	doc.ApplyClassification(result)

	if err := s.repo.Create(ctx, doc); err != nil {
		s.cleanupStoredFile(ctx, storagePath)
		return nil, document.ErrRegistry.NewWithCause(document.CodeInvalidDocumentData, err).
			WithDetail("tenant_id", req.TenantID).
			WithDetail("file_name", req.FileName)
	}

	logx.Infof("Document uploaded: DocumentID=%s, Category=%s, Confidence=%s, ReviewStatus=%s",
		doc.ID, doc.Category, doc.Confidence, doc.ReviewStatus)

	return document.ToDocumentResponse(doc), nil
}

// validateUpload checks size and extension limits
func (s *Service) validateUpload(req document.UploadDocumentRequest) error {
	if req.FileName == "" || len(req.Data) == 0 {
		return document.ErrInvalidDocumentData().
			WithDetail("file_name", req.FileName)
	}

	if len(req.Data) > MaxFileSizeBytes {
		return document.ErrFileSizeTooLarge().
			WithDetail("size_bytes", len(req.Data)).
			WithDetail("max_bytes", MaxFileSizeBytes)
	}

	ext := strings.ToLower(filepath.Ext(req.FileName))
	for _, supported := range SupportedExtensions {
		if ext == supported {
			return nil
		}
	}
	return document.ErrUnsupportedFileType().
		WithDetail("extension", ext).
		WithDetail("supported_extensions", SupportedExtensions)
}

// cleanupStoredFile removes an orphaned file after a failed upload
func (s *Service) cleanupStoredFile(ctx context.Context, path string) {
	if err := s.fs.DeleteFile(ctx, path); err != nil {
		logx.Warnf("Failed to clean up stored file %s: %v", path, err)
	}
}

// ============================================================================
// Read Operations
// ============================================================================

// GetDocument retrieves a document by ID, scoped to a tenant
func (s *Service) GetDocument(ctx context.Context, tenantID kernel.TenantID, id kernel.DocumentID) (*document.DocumentResponse, error) {
	doc, err := s.getTenantDocument(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	return document.ToDocumentResponse(doc), nil
}

// ListDocuments lists a tenant's documents with pagination
func (s *Service) ListDocuments(ctx context.Context, tenantID kernel.TenantID, pagination kernel.PaginationOptions) (*kernel.Paginated[document.DocumentResponse], error) {
	paginated, err := s.repo.ListByTenantID(ctx, tenantID, pagination)
	if err != nil {
		return nil, document.ErrRegistry.NewWithCause(document.CodeDocumentNotFound, err).
			WithDetail("tenant_id", tenantID)
	}
	return mapPaginated(paginated), nil
}

// ListPendingReview lists the tenant's review queue, oldest first
func (s *Service) ListPendingReview(ctx context.Context, tenantID kernel.TenantID, pagination kernel.PaginationOptions) (*kernel.Paginated[document.DocumentResponse], error) {
	paginated, err := s.repo.ListPendingReview(ctx, tenantID, pagination)
	if err != nil {
		return nil, document.ErrRegistry.NewWithCause(document.CodeDocumentNotFound, err).
			WithDetail("tenant_id", tenantID)
	}
	return mapPaginated(paginated), nil
}

// ListByEmployee lists documents filed against an employee
func (s *Service) ListByEmployee(ctx context.Context, tenantID kernel.TenantID, employeeID kernel.EmployeeID, pagination kernel.PaginationOptions) (*kernel.Paginated[document.DocumentResponse], error) {
	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if emp.TenantID != tenantID {
		return nil, document.ErrTenantMismatch().
			WithDetail("employee_id", employeeID)
	}

	paginated, err := s.repo.ListByEmployeeID(ctx, employeeID, pagination)
	if err != nil {
		return nil, document.ErrRegistry.NewWithCause(document.CodeDocumentNotFound, err).
			WithDetail("employee_id", employeeID)
	}
	return mapPaginated(paginated), nil
}

// ListCategories returns the configured classification categories
func (s *Service) ListCategories() []document.CategoryResponse {
	return document.ToCategoryResponses()
}

// ============================================================================
// Review Operations
// ============================================================================

// ConfirmClassification marks a pending classification as reviewed and correct
func (s *Service) ConfirmClassification(ctx context.Context, tenantID kernel.TenantID, id kernel.DocumentID, reviewer kernel.UserID) (*document.DocumentResponse, error) {
	doc, err := s.getTenantDocument(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	if err := doc.Confirm(reviewer); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, id, doc); err != nil {
		return nil, err
	}

	logx.Infof("Classification confirmed: DocumentID=%s, Reviewer=%s", id, reviewer)
	return document.ToDocumentResponse(doc), nil
}

// ReviewClassification overrides a classification with the reviewer's decision
func (s *Service) ReviewClassification(ctx context.Context, tenantID kernel.TenantID, id kernel.DocumentID, reviewer kernel.UserID, req document.ReviewDecisionRequest) (*document.DocumentResponse, error) {
	doc, err := s.getTenantDocument(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	// The target employee must exist in this tenant and accept documents
	if req.EmployeeID != nil {
		emp, err := s.employeeRepo.GetByID(ctx, *req.EmployeeID)
		if err != nil {
			return nil, err
		}
		if emp.TenantID != tenantID {
			return nil, document.ErrTenantMismatch().
				WithDetail("employee_id", *req.EmployeeID)
		}
		if !emp.CanReceiveDocuments() {
			return nil, document.ErrInvalidReviewDecision().
				WithDetail("employee_id", *req.EmployeeID).
				WithDetail("reason", "employee is archived")
		}
	}

	if err := doc.Reassign(reviewer, req.EmployeeID, req.Category); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, id, doc); err != nil {
		return nil, err
	}

	logx.Infof("Classification reassigned: DocumentID=%s, Reviewer=%s", id, reviewer)
	return document.ToDocumentResponse(doc), nil
}

// ============================================================================
// Download & Delete
// ============================================================================

// GetDownloadURL returns a time-limited link to the stored file
func (s *Service) GetDownloadURL(ctx context.Context, tenantID kernel.TenantID, id kernel.DocumentID) (*document.DownloadURLResponse, error) {
	doc, err := s.getTenantDocument(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	exists, err := s.fs.Exists(ctx, string(doc.StoragePath))
	if err != nil {
		return nil, document.ErrRegistry.NewWithCause(document.CodeStorageFailed, err).
			WithDetail("document_id", id)
	}
	if !exists {
		return nil, document.ErrFileNotFound().
			WithDetail("document_id", id)
	}

	url, err := s.fs.PresignedURL(ctx, string(doc.StoragePath), DownloadURLExpiry)
	if err != nil {
		return nil, document.ErrRegistry.NewWithCause(document.CodeStorageFailed, err).
			WithDetail("document_id", id)
	}

	return &document.DownloadURLResponse{
		DocumentID: id,
		URL:        url,
		ExpiresAt:  time.Now().Add(DownloadURLExpiry),
	}, nil
}

// DeleteDocument removes a document and its stored file
func (s *Service) DeleteDocument(ctx context.Context, tenantID kernel.TenantID, id kernel.DocumentID) error {
	doc, err := s.getTenantDocument(ctx, tenantID, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	// Best effort: the record is gone, an orphaned file is only a storage leak
	if err := s.fs.DeleteFile(ctx, string(doc.StoragePath)); err != nil {
		logx.Warnf("Failed to delete stored file for document %s: %v", id, err)
	}

	logx.Infof("Document deleted: DocumentID=%s, TenantID=%s", id, tenantID)
	return nil
}

// ============================================================================
// Private Helper Methods
// ============================================================================

// getTenantDocument loads a document and verifies tenant ownership
func (s *Service) getTenantDocument(ctx context.Context, tenantID kernel.TenantID, id kernel.DocumentID) (*document.Document, error) {
	doc, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if doc.TenantID != tenantID {
		return nil, document.ErrTenantMismatch().
			WithDetail("document_id", id).
			WithDetail("document_tenant_id", doc.TenantID).
			WithDetail("requested_tenant_id", tenantID)
	}

	return doc, nil
}

// mapPaginated converts a page of documents to response DTOs
func mapPaginated(paginated *kernel.Paginated[document.Document]) *kernel.Paginated[document.DocumentResponse] {
	items := make([]document.DocumentResponse, len(paginated.Items))
	for i := range paginated.Items {
		items[i] = *document.ToDocumentResponse(&paginated.Items[i])
	}
	return &kernel.Paginated[document.DocumentResponse]{
		Items: items,
		Page:  paginated.Page,
		Empty: len(items) == 0,
	}
}
