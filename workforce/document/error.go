package document

import (
	"net/http"

	"plantel/pkg/errx"
)

var ErrRegistry = errx.NewRegistry("DOCUMENT")

// Error codes - Document Operations
var (
	CodeDocumentNotFound        = ErrRegistry.Register("NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Document not found")
	CodeInvalidDocumentData     = ErrRegistry.Register("INVALID_DATA", errx.TypeValidation, http.StatusBadRequest, "Invalid document data")
	CodeFileSizeTooLarge        = ErrRegistry.Register("FILE_TOO_LARGE", errx.TypeValidation, http.StatusBadRequest, "File exceeds the maximum allowed size")
	CodeUnsupportedFileType     = ErrRegistry.Register("UNSUPPORTED_FILE_TYPE", errx.TypeValidation, http.StatusBadRequest, "Unsupported file type")
	CodeStorageFailed           = ErrRegistry.Register("STORAGE_FAILED", errx.TypeExternal, http.StatusBadGateway, "Failed to store file")
	CodeFileNotFound            = ErrRegistry.Register("FILE_NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Stored file not found")
	CodeTenantMismatch          = ErrRegistry.Register("TENANT_MISMATCH", errx.TypeAuthorization, http.StatusForbidden, "Document does not belong to this tenant")
	CodeInsufficientPermissions = ErrRegistry.Register("INSUFFICIENT_PERMISSIONS", errx.TypeAuthorization, http.StatusForbidden, "Insufficient permissions")
)

// Error codes - Review Operations
var (
	CodeDocumentAlreadyReviewed = ErrRegistry.Register("ALREADY_REVIEWED", errx.TypeBusiness, http.StatusUnprocessableEntity, "Document classification has already been reviewed")
	CodeInvalidReviewDecision   = ErrRegistry.Register("INVALID_REVIEW_DECISION", errx.TypeValidation, http.StatusBadRequest, "Review decision must change the employee or the category")
	CodeUnknownCategory         = ErrRegistry.Register("UNKNOWN_CATEGORY", errx.TypeValidation, http.StatusBadRequest, "Unknown document category")
)

// Error codes - Queue Operations
var (
	CodeTaskNotFound         = ErrRegistry.Register("TASK_NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Reclassification task not found")
	CodeQueueEnqueueFailed   = ErrRegistry.Register("QUEUE_ENQUEUE_FAILED", errx.TypeInternal, http.StatusInternalServerError, "Failed to enqueue task")
	CodeQueueDequeueFailed   = ErrRegistry.Register("QUEUE_DEQUEUE_FAILED", errx.TypeInternal, http.StatusInternalServerError, "Failed to dequeue task")
	CodeTaskMaxRetriesReached = ErrRegistry.Register("TASK_MAX_RETRIES", errx.TypeInternal, http.StatusInternalServerError, "Task exceeded maximum retry attempts")
)

// Helper functions - Document Operations
func ErrDocumentNotFound() *errx.Error {
	return ErrRegistry.New(CodeDocumentNotFound)
}

func ErrInvalidDocumentData() *errx.Error {
	return ErrRegistry.New(CodeInvalidDocumentData)
}

func ErrFileSizeTooLarge() *errx.Error {
	return ErrRegistry.New(CodeFileSizeTooLarge)
}

func ErrUnsupportedFileType() *errx.Error {
	return ErrRegistry.New(CodeUnsupportedFileType)
}

func ErrStorageFailed() *errx.Error {
	return ErrRegistry.New(CodeStorageFailed)
}

func ErrFileNotFound() *errx.Error {
	return ErrRegistry.New(CodeFileNotFound)
}

func ErrTenantMismatch() *errx.Error {
	return ErrRegistry.New(CodeTenantMismatch)
}

func ErrInsufficientPermissions() *errx.Error {
	return ErrRegistry.New(CodeInsufficientPermissions)
}

// Helper functions - Review Operations
func ErrDocumentAlreadyReviewed() *errx.Error {
	return ErrRegistry.New(CodeDocumentAlreadyReviewed)
}

func ErrInvalidReviewDecision() *errx.Error {
	return ErrRegistry.New(CodeInvalidReviewDecision)
}

func ErrUnknownCategory() *errx.Error {
	return ErrRegistry.New(CodeUnknownCategory)
}

// Helper functions - Queue Operations
func ErrTaskNotFound() *errx.Error {
	return ErrRegistry.New(CodeTaskNotFound)
}

func ErrQueueEnqueueFailed() *errx.Error {
	return ErrRegistry.New(CodeQueueEnqueueFailed)
}

func ErrQueueDequeueFailed() *errx.Error {
	return ErrRegistry.New(CodeQueueDequeueFailed)
}

func ErrTaskMaxRetriesReached() *errx.Error {
	return ErrRegistry.New(CodeTaskMaxRetriesReached)
}
