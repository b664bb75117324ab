package documentapi

import (
	"io"

	"plantel/pkg/iam/auth"
	"plantel/pkg/kernel"
	"plantel/workforce/document"
	"plantel/workforce/document/documentsrv"

	"github.com/gofiber/fiber/v2"
)

type DocumentHandlers struct {
	service *documentsrv.Service
}

func NewDocumentHandlers(service *documentsrv.Service) *DocumentHandlers {
	return &DocumentHandlers{service: service}
}

func (h *DocumentHandlers) RegisterRoutes(app *fiber.App, authMiddleware *auth.TokenMiddleware) {
	documents := app.Group("/api/v1/documents", authMiddleware.Authenticate())

	// Upload & CRUD
	documents.Post("/", authMiddleware.RequireScope(auth.ScopeDocumentsWrite), h.UploadDocument)
	documents.Get("/", authMiddleware.RequireScope(auth.ScopeDocumentsRead), h.ListDocuments)
	documents.Get("/categories", authMiddleware.RequireScope(auth.ScopeDocumentsRead), h.ListCategories)
	documents.Get("/pending-review", authMiddleware.RequireScope(auth.ScopeDocumentsRead), h.ListPendingReview)
	documents.Get("/:id", authMiddleware.RequireScope(auth.ScopeDocumentsRead), h.GetDocument)
	documents.Delete("/:id", authMiddleware.RequireScope(auth.ScopeDocumentsDelete), h.DeleteDocument)

	// Review
	documents.Post("/:id/confirm", authMiddleware.RequireScope(auth.ScopeDocumentsReview), h.ConfirmClassification)
	documents.Post("/:id/review", authMiddleware.RequireScope(auth.ScopeDocumentsReview), h.ReviewClassification)

	// Download
	documents.Get("/:id/download-url", authMiddleware.RequireScope(auth.ScopeDocumentsDownload), h.GetDownloadURL)

	// Reclassification
	documents.Post("/reclassify", authMiddleware.RequireScope(auth.ScopeDocumentsWrite), h.Reclassify)
}

// ============================================================================
// Upload & CRUD Handlers
// ============================================================================

// UploadDocument uploads and classifies a file
// POST /api/v1/documents
func (h *DocumentHandlers) UploadDocument(c *fiber.Ctx) error {
	authCtx, ok := auth.GetAuthContext(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	file, err := c.FormFile("file")
	if err != nil {
		return document.ErrInvalidDocumentData().
			WithDetail("reason", "multipart field 'file' is required")
	}

	uploaded, err := file.Open()
	if err != nil {
		return document.ErrInvalidDocumentData().
			WithDetail("reason", "failed to open uploaded file")
	}
	defer uploaded.Close()

	data, err := io.ReadAll(io.LimitReader(uploaded, documentsrv.MaxFileSizeBytes+1))
	if err != nil {
		return document.ErrInvalidDocumentData().
			WithDetail("reason", "failed to read uploaded file")
	}

	var uploadedBy kernel.UserID
	if authCtx.UserID != nil {
		uploadedBy = *authCtx.UserID
	}

	req := document.UploadDocumentRequest{
		TenantID:    authCtx.TenantID,
		FileName:    file.Filename,
		ContentType: file.Header.Get(fiber.HeaderContentType),
		Data:        data,
		UploadedBy:  uploadedBy,
	}

	resp, err := h.service.UploadDocument(c.Context(), req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

// GetDocument returns a document by ID
// GET /api/v1/documents/:id
func (h *DocumentHandlers) GetDocument(c *fiber.Ctx) error {
	authCtx, ok := auth.GetAuthContext(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	id := kernel.DocumentID(c.Params("id"))
	resp, err := h.service.GetDocument(c.Context(), authCtx.TenantID, id)
	if err != nil {
		return err
	}

	return c.JSON(resp)
}

// ListDocuments lists the tenant's documents
// GET /api/v1/documents?page=1&page_size=20
func (h *DocumentHandlers) ListDocuments(c *fiber.Ctx) error {
	authCtx, ok := auth.GetAuthContext(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	// Employee filter shares the listing endpoint
	if employeeID := c.Query("employee_id"); employeeID != "" {
		resp, err := h.service.ListByEmployee(c.Context(), authCtx.TenantID, kernel.EmployeeID(employeeID), parsePagination(c))
		if err != nil {
			return err
		}
		return c.JSON(resp)
	}

	resp, err := h.service.ListDocuments(c.Context(), authCtx.TenantID, parsePagination(c))
	if err != nil {
		return err
	}

	return c.JSON(resp)
}

// ListPendingReview lists the review queue, oldest first
// GET /api/v1/documents/pending-review
func (h *DocumentHandlers) ListPendingReview(c *fiber.Ctx) error {
	authCtx, ok := auth.GetAuthContext(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	resp, err := h.service.ListPendingReview(c.Context(), authCtx.TenantID, parsePagination(c))
	if err != nil {
		return err
	}

	return c.JSON(resp)
}

// ListCategories returns the classification category configuration
// GET /api/v1/documents/categories
func (h *DocumentHandlers) ListCategories(c *fiber.Ctx) error {
	return c.JSON(h.service.ListCategories())
}

// DeleteDocument removes a document and its stored file
// DELETE /api/v1/documents/:id
func (h *DocumentHandlers) DeleteDocument(c *fiber.Ctx) error {
	authCtx, ok := auth.GetAuthContext(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	id := kernel.DocumentID(c.Params("id"))
	if err := h.service.DeleteDocument(c.Context(), authCtx.TenantID, id); err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// ============================================================================
// Review Handlers
// ============================================================================

// ConfirmClassification marks a pending classification as correct
// POST /api/v1/documents/:id/confirm
func (h *DocumentHandlers) ConfirmClassification(c *fiber.Ctx) error {
	authCtx, ok := auth.GetAuthContext(c)
	if !ok || authCtx.UserID == nil {
		return auth.ErrMissingToken()
	}

	id := kernel.DocumentID(c.Params("id"))
	resp, err := h.service.ConfirmClassification(c.Context(), authCtx.TenantID, id, *authCtx.UserID)
	if err != nil {
		return err
	}

	return c.JSON(resp)
}

// ReviewClassification overrides the employee and/or category of a document
// POST /api/v1/documents/:id/review
func (h *DocumentHandlers) ReviewClassification(c *fiber.Ctx) error {
	authCtx, ok := auth.GetAuthContext(c)
	if !ok || authCtx.UserID == nil {
		return auth.ErrMissingToken()
	}

	var req document.ReviewDecisionRequest
	if err := c.BodyParser(&req); err != nil {
		return document.ErrInvalidReviewDecision().
			WithDetail("reason", "invalid request body")
	}

	id := kernel.DocumentID(c.Params("id"))
	resp, err := h.service.ReviewClassification(c.Context(), authCtx.TenantID, id, *authCtx.UserID, req)
	if err != nil {
		return err
	}

	return c.JSON(resp)
}

// ============================================================================
// Download & Reclassification Handlers
// ============================================================================

// GetDownloadURL returns a time-limited download link
// GET /api/v1/documents/:id/download-url
func (h *DocumentHandlers) GetDownloadURL(c *fiber.Ctx) error {
	authCtx, ok := auth.GetAuthContext(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	id := kernel.DocumentID(c.Params("id"))
	resp, err := h.service.GetDownloadURL(c.Context(), authCtx.TenantID, id)
	if err != nil {
		return err
	}

	return c.JSON(resp)
}

// Reclassify queues a reclassification pass over the tenant's pending documents
// POST /api/v1/documents/reclassify
func (h *DocumentHandlers) Reclassify(c *fiber.Ctx) error {
	authCtx, ok := auth.GetAuthContext(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	resp, err := h.service.Reclassify(c.Context(), authCtx.TenantID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusAccepted).JSON(resp)
}

// parsePagination reads page parameters from the query string
func parsePagination(c *fiber.Ctx) kernel.PaginationOptions {
	return kernel.PaginationOptions{
		Page:     c.QueryInt("page", 1),
		PageSize: c.QueryInt("page_size", 20),
	}.Normalize()
}
