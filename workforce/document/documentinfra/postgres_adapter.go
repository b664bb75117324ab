package documentinfra

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"plantel/pkg/kernel"
	"plantel/workforce/document"
	"plantel/workforce/document/docclass"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// PostgresDocumentRepository implements document.Repository using PostgreSQL
type PostgresDocumentRepository struct {
	db *sqlx.DB
}

// NewPostgresDocumentRepository creates a new PostgreSQL document repository
func NewPostgresDocumentRepository(db *sqlx.DB) document.Repository {
	return &PostgresDocumentRepository{db: db}
}

// ============================================================================
// Database Model
// ============================================================================

type documentModel struct {
	ID            string          `db:"id"`
	TenantID      string          `db:"tenant_id"`
	EmployeeID    sql.NullString  `db:"employee_id"`
	FileName      string          `db:"file_name"`
	ContentType   string          `db:"content_type"`
	SizeBytes     int64           `db:"size_bytes"`
	StoragePath   string          `db:"storage_path"`
	Category      string          `db:"category"`
	Confidence    string          `db:"confidence"`
	MatchStrength float64         `db:"match_strength"`
	ReviewStatus  string          `db:"review_status"`
	ReviewedBy    sql.NullString  `db:"reviewed_by"`
	ReviewedAt    *time.Time      `db:"reviewed_at"`
	UploadedBy    string          `db:"uploaded_by"`
	CreatedAt     time.Time       `db:"created_at"`
	UpdatedAt     time.Time       `db:"updated_at"`
}

// toEntity converts database model to domain entity
func (m *documentModel) toEntity() *document.Document {
	d := &document.Document{
		ID:            kernel.DocumentID(m.ID),
		TenantID:      kernel.TenantID(m.TenantID),
		FileName:      m.FileName,
		ContentType:   m.ContentType,
		SizeBytes:     m.SizeBytes,
		StoragePath:   kernel.BucketURL(m.StoragePath),
		Category:      m.Category,
		Confidence:    docclass.Confidence(m.Confidence),
		MatchStrength: m.MatchStrength,
		ReviewStatus:  document.ReviewStatus(m.ReviewStatus),
		ReviewedAt:    m.ReviewedAt,
		UploadedBy:    kernel.UserID(m.UploadedBy),
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
	if m.EmployeeID.Valid {
		id := kernel.EmployeeID(m.EmployeeID.String)
		d.EmployeeID = &id
	}
	if m.ReviewedBy.Valid {
		id := kernel.UserID(m.ReviewedBy.String)
		d.ReviewedBy = &id
	}
	return d
}

// fromEntity converts domain entity to database model
func fromEntity(d *document.Document) *documentModel {
	m := &documentModel{
		ID:            string(d.ID),
		TenantID:      string(d.TenantID),
		FileName:      d.FileName,
		ContentType:   d.ContentType,
		SizeBytes:     d.SizeBytes,
		StoragePath:   string(d.StoragePath),
		Category:      d.Category,
		Confidence:    string(d.Confidence),
		MatchStrength: d.MatchStrength,
		ReviewStatus:  string(d.ReviewStatus),
		ReviewedAt:    d.ReviewedAt,
		UploadedBy:    string(d.UploadedBy),
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
	if d.EmployeeID != nil {
		m.EmployeeID = sql.NullString{String: string(*d.EmployeeID), Valid: true}
	}
	if d.ReviewedBy != nil {
		m.ReviewedBy = sql.NullString{String: string(*d.ReviewedBy), Valid: true}
	}
	return m
}

// ============================================================================
// Repository Implementation
// ============================================================================

// Create creates a new document
func (r *PostgresDocumentRepository) Create(ctx context.Context, d *document.Document) error {
	model := fromEntity(d)

	query := `
		INSERT INTO documents (
			id, tenant_id, employee_id, file_name, content_type, size_bytes,
			storage_path, category, confidence, match_strength,
			review_status, reviewed_by, reviewed_at, uploaded_by,
			created_at, updated_at
		) VALUES (
			:id, :tenant_id, :employee_id, :file_name, :content_type, :size_bytes,
			:storage_path, :category, :confidence, :match_strength,
			:review_status, :reviewed_by, :reviewed_at, :uploaded_by,
			:created_at, :updated_at
		)
	`

	_, err := r.db.NamedExecContext(ctx, query, model)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			if pqErr.Code == "23503" { // foreign_key_violation
				return document.ErrInvalidDocumentData().WithDetail("cause", "unknown employee or tenant reference")
			}
		}
		return fmt.Errorf("failed to create document: %w", err)
	}

	return nil
}

// Update updates an existing document
func (r *PostgresDocumentRepository) Update(ctx context.Context, id kernel.DocumentID, d *document.Document) error {
	model := fromEntity(d)
	model.ID = string(id)

	query := `
		UPDATE documents SET
			employee_id = :employee_id,
			category = :category,
			confidence = :confidence,
			match_strength = :match_strength,
			review_status = :review_status,
			reviewed_by = :reviewed_by,
			reviewed_at = :reviewed_at,
			updated_at = :updated_at
		WHERE id = :id
	`

	result, err := r.db.NamedExecContext(ctx, query, model)
	if err != nil {
		return fmt.Errorf("failed to update document: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if rows == 0 {
		return document.ErrDocumentNotFound()
	}

	return nil
}

// GetByID retrieves a document by ID
func (r *PostgresDocumentRepository) GetByID(ctx context.Context, id kernel.DocumentID) (*document.Document, error) {
	var model documentModel
	query := `SELECT * FROM documents WHERE id = $1`

	if err := r.db.GetContext(ctx, &model, query, string(id)); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, document.ErrDocumentNotFound()
		}
		return nil, fmt.Errorf("failed to get document: %w", err)
	}

	return model.toEntity(), nil
}

// Delete deletes a document by ID
func (r *PostgresDocumentRepository) Delete(ctx context.Context, id kernel.DocumentID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM documents WHERE id = $1`, string(id))
	if err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if rows == 0 {
		return document.ErrDocumentNotFound()
	}

	return nil
}

// ListByTenantID retrieves documents for a tenant with pagination
func (r *PostgresDocumentRepository) ListByTenantID(ctx context.Context, tenantID kernel.TenantID, pagination kernel.PaginationOptions) (*kernel.Paginated[document.Document], error) {
	return r.list(ctx, pagination,
		`SELECT * FROM documents WHERE tenant_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`,
		`SELECT COUNT(*) FROM documents WHERE tenant_id = $1`,
		string(tenantID))
}

// ListByEmployeeID retrieves documents filed against an employee
func (r *PostgresDocumentRepository) ListByEmployeeID(ctx context.Context, employeeID kernel.EmployeeID, pagination kernel.PaginationOptions) (*kernel.Paginated[document.Document], error) {
	return r.list(ctx, pagination,
		`SELECT * FROM documents WHERE employee_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`,
		`SELECT COUNT(*) FROM documents WHERE employee_id = $1`,
		string(employeeID))
}

// ListPendingReview retrieves documents awaiting human review
func (r *PostgresDocumentRepository) ListPendingReview(ctx context.Context, tenantID kernel.TenantID, pagination kernel.PaginationOptions) (*kernel.Paginated[document.Document], error) {
	return r.list(ctx, pagination,
		`SELECT * FROM documents WHERE tenant_id = $1 AND review_status = 'PENDING_REVIEW' ORDER BY created_at ASC LIMIT $2 OFFSET $3`,
		`SELECT COUNT(*) FROM documents WHERE tenant_id = $1 AND review_status = 'PENDING_REVIEW'`,
		string(tenantID))
}

// ListReclassifiable retrieves documents a roster change could improve
func (r *PostgresDocumentRepository) ListReclassifiable(ctx context.Context, tenantID kernel.TenantID) ([]document.Document, error) {
	var models []documentModel
	query := `
		SELECT * FROM documents
		WHERE tenant_id = $1
		  AND (review_status = 'PENDING_REVIEW' OR employee_id IS NULL)
		ORDER BY created_at ASC
	`

	if err := r.db.SelectContext(ctx, &models, query, string(tenantID)); err != nil {
		return nil, fmt.Errorf("failed to list reclassifiable documents: %w", err)
	}

	docs := make([]document.Document, len(models))
	for i := range models {
		docs[i] = *models[i].toEntity()
	}
	return docs, nil
}

// CountByTenantID counts documents for a tenant
func (r *PostgresDocumentRepository) CountByTenantID(ctx context.Context, tenantID kernel.TenantID) (int64, error) {
	var count int64
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM documents WHERE tenant_id = $1`, string(tenantID)); err != nil {
		return 0, fmt.Errorf("failed to count documents: %w", err)
	}
	return count, nil
}

// CountPendingReview counts documents awaiting review for a tenant
func (r *PostgresDocumentRepository) CountPendingReview(ctx context.Context, tenantID kernel.TenantID) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM documents WHERE tenant_id = $1 AND review_status = 'PENDING_REVIEW'`
	if err := r.db.GetContext(ctx, &count, query, string(tenantID)); err != nil {
		return 0, fmt.Errorf("failed to count pending documents: %w", err)
	}
	return count, nil
}

func (r *PostgresDocumentRepository) list(ctx context.Context, pagination kernel.PaginationOptions, listQuery, countQuery, arg string) (*kernel.Paginated[document.Document], error) {
	pagination = pagination.Normalize()

	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, arg); err != nil {
		return nil, fmt.Errorf("failed to count documents: %w", err)
	}

	var models []documentModel
	if err := r.db.SelectContext(ctx, &models, listQuery, arg, pagination.PageSize, pagination.Offset()); err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}

	docs := make([]document.Document, len(models))
	for i := range models {
		docs[i] = *models[i].toEntity()
	}

	paginated := kernel.NewPaginated(docs, pagination.Page, pagination.PageSize, total)
	return &paginated, nil
}
