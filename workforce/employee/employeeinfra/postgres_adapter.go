package employeeinfra

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"plantel/pkg/kernel"
	"plantel/workforce/employee"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// PostgresEmployeeRepository implements employee.Repository using PostgreSQL
type PostgresEmployeeRepository struct {
	db *sqlx.DB
}

// NewPostgresEmployeeRepository creates a new PostgreSQL employee repository
func NewPostgresEmployeeRepository(db *sqlx.DB) employee.Repository {
	return &PostgresEmployeeRepository{db: db}
}

// ============================================================================
// Database Model
// ============================================================================

type employeeModel struct {
	ID         string     `db:"id"`
	TenantID   string     `db:"tenant_id"`
	FullName   string     `db:"full_name"`
	Email      string     `db:"email"`
	Phone      string     `db:"phone"`
	NIFType    string     `db:"nif_type"`
	NIFNumber  string     `db:"nif_number"`
	Role       string     `db:"role"`
	Status     string     `db:"status"`
	ArchivedAt *time.Time `db:"archived_at"`
	CreatedAt  time.Time  `db:"created_at"`
	UpdatedAt  time.Time  `db:"updated_at"`
}

// toEntity converts database model to domain entity
func (m *employeeModel) toEntity() *employee.Employee {
	return &employee.Employee{
		ID:       kernel.EmployeeID(m.ID),
		TenantID: kernel.TenantID(m.TenantID),
		FullName: kernel.FullName(m.FullName),
		Email:    kernel.Email(m.Email),
		Phone:    kernel.Phone(m.Phone),
		NIF: kernel.NIF{
			Type:   kernel.NIFType(m.NIFType),
			Number: m.NIFNumber,
		},
		Role:       employee.EmployeeRole(m.Role),
		Status:     employee.EmployeeStatus(m.Status),
		ArchivedAt: m.ArchivedAt,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

// fromEntity converts domain entity to database model
func fromEntity(e *employee.Employee) *employeeModel {
	return &employeeModel{
		ID:         string(e.ID),
		TenantID:   string(e.TenantID),
		FullName:   string(e.FullName),
		Email:      string(e.Email),
		Phone:      string(e.Phone),
		NIFType:    string(e.NIF.Type),
		NIFNumber:  e.NIF.Number,
		Role:       string(e.Role),
		Status:     string(e.Status),
		ArchivedAt: e.ArchivedAt,
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  e.UpdatedAt,
	}
}

// ============================================================================
// Repository Implementation
// ============================================================================

// Create creates a new employee
func (r *PostgresEmployeeRepository) Create(ctx context.Context, e *employee.Employee) error {
	model := fromEntity(e)

	query := `
		INSERT INTO employees (
			id, tenant_id, full_name, email, phone, nif_type, nif_number,
			role, status, archived_at, created_at, updated_at
		) VALUES (
			:id, :tenant_id, :full_name, :email, :phone, :nif_type, :nif_number,
			:role, :status, :archived_at, :created_at, :updated_at
		)
	`

	_, err := r.db.NamedExecContext(ctx, query, model)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			if pqErr.Code == "23505" { // unique_violation
				return employee.ErrEmployeeAlreadyExists().WithDetail("email", string(e.Email))
			}
		}
		return fmt.Errorf("failed to create employee: %w", err)
	}

	return nil
}

// Update updates an existing employee
func (r *PostgresEmployeeRepository) Update(ctx context.Context, id kernel.EmployeeID, e *employee.Employee) error {
	model := fromEntity(e)
	model.ID = string(id)

	query := `
		UPDATE employees SET
			full_name = :full_name,
			email = :email,
			phone = :phone,
			nif_type = :nif_type,
			nif_number = :nif_number,
			role = :role,
			status = :status,
			archived_at = :archived_at,
			updated_at = :updated_at
		WHERE id = :id
	`

	result, err := r.db.NamedExecContext(ctx, query, model)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			if pqErr.Code == "23505" { // unique_violation
				return employee.ErrEmployeeAlreadyExists().WithDetail("email", string(e.Email))
			}
		}
		return fmt.Errorf("failed to update employee: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if rows == 0 {
		return employee.ErrEmployeeNotFound()
	}

	return nil
}

// GetByID retrieves an employee by ID
func (r *PostgresEmployeeRepository) GetByID(ctx context.Context, id kernel.EmployeeID) (*employee.Employee, error) {
	var model employeeModel
	query := `SELECT * FROM employees WHERE id = $1`

	if err := r.db.GetContext(ctx, &model, query, string(id)); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, employee.ErrEmployeeNotFound()
		}
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}

	return model.toEntity(), nil
}

// GetByEmail retrieves an employee by email within a tenant
func (r *PostgresEmployeeRepository) GetByEmail(ctx context.Context, tenantID kernel.TenantID, email kernel.Email) (*employee.Employee, error) {
	var model employeeModel
	query := `SELECT * FROM employees WHERE tenant_id = $1 AND email = $2`

	if err := r.db.GetContext(ctx, &model, query, string(tenantID), string(email)); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, employee.ErrEmployeeNotFound()
		}
		return nil, fmt.Errorf("failed to get employee by email: %w", err)
	}

	return model.toEntity(), nil
}

// ListByTenantID retrieves employees for a tenant with pagination
func (r *PostgresEmployeeRepository) ListByTenantID(ctx context.Context, tenantID kernel.TenantID, pagination kernel.PaginationOptions) (*kernel.Paginated[employee.Employee], error) {
	pagination = pagination.Normalize()

	var total int
	countQuery := `SELECT COUNT(*) FROM employees WHERE tenant_id = $1`
	if err := r.db.GetContext(ctx, &total, countQuery, string(tenantID)); err != nil {
		return nil, fmt.Errorf("failed to count employees: %w", err)
	}

	var models []employeeModel
	query := `
		SELECT * FROM employees
		WHERE tenant_id = $1
		ORDER BY created_at ASC
		LIMIT $2 OFFSET $3
	`
	if err := r.db.SelectContext(ctx, &models, query, string(tenantID), pagination.PageSize, pagination.Offset()); err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	employees := make([]employee.Employee, len(models))
	for i := range models {
		employees[i] = *models[i].toEntity()
	}

	paginated := kernel.NewPaginated(employees, pagination.Page, pagination.PageSize, total)
	return &paginated, nil
}

// ListRoster retrieves every non-archived employee of a tenant in roster order.
// Roster order is insertion order, which the matcher relies on to break ties.
func (r *PostgresEmployeeRepository) ListRoster(ctx context.Context, tenantID kernel.TenantID) ([]employee.Employee, error) {
	var models []employeeModel
	query := `
		SELECT * FROM employees
		WHERE tenant_id = $1 AND status != 'ARCHIVED'
		ORDER BY created_at ASC, id ASC
	`

	if err := r.db.SelectContext(ctx, &models, query, string(tenantID)); err != nil {
		return nil, fmt.Errorf("failed to list roster: %w", err)
	}

	employees := make([]employee.Employee, len(models))
	for i := range models {
		employees[i] = *models[i].toEntity()
	}
	return employees, nil
}

// Exists checks if an employee exists by ID
func (r *PostgresEmployeeRepository) Exists(ctx context.Context, id kernel.EmployeeID) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM employees WHERE id = $1)`

	if err := r.db.GetContext(ctx, &exists, query, string(id)); err != nil {
		return false, fmt.Errorf("failed to check employee existence: %w", err)
	}

	return exists, nil
}

// CountByTenantID counts employees for a tenant
func (r *PostgresEmployeeRepository) CountByTenantID(ctx context.Context, tenantID kernel.TenantID) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM employees WHERE tenant_id = $1`

	if err := r.db.GetContext(ctx, &count, query, string(tenantID)); err != nil {
		return 0, fmt.Errorf("failed to count employees: %w", err)
	}

	return count, nil
}

// Archive archives an employee
func (r *PostgresEmployeeRepository) Archive(ctx context.Context, id kernel.EmployeeID) error {
	query := `
		UPDATE employees
		SET status = 'ARCHIVED', archived_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND status != 'ARCHIVED'
	`

	result, err := r.db.ExecContext(ctx, query, string(id))
	if err != nil {
		return fmt.Errorf("failed to archive employee: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check archive result: %w", err)
	}
	if rows == 0 {
		return employee.ErrEmployeeNotFound()
	}

	return nil
}

// Unarchive removes archived status from an employee
func (r *PostgresEmployeeRepository) Unarchive(ctx context.Context, id kernel.EmployeeID) error {
	query := `
		UPDATE employees
		SET status = 'ACTIVE', archived_at = NULL, updated_at = NOW()
		WHERE id = $1 AND status = 'ARCHIVED'
	`

	result, err := r.db.ExecContext(ctx, query, string(id))
	if err != nil {
		return fmt.Errorf("failed to unarchive employee: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check unarchive result: %w", err)
	}
	if rows == 0 {
		return employee.ErrEmployeeNotFound()
	}

	return nil
}

// Delete deletes an employee by ID
func (r *PostgresEmployeeRepository) Delete(ctx context.Context, id kernel.EmployeeID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM employees WHERE id = $1`, string(id))
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			if pqErr.Code == "23503" { // foreign_key_violation
				return employee.ErrInvalidEmployeeData().WithDetail("cause", "employee still has documents filed")
			}
		}
		return fmt.Errorf("failed to delete employee: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if rows == 0 {
		return employee.ErrEmployeeNotFound()
	}

	return nil
}
