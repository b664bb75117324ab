package employee

import (
	"context"

	"plantel/pkg/kernel"
)

type Repository interface {
	// Create creates a new employee
	Create(ctx context.Context, employee *Employee) error

	// Update updates an existing employee
	Update(ctx context.Context, id kernel.EmployeeID, employee *Employee) error

	// GetByID retrieves an employee by ID
	GetByID(ctx context.Context, id kernel.EmployeeID) (*Employee, error)

	// GetByEmail retrieves an employee by email within a tenant
	GetByEmail(ctx context.Context, tenantID kernel.TenantID, email kernel.Email) (*Employee, error)

	// ListByTenantID retrieves employees for a tenant with pagination
	ListByTenantID(ctx context.Context, tenantID kernel.TenantID, pagination kernel.PaginationOptions) (*kernel.Paginated[Employee], error)

	// ListRoster retrieves every non-archived employee of a tenant, roster order.
	// This is the candidate set fed to the document classifier.
	ListRoster(ctx context.Context, tenantID kernel.TenantID) ([]Employee, error)

	// Exists checks if an employee exists by ID
	Exists(ctx context.Context, id kernel.EmployeeID) (bool, error)

	// CountByTenantID counts employees for a tenant
	CountByTenantID(ctx context.Context, tenantID kernel.TenantID) (int64, error)

	// Archive archives an employee
	Archive(ctx context.Context, id kernel.EmployeeID) error

	// Unarchive unarchives an employee
	Unarchive(ctx context.Context, id kernel.EmployeeID) error

	// Delete deletes an employee by ID
	Delete(ctx context.Context, id kernel.EmployeeID) error
}
