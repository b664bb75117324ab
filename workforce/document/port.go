package document

import (
	"context"
	"time"

	"plantel/pkg/kernel"
)

type Repository interface {
	// Create creates a new document
	Create(ctx context.Context, document *Document) error

	// Update updates an existing document
	Update(ctx context.Context, id kernel.DocumentID, document *Document) error

	// GetByID retrieves a document by ID
	GetByID(ctx context.Context, id kernel.DocumentID) (*Document, error)

	// Delete deletes a document by ID
	Delete(ctx context.Context, id kernel.DocumentID) error

	// ListByTenantID retrieves documents for a tenant with pagination
	ListByTenantID(ctx context.Context, tenantID kernel.TenantID, pagination kernel.PaginationOptions) (*kernel.Paginated[Document], error)

	// ListByEmployeeID retrieves documents filed against an employee
	ListByEmployeeID(ctx context.Context, employeeID kernel.EmployeeID, pagination kernel.PaginationOptions) (*kernel.Paginated[Document], error)

	// ListPendingReview retrieves documents awaiting human review
	ListPendingReview(ctx context.Context, tenantID kernel.TenantID, pagination kernel.PaginationOptions) (*kernel.Paginated[Document], error)

	// ListReclassifiable retrieves every document of a tenant that a roster
	// change could improve: pending review or without an employee.
	ListReclassifiable(ctx context.Context, tenantID kernel.TenantID) ([]Document, error)

	// CountByTenantID counts documents for a tenant
	CountByTenantID(ctx context.Context, tenantID kernel.TenantID) (int64, error)

	// CountPendingReview counts documents awaiting review for a tenant
	CountPendingReview(ctx context.Context, tenantID kernel.TenantID) (int64, error)
}

// TaskQueue defines the interface for reclassification task queue operations
type TaskQueue interface {
	// Enqueue adds a task to the queue
	Enqueue(ctx context.Context, taskID kernel.TaskID, payload any) error

	// Dequeue gets a task from the queue (blocking with timeout)
	Dequeue(ctx context.Context, timeout time.Duration) ([]byte, error)

	// EnqueueDelayed schedules a task for later processing (for retries)
	EnqueueDelayed(ctx context.Context, taskID kernel.TaskID, payload any, delay time.Duration) error

	// MoveDelayedToReady moves delayed tasks that are ready to the main queue
	MoveDelayedToReady(ctx context.Context) (int, error)

	// Size returns the number of tasks in the queue
	Size(ctx context.Context) (int64, error)

	// DelayedSize returns the number of delayed tasks
	DelayedSize(ctx context.Context) (int64, error)

	// Clear removes all tasks from the queue (use with caution)
	Clear(ctx context.Context) error
}

// Reclassifier lets other contexts request a reclassification pass for a
// tenant without depending on the document service implementation.
type Reclassifier interface {
	RequestReclassification(ctx context.Context, tenantID kernel.TenantID) error
}
