package employee

import (
	"time"

	"plantel/pkg/kernel"
)

// EmployeeStatus represents the status of an employee
type EmployeeStatus string

const (
	EmployeeStatusActive   EmployeeStatus = "ACTIVE"   // On the active roster
	EmployeeStatusInactive EmployeeStatus = "INACTIVE" // Deactivated (leave, suspension)
	EmployeeStatusArchived EmployeeStatus = "ARCHIVED" // Left the company
)

// EmployeeRole is the workforce role of an employee within a tenant
type EmployeeRole string

const (
	RoleEmployee EmployeeRole = "EMPLOYEE"
	RoleManager  EmployeeRole = "MANAGER"
	RoleHRAdmin  EmployeeRole = "HR_ADMIN"
)

type Employee struct {
	ID         kernel.EmployeeID `db:"id" json:"id"`
	TenantID   kernel.TenantID   `db:"tenant_id" json:"tenant_id"`
	FullName   kernel.FullName   `db:"full_name" json:"full_name"`
	Email      kernel.Email      `db:"email" json:"email"`
	Phone      kernel.Phone      `db:"phone" json:"phone,omitempty"`
	NIF        kernel.NIF        `db:"nif" json:"nif"`
	Role       EmployeeRole      `db:"role" json:"role"`
	Status     EmployeeStatus    `db:"status" json:"status"`
	ArchivedAt *time.Time        `db:"archived_at" json:"archived_at,omitempty"`
	CreatedAt  time.Time         `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time         `db:"updated_at" json:"updated_at"`
}

// ============================================================================
// Domain Methods
// ============================================================================

// IsActive checks if the employee is on the active roster
func (e *Employee) IsActive() bool {
	return e.Status == EmployeeStatusActive
}

// IsArchived checks if the employee is archived
func (e *Employee) IsArchived() bool {
	return e.Status == EmployeeStatusArchived
}

// CanReceiveDocuments checks if documents may be filed against this employee.
// Inactive employees still receive documents (e.g. a final payslip after leave);
// archived ones do not.
func (e *Employee) CanReceiveDocuments() bool {
	return !e.IsArchived()
}

// Archive marks the employee as archived
func (e *Employee) Archive() error {
	if e.IsArchived() {
		return ErrEmployeeAlreadyArchived()
	}

	now := time.Now()
	e.Status = EmployeeStatusArchived
	e.ArchivedAt = &now
	e.UpdatedAt = now
	return nil
}

// Unarchive removes archived status
func (e *Employee) Unarchive() error {
	if !e.IsArchived() {
		return ErrEmployeeNotArchived()
	}

	e.Status = EmployeeStatusActive
	e.ArchivedAt = nil
	e.UpdatedAt = time.Now()
	return nil
}

// Deactivate marks the employee as inactive
func (e *Employee) Deactivate() {
	e.Status = EmployeeStatusInactive
	e.UpdatedAt = time.Now()
}

// Activate marks the employee as active
func (e *Employee) Activate() {
	e.Status = EmployeeStatusActive
	e.UpdatedAt = time.Now()
}

// UpdateContactInfo updates the employee's contact information
func (e *Employee) UpdateContactInfo(email kernel.Email, phone kernel.Phone) {
	if email != "" {
		e.Email = email
	}
	if phone != "" {
		e.Phone = phone
	}
	e.UpdatedAt = time.Now()
}

// Rename updates the employee's full name
func (e *Employee) Rename(fullName kernel.FullName) error {
	if fullName.IsEmpty() {
		return ErrInvalidEmployeeData().WithDetail("full_name", "must not be empty")
	}
	e.FullName = fullName
	e.UpdatedAt = time.Now()
	return nil
}

// UpdateNIF updates the employee's identity document
func (e *Employee) UpdateNIF(nif kernel.NIF) error {
	if !nif.IsValid() {
		return ErrInvalidNIF()
	}
	e.NIF = nif
	e.UpdatedAt = time.Now()
	return nil
}
