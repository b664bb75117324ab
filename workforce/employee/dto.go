package employee

import (
	"time"

	"plantel/pkg/kernel"
)

// ============================================================================
// Request DTOs
// ============================================================================

// CreateEmployeeRequest - Request to add an employee to the roster
type CreateEmployeeRequest struct {
	FullName  string         `json:"full_name" validate:"required"`
	Email     string         `json:"email" validate:"required,email"`
	Phone     string         `json:"phone,omitempty"`
	NIFType   kernel.NIFType `json:"nif_type" validate:"required,oneof=DNI NIE PASAPORTE"`
	NIFNumber string         `json:"nif_number" validate:"required"`
	Role      EmployeeRole   `json:"role" validate:"required,oneof=EMPLOYEE MANAGER HR_ADMIN"`
}

// UpdateEmployeeRequest - Update employee information
type UpdateEmployeeRequest struct {
	FullName *string       `json:"full_name,omitempty"`
	Email    *string       `json:"email,omitempty"`
	Phone    *string       `json:"phone,omitempty"`
	Role     *EmployeeRole `json:"role,omitempty"`
	NIF      *kernel.NIF   `json:"nif,omitempty"`
}

// ============================================================================
// Response DTOs
// ============================================================================

// EmployeeResponse - Full employee response
type EmployeeResponse struct {
	ID         kernel.EmployeeID `json:"id"`
	TenantID   kernel.TenantID   `json:"tenant_id"`
	FullName   kernel.FullName   `json:"full_name"`
	Email      kernel.Email      `json:"email"`
	Phone      kernel.Phone      `json:"phone,omitempty"`
	NIF        kernel.NIF        `json:"nif"`
	Role       EmployeeRole      `json:"role"`
	Status     EmployeeStatus    `json:"status"`
	ArchivedAt *time.Time        `json:"archived_at,omitempty"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`
}

// ============================================================================
// Mapper Functions
// ============================================================================

// ToEmployeeResponse converts an Employee domain model to EmployeeResponse DTO
func ToEmployeeResponse(e *Employee) *EmployeeResponse {
	return &EmployeeResponse{
		ID:         e.ID,
		TenantID:   e.TenantID,
		FullName:   e.FullName,
		Email:      e.Email,
		Phone:      e.Phone,
		NIF:        e.NIF,
		Role:       e.Role,
		Status:     e.Status,
		ArchivedAt: e.ArchivedAt,
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  e.UpdatedAt,
	}
}
