package employeesrv

import (
	"context"
	"strings"
	"time"

	"plantel/pkg/errx"
	"plantel/pkg/kernel"
	"plantel/pkg/logx"
	"plantel/workforce/document"
	"plantel/workforce/employee"

	"github.com/google/uuid"
)

type Service struct {
	repo         employee.Repository
	reclassifier document.Reclassifier
}

// NewService creates a new employee service. The reclassifier may be nil when
// running without the document pipeline (tests, maintenance tooling).
func NewService(repo employee.Repository, reclassifier document.Reclassifier) *Service {
	return &Service{
		repo:         repo,
		reclassifier: reclassifier,
	}
}

// ============================================================================
// CRUD Operations
// ============================================================================

// CreateEmployee adds an employee to the tenant roster
func (s *Service) CreateEmployee(ctx context.Context, tenantID kernel.TenantID, req employee.CreateEmployeeRequest) (*employee.EmployeeResponse, error) {
	fullName := strings.TrimSpace(req.FullName)
	if fullName == "" {
		return nil, employee.ErrInvalidEmployeeData().
			WithDetail("full_name", "must not be empty")
	}

	nif := kernel.NIF{Type: req.NIFType, Number: strings.ToUpper(strings.TrimSpace(req.NIFNumber))}
	if !nif.IsValid() {
		return nil, employee.ErrInvalidNIF().
			WithDetail("nif_type", nif.Type).
			WithDetail("nif_number", nif.Number)
	}

	// Reject duplicate email within the tenant
	existing, err := s.repo.GetByEmail(ctx, tenantID, kernel.Email(req.Email))
	switch {
	case err == nil && existing != nil:
		return nil, employee.ErrEmployeeAlreadyExists().
			WithDetail("email", req.Email)
	case err != nil && !errx.HasCode(err, employee.CodeEmployeeNotFound):
		// Repository failures must not be mistaken for "no duplicate"
		return nil, err
	}

	now := time.Now()
	emp := &employee.Employee{
		ID:        kernel.NewEmployeeID(uuid.NewString()),
		TenantID:  tenantID,
		FullName:  kernel.FullName(fullName),
		Email:     kernel.Email(req.Email),
		Phone:     kernel.Phone(req.Phone),
		NIF:       nif,
		Role:      req.Role,
		Status:    employee.EmployeeStatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if emp.Role == "" {
		emp.Role = employee.RoleEmployee
	}

	if err := s.repo.Create(ctx, emp); err != nil {
		return nil, err
	}

	logx.Infof("Employee created: EmployeeID=%s, TenantID=%s", emp.ID, tenantID)

	// A new roster member may match documents the classifier gave up on
	s.requestReclassification(ctx, tenantID)

	return employee.ToEmployeeResponse(emp), nil
}

// GetEmployee retrieves an employee by ID, scoped to a tenant
func (s *Service) GetEmployee(ctx context.Context, tenantID kernel.TenantID, id kernel.EmployeeID) (*employee.EmployeeResponse, error) {
	emp, err := s.getTenantEmployee(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	return employee.ToEmployeeResponse(emp), nil
}

// UpdateEmployee updates employee information
func (s *Service) UpdateEmployee(ctx context.Context, tenantID kernel.TenantID, id kernel.EmployeeID, req employee.UpdateEmployeeRequest) (*employee.EmployeeResponse, error) {
	emp, err := s.getTenantEmployee(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	renamed := false
	if req.FullName != nil {
		if err := emp.Rename(kernel.FullName(strings.TrimSpace(*req.FullName))); err != nil {
			return nil, err
		}
		renamed = true
	}
	if req.Email != nil || req.Phone != nil {
		var email kernel.Email
		var phone kernel.Phone
		if req.Email != nil {
			email = kernel.Email(*req.Email)
		}
		if req.Phone != nil {
			phone = kernel.Phone(*req.Phone)
		}
		emp.UpdateContactInfo(email, phone)
	}
	if req.Role != nil {
		emp.Role = *req.Role
		emp.UpdatedAt = time.Now()
	}
	if req.NIF != nil {
		if err := emp.UpdateNIF(*req.NIF); err != nil {
			return nil, err
		}
	}

	if err := s.repo.Update(ctx, id, emp); err != nil {
		return nil, err
	}

	logx.Infof("Employee updated: EmployeeID=%s, TenantID=%s", id, tenantID)

	// Matching is name based, so a rename can change classification outcomes
	if renamed {
		s.requestReclassification(ctx, tenantID)
	}

	return employee.ToEmployeeResponse(emp), nil
}

// ListEmployees lists a tenant's employees with pagination
func (s *Service) ListEmployees(ctx context.Context, tenantID kernel.TenantID, pagination kernel.PaginationOptions) (*kernel.Paginated[employee.EmployeeResponse], error) {
	paginated, err := s.repo.ListByTenantID(ctx, tenantID, pagination)
	if err != nil {
		return nil, employee.ErrRegistry.NewWithCause(employee.CodeEmployeeNotFound, err).
			WithDetail("tenant_id", tenantID)
	}

	items := make([]employee.EmployeeResponse, len(paginated.Items))
	for i := range paginated.Items {
		items[i] = *employee.ToEmployeeResponse(&paginated.Items[i])
	}
	return &kernel.Paginated[employee.EmployeeResponse]{
		Items: items,
		Page:  paginated.Page,
		Empty: len(items) == 0,
	}, nil
}

// DeleteEmployee removes an employee permanently. Archiving is the normal
// path; deletion is for records created by mistake.
func (s *Service) DeleteEmployee(ctx context.Context, tenantID kernel.TenantID, id kernel.EmployeeID) error {
	if _, err := s.getTenantEmployee(ctx, tenantID, id); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	logx.Infof("Employee deleted: EmployeeID=%s, TenantID=%s", id, tenantID)
	return nil
}

// ============================================================================
// Roster Lifecycle
// ============================================================================

// ArchiveEmployee takes an employee off the roster. Archived employees stop
// being classification candidates but keep their documents.
func (s *Service) ArchiveEmployee(ctx context.Context, tenantID kernel.TenantID, id kernel.EmployeeID) (*employee.EmployeeResponse, error) {
	emp, err := s.getTenantEmployee(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	if err := emp.Archive(); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, id, emp); err != nil {
		return nil, err
	}

	logx.Infof("Employee archived: EmployeeID=%s, TenantID=%s", id, tenantID)
	return employee.ToEmployeeResponse(emp), nil
}

// UnarchiveEmployee returns an employee to the active roster
func (s *Service) UnarchiveEmployee(ctx context.Context, tenantID kernel.TenantID, id kernel.EmployeeID) (*employee.EmployeeResponse, error) {
	emp, err := s.getTenantEmployee(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	if err := emp.Unarchive(); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, id, emp); err != nil {
		return nil, err
	}

	logx.Infof("Employee unarchived: EmployeeID=%s, TenantID=%s", id, tenantID)

	// Back on the roster means back in the candidate set
	s.requestReclassification(ctx, tenantID)

	return employee.ToEmployeeResponse(emp), nil
}

// GetRoster returns the current classification candidate set of a tenant
func (s *Service) GetRoster(ctx context.Context, tenantID kernel.TenantID) ([]employee.EmployeeResponse, error) {
	roster, err := s.repo.ListRoster(ctx, tenantID)
	if err != nil {
		return nil, employee.ErrRegistry.NewWithCause(employee.CodeEmployeeNotFound, err).
			WithDetail("tenant_id", tenantID)
	}

	responses := make([]employee.EmployeeResponse, len(roster))
	for i := range roster {
		responses[i] = *employee.ToEmployeeResponse(&roster[i])
	}
	return responses, nil
}

// ============================================================================
// Private Helper Methods
// ============================================================================

// getTenantEmployee loads an employee and verifies tenant ownership
func (s *Service) getTenantEmployee(ctx context.Context, tenantID kernel.TenantID, id kernel.EmployeeID) (*employee.Employee, error) {
	emp, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if emp.TenantID != tenantID {
		return nil, employee.ErrTenantMismatch().
			WithDetail("employee_id", id).
			WithDetail("employee_tenant_id", emp.TenantID).
			WithDetail("requested_tenant_id", tenantID)
	}

	return emp, nil
}

// requestReclassification asks the document pipeline to revisit pending
// classifications. Failures are logged, never surfaced: the roster change
// already succeeded.
func (s *Service) requestReclassification(ctx context.Context, tenantID kernel.TenantID) {
	if s.reclassifier == nil {
		return
	}
	if err := s.reclassifier.RequestReclassification(ctx, tenantID); err != nil {
		logx.Warnf("Failed to request reclassification for tenant %s: %v", tenantID, err)
	}
}
