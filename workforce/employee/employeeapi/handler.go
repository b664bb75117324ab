package employeeapi

import (
	"plantel/pkg/iam/auth"
	"plantel/pkg/kernel"
	"plantel/workforce/employee"
	"plantel/workforce/employee/employeesrv"

	"github.com/gofiber/fiber/v2"
)

type EmployeeHandlers struct {
	service *employeesrv.Service
}

func NewEmployeeHandlers(service *employeesrv.Service) *EmployeeHandlers {
	return &EmployeeHandlers{service: service}
}

func (h *EmployeeHandlers) RegisterRoutes(app *fiber.App, authMiddleware *auth.TokenMiddleware) {
	employees := app.Group("/api/v1/employees", authMiddleware.Authenticate())

	employees.Post("/", authMiddleware.RequireScope(auth.ScopeEmployeesWrite), h.CreateEmployee)
	employees.Get("/", authMiddleware.RequireScope(auth.ScopeEmployeesRead), h.ListEmployees)
	employees.Get("/roster", authMiddleware.RequireScope(auth.ScopeEmployeesRead), h.GetRoster)
	employees.Get("/:id", authMiddleware.RequireScope(auth.ScopeEmployeesRead), h.GetEmployee)
	employees.Put("/:id", authMiddleware.RequireScope(auth.ScopeEmployeesWrite), h.UpdateEmployee)
	employees.Delete("/:id", authMiddleware.RequireScope(auth.ScopeEmployeesDelete), h.DeleteEmployee)

	// Roster lifecycle
	employees.Post("/:id/archive", authMiddleware.RequireScope(auth.ScopeEmployeesWrite), h.ArchiveEmployee)
	employees.Post("/:id/unarchive", authMiddleware.RequireScope(auth.ScopeEmployeesWrite), h.UnarchiveEmployee)
}

// CreateEmployee adds an employee to the roster
// POST /api/v1/employees
func (h *EmployeeHandlers) CreateEmployee(c *fiber.Ctx) error {
	authCtx, ok := auth.GetAuthContext(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	var req employee.CreateEmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		return employee.ErrInvalidEmployeeData().
			WithDetail("reason", "invalid request body")
	}

	resp, err := h.service.CreateEmployee(c.Context(), authCtx.TenantID, req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

// GetEmployee returns an employee by ID
// GET /api/v1/employees/:id
func (h *EmployeeHandlers) GetEmployee(c *fiber.Ctx) error {
	authCtx, ok := auth.GetAuthContext(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	id := kernel.EmployeeID(c.Params("id"))
	resp, err := h.service.GetEmployee(c.Context(), authCtx.TenantID, id)
	if err != nil {
		return err
	}

	return c.JSON(resp)
}

// UpdateEmployee updates employee information
// PUT /api/v1/employees/:id
func (h *EmployeeHandlers) UpdateEmployee(c *fiber.Ctx) error {
	authCtx, ok := auth.GetAuthContext(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	var req employee.UpdateEmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		return employee.ErrInvalidEmployeeData().
			WithDetail("reason", "invalid request body")
	}

	id := kernel.EmployeeID(c.Params("id"))
	resp, err := h.service.UpdateEmployee(c.Context(), authCtx.TenantID, id, req)
	if err != nil {
		return err
	}

	return c.JSON(resp)
}

// ListEmployees lists the tenant's employees
// GET /api/v1/employees?page=1&page_size=20
func (h *EmployeeHandlers) ListEmployees(c *fiber.Ctx) error {
	authCtx, ok := auth.GetAuthContext(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	pagination := kernel.PaginationOptions{
		Page:     c.QueryInt("page", 1),
		PageSize: c.QueryInt("page_size", 20),
	}.Normalize()

	resp, err := h.service.ListEmployees(c.Context(), authCtx.TenantID, pagination)
	if err != nil {
		return err
	}

	return c.JSON(resp)
}

// GetRoster returns the active classification candidate set
// GET /api/v1/employees/roster
func (h *EmployeeHandlers) GetRoster(c *fiber.Ctx) error {
	authCtx, ok := auth.GetAuthContext(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	resp, err := h.service.GetRoster(c.Context(), authCtx.TenantID)
	if err != nil {
		return err
	}

	return c.JSON(resp)
}

// DeleteEmployee removes an employee permanently
// DELETE /api/v1/employees/:id
func (h *EmployeeHandlers) DeleteEmployee(c *fiber.Ctx) error {
	authCtx, ok := auth.GetAuthContext(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	id := kernel.EmployeeID(c.Params("id"))
	if err := h.service.DeleteEmployee(c.Context(), authCtx.TenantID, id); err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// ArchiveEmployee takes an employee off the roster
// POST /api/v1/employees/:id/archive
func (h *EmployeeHandlers) ArchiveEmployee(c *fiber.Ctx) error {
	authCtx, ok := auth.GetAuthContext(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	id := kernel.EmployeeID(c.Params("id"))
	resp, err := h.service.ArchiveEmployee(c.Context(), authCtx.TenantID, id)
	if err != nil {
		return err
	}

	return c.JSON(resp)
}

// UnarchiveEmployee returns an employee to the active roster
// POST /api/v1/employees/:id/unarchive
func (h *EmployeeHandlers) UnarchiveEmployee(c *fiber.Ctx) error {
	authCtx, ok := auth.GetAuthContext(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	id := kernel.EmployeeID(c.Params("id"))
	resp, err := h.service.UnarchiveEmployee(c.Context(), authCtx.TenantID, id)
	if err != nil {
		return err
	}

	return c.JSON(resp)
}
