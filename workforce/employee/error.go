package employee

import (
	"net/http"

	"plantel/pkg/errx"
)

var ErrRegistry = errx.NewRegistry("EMPLOYEE")

var (
	CodeEmployeeNotFound        = ErrRegistry.Register("NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Employee not found")
	CodeEmployeeAlreadyExists   = ErrRegistry.Register("ALREADY_EXISTS", errx.TypeConflict, http.StatusConflict, "Employee already exists")
	CodeInvalidEmployeeData     = ErrRegistry.Register("INVALID_DATA", errx.TypeValidation, http.StatusBadRequest, "Invalid employee data")
	CodeInvalidNIF              = ErrRegistry.Register("INVALID_NIF", errx.TypeValidation, http.StatusBadRequest, "Invalid identity document")
	CodeEmployeeAlreadyArchived = ErrRegistry.Register("ALREADY_ARCHIVED", errx.TypeBusiness, http.StatusUnprocessableEntity, "Employee is already archived")
	CodeEmployeeNotArchived     = ErrRegistry.Register("NOT_ARCHIVED", errx.TypeBusiness, http.StatusUnprocessableEntity, "Employee is not archived")
	CodeTenantMismatch          = ErrRegistry.Register("TENANT_MISMATCH", errx.TypeAuthorization, http.StatusForbidden, "Employee does not belong to this tenant")
	CodeInsufficientPermissions = ErrRegistry.Register("INSUFFICIENT_PERMISSIONS", errx.TypeAuthorization, http.StatusForbidden, "Insufficient permissions")
)

func ErrEmployeeNotFound() *errx.Error {
	return ErrRegistry.New(CodeEmployeeNotFound)
}

func ErrEmployeeAlreadyExists() *errx.Error {
	return ErrRegistry.New(CodeEmployeeAlreadyExists)
}

func ErrInvalidEmployeeData() *errx.Error {
	return ErrRegistry.New(CodeInvalidEmployeeData)
}

func ErrInvalidNIF() *errx.Error {
	return ErrRegistry.New(CodeInvalidNIF)
}

func ErrEmployeeAlreadyArchived() *errx.Error {
	return ErrRegistry.New(CodeEmployeeAlreadyArchived)
}

func ErrEmployeeNotArchived() *errx.Error {
	return ErrRegistry.New(CodeEmployeeNotArchived)
}

func ErrTenantMismatch() *errx.Error {
	return ErrRegistry.New(CodeTenantMismatch)
}

func ErrInsufficientPermissions() *errx.Error {
	return ErrRegistry.New(CodeInsufficientPermissions)
}
