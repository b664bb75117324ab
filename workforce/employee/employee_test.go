package employee

import (
	"testing"

	"plantel/pkg/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEmployee() *Employee {
	return &Employee{
		ID:       kernel.NewEmployeeID("emp-1"),
		TenantID: kernel.NewTenantID("tenant-1"),
		FullName: kernel.FullName("Juan García López"),
		Email:    kernel.Email("juan@example.com"),
		Status:   EmployeeStatusActive,
	}
}

func TestArchiveLifecycle(t *testing.T) {
	emp := newTestEmployee()

	require.NoError(t, emp.Archive())
	assert.True(t, emp.IsArchived())
	assert.NotNil(t, emp.ArchivedAt)
	assert.False(t, emp.CanReceiveDocuments())

	// Archiving twice is a business error
	assert.Error(t, emp.Archive())

	require.NoError(t, emp.Unarchive())
	assert.True(t, emp.IsActive())
	assert.Nil(t, emp.ArchivedAt)
	assert.True(t, emp.CanReceiveDocuments())

	// Unarchiving an active employee is a business error
	assert.Error(t, emp.Unarchive())
}

func TestInactiveEmployeesStillReceiveDocuments(t *testing.T) {
	emp := newTestEmployee()
	emp.Deactivate()

	assert.False(t, emp.IsActive())
	assert.True(t, emp.CanReceiveDocuments())

	emp.Activate()
	assert.True(t, emp.IsActive())
}

func TestRename(t *testing.T) {
	emp := newTestEmployee()

	require.NoError(t, emp.Rename(kernel.FullName("Juan José García")))
	assert.Equal(t, kernel.FullName("Juan José García"), emp.FullName)

	assert.Error(t, emp.Rename(kernel.FullName("")))
}

func TestUpdateNIF(t *testing.T) {
	emp := newTestEmployee()

	valid := kernel.NIF{Type: kernel.NIFTypeDNI, Number: "12345678Z"}
	require.NoError(t, emp.UpdateNIF(valid))
	assert.Equal(t, valid, emp.NIF)

	invalid := kernel.NIF{Type: kernel.NIFTypeDNI, Number: "1234"}
	assert.Error(t, emp.UpdateNIF(invalid))
}

func TestUpdateContactInfo(t *testing.T) {
	emp := newTestEmployee()

	emp.UpdateContactInfo(kernel.Email("nuevo@example.com"), "")
	assert.Equal(t, kernel.Email("nuevo@example.com"), emp.Email)

	// Empty values leave existing fields untouched
	emp.UpdateContactInfo("", kernel.Phone("+34600111222"))
	assert.Equal(t, kernel.Email("nuevo@example.com"), emp.Email)
	assert.Equal(t, kernel.Phone("+34600111222"), emp.Phone)
}
