package document

import (
	"testing"

	"plantel/pkg/kernel"
	"plantel/workforce/document/docclass"
	"plantel/workforce/employee"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDocument() *Document {
	return &Document{
		ID:           kernel.NewDocumentID("doc-1"),
		TenantID:     kernel.NewTenantID("tenant-1"),
		FileName:     "nomina_enero.pdf",
		ReviewStatus: ReviewStatusPendingReview,
	}
}

func TestApplyClassification(t *testing.T) {
	emp := employee.Employee{
		ID:       kernel.NewEmployeeID("emp-1"),
		FullName: kernel.FullName("Juan García"),
	}

	t.Run("high confidence auto accepts", func(t *testing.T) {
		doc := newTestDocument()
		doc.ApplyClassification(docclass.Result{
			Employee:         &emp,
			DocumentCategory: "nomina",
			Confidence:       docclass.ConfidenceHigh,
			MatchStrength:    1.0,
		})

		assert.Equal(t, ReviewStatusAutoAccepted, doc.ReviewStatus)
		assert.Equal(t, "nomina", doc.Category)
		require.NotNil(t, doc.EmployeeID)
		assert.Equal(t, emp.ID, *doc.EmployeeID)
		assert.False(t, doc.NeedsReview())
	})

	t.Run("medium confidence goes to review", func(t *testing.T) {
		doc := newTestDocument()
		doc.ApplyClassification(docclass.Result{
			Employee:         &emp,
			DocumentCategory: docclass.FallbackCategoryID,
			Confidence:       docclass.ConfidenceMedium,
			MatchStrength:    0.5,
		})

		assert.Equal(t, ReviewStatusPendingReview, doc.ReviewStatus)
		assert.True(t, doc.NeedsReview())
	})

	t.Run("no match clears employee", func(t *testing.T) {
		doc := newTestDocument()
		empID := kernel.NewEmployeeID("emp-old")
		doc.EmployeeID = &empID

		doc.ApplyClassification(docclass.Result{
			DocumentCategory: docclass.FallbackCategoryID,
			Confidence:       docclass.ConfidenceLow,
		})

		assert.Nil(t, doc.EmployeeID)
		assert.False(t, doc.HasEmployee())
	})

	t.Run("reviewed documents are never touched", func(t *testing.T) {
		doc := newTestDocument()
		reviewer := kernel.NewUserID("user-1")
		require.NoError(t, doc.Confirm(reviewer))

		before := *doc
		doc.ApplyClassification(docclass.Result{
			Employee:         &emp,
			DocumentCategory: "contrato",
			Confidence:       docclass.ConfidenceHigh,
			MatchStrength:    1.0,
		})

		assert.Equal(t, before.Category, doc.Category)
		assert.Equal(t, before.ReviewStatus, doc.ReviewStatus)
		assert.Equal(t, before.EmployeeID, doc.EmployeeID)
	})
}

func TestConfirm(t *testing.T) {
	reviewer := kernel.NewUserID("user-1")

	t.Run("confirms pending classification", func(t *testing.T) {
		doc := newTestDocument()
		require.NoError(t, doc.Confirm(reviewer))

		assert.Equal(t, ReviewStatusConfirmed, doc.ReviewStatus)
		require.NotNil(t, doc.ReviewedBy)
		assert.Equal(t, reviewer, *doc.ReviewedBy)
		assert.NotNil(t, doc.ReviewedAt)
		assert.True(t, doc.IsReviewed())
	})

	t.Run("rejects double review", func(t *testing.T) {
		doc := newTestDocument()
		require.NoError(t, doc.Confirm(reviewer))

		err := doc.Confirm(reviewer)
		assert.Error(t, err)
	})
}

func TestReassign(t *testing.T) {
	reviewer := kernel.NewUserID("user-1")
	empID := kernel.NewEmployeeID("emp-2")
	category := "contrato"

	t.Run("overrides employee and category", func(t *testing.T) {
		doc := newTestDocument()
		require.NoError(t, doc.Reassign(reviewer, &empID, &category))

		assert.Equal(t, ReviewStatusReassigned, doc.ReviewStatus)
		require.NotNil(t, doc.EmployeeID)
		assert.Equal(t, empID, *doc.EmployeeID)
		assert.Equal(t, "contrato", doc.Category)
	})

	t.Run("keeps classifier value for nil fields", func(t *testing.T) {
		doc := newTestDocument()
		doc.Category = "nomina"
		require.NoError(t, doc.Reassign(reviewer, &empID, nil))

		assert.Equal(t, "nomina", doc.Category)
		require.NotNil(t, doc.EmployeeID)
		assert.Equal(t, empID, *doc.EmployeeID)
	})

	t.Run("requires at least one field", func(t *testing.T) {
		doc := newTestDocument()
		err := doc.Reassign(reviewer, nil, nil)
		assert.Error(t, err)
	})

	t.Run("rejects unknown category", func(t *testing.T) {
		doc := newTestDocument()
		bad := "facturas"
		err := doc.Reassign(reviewer, nil, &bad)
		assert.Error(t, err)
	})

	t.Run("rejects reassign after review", func(t *testing.T) {
		doc := newTestDocument()
		require.NoError(t, doc.Confirm(reviewer))

		err := doc.Reassign(reviewer, &empID, nil)
		assert.Error(t, err)
	})
}

func TestReclassifyTaskCanRetry(t *testing.T) {
	task := &ReclassifyTask{Attempt: 0, MaxAttempts: 3}
	assert.True(t, task.CanRetry())

	task.Attempt = 3
	assert.False(t, task.CanRetry())
}
