package documentsrv

import (
	"context"
	"errors"
	"testing"
	"time"

	"plantel/pkg/kernel"
	"plantel/workforce/document"
	"plantel/workforce/document/docclass"
	"plantel/workforce/employee"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ============================================================================
// In-memory fakes
// ============================================================================

type fakeDocumentRepo struct {
	docs       map[kernel.DocumentID]*document.Document
	failCreate bool
}

func newFakeDocumentRepo() *fakeDocumentRepo {
	return &fakeDocumentRepo{docs: make(map[kernel.DocumentID]*document.Document)}
}

func (r *fakeDocumentRepo) Create(ctx context.Context, d *document.Document) error {
	if r.failCreate {
		return errors.New("create failed")
	}
	copied := *d
	r.docs[d.ID] = &copied
	return nil
}

func (r *fakeDocumentRepo) Update(ctx context.Context, id kernel.DocumentID, d *document.Document) error {
	if _, ok := r.docs[id]; !ok {
		return document.ErrDocumentNotFound()
	}
	copied := *d
	r.docs[id] = &copied
	return nil
}

func (r *fakeDocumentRepo) GetByID(ctx context.Context, id kernel.DocumentID) (*document.Document, error) {
	d, ok := r.docs[id]
	if !ok {
		return nil, document.ErrDocumentNotFound()
	}
	copied := *d
	return &copied, nil
}

func (r *fakeDocumentRepo) Delete(ctx context.Context, id kernel.DocumentID) error {
	if _, ok := r.docs[id]; !ok {
		return document.ErrDocumentNotFound()
	}
	delete(r.docs, id)
	return nil
}

func (r *fakeDocumentRepo) ListByTenantID(ctx context.Context, tenantID kernel.TenantID, p kernel.PaginationOptions) (*kernel.Paginated[document.Document], error) {
	var items []document.Document
	for _, d := range r.docs {
		if d.TenantID == tenantID {
			items = append(items, *d)
		}
	}
	paginated := kernel.NewPaginated(items, 1, len(items)+1, len(items))
	return &paginated, nil
}

func (r *fakeDocumentRepo) ListByEmployeeID(ctx context.Context, employeeID kernel.EmployeeID, p kernel.PaginationOptions) (*kernel.Paginated[document.Document], error) {
	var items []document.Document
	for _, d := range r.docs {
		if d.EmployeeID != nil && *d.EmployeeID == employeeID {
			items = append(items, *d)
		}
	}
	paginated := kernel.NewPaginated(items, 1, len(items)+1, len(items))
	return &paginated, nil
}

func (r *fakeDocumentRepo) ListPendingReview(ctx context.Context, tenantID kernel.TenantID, p kernel.PaginationOptions) (*kernel.Paginated[document.Document], error) {
	var items []document.Document
	for _, d := range r.docs {
		if d.TenantID == tenantID && d.NeedsReview() {
			items = append(items, *d)
		}
	}
	paginated := kernel.NewPaginated(items, 1, len(items)+1, len(items))
	return &paginated, nil
}

func (r *fakeDocumentRepo) ListReclassifiable(ctx context.Context, tenantID kernel.TenantID) ([]document.Document, error) {
	var items []document.Document
	for _, d := range r.docs {
		if d.TenantID == tenantID && (d.NeedsReview() || d.EmployeeID == nil) {
			items = append(items, *d)
		}
	}
	return items, nil
}

func (r *fakeDocumentRepo) CountByTenantID(ctx context.Context, tenantID kernel.TenantID) (int64, error) {
	return int64(len(r.docs)), nil
}

func (r *fakeDocumentRepo) CountPendingReview(ctx context.Context, tenantID kernel.TenantID) (int64, error) {
	var n int64
	for _, d := range r.docs {
		if d.TenantID == tenantID && d.NeedsReview() {
			n++
		}
	}
	return n, nil
}

type fakeEmployeeRepo struct {
	employees map[kernel.EmployeeID]*employee.Employee
	roster    []employee.Employee
}

func newFakeEmployeeRepo(roster ...employee.Employee) *fakeEmployeeRepo {
	r := &fakeEmployeeRepo{employees: make(map[kernel.EmployeeID]*employee.Employee), roster: roster}
	for i := range roster {
		r.employees[roster[i].ID] = &roster[i]
	}
	return r
}

func (r *fakeEmployeeRepo) Create(ctx context.Context, e *employee.Employee) error { return nil }
func (r *fakeEmployeeRepo) Update(ctx context.Context, id kernel.EmployeeID, e *employee.Employee) error {
	return nil
}

func (r *fakeEmployeeRepo) GetByID(ctx context.Context, id kernel.EmployeeID) (*employee.Employee, error) {
	e, ok := r.employees[id]
	if !ok {
		return nil, employee.ErrEmployeeNotFound()
	}
	return e, nil
}

func (r *fakeEmployeeRepo) GetByEmail(ctx context.Context, tenantID kernel.TenantID, email kernel.Email) (*employee.Employee, error) {
	return nil, employee.ErrEmployeeNotFound()
}

func (r *fakeEmployeeRepo) ListByTenantID(ctx context.Context, tenantID kernel.TenantID, p kernel.PaginationOptions) (*kernel.Paginated[employee.Employee], error) {
	paginated := kernel.NewPaginated(r.roster, 1, len(r.roster)+1, len(r.roster))
	return &paginated, nil
}

func (r *fakeEmployeeRepo) ListRoster(ctx context.Context, tenantID kernel.TenantID) ([]employee.Employee, error) {
	return r.roster, nil
}

func (r *fakeEmployeeRepo) Exists(ctx context.Context, id kernel.EmployeeID) (bool, error) {
	_, ok := r.employees[id]
	return ok, nil
}

func (r *fakeEmployeeRepo) CountByTenantID(ctx context.Context, tenantID kernel.TenantID) (int64, error) {
	return int64(len(r.roster)), nil
}
func (r *fakeEmployeeRepo) Archive(ctx context.Context, id kernel.EmployeeID) error   { return nil }
func (r *fakeEmployeeRepo) Unarchive(ctx context.Context, id kernel.EmployeeID) error { return nil }
func (r *fakeEmployeeRepo) Delete(ctx context.Context, id kernel.EmployeeID) error    { return nil }

type fakeFileSystem struct {
	files map[string][]byte
}

func newFakeFileSystem() *fakeFileSystem {
	return &fakeFileSystem{files: make(map[string][]byte)}
}

func (f *fakeFileSystem) Join(parts ...string) string {
	path := ""
	for i, p := range parts {
		if i > 0 {
			path += "/"
		}
		path += p
	}
	return path
}

func (f *fakeFileSystem) WriteFile(ctx context.Context, path string, data []byte) error {
	f.files[path] = data
	return nil
}

func (f *fakeFileSystem) ReadFile(ctx context.Context, path string) ([]byte, error) {
	data, ok := f.files[path]
	if !ok {
		return nil, errors.New("not found")
	}
	return data, nil
}

func (f *fakeFileSystem) DeleteFile(ctx context.Context, path string) error {
	delete(f.files, path)
	return nil
}

func (f *fakeFileSystem) Exists(ctx context.Context, path string) (bool, error) {
	_, ok := f.files[path]
	return ok, nil
}

func (f *fakeFileSystem) PresignedURL(ctx context.Context, path string, expiry time.Duration) (string, error) {
	return "https://example.com/" + path, nil
}

type fakeTaskQueue struct {
	enqueued []kernel.TaskID
	delayed  []kernel.TaskID
}

func (q *fakeTaskQueue) Enqueue(ctx context.Context, taskID kernel.TaskID, payload any) error {
	q.enqueued = append(q.enqueued, taskID)
	return nil
}

func (q *fakeTaskQueue) Dequeue(ctx context.Context, timeout time.Duration) ([]byte, error) {
	return nil, nil
}

func (q *fakeTaskQueue) EnqueueDelayed(ctx context.Context, taskID kernel.TaskID, payload any, delay time.Duration) error {
	q.delayed = append(q.delayed, taskID)
	return nil
}

func (q *fakeTaskQueue) MoveDelayedToReady(ctx context.Context) (int, error) { return 0, nil }
func (q *fakeTaskQueue) Size(ctx context.Context) (int64, error)             { return int64(len(q.enqueued)), nil }
func (q *fakeTaskQueue) DelayedSize(ctx context.Context) (int64, error)      { return int64(len(q.delayed)), nil }
func (q *fakeTaskQueue) Clear(ctx context.Context) error                     { return nil }

// ============================================================================
// Test setup
// ============================================================================

var (
	testTenant   = kernel.NewTenantID("tenant-1")
	testUploader = kernel.NewUserID("user-1")
	testReviewer = kernel.NewUserID("reviewer-1")
)

func testRoster() []employee.Employee {
	return []employee.Employee{
		{
			ID:       kernel.NewEmployeeID("emp-juan"),
			TenantID: testTenant,
			FullName: kernel.FullName("Juan José García"),
			Status:   employee.EmployeeStatusActive,
		},
		{
			ID:       kernel.NewEmployeeID("emp-maria"),
			TenantID: testTenant,
			FullName: kernel.FullName("María Rodríguez"),
			Status:   employee.EmployeeStatusActive,
		},
	}
}

func newTestService() (*Service, *fakeDocumentRepo, *fakeEmployeeRepo, *fakeFileSystem, *fakeTaskQueue) {
	docRepo := newFakeDocumentRepo()
	empRepo := newFakeEmployeeRepo(testRoster()...)
	fs := newFakeFileSystem()
	queue := &fakeTaskQueue{}
	return NewService(docRepo, empRepo, fs, queue), docRepo, empRepo, fs, queue
}

func uploadRequest(fileName string) document.UploadDocumentRequest {
	return document.UploadDocumentRequest{
		TenantID:    testTenant,
		FileName:    fileName,
		ContentType: "application/pdf",
		Data:        []byte("file content"),
		UploadedBy:  testUploader,
	}
}

// ============================================================================
// Upload
// ============================================================================

func TestUploadDocument(t *testing.T) {
	ctx := context.Background()

	t.Run("matched payslip is auto accepted", func(t *testing.T) {
		svc, repo, _, fs, _ := newTestService()

		resp, err := svc.UploadDocument(ctx, uploadRequest("nomina_juan_jose_garcia_enero.pdf"))
		require.NoError(t, err)

		assert.Equal(t, "nomina", resp.Classification.Category)
		assert.Equal(t, docclass.ConfidenceHigh, resp.Classification.Confidence)
		require.NotNil(t, resp.Classification.EmployeeID)
		assert.Equal(t, kernel.NewEmployeeID("emp-juan"), *resp.Classification.EmployeeID)
		assert.Equal(t, document.ReviewStatusAutoAccepted, resp.ReviewStatus)

		stored, err := repo.GetByID(ctx, resp.ID)
		require.NoError(t, err)
		assert.Len(t, fs.files, 1)
		assert.Equal(t, int64(len("file content")), stored.SizeBytes)
	})

	t.Run("unmatched file goes to review queue as fallback", func(t *testing.T) {
		svc, _, _, _, _ := newTestService()

		resp, err := svc.UploadDocument(ctx, uploadRequest("archivo_random.pdf"))
		require.NoError(t, err)

		assert.Equal(t, docclass.FallbackCategoryID, resp.Classification.Category)
		assert.Equal(t, docclass.ConfidenceLow, resp.Classification.Confidence)
		assert.Nil(t, resp.Classification.EmployeeID)
		assert.Equal(t, document.ReviewStatusPendingReview, resp.ReviewStatus)
		assert.True(t, resp.Classification.NeedsReview)
	})

	t.Run("rejects oversized file", func(t *testing.T) {
		svc, _, _, fs, _ := newTestService()

		req := uploadRequest("grande.pdf")
		req.Data = make([]byte, MaxFileSizeBytes+1)
		_, err := svc.UploadDocument(ctx, req)

		assert.Error(t, err)
		assert.Empty(t, fs.files)
	})

	t.Run("rejects unsupported extension", func(t *testing.T) {
		svc, _, _, fs, _ := newTestService()

		_, err := svc.UploadDocument(ctx, uploadRequest("script.exe"))

		assert.Error(t, err)
		assert.Empty(t, fs.files)
	})

	t.Run("cleans up stored file when persistence fails", func(t *testing.T) {
		svc, repo, _, fs, _ := newTestService()
		repo.failCreate = true

		_, err := svc.UploadDocument(ctx, uploadRequest("nomina_enero.pdf"))

		assert.Error(t, err)
		assert.Empty(t, fs.files)
	})
}

// ============================================================================
// Review
// ============================================================================

func TestConfirmClassification(t *testing.T) {
	ctx := context.Background()
	svc, _, _, _, _ := newTestService()

	uploaded, err := svc.UploadDocument(ctx, uploadRequest("escaneo_juan_jose_garcia.pdf"))
	require.NoError(t, err)
	require.Equal(t, document.ReviewStatusPendingReview, uploaded.ReviewStatus)

	resp, err := svc.ConfirmClassification(ctx, testTenant, uploaded.ID, testReviewer)
	require.NoError(t, err)
	assert.Equal(t, document.ReviewStatusConfirmed, resp.ReviewStatus)
	require.NotNil(t, resp.ReviewedBy)
	assert.Equal(t, testReviewer, *resp.ReviewedBy)

	// Second review is rejected
	_, err = svc.ConfirmClassification(ctx, testTenant, uploaded.ID, testReviewer)
	assert.Error(t, err)
}

func TestConfirmClassificationTenantMismatch(t *testing.T) {
	ctx := context.Background()
	svc, _, _, _, _ := newTestService()

	uploaded, err := svc.UploadDocument(ctx, uploadRequest("archivo_random.pdf"))
	require.NoError(t, err)

	_, err = svc.ConfirmClassification(ctx, kernel.NewTenantID("other-tenant"), uploaded.ID, testReviewer)
	assert.Error(t, err)
}

func TestReviewClassification(t *testing.T) {
	ctx := context.Background()

	t.Run("reassigns employee and category", func(t *testing.T) {
		svc, _, _, _, _ := newTestService()

		uploaded, err := svc.UploadDocument(ctx, uploadRequest("archivo_random.pdf"))
		require.NoError(t, err)

		empID := kernel.NewEmployeeID("emp-maria")
		category := "justificante"
		resp, err := svc.ReviewClassification(ctx, testTenant, uploaded.ID, testReviewer, document.ReviewDecisionRequest{
			EmployeeID: &empID,
			Category:   &category,
		})
		require.NoError(t, err)

		assert.Equal(t, document.ReviewStatusReassigned, resp.ReviewStatus)
		require.NotNil(t, resp.Classification.EmployeeID)
		assert.Equal(t, empID, *resp.Classification.EmployeeID)
		assert.Equal(t, "justificante", resp.Classification.Category)
	})

	t.Run("rejects archived target employee", func(t *testing.T) {
		roster := testRoster()
		roster[1].Status = employee.EmployeeStatusArchived
		docRepo := newFakeDocumentRepo()
		svc := NewService(docRepo, newFakeEmployeeRepo(roster...), newFakeFileSystem(), &fakeTaskQueue{})

		uploaded, err := svc.UploadDocument(ctx, uploadRequest("archivo_random.pdf"))
		require.NoError(t, err)

		empID := kernel.NewEmployeeID("emp-maria")
		_, err = svc.ReviewClassification(ctx, testTenant, uploaded.ID, testReviewer, document.ReviewDecisionRequest{
			EmployeeID: &empID,
		})
		assert.Error(t, err)
	})

	t.Run("rejects empty decision", func(t *testing.T) {
		svc, _, _, _, _ := newTestService()

		uploaded, err := svc.UploadDocument(ctx, uploadRequest("archivo_random.pdf"))
		require.NoError(t, err)

		_, err = svc.ReviewClassification(ctx, testTenant, uploaded.ID, testReviewer, document.ReviewDecisionRequest{})
		assert.Error(t, err)
	})
}

// ============================================================================
// Download & Delete
// ============================================================================

func TestGetDownloadURL(t *testing.T) {
	ctx := context.Background()
	svc, _, _, _, _ := newTestService()

	uploaded, err := svc.UploadDocument(ctx, uploadRequest("contrato_maria_rodriguez.pdf"))
	require.NoError(t, err)

	resp, err := svc.GetDownloadURL(ctx, testTenant, uploaded.ID)
	require.NoError(t, err)
	assert.Contains(t, resp.URL, "https://example.com/")
	assert.True(t, resp.ExpiresAt.After(time.Now()))
}

func TestDeleteDocument(t *testing.T) {
	ctx := context.Background()
	svc, repo, _, fs, _ := newTestService()

	uploaded, err := svc.UploadDocument(ctx, uploadRequest("contrato_maria_rodriguez.pdf"))
	require.NoError(t, err)
	require.Len(t, fs.files, 1)

	require.NoError(t, svc.DeleteDocument(ctx, testTenant, uploaded.ID))

	_, err = repo.GetByID(ctx, uploaded.ID)
	assert.Error(t, err)
	assert.Empty(t, fs.files)
}

// ============================================================================
// Reclassification
// ============================================================================

func TestReclassifyEnqueuesTask(t *testing.T) {
	ctx := context.Background()
	svc, _, _, _, queue := newTestService()

	resp, err := svc.Reclassify(ctx, testTenant)
	require.NoError(t, err)
	assert.False(t, resp.TaskID.IsEmpty())
	assert.Len(t, queue.enqueued, 1)

	// Reclassifier interface path enqueues too
	require.NoError(t, svc.RequestReclassification(ctx, testTenant))
	assert.Len(t, queue.enqueued, 2)
}

func TestProcessReclassifyTask(t *testing.T) {
	ctx := context.Background()

	t.Run("roster growth improves pending documents", func(t *testing.T) {
		docRepo := newFakeDocumentRepo()
		empRepo := newFakeEmployeeRepo() // empty roster at upload time
		svc := NewService(docRepo, empRepo, newFakeFileSystem(), &fakeTaskQueue{})

		uploaded, err := svc.UploadDocument(ctx, uploadRequest("nomina_juan_jose_garcia_enero.pdf"))
		require.NoError(t, err)
		require.Nil(t, uploaded.Classification.EmployeeID)

		// Juan joins the roster, then a reclassification pass runs
		empRepo.roster = testRoster()
		task := &document.ReclassifyTask{
			ID:          kernel.NewTaskID("task-1"),
			TenantID:    testTenant,
			MaxAttempts: 3,
		}
		require.NoError(t, svc.ProcessReclassifyTask(ctx, task))

		updated, err := docRepo.GetByID(ctx, uploaded.ID)
		require.NoError(t, err)
		require.NotNil(t, updated.EmployeeID)
		assert.Equal(t, kernel.NewEmployeeID("emp-juan"), *updated.EmployeeID)
		assert.Equal(t, document.ReviewStatusAutoAccepted, updated.ReviewStatus)
	})

	t.Run("reviewed documents are not revisited", func(t *testing.T) {
		svc, repo, _, _, _ := newTestService()

		uploaded, err := svc.UploadDocument(ctx, uploadRequest("archivo_random.pdf"))
		require.NoError(t, err)

		category := "contrato"
		_, err = svc.ReviewClassification(ctx, testTenant, uploaded.ID, testReviewer, document.ReviewDecisionRequest{
			Category: &category,
		})
		require.NoError(t, err)

		task := &document.ReclassifyTask{ID: kernel.NewTaskID("task-2"), TenantID: testTenant, MaxAttempts: 3}
		require.NoError(t, svc.ProcessReclassifyTask(ctx, task))

		after, err := repo.GetByID(ctx, uploaded.ID)
		require.NoError(t, err)
		assert.Equal(t, "contrato", after.Category)
		assert.Equal(t, document.ReviewStatusReassigned, after.ReviewStatus)
	})
}
