package documentsrv

import (
	"context"
	"time"

	"plantel/pkg/kernel"
	"plantel/pkg/logx"
	"plantel/workforce/document"
	"plantel/workforce/document/docclass"

	"github.com/google/uuid"
)

const maxReclassifyAttempts = 3

// RequestReclassification queues a reclassification pass for a tenant. It
// implements document.Reclassifier so roster changes in other contexts can
// trigger it without importing this package.
func (s *Service) RequestReclassification(ctx context.Context, tenantID kernel.TenantID) error {
	_, err := s.Reclassify(ctx, tenantID)
	return err
}

// Reclassify queues a reclassification pass and returns an acknowledgement
func (s *Service) Reclassify(ctx context.Context, tenantID kernel.TenantID) (*document.ReclassifyResponse, error) {
	task := &document.ReclassifyTask{
		ID:          kernel.NewTaskID(uuid.NewString()),
		TenantID:    tenantID,
		Attempt:     0,
		MaxAttempts: maxReclassifyAttempts,
		EnqueuedAt:  time.Now(),
	}

	if err := s.queue.Enqueue(ctx, task.ID, task); err != nil {
		return nil, document.ErrQueueEnqueueFailed().
			WithDetail("task_id", task.ID).
			WithDetail("tenant_id", tenantID).
			WithDetails(map[string]interface{}{
				"error": err.Error(),
			})
	}

	logx.Infof("Reclassification queued: TaskID=%s, TenantID=%s", task.ID, tenantID)
	return &document.ReclassifyResponse{
		TaskID:   task.ID,
		TenantID: tenantID,
		Message:  "Reclassification queued",
	}, nil
}

// ProcessReclassifyTask re-runs the classifier over a tenant's pending
// documents against the current roster. Only documents the classifier can
// improve are updated; reviewed documents are never touched.
func (s *Service) ProcessReclassifyTask(ctx context.Context, task *document.ReclassifyTask) error {
	logx.Infof("Processing reclassification: TaskID=%s, TenantID=%s, Attempt=%d/%d",
		task.ID, task.TenantID, task.Attempt+1, task.MaxAttempts)

	roster, err := s.employeeRepo.ListRoster(ctx, task.TenantID)
	if err != nil {
		return s.handleTaskError(ctx, task, err)
	}

	docs, err := s.repo.ListReclassifiable(ctx, task.TenantID)
	if err != nil {
		return s.handleTaskError(ctx, task, err)
	}

	updated := 0
	for i := range docs {
		doc := &docs[i]
		result := docclass.Classify(doc.FileName, roster)

		if !classificationImproves(doc, result) {
			continue
		}

		doc.ApplyClassification(result)
		if err := s.repo.Update(ctx, doc.ID, doc); err != nil {
			logx.Warnf("Failed to update document %s during reclassification: %v", doc.ID, err)
			continue
		}
		updated++
	}

	logx.Infof("Reclassification done: TaskID=%s, TenantID=%s, Scanned=%d, Updated=%d",
		task.ID, task.TenantID, len(docs), updated)
	return nil
}

// classificationImproves reports whether a fresh result is strictly better
// than what the document already carries: a new employee match, a stronger
// match, or a more specific category.
func classificationImproves(doc *document.Document, result docclass.Result) bool {
	if result.Employee != nil && !doc.HasEmployee() {
		return true
	}
	if result.Employee != nil && result.MatchStrength > doc.MatchStrength {
		return true
	}
	// The category of a stored filename only changes when the keyword table
	// does. Keeping this branch lets a pass after a table update upgrade
	// fallback documents to the new, more specific category.
	if doc.Category == docclass.FallbackCategoryID && result.DocumentCategory != docclass.FallbackCategoryID {
		return true
	}
	return false
}

// handleTaskError retries with exponential backoff until the attempt budget
// runs out
func (s *Service) handleTaskError(ctx context.Context, task *document.ReclassifyTask, err error) error {
	task.Attempt++

	if task.CanRetry() {
		retryDelay := time.Duration(1<<uint(task.Attempt)) * time.Minute

		logx.Warnf("Reclassification failed, will retry: TaskID=%s, Attempt=%d/%d, Error=%v",
			task.ID, task.Attempt, task.MaxAttempts, err)

		if queueErr := s.queue.EnqueueDelayed(ctx, task.ID, task, retryDelay); queueErr != nil {
			logx.Errorf("Failed to enqueue reclassification retry: %v", queueErr)
			return document.ErrQueueEnqueueFailed().
				WithDetail("task_id", task.ID).
				WithDetails(map[string]interface{}{
					"error": queueErr.Error(),
				})
		}

		return document.ErrRegistry.NewWithCause(document.CodeQueueDequeueFailed, err).
			WithDetail("task_id", task.ID).
			WithDetail("will_retry", true)
	}

	logx.Errorf("Reclassification permanently failed: TaskID=%s, TenantID=%s, Attempts=%d/%d, Error=%v",
		task.ID, task.TenantID, task.Attempt, task.MaxAttempts, err)

	return document.ErrTaskMaxRetriesReached().
		WithDetail("task_id", task.ID).
		WithDetail("tenant_id", task.TenantID).
		WithDetail("final_attempt", task.Attempt)
}
