package document

import (
	"time"

	"plantel/pkg/kernel"
)

// ReclassifyTask asks the worker to re-run the classifier over a tenant's
// pending documents, typically after the roster changed.
type ReclassifyTask struct {
	ID       kernel.TaskID   `json:"id"`
	TenantID kernel.TenantID `json:"tenant_id"`

	// Retry bookkeeping
	Attempt     int       `json:"attempt"`
	MaxAttempts int       `json:"max_attempts"`
	EnqueuedAt  time.Time `json:"enqueued_at"`
}

// CanRetry checks whether the task has retry budget left
func (t *ReclassifyTask) CanRetry() bool {
	return t.Attempt < t.MaxAttempts
}
