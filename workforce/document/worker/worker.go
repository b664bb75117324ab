package worker

import (
	"context"
	"encoding/json"
	"time"

	"plantel/pkg/logx"
	"plantel/workforce/document"
	"plantel/workforce/document/documentsrv"
)

type ReclassifyWorker struct {
	service *documentsrv.Service
	queue   document.TaskQueue
	workers int
}

func NewReclassifyWorker(service *documentsrv.Service, queue document.TaskQueue, workers int) *ReclassifyWorker {
	return &ReclassifyWorker{
		service: service,
		queue:   queue,
		workers: workers,
	}
}

func (w *ReclassifyWorker) Start(ctx context.Context) {
	logx.Infof("Starting %d reclassification workers", w.workers)

	// Start delayed task mover
	go w.moveDelayedTasks(ctx)

	// Start worker pool
	for i := 0; i < w.workers; i++ {
		go w.processTasks(ctx, i)
	}
}

func (w *ReclassifyWorker) processTasks(ctx context.Context, workerID int) {
	logx.Infof("Worker %d started", workerID)

	for {
		select {
		case <-ctx.Done():
			logx.Infof("Worker %d stopping", workerID)
			return
		default:
			// Dequeue with 5 second timeout
			data, err := w.queue.Dequeue(ctx, 5*time.Second)
			if err != nil {
				logx.Errorf("Worker %d dequeue error: %v", workerID, err)
				continue
			}

			// Check if data is empty (queue timeout - no tasks available)
			if len(data) == 0 {
				continue
			}

			// Parse task
			var task document.ReclassifyTask
			if err := json.Unmarshal(data, &task); err != nil {
				logx.Errorf("Worker %d unmarshal error: %v (data: %s)", workerID, err, string(data))
				continue
			}

			// Process task
			logx.Infof("Worker %d processing task: %s", workerID, task.ID)
			if err := w.service.ProcessReclassifyTask(ctx, &task); err != nil {
				logx.Errorf("Worker %d task failed: %v", workerID, err)
			}
		}
	}
}

func (w *ReclassifyWorker) moveDelayedTasks(ctx context.Context) {
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			count, err := w.queue.MoveDelayedToReady(ctx)
			if err != nil {
				logx.Errorf("Failed to move delayed tasks: %v", err)
			} else if count > 0 {
				logx.Infof("Moved %d delayed tasks to ready queue", count)
			}
		}
	}
}
