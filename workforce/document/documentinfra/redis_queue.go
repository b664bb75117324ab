package documentinfra

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"plantel/pkg/kernel"
	"plantel/workforce/document"

	"github.com/redis/go-redis/v9"
)

// RedisTaskQueue implements document.TaskQueue using Redis
type RedisTaskQueue struct {
	client    *redis.Client
	queueName string
}

// NewRedisTaskQueue creates a new Redis-based task queue
func NewRedisTaskQueue(client *redis.Client, queueName string) document.TaskQueue {
	return &RedisTaskQueue{
		client:    client,
		queueName: queueName,
	}
}

// Enqueue adds a task to the queue
func (q *RedisTaskQueue) Enqueue(ctx context.Context, taskID kernel.TaskID, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload for task %s: %w", taskID, err)
	}

	if err := q.client.LPush(ctx, q.queueName, data).Err(); err != nil {
		return fmt.Errorf("enqueue task %s: %w", taskID, err)
	}

	return nil
}

// Dequeue gets a task from the queue (blocking with timeout)
func (q *RedisTaskQueue) Dequeue(ctx context.Context, timeout time.Duration) ([]byte, error) {
	result, err := q.client.BRPop(ctx, timeout, q.queueName).Result()
	if err != nil {
		// redis.Nil is returned when timeout occurs
		if err == redis.Nil {
			return nil, nil // No tasks available
		}
		return nil, fmt.Errorf("dequeue task: %w", err)
	}

	if len(result) < 2 {
		return nil, fmt.Errorf("invalid result from queue: expected 2 elements, got %d", len(result))
	}

	return []byte(result[1]), nil
}

// EnqueueDelayed schedules a task for later processing (for retries)
func (q *RedisTaskQueue) EnqueueDelayed(ctx context.Context, taskID kernel.TaskID, payload any, delay time.Duration) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal delayed payload for task %s: %w", taskID, err)
	}

	score := float64(time.Now().Add(delay).Unix())
	delayedQueue := q.queueName + ":delayed"

	if err := q.client.ZAdd(ctx, delayedQueue, redis.Z{
		Score:  score,
		Member: data,
	}).Err(); err != nil {
		return fmt.Errorf("enqueue delayed task %s: %w", taskID, err)
	}

	return nil
}

// MoveDelayedToReady moves delayed tasks that are ready to the main queue
func (q *RedisTaskQueue) MoveDelayedToReady(ctx context.Context) (int, error) {
	delayedQueue := q.queueName + ":delayed"
	now := float64(time.Now().Unix())

	// Get tasks ready to process
	tasks, err := q.client.ZRangeByScore(ctx, delayedQueue, &redis.ZRangeBy{
		Min: "-inf",
		Max: fmt.Sprintf("%f", now),
	}).Result()

	if err != nil {
		return 0, fmt.Errorf("get delayed tasks: %w", err)
	}

	if len(tasks) == 0 {
		return 0, nil
	}

	// Use pipeline for atomic operations
	pipe := q.client.Pipeline()
	for _, task := range tasks {
		pipe.LPush(ctx, q.queueName, task)
		pipe.ZRem(ctx, delayedQueue, task)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return 0, fmt.Errorf("move delayed tasks to ready: %w", err)
	}

	return len(tasks), nil
}

// Size returns the number of tasks in the queue
func (q *RedisTaskQueue) Size(ctx context.Context) (int64, error) {
	size, err := q.client.LLen(ctx, q.queueName).Result()
	if err != nil {
		return 0, fmt.Errorf("get queue size: %w", err)
	}
	return size, nil
}

// DelayedSize returns the number of delayed tasks
func (q *RedisTaskQueue) DelayedSize(ctx context.Context) (int64, error) {
	delayedQueue := q.queueName + ":delayed"
	size, err := q.client.ZCard(ctx, delayedQueue).Result()
	if err != nil {
		return 0, fmt.Errorf("get delayed queue size: %w", err)
	}
	return size, nil
}

// Clear removes all tasks from the queue (use with caution - for testing/maintenance)
func (q *RedisTaskQueue) Clear(ctx context.Context) error {
	pipe := q.client.Pipeline()
	pipe.Del(ctx, q.queueName)
	pipe.Del(ctx, q.queueName+":delayed")

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("clear queue: %w", err)
	}

	return nil
}

// Ping checks if Redis connection is alive
func (q *RedisTaskQueue) Ping(ctx context.Context) error {
	return q.client.Ping(ctx).Err()
}
