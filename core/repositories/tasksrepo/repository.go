// Package tasksrepo provides business access to task records.
package tasksrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jrazmi/taskdesk/core/scaffolding/fop"
	"github.com/jrazmi/taskdesk/sdk/logger"
)

// Set of error values for CRUD operations on the task resource.
var (
	ErrNotFound = errors.New("task not found")
)

// Storer defines the data storage interface for tasks.
type Storer interface {
	Create(ctx context.Context, nt CreateTask) (Task, error)
	GetByID(ctx context.Context, taskID int64) (Task, error)
	List(ctx context.Context, filter QueryFilter, page fop.Page) ([]Task, int, error)
	Update(ctx context.Context, taskID int64, ut UpdateTask) (Task, error)
	Delete(ctx context.Context, taskID int64) error
	Stats(ctx context.Context, now time.Time) (Statistics, error)
}

// Repository provides access to task storage. The clock is injected so
// every operation reads it exactly once and tests can pin it.
type Repository struct {
	log    *logger.Logger
	storer Storer
	now    func() time.Time
}

func NewRepository(log *logger.Logger, storer Storer) *Repository {
	return &Repository{
		log:    log,
		storer: storer,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// NewRepositoryWithClock constructs a repository with a fixed clock source.
func NewRepositoryWithClock(log *logger.Logger, storer Storer, now func() time.Time) *Repository {
	return &Repository{
		log:    log,
		storer: storer,
		now:    now,
	}
}

// Create validates and stores a new task. New tasks always start pending.
func (r *Repository) Create(ctx context.Context, nt CreateTask) (Task, error) {
	nt, err := ValidateCreate(nt, r.now())
	if err != nil {
		return Task{}, fmt.Errorf("task repository create: %w", err)
	}

	task, err := r.storer.Create(ctx, nt)
	if err != nil {
		return Task{}, fmt.Errorf("task repository create: %w", err)
	}

	r.log.InfoContext(ctx, "task created", "task_id", task.TaskID)
	return task, nil
}

// GetByID fetches a single task.
func (r *Repository) GetByID(ctx context.Context, taskID int64) (Task, error) {
	task, err := r.storer.GetByID(ctx, taskID)
	if err != nil {
		return Task{}, fmt.Errorf("task repository get by id: %w", err)
	}
	return task, nil
}

// List returns a page of tasks plus the total count ignoring pagination.
func (r *Repository) List(ctx context.Context, filter QueryFilter, page fop.Page) ([]Task, int, error) {
	tasks, total, err := r.storer.List(ctx, filter, page)
	if err != nil {
		return nil, 0, fmt.Errorf("task repository list: %w", err)
	}
	return tasks, total, nil
}

// Update applies a partial update. Absent fields are untouched; the store
// refreshes updated_at even when every provided field matches the current
// value. Concurrent updates are last-writer-wins.
func (r *Repository) Update(ctx context.Context, taskID int64, ut UpdateTask) (Task, error) {
	ut, err := ValidateUpdate(ut)
	if err != nil {
		return Task{}, fmt.Errorf("task repository update: %w", err)
	}

	task, err := r.storer.Update(ctx, taskID, ut)
	if err != nil {
		return Task{}, fmt.Errorf("task repository update: %w", err)
	}

	r.log.InfoContext(ctx, "task updated", "task_id", task.TaskID)
	return task, nil
}

// Delete removes a task permanently. Deleting an unknown id reports
// ErrNotFound, so a repeated delete is not idempotent at the API level.
func (r *Repository) Delete(ctx context.Context, taskID int64) error {
	if err := r.storer.Delete(ctx, taskID); err != nil {
		return fmt.Errorf("task repository delete: %w", err)
	}

	r.log.InfoContext(ctx, "task deleted", "task_id", taskID)
	return nil
}

// Stats returns aggregate counts computed against a single clock sample so
// the figures are mutually consistent.
func (r *Repository) Stats(ctx context.Context) (Statistics, error) {
	stats, err := r.storer.Stats(ctx, r.now())
	if err != nil {
		return Statistics{}, fmt.Errorf("task repository stats: %w", err)
	}
	return stats, nil
}
