package tasksrepo

import (
	"fmt"
	"time"

	"github.com/jrazmi/taskdesk/sdk/validation"
)

// Status is the lifecycle state of a task.
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

// Statuses lists every valid status in a stable order.
var Statuses = []Status{StatusPending, StatusInProgress, StatusCompleted, StatusCancelled}

// ParseStatus is the single decode point for status values.
func ParseStatus(value string) (Status, error) {
	for _, s := range Statuses {
		if value == string(s) {
			return s, nil
		}
	}
	return "", fmt.Errorf("invalid status %q", value)
}

// Priority is the urgency level of a task.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// Priorities lists every valid priority in a stable order.
var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent}

// ParsePriority is the single decode point for priority values.
func ParsePriority(value string) (Priority, error) {
	for _, p := range Priorities {
		if value == string(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("invalid priority %q", value)
}

// Task is the stored task entity. UpdatedAt stays nil until the first
// update.
type Task struct {
	TaskID      int64      `db:"task_id"`
	Title       string     `db:"title"`
	Description *string    `db:"description"`
	Status      Status     `db:"status"`
	Priority    Priority   `db:"priority"`
	AssignedTo  *string    `db:"assigned_to"`
	DueDate     *time.Time `db:"due_date"`
	Tags        []string   `db:"tags"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   *time.Time `db:"updated_at"`
}

// CreateTask carries the raw create input. Status is not accepted; new
// tasks always start pending. Priority arrives as a raw string and is
// parsed during validation.
type CreateTask struct {
	Title       string
	Description *string
	Priority    string
	AssignedTo  *string
	DueDate     *time.Time
	Tags        []string
}

// UpdateTask carries a partial update. Each field distinguishes absent,
// null, and value so unset fields stay untouched while explicit nulls clear
// nullable columns.
type UpdateTask struct {
	Title       validation.Optional[string]
	Description validation.Optional[string]
	Status      validation.Optional[string]
	Priority    validation.Optional[string]
	AssignedTo  validation.Optional[string]
	DueDate     validation.Optional[time.Time]
	Tags        validation.Optional[[]string]
}

// IsZero reports whether the update carries no fields at all.
func (ut UpdateTask) IsZero() bool {
	return !ut.Title.Set && !ut.Description.Set && !ut.Status.Set &&
		!ut.Priority.Set && !ut.AssignedTo.Set && !ut.DueDate.Set && !ut.Tags.Set
}

// Statistics is an aggregate snapshot taken at a single point in time.
type Statistics struct {
	Total             int
	ByStatus          map[Status]int
	ByPriority        map[Priority]int
	UpcomingDeadlines int
	Overdue           int
}
