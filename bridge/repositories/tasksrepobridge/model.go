package tasksrepobridge

import (
	"time"

	"github.com/jrazmi/taskdesk/sdk/validation"
)

// Task is the wire representation of a task record.
type Task struct {
	ID          int64    `json:"id"`
	Title       string   `json:"title"`
	Description *string  `json:"description"`
	Status      string   `json:"status"`
	Priority    string   `json:"priority"`
	AssignedTo  *string  `json:"assigned_to"`
	DueDate     *string  `json:"due_date"`
	Tags        []string `json:"tags"`
	CreatedAt   string   `json:"created_at"`
	UpdatedAt   *string  `json:"updated_at"`
}

// CreateTaskInput is the create request payload. Status is not accepted;
// new tasks always start pending.
type CreateTaskInput struct {
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	Priority    string     `json:"priority"`
	AssignedTo  *string    `json:"assigned_to"`
	DueDate     *time.Time `json:"due_date"`
	Tags        []string   `json:"tags"`
}

// UpdateTaskInput is the partial update payload. Optional fields keep the
// absent / null / value distinction from the JSON body.
type UpdateTaskInput struct {
	Title       validation.Optional[string]    `json:"title"`
	Description validation.Optional[string]    `json:"description"`
	Status      validation.Optional[string]    `json:"status"`
	Priority    validation.Optional[string]    `json:"priority"`
	AssignedTo  validation.Optional[string]    `json:"assigned_to"`
	DueDate     validation.Optional[time.Time] `json:"due_date"`
	Tags        validation.Optional[[]string]  `json:"tags"`
}

// TaskListResponse is a page of tasks plus the unpaginated total.
type TaskListResponse struct {
	Tasks    []Task `json:"tasks"`
	Total    int    `json:"total"`
	Page     int    `json:"page"`
	PageSize int    `json:"size"`
}

// StatsResponse is the aggregate summary. By-status and by-priority maps
// always carry every enum value, including zeros.
type StatsResponse struct {
	TotalTasks        int            `json:"total"`
	ByStatus          map[string]int `json:"by_status"`
	ByPriority        map[string]int `json:"by_priority"`
	UpcomingDeadlines int            `json:"upcoming_deadlines"`
	Overdue           int            `json:"overdue"`
}
