package tasksrepobridge

import (
	"time"

	"github.com/jrazmi/taskdesk/core/repositories/tasksrepo"
	"github.com/jrazmi/taskdesk/sdk/validation"
)

// MarshalToBridge converts a repository task to its wire representation.
func MarshalToBridge(task tasksrepo.Task) Task {
	tags := task.Tags
	if tags == nil {
		tags = []string{}
	}

	return Task{
		ID:          task.TaskID,
		Title:       task.Title,
		Description: task.Description,
		Status:      string(task.Status),
		Priority:    string(task.Priority),
		AssignedTo:  task.AssignedTo,
		DueDate:     formatTimePtr(task.DueDate),
		Tags:        tags,
		CreatedAt:   task.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   formatTimePtr(task.UpdatedAt),
	}
}

// MarshalListToBridge converts a list of repository tasks to wire models.
func MarshalListToBridge(tasks []tasksrepo.Task) []Task {
	bridgeTasks := make([]Task, len(tasks))
	for i, task := range tasks {
		bridgeTasks[i] = MarshalToBridge(task)
	}
	return bridgeTasks
}

// MarshalCreateToRepository converts bridge create input to repository
// input.
func MarshalCreateToRepository(input CreateTaskInput) tasksrepo.CreateTask {
	return tasksrepo.CreateTask{
		Title:       input.Title,
		Description: input.Description,
		Priority:    input.Priority,
		AssignedTo:  input.AssignedTo,
		DueDate:     input.DueDate,
		Tags:        input.Tags,
	}
}

// MarshalUpdateToRepository converts bridge update input to repository
// input.
func MarshalUpdateToRepository(input UpdateTaskInput) tasksrepo.UpdateTask {
	return tasksrepo.UpdateTask{
		Title:       input.Title,
		Description: input.Description,
		Status:      input.Status,
		Priority:    input.Priority,
		AssignedTo:  input.AssignedTo,
		DueDate:     input.DueDate,
		Tags:        input.Tags,
	}
}

// MarshalStatsToBridge converts repository statistics to the wire summary.
func MarshalStatsToBridge(stats tasksrepo.Statistics) StatsResponse {
	byStatus := make(map[string]int, len(tasksrepo.Statuses))
	for _, s := range tasksrepo.Statuses {
		byStatus[string(s)] = stats.ByStatus[s]
	}

	byPriority := make(map[string]int, len(tasksrepo.Priorities))
	for _, p := range tasksrepo.Priorities {
		byPriority[string(p)] = stats.ByPriority[p]
	}

	return StatsResponse{
		TotalTasks:        stats.Total,
		ByStatus:          byStatus,
		ByPriority:        byPriority,
		UpcomingDeadlines: stats.UpcomingDeadlines,
		Overdue:           stats.Overdue,
	}
}

func formatTimePtr(t *time.Time) *string {
	return validation.StringPtrIfNotEmpty(validation.FormatTimePtrToString(t))
}
