package taskspgxstore

import (
	"strings"
	"testing"
	"time"

	"github.com/jrazmi/taskdesk/core/repositories/tasksrepo"
	"github.com/jrazmi/taskdesk/sdk/validation"
)

func TestBuildUpdateQueryAlwaysRefreshesUpdatedAt(t *testing.T) {
	query, args := buildUpdateQuery(7, tasksrepo.UpdateTask{})

	if !strings.HasPrefix(query, "UPDATE tasks SET updated_at = now()") {
		t.Errorf("query must start with the updated_at refresh: %s", query)
	}
	if !strings.Contains(query, "WHERE task_id = @task_id") {
		t.Errorf("missing task_id predicate: %s", query)
	}
	if !strings.Contains(query, "RETURNING "+taskColumns) {
		t.Errorf("missing returning clause: %s", query)
	}
	if args["task_id"] != int64(7) {
		t.Errorf("expected task_id arg 7, got %v", args["task_id"])
	}
	if len(args) != 1 {
		t.Errorf("empty update should only carry task_id, got %v", args)
	}
}

func TestBuildUpdateQuerySetFields(t *testing.T) {
	due := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	ut := tasksrepo.UpdateTask{
		Title:   validation.Some("new title"),
		Status:  validation.Some("completed"),
		DueDate: validation.Some(due),
		Tags:    validation.Some([]string{"a", "b"}),
	}

	query, args := buildUpdateQuery(3, ut)

	for _, fragment := range []string{
		"title = @title",
		"status = @status",
		"due_date = @due_date",
		"tags = @tags",
	} {
		if !strings.Contains(query, fragment) {
			t.Errorf("missing fragment %q in query: %s", fragment, query)
		}
	}
	for _, absent := range []string{"description =", "priority =", "assigned_to ="} {
		if strings.Contains(query, absent) {
			t.Errorf("unset field leaked into query: %q in %s", absent, query)
		}
	}

	if args["title"] != "new title" {
		t.Errorf("title arg: %v", args["title"])
	}
	if got, ok := args["due_date"].(*time.Time); !ok || !got.Equal(due) {
		t.Errorf("due_date arg: %v", args["due_date"])
	}
}

func TestBuildUpdateQueryNullClearsColumn(t *testing.T) {
	ut := tasksrepo.UpdateTask{
		Description: validation.Null[string](),
		AssignedTo:  validation.Null[string](),
		DueDate:     validation.Null[time.Time](),
	}

	query, args := buildUpdateQuery(5, ut)

	for _, fragment := range []string{
		"description = @description",
		"assigned_to = @assigned_to",
		"due_date = @due_date",
	} {
		if !strings.Contains(query, fragment) {
			t.Errorf("missing fragment %q in query: %s", fragment, query)
		}
	}

	if args["description"] != (*string)(nil) {
		t.Errorf("null description should bind a nil pointer, got %#v", args["description"])
	}
	if args["due_date"] != (*time.Time)(nil) {
		t.Errorf("null due_date should bind a nil pointer, got %#v", args["due_date"])
	}
}

func TestApplyFilter(t *testing.T) {
	conditions, args := applyFilter(tasksrepo.QueryFilter{})
	if len(conditions) != 0 || len(args) != 0 {
		t.Errorf("empty filter should produce nothing, got %v %v", conditions, args)
	}

	status := tasksrepo.StatusPending
	priority := tasksrepo.PriorityHigh
	assigned := "alice"
	conditions, args = applyFilter(tasksrepo.QueryFilter{
		Status:     &status,
		Priority:   &priority,
		AssignedTo: &assigned,
	})

	if len(conditions) != 3 {
		t.Fatalf("expected 3 conditions, got %v", conditions)
	}
	joined := strings.Join(conditions, " AND ")
	for _, fragment := range []string{"status = @status", "priority = @priority", "assigned_to = @assigned_to"} {
		if !strings.Contains(joined, fragment) {
			t.Errorf("missing condition %q in %q", fragment, joined)
		}
	}
	if args["status"] != status || args["priority"] != priority || args["assigned_to"] != assigned {
		t.Errorf("args not bound: %v", args)
	}
}
