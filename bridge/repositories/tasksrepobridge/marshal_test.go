package tasksrepobridge

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/jrazmi/taskdesk/core/repositories/tasksrepo"
)

func TestMarshalToBridge(t *testing.T) {
	created := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)
	updated := created.Add(time.Hour)
	desc := "a description"

	task := tasksrepo.Task{
		TaskID:      9,
		Title:       "ship release",
		Description: &desc,
		Status:      tasksrepo.StatusInProgress,
		Priority:    tasksrepo.PriorityHigh,
		Tags:        []string{"release"},
		CreatedAt:   created,
		UpdatedAt:   &updated,
	}

	bt := MarshalToBridge(task)

	if bt.ID != 9 || bt.Status != "in_progress" || bt.Priority != "high" {
		t.Errorf("unexpected wire task: %+v", bt)
	}
	if bt.CreatedAt != "2026-02-01T10:00:00Z" {
		t.Errorf("created_at format: %q", bt.CreatedAt)
	}
	if bt.UpdatedAt == nil || *bt.UpdatedAt != "2026-02-01T11:00:00Z" {
		t.Errorf("updated_at format: %v", bt.UpdatedAt)
	}
	if bt.DueDate != nil {
		t.Errorf("nil due_date should stay nil, got %v", bt.DueDate)
	}
}

func TestMarshalToBridgeNilTagsEncodeAsEmptyList(t *testing.T) {
	task := tasksrepo.Task{
		TaskID:    1,
		Title:     "t",
		Status:    tasksrepo.StatusPending,
		Priority:  tasksrepo.PriorityMedium,
		CreatedAt: time.Now(),
	}

	out, err := json.Marshal(MarshalToBridge(task))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(out), `"tags":[]`) {
		t.Errorf("expected empty tags array, got %s", out)
	}
	if !strings.Contains(string(out), `"updated_at":null`) {
		t.Errorf("expected null updated_at for never updated task, got %s", out)
	}
}

func TestMarshalStatsToBridgeIncludesZeroCounts(t *testing.T) {
	stats := tasksrepo.Statistics{
		Total:    2,
		ByStatus: map[tasksrepo.Status]int{tasksrepo.StatusPending: 2},
		ByPriority: map[tasksrepo.Priority]int{
			tasksrepo.PriorityUrgent: 2,
		},
	}

	resp := MarshalStatsToBridge(stats)

	if len(resp.ByStatus) != len(tasksrepo.Statuses) {
		t.Errorf("every status must be present, got %v", resp.ByStatus)
	}
	if len(resp.ByPriority) != len(tasksrepo.Priorities) {
		t.Errorf("every priority must be present, got %v", resp.ByPriority)
	}
	if resp.ByStatus["completed"] != 0 {
		t.Errorf("missing statuses must report zero, got %v", resp.ByStatus)
	}
	if resp.ByPriority["urgent"] != 2 {
		t.Errorf("counts must carry through, got %v", resp.ByPriority)
	}
}

func TestListResponseWireKeys(t *testing.T) {
	out, err := json.Marshal(TaskListResponse{
		Tasks:    MarshalListToBridge(nil),
		Total:    15,
		Page:     2,
		PageSize: 10,
	})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	for _, key := range []string{`"tasks":[]`, `"total":15`, `"page":2`, `"size":10`} {
		if !strings.Contains(string(out), key) {
			t.Errorf("expected %s in envelope, got %s", key, out)
		}
	}
	if strings.Contains(string(out), "page_size") {
		t.Errorf("envelope must use size, got %s", out)
	}
}

func TestStatsResponseWireKeys(t *testing.T) {
	out, err := json.Marshal(MarshalStatsToBridge(tasksrepo.Statistics{Total: 3}))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	for _, key := range []string{`"total":3`, `"by_status"`, `"by_priority"`, `"upcoming_deadlines"`, `"overdue"`} {
		if !strings.Contains(string(out), key) {
			t.Errorf("expected %s in stats body, got %s", key, out)
		}
	}
	if strings.Contains(string(out), "total_tasks") {
		t.Errorf("stats body must use total, got %s", out)
	}
}

func TestMarshalStatsConsistency(t *testing.T) {
	stats := tasksrepo.Statistics{
		Total: 7,
		ByStatus: map[tasksrepo.Status]int{
			tasksrepo.StatusPending:    3,
			tasksrepo.StatusInProgress: 2,
			tasksrepo.StatusCompleted:  1,
			tasksrepo.StatusCancelled:  1,
		},
		ByPriority: map[tasksrepo.Priority]int{
			tasksrepo.PriorityLow:    1,
			tasksrepo.PriorityMedium: 4,
			tasksrepo.PriorityHigh:   1,
			tasksrepo.PriorityUrgent: 1,
		},
	}

	resp := MarshalStatsToBridge(stats)

	statusSum := 0
	for _, n := range resp.ByStatus {
		statusSum += n
	}
	prioritySum := 0
	for _, n := range resp.ByPriority {
		prioritySum += n
	}

	if resp.TotalTasks != statusSum || resp.TotalTasks != prioritySum {
		t.Errorf("total %d must equal status sum %d and priority sum %d", resp.TotalTasks, statusSum, prioritySum)
	}
}

func TestParseFilter(t *testing.T) {
	filter, err := parseFilter(QueryParams{Status: "pending", Priority: "high", AssignedTo: "bob"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if filter.Status == nil || *filter.Status != tasksrepo.StatusPending {
		t.Errorf("status filter: %+v", filter.Status)
	}
	if filter.Priority == nil || *filter.Priority != tasksrepo.PriorityHigh {
		t.Errorf("priority filter: %+v", filter.Priority)
	}
	if filter.AssignedTo == nil || *filter.AssignedTo != "bob" {
		t.Errorf("assigned_to filter: %+v", filter.AssignedTo)
	}

	if _, err := parseFilter(QueryParams{Status: "paused"}); err == nil {
		t.Error("unknown status filter must fail")
	}
	if _, err := parseFilter(QueryParams{Priority: "severe"}); err == nil {
		t.Error("unknown priority filter must fail")
	}

	filter, err = parseFilter(QueryParams{})
	if err != nil {
		t.Fatalf("empty params: %v", err)
	}
	if filter.Status != nil || filter.Priority != nil || filter.AssignedTo != nil {
		t.Errorf("empty params must produce empty filter: %+v", filter)
	}
}

func TestUpdateTaskInputDecoding(t *testing.T) {
	body := `{"title":"new","description":null,"tags":["a","b"]}`

	var input UpdateTaskInput
	if err := json.Unmarshal([]byte(body), &input); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	ut := MarshalUpdateToRepository(input)

	if !ut.Title.Set || ut.Title.Value != "new" {
		t.Errorf("title: %+v", ut.Title)
	}
	if !ut.Description.Set || ut.Description.Valid {
		t.Errorf("explicit null description: %+v", ut.Description)
	}
	if ut.Status.Set {
		t.Errorf("absent status must stay unset: %+v", ut.Status)
	}
	if !ut.Tags.Set || len(ut.Tags.Value) != 2 {
		t.Errorf("tags: %+v", ut.Tags)
	}
}
