package tasksrepo_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jrazmi/taskdesk/core/repositories/tasksrepo"
	"github.com/jrazmi/taskdesk/core/scaffolding/fop"
	"github.com/jrazmi/taskdesk/sdk/logger"
	"github.com/jrazmi/taskdesk/sdk/validation"
)

// stubStorer lets each test override only the calls it cares about.
type stubStorer struct {
	createFunc func(ctx context.Context, nt tasksrepo.CreateTask) (tasksrepo.Task, error)
	getFunc    func(ctx context.Context, taskID int64) (tasksrepo.Task, error)
	listFunc   func(ctx context.Context, filter tasksrepo.QueryFilter, page fop.Page) ([]tasksrepo.Task, int, error)
	updateFunc func(ctx context.Context, taskID int64, ut tasksrepo.UpdateTask) (tasksrepo.Task, error)
	deleteFunc func(ctx context.Context, taskID int64) error
	statsFunc  func(ctx context.Context, now time.Time) (tasksrepo.Statistics, error)
}

var _ tasksrepo.Storer = (*stubStorer)(nil)

func (s *stubStorer) Create(ctx context.Context, nt tasksrepo.CreateTask) (tasksrepo.Task, error) {
	return s.createFunc(ctx, nt)
}

func (s *stubStorer) GetByID(ctx context.Context, taskID int64) (tasksrepo.Task, error) {
	return s.getFunc(ctx, taskID)
}

func (s *stubStorer) List(ctx context.Context, filter tasksrepo.QueryFilter, page fop.Page) ([]tasksrepo.Task, int, error) {
	return s.listFunc(ctx, filter, page)
}

func (s *stubStorer) Update(ctx context.Context, taskID int64, ut tasksrepo.UpdateTask) (tasksrepo.Task, error) {
	return s.updateFunc(ctx, taskID, ut)
}

func (s *stubStorer) Delete(ctx context.Context, taskID int64) error {
	return s.deleteFunc(ctx, taskID)
}

func (s *stubStorer) Stats(ctx context.Context, now time.Time) (tasksrepo.Statistics, error) {
	return s.statsFunc(ctx, now)
}

func newTestRepository(storer tasksrepo.Storer, fixed time.Time) *tasksrepo.Repository {
	return tasksrepo.NewRepositoryWithClock(logger.NewDefault(), storer, func() time.Time { return fixed })
}

func TestCreateValidatesBeforeStore(t *testing.T) {
	called := false
	storer := &stubStorer{
		createFunc: func(ctx context.Context, nt tasksrepo.CreateTask) (tasksrepo.Task, error) {
			called = true
			return tasksrepo.Task{}, nil
		},
	}
	repo := newTestRepository(storer, now)

	_, err := repo.Create(context.Background(), tasksrepo.CreateTask{Title: ""})
	if err == nil {
		t.Fatal("expected validation error")
	}
	var verr *tasksrepo.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError in chain, got %v", err)
	}
	if called {
		t.Error("store must not be reached when validation fails")
	}
}

func TestCreatePassesNormalizedInput(t *testing.T) {
	var got tasksrepo.CreateTask
	storer := &stubStorer{
		createFunc: func(ctx context.Context, nt tasksrepo.CreateTask) (tasksrepo.Task, error) {
			got = nt
			return tasksrepo.Task{TaskID: 1, Title: nt.Title}, nil
		},
	}
	repo := newTestRepository(storer, now)

	_, err := repo.Create(context.Background(), tasksrepo.CreateTask{
		Title: "  ship it  ",
		Tags:  []string{"Ops", "ops"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.Title != "ship it" {
		t.Errorf("expected trimmed title, got %q", got.Title)
	}
	if got.Priority != string(tasksrepo.PriorityMedium) {
		t.Errorf("expected default priority, got %q", got.Priority)
	}
	if len(got.Tags) != 1 || got.Tags[0] != "Ops" {
		t.Errorf("expected deduplicated tags, got %v", got.Tags)
	}
}

func TestCreateUsesInjectedClock(t *testing.T) {
	fixed := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	storer := &stubStorer{
		createFunc: func(ctx context.Context, nt tasksrepo.CreateTask) (tasksrepo.Task, error) {
			return tasksrepo.Task{TaskID: 1}, nil
		},
	}
	repo := newTestRepository(storer, fixed)

	// One second before the pinned clock is in the past.
	due := fixed.Add(-time.Second)
	if _, err := repo.Create(context.Background(), tasksrepo.CreateTask{Title: "t", DueDate: &due}); err == nil {
		t.Error("expected past due_date rejection against injected clock")
	}

	due = fixed.Add(time.Second)
	if _, err := repo.Create(context.Background(), tasksrepo.CreateTask{Title: "t", DueDate: &due}); err != nil {
		t.Errorf("future due_date should pass: %v", err)
	}
}

func TestUpdateValidatesBeforeStore(t *testing.T) {
	called := false
	storer := &stubStorer{
		updateFunc: func(ctx context.Context, taskID int64, ut tasksrepo.UpdateTask) (tasksrepo.Task, error) {
			called = true
			return tasksrepo.Task{}, nil
		},
	}
	repo := newTestRepository(storer, now)

	ut := tasksrepo.UpdateTask{Status: validation.Some("paused")}
	if _, err := repo.Update(context.Background(), 1, ut); err == nil {
		t.Fatal("expected validation error")
	}
	if called {
		t.Error("store must not be reached when validation fails")
	}
}

func TestNotFoundPassthrough(t *testing.T) {
	storer := &stubStorer{
		getFunc: func(ctx context.Context, taskID int64) (tasksrepo.Task, error) {
			return tasksrepo.Task{}, tasksrepo.ErrNotFound
		},
		deleteFunc: func(ctx context.Context, taskID int64) error {
			return tasksrepo.ErrNotFound
		},
	}
	repo := newTestRepository(storer, now)

	if _, err := repo.GetByID(context.Background(), 42); !errors.Is(err, tasksrepo.ErrNotFound) {
		t.Errorf("get: expected ErrNotFound in chain, got %v", err)
	}
	if err := repo.Delete(context.Background(), 42); !errors.Is(err, tasksrepo.ErrNotFound) {
		t.Errorf("delete: expected ErrNotFound in chain, got %v", err)
	}
}

func TestStatsForwardsSingleClockSample(t *testing.T) {
	fixed := time.Date(2026, 6, 1, 9, 30, 0, 0, time.UTC)
	var got time.Time
	storer := &stubStorer{
		statsFunc: func(ctx context.Context, now time.Time) (tasksrepo.Statistics, error) {
			got = now
			return tasksrepo.Statistics{Total: 3}, nil
		},
	}
	repo := newTestRepository(storer, fixed)

	stats, err := repo.Stats(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Equal(fixed) {
		t.Errorf("expected clock sample %v forwarded to store, got %v", fixed, got)
	}
	if stats.Total != 3 {
		t.Errorf("expected stats passthrough, got %+v", stats)
	}
}

func TestListPageBeyondData(t *testing.T) {
	storer := &stubStorer{
		listFunc: func(ctx context.Context, filter tasksrepo.QueryFilter, page fop.Page) ([]tasksrepo.Task, int, error) {
			// Offset past the last row yields no rows, not an error.
			if page.Offset() < 15 {
				t.Errorf("expected offset beyond the dataset, got %d", page.Offset())
			}
			return []tasksrepo.Task{}, 15, nil
		},
	}
	repo := newTestRepository(storer, now)

	tasks, total, err := repo.List(context.Background(), tasksrepo.QueryFilter{}, fop.Page{Number: 3, Size: 10})
	if err != nil {
		t.Fatalf("page beyond data must not error: %v", err)
	}
	if len(tasks) != 0 {
		t.Errorf("expected empty page, got %d tasks", len(tasks))
	}
	if total != 15 {
		t.Errorf("total must still reflect the full match count, got %d", total)
	}
}

func TestListPassthrough(t *testing.T) {
	status := tasksrepo.StatusPending
	storer := &stubStorer{
		listFunc: func(ctx context.Context, filter tasksrepo.QueryFilter, page fop.Page) ([]tasksrepo.Task, int, error) {
			if filter.Status == nil || *filter.Status != status {
				t.Errorf("filter not forwarded: %+v", filter)
			}
			if page.Number != 2 || page.Size != 10 {
				t.Errorf("page not forwarded: %+v", page)
			}
			return []tasksrepo.Task{{TaskID: 11}}, 25, nil
		},
	}
	repo := newTestRepository(storer, now)

	tasks, total, err := repo.List(context.Background(), tasksrepo.QueryFilter{Status: &status}, fop.Page{Number: 2, Size: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 25 || len(tasks) != 1 {
		t.Errorf("expected 1 task and total 25, got %d tasks total %d", len(tasks), total)
	}
}
