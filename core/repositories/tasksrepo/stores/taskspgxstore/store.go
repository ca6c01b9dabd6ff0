// Package taskspgxstore implements task storage on PostgreSQL via pgx.
package taskspgxstore

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jrazmi/taskdesk/core/repositories/tasksrepo"
	"github.com/jrazmi/taskdesk/core/scaffolding/fop"
	"github.com/jrazmi/taskdesk/infrastructure/postgresdb"
	"github.com/jrazmi/taskdesk/sdk/logger"
)

const taskColumns = `task_id, title, description, status, priority, assigned_to, due_date, tags, created_at, updated_at`

type Store struct {
	log  *logger.Logger
	pool *postgresdb.Pool
}

func NewStore(log *logger.Logger, pool *postgresdb.Pool) *Store {
	return &Store{
		log:  log,
		pool: pool,
	}
}

func (s *Store) Create(ctx context.Context, nt tasksrepo.CreateTask) (tasksrepo.Task, error) {
	query := `INSERT INTO tasks (title, description, priority, assigned_to, due_date, tags)
		VALUES (@title, @description, @priority, @assigned_to, @due_date, @tags)
		RETURNING ` + taskColumns

	tags := nt.Tags
	if tags == nil {
		tags = []string{}
	}

	args := pgx.NamedArgs{
		"title":       nt.Title,
		"description": nt.Description,
		"priority":    nt.Priority,
		"assigned_to": nt.AssignedTo,
		"due_date":    nt.DueDate,
		"tags":        tags,
	}

	rows, err := s.pool.Query(ctx, query, args)
	if err != nil {
		return tasksrepo.Task{}, postgresdb.HandlePgError(err)
	}
	defer rows.Close()

	task, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[tasksrepo.Task])
	if err != nil {
		return tasksrepo.Task{}, postgresdb.HandlePgError(err)
	}

	return task, nil
}

func (s *Store) GetByID(ctx context.Context, taskID int64) (tasksrepo.Task, error) {
	query := `SELECT ` + taskColumns + `
		FROM tasks
		WHERE task_id = @task_id`

	args := pgx.NamedArgs{
		"task_id": taskID,
	}

	rows, err := s.pool.Query(ctx, query, args)
	if err != nil {
		return tasksrepo.Task{}, postgresdb.HandlePgError(err)
	}
	defer rows.Close()

	task, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[tasksrepo.Task])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return tasksrepo.Task{}, tasksrepo.ErrNotFound
		}
		return tasksrepo.Task{}, postgresdb.HandlePgError(err)
	}

	return task, nil
}

// List runs the count and page queries inside one read-only transaction so
// the total matches the page snapshot.
func (s *Store) List(ctx context.Context, filter tasksrepo.QueryFilter, page fop.Page) ([]tasksrepo.Task, int, error) {
	conditions, args := applyFilter(filter)

	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{AccessMode: pgx.ReadOnly})
	if err != nil {
		return nil, 0, postgresdb.HandlePgError(err)
	}
	defer tx.Rollback(ctx)

	countBuf := bytes.NewBufferString(`SELECT COUNT(*) FROM tasks`)
	postgresdb.ApplyWhereClause(countBuf, conditions)

	var total int
	if err := tx.QueryRow(ctx, countBuf.String(), args).Scan(&total); err != nil {
		return nil, 0, postgresdb.HandlePgError(err)
	}

	buf := bytes.NewBufferString(`SELECT ` + taskColumns + ` FROM tasks`)
	postgresdb.ApplyWhereClause(buf, conditions)
	if err := postgresdb.AddOrderByClause(buf, tasksrepo.OrderByCreatedAt, tasksrepo.OrderByPK, postgresdb.DESC); err != nil {
		return nil, 0, fmt.Errorf("order by clause: %w", err)
	}
	postgresdb.AddPageClause(buf, args, page.Size, page.Offset())

	rows, err := tx.Query(ctx, buf.String(), args)
	if err != nil {
		return nil, 0, postgresdb.HandlePgError(err)
	}
	defer rows.Close()

	tasks, err := pgx.CollectRows(rows, pgx.RowToStructByName[tasksrepo.Task])
	if err != nil {
		return nil, 0, postgresdb.HandlePgError(err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, 0, postgresdb.HandlePgError(err)
	}

	return tasks, total, nil
}

func (s *Store) Update(ctx context.Context, taskID int64, ut tasksrepo.UpdateTask) (tasksrepo.Task, error) {
	query, args := buildUpdateQuery(taskID, ut)

	rows, err := s.pool.Query(ctx, query, args)
	if err != nil {
		return tasksrepo.Task{}, postgresdb.HandlePgError(err)
	}
	defer rows.Close()

	task, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[tasksrepo.Task])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return tasksrepo.Task{}, tasksrepo.ErrNotFound
		}
		return tasksrepo.Task{}, postgresdb.HandlePgError(err)
	}

	return task, nil
}

// buildUpdateQuery assembles the dynamic SET list. updated_at is always
// refreshed, even when the update carries no fields.
func buildUpdateQuery(taskID int64, ut tasksrepo.UpdateTask) (string, pgx.NamedArgs) {
	buf := bytes.NewBufferString(`UPDATE tasks SET updated_at = now()`)
	args := pgx.NamedArgs{
		"task_id": taskID,
	}

	if ut.Title.Set {
		buf.WriteString(`, title = @title`)
		args["title"] = ut.Title.Value
	}
	if ut.Description.Set {
		buf.WriteString(`, description = @description`)
		args["description"] = ut.Description.Ptr()
	}
	if ut.Status.Set {
		buf.WriteString(`, status = @status`)
		args["status"] = ut.Status.Value
	}
	if ut.Priority.Set {
		buf.WriteString(`, priority = @priority`)
		args["priority"] = ut.Priority.Value
	}
	if ut.AssignedTo.Set {
		buf.WriteString(`, assigned_to = @assigned_to`)
		args["assigned_to"] = ut.AssignedTo.Ptr()
	}
	if ut.DueDate.Set {
		buf.WriteString(`, due_date = @due_date`)
		args["due_date"] = ut.DueDate.Ptr()
	}
	if ut.Tags.Set {
		buf.WriteString(`, tags = @tags`)
		args["tags"] = ut.Tags.Value
	}

	buf.WriteString(` WHERE task_id = @task_id RETURNING ` + taskColumns)

	return buf.String(), args
}

func (s *Store) Delete(ctx context.Context, taskID int64) error {
	query := `DELETE FROM tasks WHERE task_id = @task_id`

	args := pgx.NamedArgs{
		"task_id": taskID,
	}

	tag, err := s.pool.Exec(ctx, query, args)
	if err != nil {
		return postgresdb.HandlePgError(err)
	}

	if tag.RowsAffected() == 0 {
		return tasksrepo.ErrNotFound
	}

	return nil
}

// statsRow matches the single aggregate query below.
type statsRow struct {
	Total             int `db:"total"`
	Pending           int `db:"pending"`
	InProgress        int `db:"in_progress"`
	Completed         int `db:"completed"`
	Cancelled         int `db:"cancelled"`
	Low               int `db:"low"`
	Medium            int `db:"medium"`
	High              int `db:"high"`
	Urgent            int `db:"urgent"`
	UpcomingDeadlines int `db:"upcoming_deadlines"`
	Overdue           int `db:"overdue"`
}

// Stats computes every aggregate in a single query so the counts share one
// snapshot. The deadline window is [now, now+7d); completed and cancelled
// tasks are excluded from the deadline figures.
func (s *Store) Stats(ctx context.Context, now time.Time) (tasksrepo.Statistics, error) {
	query := `SELECT
		COUNT(*) AS total,
		COUNT(*) FILTER (WHERE status = 'pending') AS pending,
		COUNT(*) FILTER (WHERE status = 'in_progress') AS in_progress,
		COUNT(*) FILTER (WHERE status = 'completed') AS completed,
		COUNT(*) FILTER (WHERE status = 'cancelled') AS cancelled,
		COUNT(*) FILTER (WHERE priority = 'low') AS low,
		COUNT(*) FILTER (WHERE priority = 'medium') AS medium,
		COUNT(*) FILTER (WHERE priority = 'high') AS high,
		COUNT(*) FILTER (WHERE priority = 'urgent') AS urgent,
		COUNT(*) FILTER (WHERE due_date >= @now AND due_date < @week_out
			AND status NOT IN ('completed', 'cancelled')) AS upcoming_deadlines,
		COUNT(*) FILTER (WHERE due_date < @now
			AND status NOT IN ('completed', 'cancelled')) AS overdue
	FROM tasks`

	args := pgx.NamedArgs{
		"now":      now,
		"week_out": now.Add(7 * 24 * time.Hour),
	}

	rows, err := s.pool.Query(ctx, query, args)
	if err != nil {
		return tasksrepo.Statistics{}, postgresdb.HandlePgError(err)
	}
	defer rows.Close()

	row, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[statsRow])
	if err != nil {
		return tasksrepo.Statistics{}, postgresdb.HandlePgError(err)
	}

	return tasksrepo.Statistics{
		Total: row.Total,
		ByStatus: map[tasksrepo.Status]int{
			tasksrepo.StatusPending:    row.Pending,
			tasksrepo.StatusInProgress: row.InProgress,
			tasksrepo.StatusCompleted:  row.Completed,
			tasksrepo.StatusCancelled:  row.Cancelled,
		},
		ByPriority: map[tasksrepo.Priority]int{
			tasksrepo.PriorityLow:    row.Low,
			tasksrepo.PriorityMedium: row.Medium,
			tasksrepo.PriorityHigh:   row.High,
			tasksrepo.PriorityUrgent: row.Urgent,
		},
		UpcomingDeadlines: row.UpcomingDeadlines,
		Overdue:           row.Overdue,
	}, nil
}

// applyFilter translates the query filter into WHERE conditions and named
// args.
func applyFilter(filter tasksrepo.QueryFilter) ([]string, pgx.NamedArgs) {
	var conditions []string
	args := pgx.NamedArgs{}

	if filter.Status != nil {
		conditions = append(conditions, "status = @status")
		args["status"] = *filter.Status
	}
	if filter.Priority != nil {
		conditions = append(conditions, "priority = @priority")
		args["priority"] = *filter.Priority
	}
	if filter.AssignedTo != nil {
		conditions = append(conditions, "assigned_to = @assigned_to")
		args["assigned_to"] = *filter.AssignedTo
	}

	return conditions, args
}
