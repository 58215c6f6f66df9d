package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/elevateassist/va-agency-portal/internal/model"
)

// TaskRepo provides access to the 'tasks' table.  Status changes go
// through guarded updates so an out-of-order or unauthorized transition
// changes nothing at all.
type TaskRepo struct{ DB *sql.DB }

func NewTaskRepo(db *sql.DB) *TaskRepo { return &TaskRepo{DB: db} }

var (
	ErrTaskNotFound      = errors.New("task not found")
	ErrInvalidTransition = errors.New("invalid task transition")
)

const taskCols = "id, client_id, title, description, priority, status, due_date, hours_estimated, hours_actual, assigned_staff_id, created_at, updated_at"

func scanTask(sc interface{ Scan(...any) error }) (model.Task, error) {
	var t model.Task
	err := sc.Scan(&t.ID, &t.ClientID, &t.Title, &t.Description, &t.Priority, &t.Status,
		&t.DueDate, &t.HoursEstimated, &t.HoursActual, &t.AssignedStaffID, &t.CreatedAt, &t.UpdatedAt)
	return t, err
}

// Create inserts a client-submitted task.  Status always starts pending.
func (r *TaskRepo) Create(ctx context.Context, t *model.Task) error {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO tasks (client_id, title, description, priority, status, due_date, hours_estimated) VALUES (?,?,?,?,?,?,?)",
		t.ClientID, t.Title, t.Description, t.Priority, model.TaskPending, t.DueDate, t.HoursEstimated)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	t.ID = uint64(id)
	t.Status = model.TaskPending
	return nil
}

// GetByID fetches one task.
func (r *TaskRepo) GetByID(ctx context.Context, id uint64) (model.Task, error) {
	t, err := scanTask(r.DB.QueryRowContext(ctx,
		"SELECT "+taskCols+" FROM tasks WHERE id=? LIMIT 1", id))
	if err == sql.ErrNoRows {
		return t, ErrTaskNotFound
	}
	return t, err
}

// ListByClient returns a client's tasks, newest first.
func (r *TaskRepo) ListByClient(ctx context.Context, clientID uint64) ([]model.Task, error) {
	return r.list(ctx,
		"SELECT "+taskCols+" FROM tasks WHERE client_id=? ORDER BY created_at DESC", clientID)
}

// ListByStaff returns the tasks assigned to a staff member, newest first.
func (r *TaskRepo) ListByStaff(ctx context.Context, staffID uint64) ([]model.Task, error) {
	return r.list(ctx,
		"SELECT "+taskCols+" FROM tasks WHERE assigned_staff_id=? ORDER BY created_at DESC", staffID)
}

// ListRecent returns the latest submitted tasks for the admin activity feed.
func (r *TaskRepo) ListRecent(ctx context.Context, limit int) ([]model.Task, error) {
	return r.list(ctx,
		"SELECT "+taskCols+" FROM tasks ORDER BY created_at DESC LIMIT ?", limit)
}

func (r *TaskRepo) list(ctx context.Context, query string, args ...any) ([]model.Task, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []model.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// CountByClient returns how many tasks a client has submitted.
func (r *TaskRepo) CountByClient(ctx context.Context, clientID uint64) (int64, error) {
	var n int64
	err := r.DB.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM tasks WHERE client_id=?", clientID).Scan(&n)
	return n, err
}

// CountByStatus returns how many tasks sit in the given status.
func (r *TaskRepo) CountByStatus(ctx context.Context, status string) (int64, error) {
	var n int64
	err := r.DB.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM tasks WHERE status=?", status).Scan(&n)
	return n, err
}

// AdvanceStatus performs the guarded forward transition on behalf of the
// assigned staff member.  The WHERE clause pins the expected current
// status and assignee, so the update is all-or-nothing: if the task moved
// or belongs to someone else, zero rows change and the caller gets
// ErrInvalidTransition.  hoursActual is recorded when the task completes.
func (r *TaskRepo) AdvanceStatus(ctx context.Context, taskID, staffID uint64, from, to string, hoursActual *float64) error {
	if !model.ValidTaskTransition(from, to) {
		return ErrInvalidTransition
	}
	var (
		res sql.Result
		err error
	)
	if to == model.TaskCompleted && hoursActual != nil {
		res, err = r.DB.ExecContext(ctx,
			"UPDATE tasks SET status=?, hours_actual=? WHERE id=? AND assigned_staff_id=? AND status=?",
			to, hoursActual, taskID, staffID, from)
	} else {
		res, err = r.DB.ExecContext(ctx,
			"UPDATE tasks SET status=? WHERE id=? AND assigned_staff_id=? AND status=?",
			to, taskID, staffID, from)
	}
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		var exists bool
		if err := r.DB.QueryRowContext(ctx,
			"SELECT EXISTS(SELECT 1 FROM tasks WHERE id=?)", taskID).Scan(&exists); err != nil {
			return err
		}
		if !exists {
			return ErrTaskNotFound
		}
		return ErrInvalidTransition
	}
	return nil
}

// Assign sets assigned_staff_id on a task.  Admin-only; the FK to staff
// rejects dangling staff ids.
func (r *TaskRepo) Assign(ctx context.Context, taskID, staffID uint64) error {
	res, err := r.DB.ExecContext(ctx,
		"UPDATE tasks SET assigned_staff_id=? WHERE id=?", staffID, taskID)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "1452") {
			return ErrStaffNotFound
		}
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		var exists bool
		if err := r.DB.QueryRowContext(ctx,
			"SELECT EXISTS(SELECT 1 FROM tasks WHERE id=?)", taskID).Scan(&exists); err != nil {
			return err
		}
		if !exists {
			return ErrTaskNotFound
		}
	}
	return nil
}
