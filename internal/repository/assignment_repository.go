package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/elevateassist/va-agency-portal/internal/model"
)

// AssignmentRepo provides access to the 'staff_assignments' table.  An
// assignment is created active and its only mutation is being ended.
type AssignmentRepo struct{ DB *sql.DB }

func NewAssignmentRepo(db *sql.DB) *AssignmentRepo { return &AssignmentRepo{DB: db} }

var ErrAssignmentNotFound = errors.New("assignment not found")

const assignmentCols = "id, staff_id, client_id, status, notes, assigned_at"

func scanAssignment(sc interface{ Scan(...any) error }) (model.StaffAssignment, error) {
	var a model.StaffAssignment
	err := sc.Scan(&a.ID, &a.StaffID, &a.ClientID, &a.Status, &a.Notes, &a.AssignedAt)
	return a, err
}

// Create pairs a client with a staff member.  Foreign keys reject ids that
// do not reference an existing staff row or client login.
func (r *AssignmentRepo) Create(ctx context.Context, a *model.StaffAssignment) error {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO staff_assignments (staff_id, client_id, status, notes) VALUES (?,?,?,?)",
		a.StaffID, a.ClientID, model.AssignmentActive, a.Notes)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "1452") {
			return ErrStaffNotFound
		}
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	a.ID = uint64(id)
	a.Status = model.AssignmentActive
	return nil
}

// End terminates an active pairing.  The UPDATE is pinned on the active
// status; an already ended assignment reports ErrConflict, a missing one
// ErrAssignmentNotFound.
func (r *AssignmentRepo) End(ctx context.Context, id uint64) error {
	res, err := r.DB.ExecContext(ctx,
		"UPDATE staff_assignments SET status=? WHERE id=? AND status=?",
		model.AssignmentEnded, id, model.AssignmentActive)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		var exists bool
		if err := r.DB.QueryRowContext(ctx,
			"SELECT EXISTS(SELECT 1 FROM staff_assignments WHERE id=?)", id).Scan(&exists); err != nil {
			return err
		}
		if !exists {
			return ErrAssignmentNotFound
		}
		return ErrConflict
	}
	return nil
}

// ListActiveByStaff returns a staff member's active client pairings.
func (r *AssignmentRepo) ListActiveByStaff(ctx context.Context, staffID uint64) ([]model.StaffAssignment, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+assignmentCols+" FROM staff_assignments WHERE staff_id=? AND status=? ORDER BY assigned_at DESC",
		staffID, model.AssignmentActive)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []model.StaffAssignment
	for rows.Next() {
		a, err := scanAssignment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// ListByClient returns every pairing a client has had, newest first.
func (r *AssignmentRepo) ListByClient(ctx context.Context, clientID uint64) ([]model.StaffAssignment, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+assignmentCols+" FROM staff_assignments WHERE client_id=? ORDER BY assigned_at DESC",
		clientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []model.StaffAssignment
	for rows.Next() {
		a, err := scanAssignment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}
