package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/elevateassist/va-agency-portal/internal/model"
)

// StaffRepo provides access to the 'staff' table.  Staff rows are created
// by admins, possibly before the member ever logs in, so user_id starts
// null and is bound exactly once on first sign-in.
type StaffRepo struct{ DB *sql.DB }

func NewStaffRepo(db *sql.DB) *StaffRepo { return &StaffRepo{DB: db} }

var (
	ErrStaffNotFound    = errors.New("staff member not found")
	ErrStaffEmailExists = errors.New("staff email already exists")
)

const staffCols = "id, user_id, full_name, email, phone, role, specialization, status, hourly_rate, created_at, updated_at"

func scanStaff(sc interface{ Scan(...any) error }) (model.StaffMember, error) {
	var m model.StaffMember
	err := sc.Scan(&m.ID, &m.UserID, &m.FullName, &m.Email, &m.Phone, &m.Role,
		&m.Specialization, &m.Status, &m.HourlyRate, &m.CreatedAt, &m.UpdatedAt)
	return m, err
}

// CreateTx inserts a staff row inside the provisioning transaction, bound
// to the login created moments earlier in the same transaction.
func (r *StaffRepo) CreateTx(ctx context.Context, tx *sql.Tx, m *model.StaffMember) error {
	res, err := tx.ExecContext(ctx,
		"INSERT INTO staff (user_id, full_name, email, phone, role, specialization, status, hourly_rate) VALUES (?,?,?,?,?,?,?,?)",
		m.UserID, m.FullName, strings.ToLower(strings.TrimSpace(m.Email)), m.Phone, m.Role, m.Specialization, m.Status, m.HourlyRate)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return ErrStaffEmailExists
		}
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	m.ID = uint64(id)
	return nil
}

// GetByID fetches one staff member.
func (r *StaffRepo) GetByID(ctx context.Context, id uint64) (model.StaffMember, error) {
	m, err := scanStaff(r.DB.QueryRowContext(ctx,
		"SELECT "+staffCols+" FROM staff WHERE id=? LIMIT 1", id))
	if err == sql.ErrNoRows {
		return m, ErrStaffNotFound
	}
	return m, err
}

// GetByEmail fetches a staff member by normalized email.  Staff sign-in
// checks this BEFORE authenticating so a non-staff email gets an explicit
// "not registered as staff" answer instead of a generic login failure.
func (r *StaffRepo) GetByEmail(ctx context.Context, email string) (model.StaffMember, error) {
	m, err := scanStaff(r.DB.QueryRowContext(ctx,
		"SELECT "+staffCols+" FROM staff WHERE email=? LIMIT 1",
		strings.ToLower(strings.TrimSpace(email))))
	if err == sql.ErrNoRows {
		return m, ErrStaffNotFound
	}
	return m, err
}

// GetByUserID fetches the staff row bound to a login.
func (r *StaffRepo) GetByUserID(ctx context.Context, userID uint64) (model.StaffMember, error) {
	m, err := scanStaff(r.DB.QueryRowContext(ctx,
		"SELECT "+staffCols+" FROM staff WHERE user_id=? LIMIT 1", userID))
	if err == sql.ErrNoRows {
		return m, ErrStaffNotFound
	}
	return m, err
}

// List returns all staff members, newest first.
func (r *StaffRepo) List(ctx context.Context) ([]model.StaffMember, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+staffCols+" FROM staff ORDER BY created_at DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []model.StaffMember
	for rows.Next() {
		m, err := scanStaff(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// Update changes the admin-editable fields of a staff member.
func (r *StaffRepo) Update(ctx context.Context, m *model.StaffMember) error {
	res, err := r.DB.ExecContext(ctx,
		"UPDATE staff SET full_name=?, phone=?, role=?, specialization=?, status=?, hourly_rate=? WHERE id=?",
		m.FullName, m.Phone, m.Role, m.Specialization, m.Status, m.HourlyRate, m.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		var exists bool
		if err := r.DB.QueryRowContext(ctx,
			"SELECT EXISTS(SELECT 1 FROM staff WHERE id=?)", m.ID).Scan(&exists); err != nil {
			return err
		}
		if !exists {
			return ErrStaffNotFound
		}
	}
	return nil
}

// Delete hard-deletes a staff member.  Rows that still carry assignments or
// tasks are protected by foreign keys and reported as ErrConflict.
func (r *StaffRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM staff WHERE id=?", id)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "1451") {
			return ErrConflict
		}
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrStaffNotFound
	}
	return nil
}

// BindUserID backfills a null user_id after the member's first successful
// sign-in.  The WHERE clause makes this a once-only write: an already
// bound row is left untouched and the call reports false.
func (r *StaffRepo) BindUserID(ctx context.Context, staffID, userID uint64) (bool, error) {
	res, err := r.DB.ExecContext(ctx,
		"UPDATE staff SET user_id=? WHERE id=? AND user_id IS NULL", userID, staffID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

// Count returns the total number of staff members.
func (r *StaffRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM staff").Scan(&n)
	return n, err
}
