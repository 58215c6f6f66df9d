package repository

import (
	"context"
	"database/sql"

	"github.com/elevateassist/va-agency-portal/internal/model"
)

// ContactRepo provides access to the 'contact_submissions' table.  Rows
// are inserted anonymously from the public forms and are immutable.
type ContactRepo struct{ DB *sql.DB }

func NewContactRepo(db *sql.DB) *ContactRepo { return &ContactRepo{DB: db} }

// Create inserts one submission and returns it with its id set.
func (r *ContactRepo) Create(ctx context.Context, s *model.ContactSubmission) error {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO contact_submissions (name, email, phone, message) VALUES (?,?,?,?)",
		s.Name, s.Email, s.Phone, s.Message)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	s.ID = uint64(id)
	return nil
}

// List returns submissions for the admin inbox, newest first.
func (r *ContactRepo) List(ctx context.Context, limit int) ([]model.ContactSubmission, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT id, name, email, phone, message, created_at FROM contact_submissions ORDER BY created_at DESC LIMIT ?",
		limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []model.ContactSubmission
	for rows.Next() {
		var s model.ContactSubmission
		if err := rows.Scan(&s.ID, &s.Name, &s.Email, &s.Phone, &s.Message, &s.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
