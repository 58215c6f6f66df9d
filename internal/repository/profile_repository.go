package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/elevateassist/va-agency-portal/internal/model"
)

// ProfileRepo provides access to the 'profiles' table.  Profiles mirror
// CLIENT users one-to-one and are created in the signup transaction.
type ProfileRepo struct{ DB *sql.DB }

func NewProfileRepo(db *sql.DB) *ProfileRepo { return &ProfileRepo{DB: db} }

var ErrProfileNotFound = errors.New("profile not found")

const profileCols = "id, full_name, email, phone, avatar_url, created_at, updated_at"

func scanProfile(row *sql.Row) (model.Profile, error) {
	var p model.Profile
	err := row.Scan(&p.ID, &p.FullName, &p.Email, &p.Phone, &p.AvatarURL, &p.CreatedAt, &p.UpdatedAt)
	if err == sql.ErrNoRows {
		return p, ErrProfileNotFound
	}
	return p, err
}

// CreateTx inserts a profile row inside the signup transaction, sharing the
// id of the users row just created.
func (r *ProfileRepo) CreateTx(ctx context.Context, tx *sql.Tx, id uint64, fullName, email string) error {
	_, err := tx.ExecContext(ctx,
		"INSERT INTO profiles (id, full_name, email) VALUES (?,?,?)",
		id, fullName, email)
	return err
}

// GetByID fetches one profile.
func (r *ProfileRepo) GetByID(ctx context.Context, id uint64) (model.Profile, error) {
	return scanProfile(r.DB.QueryRowContext(ctx,
		"SELECT "+profileCols+" FROM profiles WHERE id=? LIMIT 1", id))
}

// Update changes the self-service fields (full name and phone).
func (r *ProfileRepo) Update(ctx context.Context, id uint64, fullName string, phone *string) error {
	res, err := r.DB.ExecContext(ctx,
		"UPDATE profiles SET full_name=?, phone=? WHERE id=?",
		fullName, phone, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		// 0 affected also happens when the values are unchanged; confirm
		// the row really is missing before reporting it.
		var exists bool
		if err := r.DB.QueryRowContext(ctx,
			"SELECT EXISTS(SELECT 1 FROM profiles WHERE id=?)", id).Scan(&exists); err != nil {
			return err
		}
		if !exists {
			return ErrProfileNotFound
		}
	}
	return nil
}

// SetAvatarURL writes the public URL of a freshly stored avatar.
func (r *ProfileRepo) SetAvatarURL(ctx context.Context, id uint64, url string) error {
	_, err := r.DB.ExecContext(ctx,
		"UPDATE profiles SET avatar_url=? WHERE id=?", url, id)
	return err
}

// List returns all profiles, newest first.  Used by the admin client list.
func (r *ProfileRepo) List(ctx context.Context) ([]model.Profile, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+profileCols+" FROM profiles ORDER BY created_at DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []model.Profile
	for rows.Next() {
		var p model.Profile
		if err := rows.Scan(&p.ID, &p.FullName, &p.Email, &p.Phone, &p.AvatarURL, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// ListRecent returns the latest signups for the admin activity feed.
func (r *ProfileRepo) ListRecent(ctx context.Context, limit int) ([]model.Profile, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+profileCols+" FROM profiles ORDER BY created_at DESC LIMIT ?", limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []model.Profile
	for rows.Next() {
		var p model.Profile
		if err := rows.Scan(&p.ID, &p.FullName, &p.Email, &p.Phone, &p.AvatarURL, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// Count returns the total number of client profiles.
func (r *ProfileRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM profiles").Scan(&n)
	return n, err
}
