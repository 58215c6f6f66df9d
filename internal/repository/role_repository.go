package repository

import (
	"context"
	"database/sql"
	"strings"
)

// RoleRepo reads and writes role grants in the 'user_roles' table.  Grants
// are append-only facts; the portal never deletes one.
type RoleRepo struct{ DB *sql.DB }

func NewRoleRepo(db *sql.DB) *RoleRepo { return &RoleRepo{DB: db} }

// HasRole is the authorization predicate behind every privileged page.
// A user with no grant row gets false with a nil error: absence of a grant
// is a valid, non-exceptional answer, and any real query failure must not
// be mistaken for an approval.
func (r *RoleRepo) HasRole(ctx context.Context, userID uint64, role string) (bool, error) {
	var exists bool
	err := r.DB.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM user_roles WHERE user_id=? AND role=?)",
		userID, strings.ToLower(strings.TrimSpace(role))).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

// Grant records a role for a user.  Granting an already-held role is a
// no-op thanks to the unique key on (user_id, role).
func (r *RoleRepo) Grant(ctx context.Context, userID uint64, role string) error {
	_, err := r.DB.ExecContext(ctx,
		"INSERT IGNORE INTO user_roles (user_id, role) VALUES (?,?)",
		userID, strings.ToLower(strings.TrimSpace(role)))
	return err
}
