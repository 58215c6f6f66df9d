package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

// TokenRepo tracks refresh-token sessions in the 'refresh_tokens' table.
// A session row holds only the SHA-256 hex digest of the token; the plain
// value lives nowhere but the client.  Sessions are never deleted: rotation
// and logout stamp revoked_at, so a replayed token reads as dead rather
// than merely absent.
type TokenRepo struct{ DB *sql.DB }

func NewTokenRepo(db *sql.DB) *TokenRepo { return &TokenRepo{DB: db} }

var ErrSessionNotFound = errors.New("session not found")

// CreateSession records a freshly issued refresh token for a user.
func (r *TokenRepo) CreateSession(ctx context.Context, userID uint64, tokenHash string, exp time.Time) error {
	_, err := r.DB.ExecContext(ctx,
		"INSERT INTO refresh_tokens (user_id, token_hash, expires_at) VALUES (?,?,?)",
		userID, tokenHash, exp)
	return err
}

// LookupSession resolves a presented token hash to its user.  Expiry and
// revocation are filtered in the query, so an expired or revoked session
// answers exactly like one that never existed.
func (r *TokenRepo) LookupSession(ctx context.Context, tokenHash string) (uint64, error) {
	var userID uint64
	err := r.DB.QueryRowContext(ctx,
		"SELECT user_id FROM refresh_tokens WHERE token_hash=? AND revoked_at IS NULL AND expires_at > NOW() LIMIT 1",
		tokenHash).Scan(&userID)
	if err == sql.ErrNoRows {
		return 0, ErrSessionNotFound
	}
	if err != nil {
		return 0, err
	}
	return userID, nil
}

// RevokeSession ends a single session.  Rotation calls this on the old
// token, and logout with an explicit refresh_token calls it on that one
// session while leaving the user's other devices signed in.
func (r *TokenRepo) RevokeSession(ctx context.Context, tokenHash string) error {
	_, err := r.DB.ExecContext(ctx,
		"UPDATE refresh_tokens SET revoked_at=NOW() WHERE token_hash=? AND revoked_at IS NULL",
		tokenHash)
	return err
}

// RevokeUserSessions ends every live session a user holds.  The bearer
// form of logout uses it to sign the user out everywhere at once.
func (r *TokenRepo) RevokeUserSessions(ctx context.Context, userID uint64) error {
	_, err := r.DB.ExecContext(ctx,
		"UPDATE refresh_tokens SET revoked_at=NOW() WHERE user_id=? AND revoked_at IS NULL",
		userID)
	return err
}
