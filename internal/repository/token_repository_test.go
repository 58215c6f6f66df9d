package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

const sessionLookupQuery = "SELECT user_id FROM refresh_tokens WHERE token_hash=? AND revoked_at IS NULL AND expires_at > NOW() LIMIT 1"

func TestLookupSession(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()
	r := NewTokenRepo(db)
	query := regexp.QuoteMeta(sessionLookupQuery)

	mock.ExpectQuery(query).WithArgs("livehash").
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow(7))
	uid, err := r.LookupSession(context.Background(), "livehash")
	if err != nil || uid != 7 {
		t.Errorf("live session = (%d, %v), want (7, nil)", uid, err)
	}

	// Revoked and expired sessions are filtered in the query, so they
	// read back exactly like a hash that was never issued.
	mock.ExpectQuery(query).WithArgs("deadhash").WillReturnError(sql.ErrNoRows)
	uid, err = r.LookupSession(context.Background(), "deadhash")
	if err != ErrSessionNotFound || uid != 0 {
		t.Errorf("dead session = (%d, %v), want (0, ErrSessionNotFound)", uid, err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestRevokeSessionStampsOnlyLiveRows(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()
	r := NewTokenRepo(db)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE refresh_tokens SET revoked_at=NOW() WHERE token_hash=? AND revoked_at IS NULL")).
		WithArgs("somehash").WillReturnResult(sqlmock.NewResult(0, 1))
	if err := r.RevokeSession(context.Background(), "somehash"); err != nil {
		t.Errorf("RevokeSession: %v", err)
	}

	mock.ExpectExec(regexp.QuoteMeta("UPDATE refresh_tokens SET revoked_at=NOW() WHERE user_id=? AND revoked_at IS NULL")).
		WithArgs(7).WillReturnResult(sqlmock.NewResult(0, 3))
	if err := r.RevokeUserSessions(context.Background(), 7); err != nil {
		t.Errorf("RevokeUserSessions: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
