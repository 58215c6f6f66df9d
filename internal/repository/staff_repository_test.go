package repository

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestBindUserIDOneShot(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()
	r := NewStaffRepo(db)
	query := regexp.QuoteMeta("UPDATE staff SET user_id=? WHERE id=? AND user_id IS NULL")

	// First sign-in: the null row is claimed.
	mock.ExpectExec(query).WithArgs(9, 5).WillReturnResult(sqlmock.NewResult(0, 1))
	bound, err := r.BindUserID(context.Background(), 5, 9)
	if err != nil {
		t.Fatalf("BindUserID: %v", err)
	}
	if !bound {
		t.Error("first bind should report true")
	}

	// Already bound: the guarded UPDATE touches nothing and that is not
	// an error, only a false.
	mock.ExpectExec(query).WithArgs(11, 5).WillReturnResult(sqlmock.NewResult(0, 0))
	bound, err = r.BindUserID(context.Background(), 5, 11)
	if err != nil {
		t.Fatalf("BindUserID on bound row: %v", err)
	}
	if bound {
		t.Error("second bind must not report true")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
