package handler

import (
    "database/sql"
    "net/http"
    "net/http/httptest"
    "regexp"
    "strings"
    "testing"
    "time"

    "github.com/DATA-DOG/go-sqlmock"
    "github.com/labstack/echo/v4"

    "github.com/elevateassist/va-agency-portal/internal/config"
    "github.com/elevateassist/va-agency-portal/internal/repository"
)

const staffByIDQuery = "SELECT id, user_id, full_name, email, phone, role, specialization, status, hourly_rate, created_at, updated_at FROM staff WHERE id=? LIMIT 1"

func newAdminHandlerWithMock(t *testing.T) (*AdminHandler, sqlmock.Sqlmock) {
    t.Helper()
    db, mock, err := sqlmock.New()
    if err != nil {
        t.Fatalf("sqlmock: %v", err)
    }
    t.Cleanup(func() { _ = db.Close() })
    return &AdminHandler{
        Cfg:   config.Config{BcryptCost: 4},
        DB:    db,
        Users: repository.NewUserRepo(db),
        Staff: repository.NewStaffRepo(db),
    }, mock
}

func staffRowWithUserID(userID any) *sqlmock.Rows {
    now := time.Now()
    return sqlmock.NewRows([]string{
        "id", "user_id", "full_name", "email", "phone", "role",
        "specialization", "status", "hourly_rate", "created_at", "updated_at",
    }).AddRow(5, userID, "Dana Reed", "dana@agency.test", nil, "VA", nil, "available", 25.0, now, now)
}

func adminPostJSON(body, id string) (echo.Context, *httptest.ResponseRecorder) {
    e := echo.New()
    req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
    req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
    rec := httptest.NewRecorder()
    c := e.NewContext(req, rec)
    if id != "" {
        c.SetParamNames("id")
        c.SetParamValues(id)
    }
    return c, rec
}

func TestResetStaffPasswordUnboundStaff(t *testing.T) {
    h, mock := newAdminHandlerWithMock(t)
    mock.ExpectQuery(regexp.QuoteMeta(staffByIDQuery)).
        WithArgs(5).
        WillReturnRows(staffRowWithUserID(nil))

    c, rec := adminPostJSON(`{"password":"newsecret"}`, "5")
    if err := h.ResetStaffPassword(c); err != nil {
        t.Fatalf("handler error: %v", err)
    }
    if rec.Code != http.StatusPreconditionFailed {
        t.Errorf("unbound staff reset got %d, want 412", rec.Code)
    }
    if err := mock.ExpectationsWereMet(); err != nil {
        t.Errorf("unexpected database activity: %v", err)
    }
}

func TestResetStaffPasswordBoundStaff(t *testing.T) {
    h, mock := newAdminHandlerWithMock(t)
    mock.ExpectQuery(regexp.QuoteMeta(staffByIDQuery)).
        WithArgs(5).
        WillReturnRows(staffRowWithUserID(9))
    mock.ExpectExec(regexp.QuoteMeta("UPDATE users SET password_hash=? WHERE id=?")).
        WithArgs(sqlmock.AnyArg(), 9).
        WillReturnResult(sqlmock.NewResult(0, 1))

    c, rec := adminPostJSON(`{"password":"newsecret"}`, "5")
    if err := h.ResetStaffPassword(c); err != nil {
        t.Fatalf("handler error: %v", err)
    }
    if rec.Code != http.StatusNoContent {
        t.Errorf("bound staff reset got %d, want 204", rec.Code)
    }
    if err := mock.ExpectationsWereMet(); err != nil {
        t.Errorf("unmet expectations: %v", err)
    }
}

func TestResetStaffPasswordMissingStaff(t *testing.T) {
    h, mock := newAdminHandlerWithMock(t)
    mock.ExpectQuery(regexp.QuoteMeta(staffByIDQuery)).
        WithArgs(7).
        WillReturnError(sql.ErrNoRows)

    c, rec := adminPostJSON(`{"password":"newsecret"}`, "7")
    if err := h.ResetStaffPassword(c); err != nil {
        t.Fatalf("handler error: %v", err)
    }
    if rec.Code != http.StatusNotFound {
        t.Errorf("missing staff reset got %d, want 404", rec.Code)
    }
}

func TestCreateStaffBindsLoginToStaffRow(t *testing.T) {
    h, mock := newAdminHandlerWithMock(t)
    mock.ExpectBegin()
    mock.ExpectExec(regexp.QuoteMeta("INSERT INTO users (email, password_hash, role) VALUES (?,?,?)")).
        WithArgs("dana@agency.test", sqlmock.AnyArg(), "STAFF").
        WillReturnResult(sqlmock.NewResult(7, 1))
    mock.ExpectExec(regexp.QuoteMeta("INSERT INTO staff (user_id, full_name, email, phone, role, specialization, status, hourly_rate) VALUES (?,?,?,?,?,?,?,?)")).
        WithArgs(7, "Dana Reed", "dana@agency.test", nil, "VA", nil, "available", 25.0).
        WillReturnResult(sqlmock.NewResult(5, 1))
    mock.ExpectCommit()

    c, rec := adminPostJSON(`{"full_name":"Dana Reed","email":"dana@agency.test","password":"secret1"}`, "")
    if err := h.CreateStaff(c); err != nil {
        t.Fatalf("handler error: %v", err)
    }
    if rec.Code != http.StatusCreated {
        t.Fatalf("create staff got %d, want 201: %s", rec.Code, rec.Body.String())
    }
    if err := mock.ExpectationsWereMet(); err != nil {
        t.Errorf("unmet expectations: %v", err)
    }
}
