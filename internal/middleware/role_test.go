package middleware

import (
    "errors"
    "net/http"
    "net/http/httptest"
    "regexp"
    "testing"

    "github.com/DATA-DOG/go-sqlmock"
    "github.com/labstack/echo/v4"

    "github.com/elevateassist/va-agency-portal/internal/repository"
)

func runWithRole(t *testing.T, role interface{}, mw echo.MiddlewareFunc) int {
    t.Helper()
    e := echo.New()
    req := httptest.NewRequest(http.MethodGet, "/", nil)
    rec := httptest.NewRecorder()
    c := e.NewContext(req, rec)
    if role != nil {
        c.Set("role", role)
    }
    h := mw(func(c echo.Context) error {
        return c.NoContent(http.StatusOK)
    })
    if err := h(c); err != nil {
        t.Fatalf("handler error: %v", err)
    }
    return rec.Code
}

func TestRequireRoleAllows(t *testing.T) {
    mw := RequireRole("CLIENT", "ADMIN")
    if code := runWithRole(t, "CLIENT", mw); code != http.StatusOK {
        t.Errorf("CLIENT got %d, want 200", code)
    }
    if code := runWithRole(t, "ADMIN", mw); code != http.StatusOK {
        t.Errorf("ADMIN got %d, want 200", code)
    }
}

func TestRequireRoleDenies(t *testing.T) {
    mw := RequireRole("ADMIN")
    cases := []struct {
        name string
        role interface{}
    }{
        {"wrong role", "CLIENT"},
        {"lowercase role", "admin"},
        {"missing role", nil},
        {"non-string role", 42},
        {"empty role", ""},
    }
    for _, c := range cases {
        t.Run(c.name, func(t *testing.T) {
            if code := runWithRole(t, c.role, mw); code != http.StatusForbidden {
                t.Errorf("got %d, want 403", code)
            }
        })
    }
}

func TestRequireGrantWithoutIdentity(t *testing.T) {
    // No user_id in context: the grant gate must refuse before it ever
    // queries the database, so a nil repo is safe here.
    mw := RequireGrant(nil, "admin")
    e := echo.New()
    req := httptest.NewRequest(http.MethodGet, "/", nil)
    rec := httptest.NewRecorder()
    c := e.NewContext(req, rec)
    h := mw(func(c echo.Context) error {
        return c.NoContent(http.StatusOK)
    })
    if err := h(c); err != nil {
        t.Fatalf("handler error: %v", err)
    }
    if rec.Code != http.StatusUnauthorized {
        t.Errorf("got %d, want 401", rec.Code)
    }
}

func runGrantCheck(t *testing.T, mw echo.MiddlewareFunc) int {
    t.Helper()
    e := echo.New()
    req := httptest.NewRequest(http.MethodGet, "/", nil)
    rec := httptest.NewRecorder()
    c := e.NewContext(req, rec)
    c.Set("user_id", uint64(7))
    h := mw(func(c echo.Context) error {
        return c.NoContent(http.StatusOK)
    })
    if err := h(c); err != nil {
        t.Fatalf("handler error: %v", err)
    }
    return rec.Code
}

func TestRequireGrantFailsClosed(t *testing.T) {
    db, mock, err := sqlmock.New()
    if err != nil {
        t.Fatalf("sqlmock: %v", err)
    }
    defer db.Close()
    mw := RequireGrant(repository.NewRoleRepo(db), "admin")
    query := regexp.QuoteMeta("SELECT EXISTS(SELECT 1 FROM user_roles WHERE user_id=? AND role=?)")

    t.Run("lookup error denies", func(t *testing.T) {
        mock.ExpectQuery(query).WillReturnError(errors.New("connection refused"))
        if code := runGrantCheck(t, mw); code != http.StatusForbidden {
            t.Errorf("got %d, want 403 on lookup error", code)
        }
    })
    t.Run("absent grant denies", func(t *testing.T) {
        mock.ExpectQuery(query).WithArgs(7, "admin").
            WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(0))
        if code := runGrantCheck(t, mw); code != http.StatusForbidden {
            t.Errorf("got %d, want 403 without a grant", code)
        }
    })
    t.Run("live grant passes", func(t *testing.T) {
        mock.ExpectQuery(query).WithArgs(7, "admin").
            WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(1))
        if code := runGrantCheck(t, mw); code != http.StatusOK {
            t.Errorf("got %d, want 200 with a grant", code)
        }
    })
    if err := mock.ExpectationsWereMet(); err != nil {
        t.Errorf("unmet expectations: %v", err)
    }
}

func TestContextUserID(t *testing.T) {
    e := echo.New()
    cases := []struct {
        name string
        val  interface{}
        want uint64
        ok   bool
    }{
        {"float64 claim", float64(7), 7, true},
        {"uint64", uint64(8), 8, true},
        {"int64", int64(9), 9, true},
        {"int", 10, 10, true},
        {"numeric string", "11", 11, true},
        {"garbage string", "abc", 0, false},
        {"missing", nil, 0, false},
    }
    for _, c := range cases {
        t.Run(c.name, func(t *testing.T) {
            req := httptest.NewRequest(http.MethodGet, "/", nil)
            ctx := e.NewContext(req, httptest.NewRecorder())
            if c.val != nil {
                ctx.Set("user_id", c.val)
            }
            got, ok := contextUserID(ctx)
            if got != c.want || ok != c.ok {
                t.Errorf("contextUserID(%v) = (%d, %v), want (%d, %v)", c.val, got, ok, c.want, c.ok)
            }
        })
    }
}
