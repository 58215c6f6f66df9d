package middleware

import (
    "net/http"
    "net/http/httptest"
    "testing"

    "github.com/labstack/echo/v4"

    "github.com/elevateassist/va-agency-portal/internal/utils"
)

func doJWT(t *testing.T, secret, header string) (*httptest.ResponseRecorder, echo.Context) {
    t.Helper()
    e := echo.New()
    req := httptest.NewRequest(http.MethodGet, "/", nil)
    if header != "" {
        req.Header.Set("Authorization", header)
    }
    rec := httptest.NewRecorder()
    c := e.NewContext(req, rec)
    h := JWTAuth(secret)(func(c echo.Context) error {
        return c.NoContent(http.StatusOK)
    })
    if err := h(c); err != nil {
        t.Fatalf("handler error: %v", err)
    }
    return rec, c
}

func TestJWTAuthValidToken(t *testing.T) {
    at, err := utils.NewAccessToken("s3cret", 55, "STAFF", 5)
    if err != nil {
        t.Fatalf("NewAccessToken: %v", err)
    }
    rec, c := doJWT(t, "s3cret", "Bearer "+at.Token)
    if rec.Code != http.StatusOK {
        t.Fatalf("got %d, want 200", rec.Code)
    }
    uid, ok := contextUserID(c)
    if !ok || uid != 55 {
        t.Errorf("user_id = (%d, %v), want 55", uid, ok)
    }
    if role, _ := c.Get("role").(string); role != "STAFF" {
        t.Errorf("role = %v, want STAFF", c.Get("role"))
    }
}

func TestJWTAuthRejects(t *testing.T) {
    at, _ := utils.NewAccessToken("other-secret", 1, "CLIENT", 5)
    expired, _ := utils.NewAccessToken("s3cret", 1, "CLIENT", -5)
    cases := []struct {
        name   string
        header string
    }{
        {"missing header", ""},
        {"not bearer", "Basic abc"},
        {"garbage token", "Bearer not.a.jwt"},
        {"wrong secret", "Bearer " + at.Token},
        {"expired", "Bearer " + expired.Token},
    }
    for _, c := range cases {
        t.Run(c.name, func(t *testing.T) {
            rec, _ := doJWT(t, "s3cret", c.header)
            if rec.Code != http.StatusUnauthorized {
                t.Errorf("got %d, want 401", rec.Code)
            }
        })
    }
}
