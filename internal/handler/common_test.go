package handler

import (
    "net/http"
    "net/http/httptest"
    "testing"

    "github.com/labstack/echo/v4"
)

func TestGetUserID(t *testing.T) {
    e := echo.New()
    cases := []struct {
        name    string
        val     interface{}
        want    uint64
        wantErr bool
    }{
        {"float64 claim", float64(12), 12, false},
        {"uint64", uint64(3), 3, false},
        {"int64", int64(4), 4, false},
        {"int", 5, 5, false},
        {"missing", nil, 0, true},
        {"string", "12", 0, true},
    }
    for _, c := range cases {
        t.Run(c.name, func(t *testing.T) {
            req := httptest.NewRequest(http.MethodGet, "/", nil)
            ctx := e.NewContext(req, httptest.NewRecorder())
            if c.val != nil {
                ctx.Set("user_id", c.val)
            }
            got, err := getUserID(ctx)
            if (err != nil) != c.wantErr || got != c.want {
                t.Errorf("getUserID(%v) = (%d, %v), want (%d, err=%v)", c.val, got, err, c.want, c.wantErr)
            }
        })
    }
}
