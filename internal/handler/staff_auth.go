package handler

import (
    "context"      // context with cancellation for DB calls
    "database/sql" // sql.ErrNoRows checks
    "log"          // logging for binding events
    "net/http"     // HTTP status codes
    "strings"      // input normalization
    "time"         // DB call timeouts

    "github.com/labstack/echo/v4" // Echo framework

    "github.com/elevateassist/va-agency-portal/internal/config"
    "github.com/elevateassist/va-agency-portal/internal/model"
    "github.com/elevateassist/va-agency-portal/internal/repository"
    "github.com/elevateassist/va-agency-portal/internal/utils"
)

// StaffAuthHandler implements the staff sign-in flow.  Provisioning binds
// a staff row to its login up front; rows that predate a login (imported
// or created out of band) are bound on the first successful sign-in,
// exactly once.
type StaffAuthHandler struct {
    Cfg    config.Config
    Users  *repository.UserRepo
    Tokens *repository.TokenRepo
    Staff  *repository.StaffRepo
}

// NewStaffAuthHandler wires the handler with its dependencies.
func NewStaffAuthHandler(cfg config.Config, u *repository.UserRepo, t *repository.TokenRepo, s *repository.StaffRepo) *StaffAuthHandler {
    return &StaffAuthHandler{Cfg: cfg, Users: u, Tokens: t, Staff: s}
}

// Login verifies staff credentials and returns a token pair.  After the
// password check the handler locates the staff row by email and, if its
// user_id is still null, backfills it with the login's id.  The UPDATE is
// guarded on user_id IS NULL so a concurrent first login binds at most once.
func (h *StaffAuthHandler) Login(c echo.Context) error {
    var req loginReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    req.Email = strings.ToLower(strings.TrimSpace(req.Email))
    if req.Email == "" || req.Password == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "email/password required"})
    }

    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    // Staff row first: an email with no staff record gets an explicit
    // answer instead of a generic authentication failure.
    st, err := h.Staff.GetByEmail(ctx, req.Email)
    if err != nil {
        if err == repository.ErrStaffNotFound {
            return c.JSON(http.StatusForbidden, echo.Map{"error": "not registered as staff"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
    }

    u, err := h.Users.GetByEmail(ctx, req.Email)
    if err != nil {
        if err == sql.ErrNoRows {
            return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
    }
    if !u.IsActive || !utils.VerifyPassword(u.PasswordHash, req.Password) {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
    }
    if u.Role != model.RoleStaff {
        return c.JSON(http.StatusForbidden, echo.Map{"error": "not a staff account"})
    }

    switch {
    case st.UserID == nil:
        bound, err := h.Staff.BindUserID(ctx, st.ID, u.ID)
        if err != nil {
            return c.JSON(http.StatusInternalServerError, echo.Map{"error": "bind failed"})
        }
        if bound {
            log.Printf("staff login bound: staff_id=%d user_id=%d", st.ID, u.ID)
        } else {
            // raced with another first login; re-read and verify
            st, err = h.Staff.GetByID(ctx, st.ID)
            if err != nil || st.UserID == nil || *st.UserID != u.ID {
                return c.JSON(http.StatusForbidden, echo.Map{"error": "staff record bound to another account"})
            }
        }
    case *st.UserID != u.ID:
        return c.JSON(http.StatusForbidden, echo.Map{"error": "staff record bound to another account"})
    }

    access, err := utils.NewAccessToken(h.Cfg.JWTSecret, u.ID, model.RoleStaff, h.Cfg.AccessTTLMin)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue access failed"})
    }
    refresh, err := utils.NewRefreshToken(h.Cfg.RefreshTTLDays)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue refresh failed"})
    }
    if err := h.Tokens.CreateSession(ctx, u.ID, utils.HashRefreshRaw(refresh.Raw), refresh.Exp); err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "save refresh failed"})
    }

    return c.JSON(http.StatusOK, echo.Map{
        "user":    userPart{ID: u.ID, Email: u.Email, Role: model.RoleStaff},
        "staff":   staffView(st),
        "access":  tokenPart{Token: access.Token, Expires: access.Exp},
        "refresh": tokenPart{Token: refresh.Raw, Expires: refresh.Exp},
    })
}
