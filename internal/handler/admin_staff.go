package handler

import (
    "context"      // context with cancellation for DB calls
    "database/sql" // sql.ErrNoRows checks
    "net/http"     // HTTP status codes
    "strings"      // input normalization
    "time"         // timeouts

    "github.com/labstack/echo/v4" // Echo framework

    "github.com/elevateassist/va-agency-portal/internal/model"
    "github.com/elevateassist/va-agency-portal/internal/repository"
    "github.com/elevateassist/va-agency-portal/internal/validate"
)

type createStaffReq struct {
    FullName       string  `json:"full_name" validate:"required,max=255"`
    Email          string  `json:"email" validate:"required,email,max=255"`
    Password       string  `json:"password" validate:"required,min=6"`
    Phone          *string `json:"phone" validate:"omitempty,max=32"`
    Role           string  `json:"role"`
    Specialization *string `json:"specialization" validate:"omitempty,max=255"`
    HourlyRate     float64 `json:"hourly_rate" validate:"gte=0"`
}

// CreateStaff provisions a staff member: the login row and the staff row
// are inserted in one transaction so neither can exist without the other,
// and the staff row is bound to the new login's user id on creation.
func (h *AdminHandler) CreateStaff(c echo.Context) error {
    var req createStaffReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    req.Email = strings.ToLower(strings.TrimSpace(req.Email))
    req.FullName = strings.TrimSpace(req.FullName)
    if fields := validate.Struct(req); fields != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "validation failed", "fields": fields})
    }
    if req.Role == "" {
        req.Role = model.StaffRoleVA
    }
    if !model.ValidStaffRole(req.Role) {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid staff role"})
    }
    if req.HourlyRate == 0 {
        req.HourlyRate = 25
    }

    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    tx, err := h.DB.BeginTx(ctx, nil)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create staff failed"})
    }
    committed := false
    defer func() {
        if !committed {
            _ = tx.Rollback()
        }
    }()

    uid, err := h.Users.CreateTx(ctx, tx, req.Email, req.Password, model.RoleStaff, h.Cfg.BcryptCost)
    if err != nil {
        if err == repository.ErrEmailExists {
            return c.JSON(http.StatusConflict, echo.Map{"error": "email already exists"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create staff failed"})
    }

    st := model.StaffMember{
        UserID:         &uid,
        FullName:       req.FullName,
        Email:          req.Email,
        Phone:          req.Phone,
        Role:           req.Role,
        Specialization: req.Specialization,
        Status:         model.StaffAvailable,
        HourlyRate:     req.HourlyRate,
    }
    if err := h.Staff.CreateTx(ctx, tx, &st); err != nil {
        if err == repository.ErrStaffEmailExists {
            return c.JSON(http.StatusConflict, echo.Map{"error": "email already exists"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create staff failed"})
    }
    if err := tx.Commit(); err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create staff failed"})
    }
    committed = true

    return c.JSON(http.StatusCreated, staffView(st))
}

// ListStaff returns every staff member.
func (h *AdminHandler) ListStaff(c echo.Context) error {
    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    ms, err := h.Staff.List(ctx)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
    }
    return c.JSON(http.StatusOK, echo.Map{"staff": staffViews(ms)})
}

// GetStaff returns a single staff member with their assigned tasks and
// active client pairings.
func (h *AdminHandler) GetStaff(c echo.Context) error {
    id, ok := pathID(c)
    if !ok {
        return nil
    }
    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    st, err := h.Staff.GetByID(ctx, id)
    if err != nil {
        if err == repository.ErrStaffNotFound {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "staff not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
    }
    tasks, err := h.Tasks.ListByStaff(ctx, id)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
    }
    as, err := h.Assignments.ListActiveByStaff(ctx, id)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
    }
    return c.JSON(http.StatusOK, echo.Map{
        "staff":       staffView(st),
        "tasks":       taskViews(tasks),
        "assignments": assignmentViews(as),
    })
}

type updateStaffReq struct {
    FullName       string  `json:"full_name" validate:"required,max=255"`
    Phone          *string `json:"phone" validate:"omitempty,max=32"`
    Role           string  `json:"role"`
    Specialization *string `json:"specialization" validate:"omitempty,max=255"`
    Status         string  `json:"status"`
    HourlyRate     float64 `json:"hourly_rate" validate:"gte=0"`
}

// UpdateStaff edits a staff member's record.  Email and user_id are not
// editable: the email is the login identity and the binding is one-shot.
func (h *AdminHandler) UpdateStaff(c echo.Context) error {
    id, ok := pathID(c)
    if !ok {
        return nil
    }
    var req updateStaffReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    req.FullName = strings.TrimSpace(req.FullName)
    if fields := validate.Struct(req); fields != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "validation failed", "fields": fields})
    }
    if !model.ValidStaffRole(req.Role) {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid staff role"})
    }
    if !model.ValidStaffStatus(req.Status) {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid staff status"})
    }

    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    st, err := h.Staff.GetByID(ctx, id)
    if err != nil {
        if err == repository.ErrStaffNotFound {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "staff not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
    }
    st.FullName = req.FullName
    st.Phone = req.Phone
    st.Role = req.Role
    st.Specialization = req.Specialization
    st.Status = req.Status
    st.HourlyRate = req.HourlyRate
    if err := h.Staff.Update(ctx, &st); err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
    }
    return c.JSON(http.StatusOK, staffView(st))
}

// DeleteStaff removes a staff member.  Tasks or assignments referencing
// the row block the delete and surface as a conflict.
func (h *AdminHandler) DeleteStaff(c echo.Context) error {
    id, ok := pathID(c)
    if !ok {
        return nil
    }
    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    if err := h.Staff.Delete(ctx, id); err != nil {
        switch err {
        case repository.ErrStaffNotFound:
            return c.JSON(http.StatusNotFound, echo.Map{"error": "staff not found"})
        case repository.ErrConflict:
            return c.JSON(http.StatusConflict, echo.Map{"error": "staff has tasks or assignments"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
    }
    return c.NoContent(http.StatusNoContent)
}

type resetPasswordReq struct {
    Password string `json:"password" validate:"required,min=6"`
}

// ResetStaffPassword sets a new password on the staff member's login.
// The staff row must already carry a user_id; a row that was never bound
// to a login has no credential to overwrite and the reset fails with a
// precondition error.  Running the same reset twice is harmless.
func (h *AdminHandler) ResetStaffPassword(c echo.Context) error {
    id, ok := pathID(c)
    if !ok {
        return nil
    }
    var req resetPasswordReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    if fields := validate.Struct(req); fields != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "validation failed", "fields": fields})
    }

    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    st, err := h.Staff.GetByID(ctx, id)
    if err != nil {
        if err == repository.ErrStaffNotFound {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "staff not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
    }
    if st.UserID == nil {
        return c.JSON(http.StatusPreconditionFailed, echo.Map{"error": "staff member has no linked login"})
    }
    if err := h.Users.UpdatePassword(ctx, *st.UserID, req.Password, h.Cfg.BcryptCost); err != nil {
        if err == sql.ErrNoRows {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "login not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "reset failed"})
    }
    return c.NoContent(http.StatusNoContent)
}
