package handler

import (
    "context"  // context with cancellation for DB calls
    "net/http" // HTTP status codes
    "time"     // timeouts

    "github.com/labstack/echo/v4" // Echo framework

    "github.com/elevateassist/va-agency-portal/internal/model"
    "github.com/elevateassist/va-agency-portal/internal/repository"
)

type createAssignmentReq struct {
    StaffID  uint64  `json:"staff_id" validate:"required"`
    ClientID uint64  `json:"client_id" validate:"required"`
    Notes    *string `json:"notes" validate:"omitempty,max=1000"`
}

// CreateAssignment pairs a staff member with a client.  The pairing is
// durable and independent of any single task.
func (h *AdminHandler) CreateAssignment(c echo.Context) error {
    var req createAssignmentReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    if req.StaffID == 0 || req.ClientID == 0 {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "staff_id and client_id required"})
    }

    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    if _, err := h.Staff.GetByID(ctx, req.StaffID); err != nil {
        if err == repository.ErrStaffNotFound {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "staff not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
    }
    if _, err := h.Profiles.GetByID(ctx, req.ClientID); err != nil {
        if err == repository.ErrProfileNotFound {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "client not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
    }

    a := model.StaffAssignment{
        StaffID:  req.StaffID,
        ClientID: req.ClientID,
        Notes:    req.Notes,
    }
    if err := h.Assignments.Create(ctx, &a); err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create assignment failed"})
    }
    return c.JSON(http.StatusCreated, assignmentView(a))
}

// EndAssignment terminates an active pairing.  Ended pairings stay in the
// table for history; ending twice is a conflict.
func (h *AdminHandler) EndAssignment(c echo.Context) error {
    id, ok := pathID(c)
    if !ok {
        return nil
    }
    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    if err := h.Assignments.End(ctx, id); err != nil {
        switch err {
        case repository.ErrAssignmentNotFound:
            return c.JSON(http.StatusNotFound, echo.Map{"error": "assignment not found"})
        case repository.ErrConflict:
            return c.JSON(http.StatusConflict, echo.Map{"error": "assignment already ended"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
    }
    return c.NoContent(http.StatusNoContent)
}

type assignTaskReq struct {
    StaffID uint64 `json:"staff_id" validate:"required"`
}

// AssignTask points a task at a staff member.  Only the assignee may later
// advance the task's status; reassignment is allowed while the task is
// still pending or in progress.
func (h *AdminHandler) AssignTask(c echo.Context) error {
    taskID, ok := pathID(c)
    if !ok {
        return nil
    }
    var req assignTaskReq
    if err := c.Bind(&req); err != nil || req.StaffID == 0 {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "staff_id required"})
    }

    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    t, err := h.Tasks.GetByID(ctx, taskID)
    if err != nil {
        if err == repository.ErrTaskNotFound {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "task not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
    }
    if t.Status == model.TaskCompleted {
        return c.JSON(http.StatusConflict, echo.Map{"error": "task already completed"})
    }
    if err := h.Tasks.Assign(ctx, taskID, req.StaffID); err != nil {
        switch err {
        case repository.ErrTaskNotFound:
            return c.JSON(http.StatusNotFound, echo.Map{"error": "task not found"})
        case repository.ErrStaffNotFound:
            return c.JSON(http.StatusNotFound, echo.Map{"error": "staff not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "assign failed"})
    }
    t, err = h.Tasks.GetByID(ctx, taskID)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
    }
    return c.JSON(http.StatusOK, taskView(t))
}
