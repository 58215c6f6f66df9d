package handler

import (
    "context"      // context with cancellation for DB calls
    "log"          // publish failure logging
    "net/http"     // HTTP status codes
    "strconv"      // path param parsing
    "time"         // timeouts

    "github.com/google/uuid"      // event ids for task completion events
    "github.com/labstack/echo/v4" // Echo framework

    "github.com/elevateassist/va-agency-portal/internal/model"
    "github.com/elevateassist/va-agency-portal/internal/queue"
    "github.com/elevateassist/va-agency-portal/internal/repository"
    queue_publisher "github.com/elevateassist/va-agency-portal/internal/service"
)

// StaffHandler serves the staff workspace: the assigned task queue, the
// forward-only status moves and the staff member's client pairings.  The
// staff row is always resolved from the JWT's user id; a staff member can
// only ever touch tasks assigned to their own staff id.
type StaffHandler struct {
    Staff       *repository.StaffRepo
    Tasks       *repository.TaskRepo
    Assignments *repository.AssignmentRepo
}

// NewStaffHandler wires the handler with its dependencies.
func NewStaffHandler(s *repository.StaffRepo, t *repository.TaskRepo, a *repository.AssignmentRepo) *StaffHandler {
    return &StaffHandler{Staff: s, Tasks: t, Assignments: a}
}

// resolveStaff maps the authenticated user to their staff row.
func (h *StaffHandler) resolveStaff(ctx context.Context, c echo.Context) (model.StaffMember, bool) {
    userID, err := getUserID(c)
    if err != nil {
        _ = c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
        return model.StaffMember{}, false
    }
    st, err := h.Staff.GetByUserID(ctx, userID)
    if err != nil {
        if err == repository.ErrStaffNotFound {
            _ = c.JSON(http.StatusForbidden, echo.Map{"error": "no staff record for this account"})
        } else {
            _ = c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
        }
        return model.StaffMember{}, false
    }
    return st, true
}

// Me returns the caller's own staff record.
func (h *StaffHandler) Me(c echo.Context) error {
    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    st, ok := h.resolveStaff(ctx, c)
    if !ok {
        return nil
    }
    return c.JSON(http.StatusOK, staffView(st))
}

// ListTasks returns the tasks assigned to the caller, newest first.
func (h *StaffHandler) ListTasks(c echo.Context) error {
    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    st, ok := h.resolveStaff(ctx, c)
    if !ok {
        return nil
    }
    ts, err := h.Tasks.ListByStaff(ctx, st.ID)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
    }
    return c.JSON(http.StatusOK, echo.Map{"tasks": taskViews(ts)})
}

// StartTask moves an assigned task from pending to in_progress.  The
// UPDATE is guarded on assignee and current status so a task that was
// reassigned or already started is left untouched.
func (h *StaffHandler) StartTask(c echo.Context) error {
    taskID, err := strconv.ParseUint(c.Param("id"), 10, 64)
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid task id"})
    }
    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    st, ok := h.resolveStaff(ctx, c)
    if !ok {
        return nil
    }
    if err := h.Tasks.AdvanceStatus(ctx, taskID, st.ID, model.TaskPending, model.TaskInProgress, nil); err != nil {
        switch err {
        case repository.ErrTaskNotFound:
            return c.JSON(http.StatusNotFound, echo.Map{"error": "task not found"})
        case repository.ErrInvalidTransition:
            return c.JSON(http.StatusConflict, echo.Map{"error": "task is not pending or not assigned to you"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
    }
    t, err := h.Tasks.GetByID(ctx, taskID)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
    }
    return c.JSON(http.StatusOK, taskView(t))
}

type completeTaskReq struct {
    HoursActual float64 `json:"hours_actual"`
}

// CompleteTask moves an in_progress task to completed, records the actual
// hours when reported and publishes the task.completed event.  Hours
// accrual against the client's subscription happens only in the consumer
// of that event; the request path never touches hours_used.  A completion
// without hours still lands in service history, it just accrues nothing.
func (h *StaffHandler) CompleteTask(c echo.Context) error {
    taskID, err := strconv.ParseUint(c.Param("id"), 10, 64)
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid task id"})
    }
    var req completeTaskReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    if req.HoursActual < 0 {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "hours_actual cannot be negative"})
    }

    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    st, ok := h.resolveStaff(ctx, c)
    if !ok {
        return nil
    }
    var hours *float64
    if req.HoursActual > 0 {
        hours = &req.HoursActual
    }
    if err := h.Tasks.AdvanceStatus(ctx, taskID, st.ID, model.TaskInProgress, model.TaskCompleted, hours); err != nil {
        switch err {
        case repository.ErrTaskNotFound:
            return c.JSON(http.StatusNotFound, echo.Map{"error": "task not found"})
        case repository.ErrInvalidTransition:
            return c.JSON(http.StatusConflict, echo.Map{"error": "task is not in progress or not assigned to you"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
    }

    t, err := h.Tasks.GetByID(ctx, taskID)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
    }

    event := queue.TaskCompletedEvent{
        EventID:     uuid.NewString(),
        TaskID:      t.ID,
        ClientID:    t.ClientID,
        StaffID:     st.ID,
        Title:       t.Title,
        Description: t.Description,
        HoursActual: req.HoursActual,
        CompletedAt: time.Now().UTC().Format(time.RFC3339),
    }
    if err := queue_publisher.PublishTaskCompleted(ctx, event); err != nil {
        // the task is already completed; accounting catches up after
        // the broker recovers, so the request still succeeds
        log.Printf("task %d completed but event publish failed: %v", t.ID, err)
    }

    return c.JSON(http.StatusOK, taskView(t))
}

// ListAssignments returns the caller's active client pairings.
func (h *StaffHandler) ListAssignments(c echo.Context) error {
    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    st, ok := h.resolveStaff(ctx, c)
    if !ok {
        return nil
    }
    as, err := h.Assignments.ListActiveByStaff(ctx, st.ID)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
    }
    return c.JSON(http.StatusOK, echo.Map{"assignments": assignmentViews(as)})
}

type staffStatusReq struct {
    Status string `json:"status"`
}

// UpdateStatus lets a staff member flip their own availability flag.
func (h *StaffHandler) UpdateStatus(c echo.Context) error {
    var req staffStatusReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    if !model.ValidStaffStatus(req.Status) {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "status must be available, busy or offline"})
    }

    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    st, ok := h.resolveStaff(ctx, c)
    if !ok {
        return nil
    }
    st.Status = req.Status
    if err := h.Staff.Update(ctx, &st); err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
    }
    return c.JSON(http.StatusOK, staffView(st))
}
