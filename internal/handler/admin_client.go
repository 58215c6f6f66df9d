package handler

import (
    "context"  // context with cancellation for DB calls
    "net/http" // HTTP status codes
    "time"     // timeouts

    "github.com/labstack/echo/v4" // Echo framework

    "github.com/elevateassist/va-agency-portal/internal/repository"
    "github.com/elevateassist/va-agency-portal/internal/validate"
)

// adminClientResp decorates a profile with the client's subscription and
// task count for the admin client list.
type adminClientResp struct {
    Profile      profileResp       `json:"profile"`
    Subscription *subscriptionResp `json:"subscription"`
    TaskCount    int64             `json:"task_count"`
}

// ListClients returns every client profile joined with its subscription
// and task count.
func (h *AdminHandler) ListClients(c echo.Context) error {
    ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
    defer cancel()

    profiles, err := h.Profiles.List(ctx)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
    }

    out := make([]adminClientResp, 0, len(profiles))
    for _, p := range profiles {
        row := adminClientResp{Profile: profileView(p)}
        if sub, err := h.Subscriptions.GetByUserID(ctx, p.ID); err == nil {
            v := subscriptionView(sub)
            row.Subscription = &v
        } else if err != repository.ErrSubscriptionNotFound {
            return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
        }
        n, err := h.Tasks.CountByClient(ctx, p.ID)
        if err != nil {
            return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
        }
        row.TaskCount = n
        out = append(out, row)
    }
    return c.JSON(http.StatusOK, echo.Map{"clients": out})
}

// GetClient returns a single client with subscription, tasks and pairings.
func (h *AdminHandler) GetClient(c echo.Context) error {
    id, ok := pathID(c)
    if !ok {
        return nil
    }
    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    p, err := h.Profiles.GetByID(ctx, id)
    if err != nil {
        if err == repository.ErrProfileNotFound {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "client not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
    }
    resp := echo.Map{"profile": profileView(p)}

    if sub, err := h.Subscriptions.GetByUserID(ctx, id); err == nil {
        resp["subscription"] = subscriptionView(sub)
    } else if err != repository.ErrSubscriptionNotFound {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
    }
    tasks, err := h.Tasks.ListByClient(ctx, id)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
    }
    resp["tasks"] = taskViews(tasks)

    as, err := h.Assignments.ListByClient(ctx, id)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
    }
    resp["assignments"] = assignmentViews(as)

    return c.JSON(http.StatusOK, resp)
}

type adminSubscriptionReq struct {
    Plan          string  `json:"plan" validate:"required,max=100"`
    Status        string  `json:"status" validate:"required,oneof=trial active inactive cancelled"`
    HoursIncluded float64 `json:"hours_included" validate:"gte=0"`
    Price         float64 `json:"price" validate:"gte=0"`
}

// UpdateClientSubscription edits the subscription of the client in the
// path.  The admin editor is the only write surface for plan, status,
// included hours and price; hours_used stays untouched here.
func (h *AdminHandler) UpdateClientSubscription(c echo.Context) error {
    id, ok := pathID(c)
    if !ok {
        return nil
    }
    var req adminSubscriptionReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    if fields := validate.Struct(req); fields != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "validation failed", "fields": fields})
    }

    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    sub, err := h.Subscriptions.GetByUserID(ctx, id)
    if err != nil {
        if err == repository.ErrSubscriptionNotFound {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "subscription not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
    }
    if err := h.Subscriptions.AdminUpdate(ctx, sub.ID, req.Plan, req.Status, req.HoursIncluded, req.Price); err != nil {
        if err == repository.ErrSubscriptionNotFound {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "subscription not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
    }
    sub, err = h.Subscriptions.GetByUserID(ctx, id)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
    }
    return c.JSON(http.StatusOK, subscriptionView(sub))
}

// ListClientTasks returns every task of the client in the path; admins see
// tasks in any status.
func (h *AdminHandler) ListClientTasks(c echo.Context) error {
    id, ok := pathID(c)
    if !ok {
        return nil
    }
    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    ts, err := h.Tasks.ListByClient(ctx, id)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
    }
    return c.JSON(http.StatusOK, echo.Map{"tasks": taskViews(ts)})
}

// ListRecentTasks returns the newest tasks across all clients.
func (h *AdminHandler) ListRecentTasks(c echo.Context) error {
    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    ts, err := h.Tasks.ListRecent(ctx, 50)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
    }
    return c.JSON(http.StatusOK, echo.Map{"tasks": taskViews(ts)})
}
