package handler

import (
    "context"  // context with cancellation for DB calls
    "net/http" // HTTP status codes
    "time"     // timeouts

    "github.com/labstack/echo/v4" // Echo framework

    "github.com/elevateassist/va-agency-portal/internal/model"
)

// Overview returns the dashboard numbers: client/staff head counts, task
// status breakdown, live subscription count, monthly revenue and total
// consumed hours, plus a short recent-activity feed.
func (h *AdminHandler) Overview(c echo.Context) error {
    ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
    defer cancel()

    clients, err := h.Profiles.Count(ctx)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
    }
    staffCount, err := h.Staff.Count(ctx)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
    }
    pending, err := h.Tasks.CountByStatus(ctx, model.TaskPending)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
    }
    inProgress, err := h.Tasks.CountByStatus(ctx, model.TaskInProgress)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
    }
    completed, err := h.Tasks.CountByStatus(ctx, model.TaskCompleted)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
    }
    activeSubs, revenue, hoursUsed, err := h.Subscriptions.Totals(ctx)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
    }

    recentTasks, err := h.Tasks.ListRecent(ctx, 10)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
    }
    recentClients, err := h.Profiles.ListRecent(ctx, 5)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
    }

    clientViews := make([]profileResp, 0, len(recentClients))
    for _, p := range recentClients {
        clientViews = append(clientViews, profileView(p))
    }

    return c.JSON(http.StatusOK, echo.Map{
        "stats": echo.Map{
            "total_clients":        clients,
            "total_staff":          staffCount,
            "tasks_pending":        pending,
            "tasks_in_progress":    inProgress,
            "tasks_completed":      completed,
            "active_subscriptions": activeSubs,
            "monthly_revenue":      revenue,
            "hours_used_total":     hoursUsed,
        },
        "recent_tasks":   taskViews(recentTasks),
        "recent_clients": clientViews,
    })
}

// ListContacts returns the newest contact form submissions.
func (h *AdminHandler) ListContacts(c echo.Context) error {
    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    subs, err := h.Contacts.List(ctx, 100)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
    }
    type contactResp struct {
        ID        uint64    `json:"id"`
        Name      string    `json:"name"`
        Email     string    `json:"email"`
        Phone     *string   `json:"phone"`
        Message   string    `json:"message"`
        CreatedAt time.Time `json:"created_at"`
    }
    out := make([]contactResp, 0, len(subs))
    for _, s := range subs {
        out = append(out, contactResp{
            ID:        s.ID,
            Name:      s.Name,
            Email:     s.Email,
            Phone:     s.Phone,
            Message:   s.Message,
            CreatedAt: s.CreatedAt,
        })
    }
    return c.JSON(http.StatusOK, echo.Map{"contacts": out})
}
