package router

import (
    "github.com/labstack/echo/v4"

    "github.com/elevateassist/va-agency-portal/internal/handler"
    "github.com/elevateassist/va-agency-portal/internal/middleware"
)

// RegisterStaff registers the staff workspace under /v1/staff.  All routes
// require a valid JWT with the STAFF role; each handler additionally
// resolves the caller's staff row and refuses to touch tasks assigned to
// anyone else.
func RegisterStaff(e *echo.Echo, h *handler.StaffHandler, jwtSecret string) {
    g := e.Group(
        "/v1/staff",
        middleware.JWTAuth(jwtSecret),
        middleware.RequireRole("STAFF"),
    )

    g.GET("/me", h.Me)
    g.PUT("/status", h.UpdateStatus)

    // ---- Assigned task queue ----
    g.GET("/tasks", h.ListTasks)
    g.POST("/tasks/:id/start", h.StartTask)
    g.POST("/tasks/:id/complete", h.CompleteTask)

    // ---- Client pairings ----
    g.GET("/assignments", h.ListAssignments)
}
