package router

import (
    "github.com/labstack/echo/v4"

    "github.com/elevateassist/va-agency-portal/internal/handler"
    "github.com/elevateassist/va-agency-portal/internal/middleware"
)

// RegisterClient registers client-portal endpoints under /v1/client.  All
// routes require a valid JWT carrying the CLIENT role.  Every handler
// scopes its queries to the caller's own records.
func RegisterClient(e *echo.Echo, h *handler.ClientHandler, jwtSecret string) {
    g := e.Group(
        "/v1/client",
        middleware.JWTAuth(jwtSecret),
        middleware.RequireRole("CLIENT"),
    )

    // ---- Profile ----
    g.GET("/profile", h.GetProfile)
    g.PUT("/profile", h.UpdateProfile)
    g.POST("/profile/avatar", h.UploadAvatar)

    // ---- Subscription ----
    g.GET("/subscription", h.GetSubscription)

    // ---- Tasks ----
    g.POST("/tasks", h.SubmitTask)
    g.GET("/tasks", h.ListTasks)

    // ---- Service history & pairings ----
    g.GET("/history", h.ListHistory)
    g.GET("/assignments", h.ListAssignments)
}
