package router

import (
    "github.com/labstack/echo/v4"

    "github.com/elevateassist/va-agency-portal/internal/handler"
    "github.com/elevateassist/va-agency-portal/internal/middleware"
    "github.com/elevateassist/va-agency-portal/internal/repository"
)

// RegisterAdmin registers the back office under /v1/admin.  Admin routes
// are double-gated: the JWT must carry the ADMIN role AND the user must
// hold a live "admin" grant in user_roles.  A revoked grant locks out an
// admin even while their access token is still valid.
func RegisterAdmin(e *echo.Echo, h *handler.AdminHandler, roles *repository.RoleRepo, jwtSecret string) {
    g := e.Group(
        "/v1/admin",
        middleware.JWTAuth(jwtSecret),
        middleware.RequireRole("ADMIN"),
        middleware.RequireGrant(roles, "admin"),
    )

    // ---- Overview ----
    g.GET("/overview", h.Overview)
    g.GET("/contacts", h.ListContacts)

    // ---- Clients ----
    g.GET("/clients", h.ListClients)
    g.GET("/clients/:id", h.GetClient)
    g.PUT("/clients/:id/subscription", h.UpdateClientSubscription)
    g.GET("/clients/:id/tasks", h.ListClientTasks)

    // ---- Tasks ----
    g.GET("/tasks", h.ListRecentTasks)
    g.POST("/tasks/:id/assign", h.AssignTask)

    // ---- Staff ----
    g.POST("/staff", h.CreateStaff)
    g.GET("/staff", h.ListStaff)
    g.GET("/staff/:id", h.GetStaff)
    g.PUT("/staff/:id", h.UpdateStaff)
    g.DELETE("/staff/:id", h.DeleteStaff)
    g.POST("/staff/:id/reset-password", h.ResetStaffPassword)

    // ---- Assignments ----
    g.POST("/assignments", h.CreateAssignment)
    g.DELETE("/assignments/:id", h.EndAssignment)
}
