package router // package router defines how HTTP routes are registered for the API

import (
    "github.com/labstack/echo/v4" // Echo web framework routing

    "github.com/elevateassist/va-agency-portal/internal/handler"    // endpoint implementations
    "github.com/elevateassist/va-agency-portal/internal/middleware" // JWT + role middlewares
)

// RegisterRoutes registers routes that do not require authentication on the
// provided Echo instance.  Currently it exposes only a health check.
func RegisterRoutes(e *echo.Echo) {
    // Used by load balancers and monitoring to verify the service is up.
    e.GET("/healthz", handler.Health)
}

// RegisterPublic registers the marketing site endpoints: the plan catalog
// and the contact/consultation intake forms.  No JWT or role middleware is
// applied; cacheMW (when non-nil) wraps the catalog so repeated reads are
// served out of Redis.
func RegisterPublic(e *echo.Echo, p *handler.PublicHandler, cacheMW echo.MiddlewareFunc) {
    if cacheMW != nil {
        e.GET("/v1/plans", p.Plans, cacheMW)
    } else {
        e.GET("/v1/plans", p.Plans)
    }
    e.POST("/v1/contact", p.Contact)
    e.POST("/v1/consultation", p.Consultation)
}

// RegisterAuth registers the authentication routes.  Unauthenticated
// operations live under /v1/auth; /v1/me requires a valid access token.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, sa *handler.StaffAuthHandler, jwtSecret string) {
    g := e.Group("/v1/auth")
    // Client self-service signup; also provisions profile + trial subscription.
    g.POST("/register", a.Register)
    // Client/admin login.
    g.POST("/login", a.Login)
    // Staff login with first-time staff row binding.
    g.POST("/staff/login", sa.Login)
    // Rotate the refresh token and return a new pair.
    g.POST("/refresh", a.Refresh)
    // Issue a new access token without rotating the refresh token.
    g.POST("/refresh-access", a.RefreshAccess)
    // Logout accepts either a refresh_token body (single session) or a
    // Bearer token (all sessions).
    g.POST("/logout", a.Logout)

    auth := e.Group("/v1")
    auth.Use(middleware.JWTAuth(jwtSecret))
    auth.Use(middleware.RequireRole("CLIENT", "STAFF", "ADMIN"))
    auth.GET("/me", a.Me)
}
