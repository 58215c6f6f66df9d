package middleware // middleware provides shared request processing for handlers

import (
    "net/http" // http package defines standard HTTP status codes
    "strconv"  // strconv converts context values to numeric ids

    "github.com/labstack/echo/v4" // echo provides middleware chaining and context

    "github.com/elevateassist/va-agency-portal/internal/repository" // repository exposes the role grant predicate
)

// RequireRole returns a middleware function that enforces that the
// authenticated user has one of the specified roles.  The roles
// accepted should correspond to the values stored in the JWT's "role"
// claim.  If the user's role is not in the allowed set, the request
// is aborted with a 403 Forbidden response.  It assumes a previous
// middleware has extracted the role into the context under the key
// "role".
func RequireRole(roles ...string) echo.MiddlewareFunc {
    // Build a set of allowed roles for constant‑time lookups.
    allowed := make(map[string]bool, len(roles))
    for _, r := range roles {
        allowed[r] = true
    }
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            // Retrieve the role from context.  It should have been
            // stored by JWTAuth middleware as a string.  If not
            // present or of wrong type, treat as missing.
            v := c.Get("role")
            role, ok := v.(string)
            if !ok || !allowed[role] {
                return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
            }
            return next(c)
        }
    }
}

// RequireGrant enforces a live role grant on top of the JWT claim.  The
// claim says what the token was minted with; the grant table says what the
// user holds right now.  The gate runs in strict order — identity was
// already validated by JWTAuth, then the grant is checked, and nothing
// privileged executes until both pass.  Absence of a grant and a lookup
// failure both deny: the check fails closed.
func RequireGrant(roles *repository.RoleRepo, role string) echo.MiddlewareFunc {
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            userID, ok := contextUserID(c)
            if !ok {
                return c.JSON(http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
            }
            held, err := roles.HasRole(c.Request().Context(), userID, role)
            if err != nil || !held {
                return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
            }
            return next(c)
        }
    }
}

// contextUserID converts the JWT subject stored by JWTAuth into a uint64.
// Claims decoded from JSON arrive as float64.
func contextUserID(c echo.Context) (uint64, bool) {
    switch t := c.Get("user_id").(type) {
    case uint64:
        return t, true
    case int64:
        return uint64(t), true
    case int:
        return uint64(t), true
    case float64:
        return uint64(t), true
    case string:
        if n, err := strconv.ParseUint(t, 10, 64); err == nil {
            return n, true
        }
    }
    return 0, false
}
