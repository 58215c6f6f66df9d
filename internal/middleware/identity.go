package middleware

// identity.go defines helper functions shared across middleware files.
// It provides a userID extraction function used for rate-limit bucket
// keys: it pulls the subject stored by JWTAuth from the Echo context and
// falls back to "guest" for anonymous traffic (the public contact and
// consultation forms).

import (
    "fmt"

    "github.com/labstack/echo/v4"
)

// userKey returns a stable string identifier for the requester.  It
// returns "guest" when no user is authenticated.
func userKey(c echo.Context) string {
    if id, ok := contextUserID(c); ok {
        return fmt.Sprintf("%d", id)
    }
    return "guest"
}
