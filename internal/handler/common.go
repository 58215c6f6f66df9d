package handler // package handler contains the HTTP endpoint implementations

import (
    "errors" // sentinel errors for identity extraction

    "github.com/labstack/echo/v4" // Echo context
)

// errNoIdentity is returned when the request context carries no user id.
var errNoIdentity = errors.New("no identity in context")

// getUserID pulls the authenticated user's id out of the Echo context.
// The JWT middleware stores the subject claim under "user_id"; depending on
// how the claim was decoded the value may arrive as several numeric types.
func getUserID(c echo.Context) (uint64, error) {
    switch v := c.Get("user_id").(type) {
    case uint64:
        return v, nil
    case int64:
        return uint64(v), nil
    case float64:
        return uint64(v), nil
    case int:
        return uint64(v), nil
    }
    return 0, errNoIdentity
}
