package middleware

// identity.go holds helpers shared across middleware files.  sessionUser
// reads the user name that SessionAuth stored in the context; it returns
// "guest" for unauthenticated requests so rate-limit keys stay stable.

import "github.com/labstack/echo/v4"

// sessionUser extracts the authenticated user's name from the context,
// or "guest" when the request carries no session.
func sessionUser(c echo.Context) string {
    if v, ok := c.Get("user_name").(string); ok && v != "" {
        return v
    }
    return "guest"
}
