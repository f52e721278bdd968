package middleware

import (
    "net/http"

    "github.com/labstack/echo/v4"
)

// RequireAccess returns a middleware enforcing that the session carries
// one of the given access levels ("team", "admin").  It assumes
// SessionAuth has already stored the level in the context under
// "access_level"; a missing or unknown level is rejected with 403.
func RequireAccess(levels ...string) echo.MiddlewareFunc {
    allowed := make(map[string]bool, len(levels))
    for _, l := range levels {
        allowed[l] = true
    }
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            v := c.Get("access_level")
            level, ok := v.(string)
            if !ok || !allowed[level] {
                return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
            }
            return next(c)
        }
    }
}
