// Package router defines how HTTP routes are registered for the API.
package router

import (
    "github.com/labstack/echo/v4"

    "github.com/rafael-team/car-booking/internal/handler"
    "github.com/rafael-team/car-booking/internal/middleware"
)

// RegisterRoutes registers routes that do not require authentication on
// the provided Echo instance.  Currently it exposes only a health check.
func RegisterRoutes(e *echo.Echo) {
    e.GET("/healthz", handler.Health)
}

// API groups the handlers the versioned routes are built from.
type API struct {
    Auth      *handler.AuthHandler
    Bookings  *handler.BookingHandler
    Team      *handler.TeamHandler
    Settings  *handler.SettingsHandler
    Locations *handler.LocationHandler
    Stats     *handler.StatsHandler
}

// RegisterAPI wires all /v1 routes.  Login is the only unauthenticated
// endpoint; everything else requires a session token, with the management
// routes additionally requiring admin access.  cacheMW goes on both
// groups: it serves read responses from Redis and clears them whenever a
// mutation on either group succeeds, so a reload after a write never sees
// a pre-write list.
func RegisterAPI(e *echo.Echo, api API, jwtSecret string, cacheMW echo.MiddlewareFunc) {
    e.POST("/v1/auth/login", api.Auth.Login)

    // Routes any logged-in team member may use.
    team := e.Group("/v1")
    team.Use(middleware.SessionAuth(jwtSecret))
    team.Use(middleware.RequireAccess("team", "admin"))
    team.Use(cacheMW)

    team.GET("/me", api.Auth.Me)

    team.GET("/bookings", api.Bookings.List)
    team.POST("/bookings", api.Bookings.Create)
    team.GET("/calendar", api.Bookings.Calendar)
    team.GET("/stats", api.Stats.Usage)

    team.GET("/team-members", api.Team.List)
    team.POST("/team-members", api.Team.Create)

    team.GET("/settings/:key", api.Settings.Get)
    team.PUT("/settings/:key", api.Settings.Set) // non key_location writes re-checked for admin in the handler

    team.GET("/car-locations", api.Locations.List)
    team.POST("/car-locations", api.Locations.Create)

    // Management routes.
    admin := e.Group("/v1")
    admin.Use(middleware.SessionAuth(jwtSecret))
    admin.Use(middleware.RequireAccess("admin"))
    admin.Use(cacheMW)

    admin.PUT("/auth/passcode", api.Auth.SetPasscode)
    admin.PUT("/bookings/:id", api.Bookings.Update)
    admin.DELETE("/bookings/:id", api.Bookings.Delete)
    admin.DELETE("/team-members/:id", api.Team.Delete)
    admin.POST("/team-members/batch-delete", api.Team.BatchDelete)
    admin.GET("/settings", api.Settings.List)
    admin.DELETE("/car-locations/:id", api.Locations.Delete)
}
