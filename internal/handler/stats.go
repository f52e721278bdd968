package handler

import (
    "context"
    "net/http"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/rafael-team/car-booking/internal/repository"
    "github.com/rafael-team/car-booking/internal/schedule"
)

// StatsHandler bundles dependencies for the usage statistics endpoint.
type StatsHandler struct {
    Bookings *repository.BookingRepo
}

func NewStatsHandler(b *repository.BookingRepo) *StatsHandler {
    return &StatsHandler{Bookings: b}
}

// Usage aggregates booking history into counts, hours and top users.
func (h *StatsHandler) Usage(c echo.Context) error {
    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    bookings, err := h.Bookings.List(ctx)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load bookings"})
    }
    return c.JSON(http.StatusOK, schedule.ComputeUsage(time.Now(), bookings))
}
