package handler

import (
    "context"
    "errors"
    "net/http"
    "strings"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/rafael-team/car-booking/internal/repository"
)

// LocationHandler bundles dependencies for parked-car location endpoints.
type LocationHandler struct {
    Locations *repository.CarLocationRepo
}

func NewLocationHandler(l *repository.CarLocationRepo) *LocationHandler {
    return &LocationHandler{Locations: l}
}

type locationReq struct {
    Latitude    float64 `json:"latitude"`
    Longitude   float64 `json:"longitude"`
    Description string  `json:"description"`
}

// List returns recorded car locations, newest first.
func (h *LocationHandler) List(c echo.Context) error {
    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    locations, err := h.Locations.List(ctx)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load car locations"})
    }
    return c.JSON(http.StatusOK, echo.Map{"locations": locations})
}

// Create records where the car was parked.
func (h *LocationHandler) Create(c echo.Context) error {
    var req locationReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    if req.Latitude < -90 || req.Latitude > 90 || req.Longitude < -180 || req.Longitude > 180 {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid coordinates"})
    }

    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    loc, err := h.Locations.Create(ctx, req.Latitude, req.Longitude, strings.TrimSpace(req.Description))
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to save car location"})
    }
    return c.JSON(http.StatusCreated, echo.Map{"location": loc})
}

// Delete removes a recorded location (admin only).
func (h *LocationHandler) Delete(c echo.Context) error {
    id := c.Param("id")

    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    if err := h.Locations.Delete(ctx, id); err != nil {
        if errors.Is(err, repository.ErrLocationNotFound) {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "car location not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to delete car location"})
    }
    return c.NoContent(http.StatusNoContent)
}
