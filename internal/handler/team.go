package handler

import (
    "context"
    "errors"
    "net/http"
    "strings"
    "sync"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/rafael-team/car-booking/internal/repository"
)

// TeamHandler bundles dependencies for team directory endpoints.
type TeamHandler struct {
    Members *repository.TeamMemberRepo
}

func NewTeamHandler(m *repository.TeamMemberRepo) *TeamHandler {
    return &TeamHandler{Members: m}
}

type memberReq struct {
    Name string `json:"name"`
}

type batchDeleteReq struct {
    IDs []string `json:"ids"`
}

// List returns the team directory ordered by name.
func (h *TeamHandler) List(c echo.Context) error {
    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    members, err := h.Members.List(ctx)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load team members"})
    }
    return c.JSON(http.StatusOK, echo.Map{"members": members})
}

// Create adds a member to the directory.  Names are unique; a duplicate
// comes back as HTTP 409.
func (h *TeamHandler) Create(c echo.Context) error {
    var req memberReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    name := strings.TrimSpace(req.Name)
    if name == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "name is required"})
    }

    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    member, err := h.Members.Create(ctx, name)
    if err != nil {
        if errors.Is(err, repository.ErrNameExists) {
            return c.JSON(http.StatusConflict, echo.Map{"error": "name already exists"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to create team member"})
    }
    return c.JSON(http.StatusCreated, echo.Map{"member": member})
}

// Delete removes a single member (admin only).
func (h *TeamHandler) Delete(c echo.Context) error {
    id := c.Param("id")

    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    if err := h.Members.Delete(ctx, id); err != nil {
        if errors.Is(err, repository.ErrMemberNotFound) {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "team member not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to delete team member"})
    }
    return c.NoContent(http.StatusNoContent)
}

// BatchDelete removes several members concurrently, one delete per id.
// Every delete is attempted regardless of the others failing; the refreshed
// directory is returned either way, with a single generic error message
// when any delete failed.
func (h *TeamHandler) BatchDelete(c echo.Context) error {
    var req batchDeleteReq
    if err := c.Bind(&req); err != nil || len(req.IDs) == 0 {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "ids required"})
    }

    ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
    defer cancel()

    var (
        wg     sync.WaitGroup
        mu     sync.Mutex
        failed int
    )
    for _, id := range req.IDs {
        wg.Add(1)
        go func(id string) {
            defer wg.Done()
            if err := h.Members.Delete(ctx, id); err != nil {
                mu.Lock()
                failed++
                mu.Unlock()
            }
        }(id)
    }
    wg.Wait()

    members, err := h.Members.List(ctx)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load team members"})
    }

    resp := echo.Map{"members": members}
    if failed > 0 {
        resp["error"] = "failed to delete some team members"
    }
    return c.JSON(http.StatusOK, resp)
}
