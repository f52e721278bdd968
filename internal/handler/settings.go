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

// settingKeyLocation is the one setting every team member may update: it
// records where the physical car key currently is.
const settingKeyLocation = "key_location"

// SettingsHandler bundles dependencies for settings endpoints.
type SettingsHandler struct {
    Settings *repository.SettingsRepo
}

func NewSettingsHandler(s *repository.SettingsRepo) *SettingsHandler {
    return &SettingsHandler{Settings: s}
}

type settingReq struct {
    Value string `json:"value"`
}

// isPasscodeKey reports whether a key holds a passcode hash.  Those rows
// never leave the server through the settings endpoints; rotation goes
// through the dedicated passcode endpoint instead.
func isPasscodeKey(key string) bool {
    return strings.HasSuffix(key, "_passcode")
}

// List returns all non-passcode settings (admin only).
func (h *SettingsHandler) List(c echo.Context) error {
    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    all, err := h.Settings.List(ctx)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load settings"})
    }

    visible := all[:0]
    for _, s := range all {
        if !isPasscodeKey(s.Key) {
            visible = append(visible, s)
        }
    }
    return c.JSON(http.StatusOK, echo.Map{"settings": visible})
}

// Get returns a single setting by key.
func (h *SettingsHandler) Get(c echo.Context) error {
    key := c.Param("key")
    if isPasscodeKey(key) {
        return c.JSON(http.StatusNotFound, echo.Map{"error": "setting not found"})
    }

    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    value, err := h.Settings.Get(ctx, key)
    if err != nil {
        if errors.Is(err, repository.ErrSettingNotFound) {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "setting not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
    }
    return c.JSON(http.StatusOK, echo.Map{"key": key, "value": value})
}

// Set writes a setting.  Only the key location is writable with team
// access; every other key needs admin.  Passcode keys are rejected here
// entirely so they cannot be overwritten with a plaintext value.
func (h *SettingsHandler) Set(c echo.Context) error {
    key := c.Param("key")
    if key == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "key required"})
    }
    if isPasscodeKey(key) {
        return c.JSON(http.StatusForbidden, echo.Map{"error": "use the passcode endpoint to rotate passcodes"})
    }
    if key != settingKeyLocation {
        if level, _ := c.Get("access_level").(string); level != "admin" {
            return c.JSON(http.StatusForbidden, echo.Map{"error": "admin access required"})
        }
    }

    var req settingReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }

    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    if err := h.Settings.Set(ctx, key, req.Value); err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to save setting"})
    }
    return c.JSON(http.StatusOK, echo.Map{"key": key, "value": req.Value})
}
