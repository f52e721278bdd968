package handler

import (
    "context"
    "errors"
    "net/http"
    "strings"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/rafael-team/car-booking/internal/config"
    "github.com/rafael-team/car-booking/internal/repository"
    "github.com/rafael-team/car-booking/internal/utils"
)

// Settings keys holding the shared passcodes.  The team passcode grants
// normal access, the admin passcode grants management access on top.
const (
    settingTeamPasscode  = "team_passcode"
    settingAdminPasscode = "admin_passcode"
)

// AuthHandler bundles dependencies for session endpoints.
type AuthHandler struct {
    Cfg      config.Config
    Settings *repository.SettingsRepo
}

func NewAuthHandler(cfg config.Config, s *repository.SettingsRepo) *AuthHandler {
    return &AuthHandler{Cfg: cfg, Settings: s}
}

// ----- DTOs -----

type loginReq struct {
    UserName string `json:"user_name"`
    Passcode string `json:"passcode"`
}

type sessionPart struct {
    Token   string    `json:"token"`
    Expires time.Time `json:"expires"`
}

type loginResp struct {
    UserName    string      `json:"user_name"`
    AccessLevel string      `json:"access_level"`
    Session     sessionPart `json:"session"`
}

type passcodeReq struct {
    AccessLevel string `json:"access_level"` // "team" or "admin"
    Passcode    string `json:"passcode"`
}

// Login exchanges a shared passcode for a session token.  The passcode is
// checked against the admin passcode first, then the team passcode, so an
// admin logging in always gets the higher access level.  A passcode that
// is unset in the settings store grants nothing.
func (h *AuthHandler) Login(c echo.Context) error {
    var req loginReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    req.UserName = strings.TrimSpace(req.UserName)
    if req.UserName == "" || req.Passcode == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "user_name/passcode required"})
    }

    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    level := ""
    if stored, err := h.Settings.Get(ctx, settingAdminPasscode); err == nil {
        if utils.VerifyPasscode(stored, req.Passcode) {
            level = "admin"
        }
    } else if !errors.Is(err, repository.ErrSettingNotFound) {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
    }
    if level == "" {
        if stored, err := h.Settings.Get(ctx, settingTeamPasscode); err == nil {
            if utils.VerifyPasscode(stored, req.Passcode) {
                level = "team"
            }
        } else if !errors.Is(err, repository.ErrSettingNotFound) {
            return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
        }
    }
    if level == "" {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid passcode"})
    }

    session, err := utils.NewSessionToken(h.Cfg.JWTSecret, req.UserName, level, h.Cfg.SessionTTLMin)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue session failed"})
    }

    return c.JSON(http.StatusOK, loginResp{
        UserName:    req.UserName,
        AccessLevel: level,
        Session:     sessionPart{Token: session.Token, Expires: session.Exp},
    })
}

// Me: simple protected endpoint echoing the session identity.
func (h *AuthHandler) Me(c echo.Context) error {
    return c.JSON(http.StatusOK, echo.Map{
        "user_name":    c.Get("user_name"),
        "access_level": c.Get("access_level"),
    })
}

// SetPasscode rotates the team or admin passcode (admin only).  The new
// passcode is bcrypt-hashed before it is written to the settings store,
// which also upgrades any legacy plaintext row on the next rotation.
func (h *AuthHandler) SetPasscode(c echo.Context) error {
    var req passcodeReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    level := strings.ToLower(strings.TrimSpace(req.AccessLevel))
    if level != "team" && level != "admin" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "access_level must be team or admin"})
    }
    if req.Passcode == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "passcode required"})
    }

    hash, err := utils.HashPasscode(req.Passcode, h.Cfg.BcryptCost)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "hash passcode failed"})
    }

    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    if err := h.Settings.Set(ctx, level+"_passcode", hash); err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "save passcode failed"})
    }
    return c.NoContent(http.StatusNoContent)
}
