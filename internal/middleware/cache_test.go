package middleware

import (
    "net/http"
    "net/http/httptest"
    "testing"

    "github.com/labstack/echo/v4"
    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/rafael-team/car-booking/internal/config"
)

func cacheCtx(t *testing.T, target, routePath, user string) echo.Context {
    t.Helper()
    e := echo.New()
    req := httptest.NewRequest(http.MethodGet, target, nil)
    c := e.NewContext(req, httptest.NewRecorder())
    c.SetPath(routePath)
    if user != "" {
        c.Set("user_name", user)
    }
    return c
}

func TestCacheKeyUsesConcreteURLNotRoutePattern(t *testing.T) {
    // Both requests match the same registered route; they must not share
    // one cache entry.
    a := cacheCtx(t, "/v1/settings/key_location", "/v1/settings/:key", "Alice")
    b := cacheCtx(t, "/v1/settings/car_model", "/v1/settings/:key", "Alice")

    assert.NotEqual(t, cacheKey("cache", a), cacheKey("cache", b))
}

func TestCacheKeyStableForSameRequest(t *testing.T) {
    a := cacheCtx(t, "/v1/bookings?date=2025-03-10", "/v1/bookings", "Alice")
    b := cacheCtx(t, "/v1/bookings?date=2025-03-10", "/v1/bookings", "Alice")

    assert.Equal(t, cacheKey("cache", a), cacheKey("cache", b))
}

func TestCacheKeyIncludesQuery(t *testing.T) {
    a := cacheCtx(t, "/v1/bookings?date=2025-03-10", "/v1/bookings", "Alice")
    b := cacheCtx(t, "/v1/bookings?date=2025-03-11", "/v1/bookings", "Alice")

    assert.NotEqual(t, cacheKey("cache", a), cacheKey("cache", b))
}

func TestCacheKeySeparatesSessions(t *testing.T) {
    // /v1/me answers differ per session; the key must too.
    a := cacheCtx(t, "/v1/me", "/v1/me", "Alice")
    b := cacheCtx(t, "/v1/me", "/v1/me", "Bob")

    assert.NotEqual(t, cacheKey("cache", a), cacheKey("cache", b))
}

func TestResponseCachePassThroughWithoutRedis(t *testing.T) {
    mw := ResponseCache(config.CacheConfig{Enabled: true}, nil)

    called := false
    h := mw(func(c echo.Context) error {
        called = true
        return c.String(http.StatusOK, "ok")
    })

    e := echo.New()
    req := httptest.NewRequest(http.MethodGet, "/v1/bookings", nil)
    rec := httptest.NewRecorder()

    require.NoError(t, h(e.NewContext(req, rec)))
    assert.True(t, called)
    assert.Equal(t, http.StatusOK, rec.Code)
    assert.Empty(t, rec.Header().Get("X-Cache"))
}

func TestIsMutation(t *testing.T) {
    for _, m := range []string{http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete} {
        assert.True(t, isMutation(m), m)
    }
    for _, m := range []string{http.MethodGet, http.MethodHead, http.MethodOptions} {
        assert.False(t, isMutation(m), m)
    }
}

func TestBodyCaptureHonorsLimit(t *testing.T) {
    rec := httptest.NewRecorder()
    cw := &bodyCapture{ResponseWriter: rec, status: http.StatusOK, limit: 4}

    _, err := cw.Write([]byte("abcdef"))
    require.NoError(t, err)

    // The client sees everything; the capture buffer stops at the limit,
    // and the recorded size flags the entry as incomplete.
    assert.Equal(t, "abcdef", rec.Body.String())
    assert.Equal(t, "abcd", cw.buf.String())
    assert.Greater(t, cw.size, cw.limit)
}
