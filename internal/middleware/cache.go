package middleware

import (
    "bytes"
    "crypto/sha1"
    "encoding/json"
    "fmt"
    "net/http"
    "strings"
    "time"

    "github.com/labstack/echo/v4"
    "github.com/redis/go-redis/v9"

    "github.com/rafael-team/car-booking/internal/config"
)

// cachedResponse is the envelope stored in Redis for a cached GET.
type cachedResponse struct {
    Status      int    `json:"status"`
    ContentType string `json:"content_type"`
    Body        []byte `json:"body"` // base64 via encoding/json
}

// bodyCapture duplicates the response body into a buffer while writing it
// through to the client, up to a configured limit.
type bodyCapture struct {
    http.ResponseWriter
    status int
    buf    bytes.Buffer
    size   int64
    limit  int64
}

func (w *bodyCapture) WriteHeader(code int) {
    w.status = code
    w.ResponseWriter.WriteHeader(code)
}

func (w *bodyCapture) Write(b []byte) (int, error) {
    if w.size < w.limit {
        remain := w.limit - w.size
        if int64(len(b)) <= remain {
            w.buf.Write(b)
        } else {
            w.buf.Write(b[:remain])
        }
    }
    w.size += int64(len(b))
    return w.ResponseWriter.Write(b)
}

// cacheKey hashes the concrete request URL plus the session user under the
// configured prefix.  The concrete URL (not the registered route pattern)
// keeps parameterized routes like /v1/settings/:key from sharing one
// entry, and the session user keeps per-session responses like /v1/me
// from leaking between members.
func cacheKey(prefix string, c echo.Context) string {
    u := c.Request().URL
    sum := sha1.Sum([]byte(sessionUser(c) + " " + u.Path + "?" + u.RawQuery))
    return fmt.Sprintf("%s:%x", prefix, sum[:])
}

// isMutation reports whether the method can change server state.
func isMutation(method string) bool {
    switch method {
    case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
        return true
    }
    return false
}

// dropAllCached deletes every cached entry tracked under the key set.
// Mutations are rare here, so dropping the whole cache is simpler and
// safer than tracking which reads each write affects.
func dropAllCached(c echo.Context, rdb *redis.Client, keySet string) {
    ctx := c.Request().Context()
    keys, err := rdb.SMembers(ctx, keySet).Result()
    if err != nil {
        return
    }
    keys = append(keys, keySet)
    _ = rdb.Del(ctx, keys...).Err()
}

// ResponseCache returns a middleware caching successful responses of the
// configured methods in Redis for the configured TTL.  Every successful
// mutating request (POST/PUT/PATCH/DELETE) invalidates the whole cache so
// a reload right after a write always sees the write.  A nil Redis client
// or a disabled config yields a pass-through middleware, so the API works
// unchanged without Redis.  Cached replies carry an X-Cache: HIT header.
func ResponseCache(cfg config.CacheConfig, rdb *redis.Client) echo.MiddlewareFunc {
    if !cfg.Enabled || rdb == nil {
        return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
    }
    ttl := cfg.TTL
    if ttl <= 0 {
        ttl = 30 * time.Second
    }
    keySet := cfg.Prefix + ":keys"

    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            method := strings.ToUpper(c.Request().Method)
            if !cfg.Methods[method] {
                if !isMutation(method) {
                    return next(c)
                }
                if err := next(c); err != nil {
                    return err
                }
                if c.Response().Status < http.StatusBadRequest {
                    dropAllCached(c, rdb, keySet)
                }
                return nil
            }

            ctx := c.Request().Context()
            key := cacheKey(cfg.Prefix, c)

            if raw, err := rdb.Get(ctx, key).Bytes(); err == nil {
                var cached cachedResponse
                if json.Unmarshal(raw, &cached) == nil {
                    if cached.ContentType != "" {
                        c.Response().Header().Set(echo.HeaderContentType, cached.ContentType)
                    }
                    c.Response().Header().Set("X-Cache", "HIT")
                    c.Response().WriteHeader(cached.Status)
                    _, _ = c.Response().Write(cached.Body)
                    return nil
                }
            }

            cw := &bodyCapture{
                ResponseWriter: c.Response().Writer,
                status:         http.StatusOK,
                limit:          int64(cfg.MaxBodyBytes),
            }
            c.Response().Writer = cw
            c.Response().Header().Set("X-Cache", "MISS")

            if err := next(c); err != nil {
                return err
            }

            // Only cache complete 200 responses.
            if cw.status == http.StatusOK && cw.size <= cw.limit {
                raw, err := json.Marshal(cachedResponse{
                    Status:      cw.status,
                    ContentType: c.Response().Header().Get(echo.HeaderContentType),
                    Body:        cw.buf.Bytes(),
                })
                if err == nil {
                    // Track the key alongside the entry so mutations can
                    // clear everything in one pass.
                    pipe := rdb.TxPipeline()
                    pipe.Set(ctx, key, raw, ttl)
                    pipe.SAdd(ctx, keySet, key)
                    pipe.Expire(ctx, keySet, ttl)
                    _, _ = pipe.Exec(ctx)
                }
            }
            return nil
        }
    }
}
