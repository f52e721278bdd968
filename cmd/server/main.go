package main // entry point

import (
    "log"

    "github.com/joho/godotenv"
    "github.com/labstack/echo/v4"

    "github.com/rafael-team/car-booking/internal/config"
    "github.com/rafael-team/car-booking/internal/database"
    "github.com/rafael-team/car-booking/internal/handler"
    "github.com/rafael-team/car-booking/internal/middleware"
    "github.com/rafael-team/car-booking/internal/queue"
    "github.com/rafael-team/car-booking/internal/repository"
    "github.com/rafael-team/car-booking/internal/router"
)

func main() {
    // .env is optional; real deployments set the environment directly.
    _ = godotenv.Load()

    cfg := config.Load()

    db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
    if err != nil {
        log.Fatalf("database: %v", err)
    }
    defer db.Close()

    // Redis is optional: with no client the cache and rate limit
    // middlewares degrade to pass-throughs.
    rdb := config.NewRedisClient()
    if rdb == nil {
        log.Println("redis unavailable, response cache and rate limiting disabled")
    }

    bookings := repository.NewBookingRepo(db)
    members := repository.NewTeamMemberRepo(db)
    settings := repository.NewSettingsRepo(db)
    locations := repository.NewCarLocationRepo(db)

    e := echo.New()
    e.Use(middleware.RateLimit(config.LoadRateLimitConfig(), rdb))

    router.RegisterRoutes(e)
    router.RegisterAPI(e, router.API{
        Auth:      handler.NewAuthHandler(cfg, settings),
        Bookings:  handler.NewBookingHandler(bookings, members, settings),
        Team:      handler.NewTeamHandler(members),
        Settings:  handler.NewSettingsHandler(settings),
        Locations: handler.NewLocationHandler(locations),
        Stats:     handler.NewStatsHandler(bookings),
    }, cfg.JWTSecret, middleware.ResponseCache(config.LoadCacheConfig(), rdb))

    go queue.StartBookingConsumer()

    addr := ":" + cfg.Port
    log.Printf("listening on %s (env=%s)", addr, cfg.Env)

    if err := e.Start(addr); err != nil {
        log.Fatal(err)
    }
}
