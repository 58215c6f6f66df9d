package main // Entry point package

import (
    "context" // startup migration context
    "log"     // Logging library
    "time"    // migration timeout

    "github.com/joho/godotenv"    // loads .env files in development
    "github.com/labstack/echo/v4" // Echo web framework

    "github.com/elevateassist/va-agency-portal/internal/config"     // env config loaders
    "github.com/elevateassist/va-agency-portal/internal/database"   // MySQL pool
    "github.com/elevateassist/va-agency-portal/internal/handler"    // HTTP handlers
    "github.com/elevateassist/va-agency-portal/internal/middleware" // rate limit + cache middleware
    "github.com/elevateassist/va-agency-portal/internal/migrations" // startup schema migrations
    "github.com/elevateassist/va-agency-portal/internal/queue"      // task.completed consumer
    "github.com/elevateassist/va-agency-portal/internal/repository" // DB repositories
    "github.com/elevateassist/va-agency-portal/internal/router"     // route registration
    "github.com/elevateassist/va-agency-portal/internal/storage"    // avatar file store
)

func main() {
    // Load .env if present; real deployments set env vars directly.
    _ = godotenv.Load()

    cfg := config.Load()

    db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
    if err != nil {
        log.Fatalf("database: %v", err)
    }
    defer func() { _ = db.Close() }()

    // Bring the schema up to date before serving traffic.
    mctx, mcancel := context.WithTimeout(context.Background(), 60*time.Second)
    if err := migrations.Apply(mctx, db); err != nil {
        mcancel()
        log.Fatalf("migrations: %v", err)
    }
    mcancel()

    // ---- Repositories ----
    users := repository.NewUserRepo(db)
    tokens := repository.NewTokenRepo(db)
    roles := repository.NewRoleRepo(db)
    profiles := repository.NewProfileRepo(db)
    subscriptions := repository.NewSubscriptionRepo(db)
    tasks := repository.NewTaskRepo(db)
    staff := repository.NewStaffRepo(db)
    assignments := repository.NewAssignmentRepo(db)
    history := repository.NewServiceHistoryRepo(db)
    contacts := repository.NewContactRepo(db)

    avatars := storage.NewAvatarStore(cfg.AvatarDir, cfg.PublicBaseURL)

    // ---- Handlers ----
    authH := handler.NewAuthHandler(cfg, db, users, tokens, profiles, subscriptions)
    staffAuthH := handler.NewStaffAuthHandler(cfg, users, tokens, staff)
    clientH := handler.NewClientHandler(profiles, subscriptions, tasks, history, assignments, avatars)
    staffH := handler.NewStaffHandler(staff, tasks, assignments)
    adminH := handler.NewAdminHandler(cfg, db, users, profiles, subscriptions, tasks, staff, assignments, contacts)
    publicH := handler.NewPublicHandler(contacts)

    e := echo.New()

    // ---- Redis-backed middleware ----
    // The rate limiter guards the whole surface; the response cache wraps
    // only the public plan catalog.  Both degrade to pass-through when
    // Redis is unreachable.
    rdb := config.NewRedisClient()
    var cacheMW echo.MiddlewareFunc
    if rdb != nil {
        rlCfg := config.LoadRateLimitConfig()
        if rlCfg.Enabled {
            e.Use(middleware.NewTokenBucket(rlCfg, rdb))
        }
        cacheCfg := config.LoadCacheConfig()
        if cacheCfg.Enabled {
            cacheMW = middleware.NewRedisCache(cacheCfg, rdb)
        }
    }

    // ---- Routes ----
    router.RegisterRoutes(e)
    router.RegisterPublic(e, publicH, cacheMW)
    router.RegisterAuth(e, authH, staffAuthH, cfg.JWTSecret)
    router.RegisterClient(e, clientH, cfg.JWTSecret)
    router.RegisterStaff(e, staffH, cfg.JWTSecret)
    router.RegisterAdmin(e, adminH, roles, cfg.JWTSecret)

    // Serve uploaded avatars from local disk.
    e.Static("/avatars", cfg.AvatarDir)

    // ---- Usage accounting consumer ----
    // Runs for the lifetime of the process; reconnects on broker failure.
    consumer := &queue.AccountingConsumer{DB: db, History: history, Subscriptions: subscriptions}
    go func() {
        if err := consumer.StartTaskCompletedConsumer(); err != nil {
            log.Printf("task.completed consumer stopped: %v", err)
        }
    }()

    addr := ":" + cfg.Port
    log.Printf("listening on %s (env=%s)", addr, cfg.Env)

    if err := e.Start(addr); err != nil {
        log.Fatal(err)
    }
}
