package main

import (
    "context"
    "errors"
    "net/http"
    "os"
    "os/signal"
    "syscall"
    "time"

    "github.com/gin-gonic/gin"
    "github.com/joho/godotenv"
    "go.uber.org/zap"

    "github.com/zaqqye/restroom_monitor/internal/config"
    "github.com/zaqqye/restroom_monitor/internal/database"
    "github.com/zaqqye/restroom_monitor/internal/logger"
    "github.com/zaqqye/restroom_monitor/internal/middleware"
    "github.com/zaqqye/restroom_monitor/internal/routes"
    "github.com/zaqqye/restroom_monitor/internal/store"
    "github.com/zaqqye/restroom_monitor/internal/ws"
)

func main() {
    // Load .env (non-fatal if missing in production)
    _ = godotenv.Load()

    cfg := config.Load()

    log, err := logger.New(cfg.LogLevel, cfg.LogFormat, "restroom-server")
    if err != nil {
        panic(err)
    }
    defer log.Sync()

    ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
    defer stop()

    st, err := openStore(cfg, log)
    if err != nil {
        log.Fatal("storage init failed", zap.String("driver", cfg.StorageDriver), zap.Error(err))
    }

    if cfg.ShouldSeedDemo() {
        if err := database.SeedDemoRoom(ctx, st, log); err != nil {
            log.Fatal("demo seed failed", zap.Error(err))
        }
    }

    hub := ws.NewHub(log)
    go hub.Run(ctx)

    gin.SetMode(gin.ReleaseMode)
    r := gin.New()
    r.Use(middleware.Recovery(log), middleware.RequestLogger(log))
    routes.Register(r, st, hub, log)

    srv := &http.Server{Addr: ":" + cfg.Port, Handler: r}
    go func() {
        <-ctx.Done()
        shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
        defer cancel()
        _ = srv.Shutdown(shutdownCtx)
    }()

    log.Info("server listening", zap.String("port", cfg.Port), zap.String("storage", cfg.StorageDriver))
    if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
        log.Error("server exited with error", zap.Error(err))
        os.Exit(1)
    }
}

func openStore(cfg *config.Config, log *zap.Logger) (store.RoomStore, error) {
    if cfg.StorageDriver != "postgres" {
        return store.NewMemoryStore(cfg.DataFile, log)
    }
    db, err := database.Connect(cfg)
    if err != nil {
        return nil, err
    }
    if err := database.Migrate(db); err != nil {
        return nil, err
    }
    return store.NewGormStore(db), nil
}
