package main

import (
    "context"
    "fmt"
    "os"
    "os/signal"
    "syscall"

    tea "github.com/charmbracelet/bubbletea"
    "github.com/joho/godotenv"
    "go.uber.org/zap"

    "github.com/zaqqye/restroom_monitor/internal/client"
    "github.com/zaqqye/restroom_monitor/internal/config"
    "github.com/zaqqye/restroom_monitor/internal/dashboard"
    "github.com/zaqqye/restroom_monitor/internal/logger"
    "github.com/zaqqye/restroom_monitor/internal/tui"
    "github.com/zaqqye/restroom_monitor/internal/ws"
)

func main() {
    _ = godotenv.Load()
    cfg := config.Load()

    logPath := os.Getenv("DASHBOARD_LOG_FILE")
    if logPath == "" {
        logPath = "dashboard.log"
    }
    log, err := logger.NewFile(cfg.LogLevel, logPath)
    if err != nil {
        fmt.Fprintln(os.Stderr, "logger:", err)
        os.Exit(1)
    }
    defer log.Sync()

    ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
    defer stop()

    bridge := &tui.Bridge{}
    api := client.New(cfg.APIBaseURL, cfg.HTTPTimeout(), log)
    dash := dashboard.New(api, dashboard.NotifierFunc(bridge.Notify), bridge.Render, log)

    p := tea.NewProgram(tui.New(ctx, dash), tea.WithAltScreen(), tea.WithContext(ctx))
    bridge.Attach(p)

    sub := &ws.Subscriber{
        URL:       cfg.WSURL,
        Backoff:   cfg.WSReconnect(),
        OnConnect: dash.Refresh,
        OnEvent:   dash.Refresher().Handle,
        Logger:    log,
    }
    go sub.Run(ctx)

    if _, err := p.Run(); err != nil && ctx.Err() == nil {
        log.Error("dashboard exited with error", zap.Error(err))
        fmt.Fprintln(os.Stderr, err)
        os.Exit(1)
    }
}
