package main

import (
    "context"
    "fmt"
    "log"
    "net/http"
    "os"
    "os/signal"
    "syscall"
    "time"

    "github.com/go-chi/chi/v5"

    httpadapter "dialscope/internal/adapters/http"
    "dialscope/internal/adapters/phonenum"
    pg "dialscope/internal/adapters/postgres"
    "dialscope/internal/config"
    ports "dialscope/internal/ports"
    "dialscope/internal/probe"
    "dialscope/internal/services/analyzer"
    "dialscope/internal/services/artifacts"
    proberunner "dialscope/internal/workers/proberunner"
)

func main() {
    cfg, err := config.Load()
    if err != nil {
        log.Printf("warning: %v", err)
    }
    if cfg.DatabaseURL == "" {
        log.Fatal("DATABASE_URL is required for Postgres adapters")
    }

    ctx, cancel := context.WithCancel(context.Background())
    defer cancel()

    db, err := pg.Connect(ctx, cfg.DatabaseURL)
    if err != nil {
        log.Fatalf("db connect error: %v", err)
    }
    defer db.Close()

    // Wire repositories to services (ports)
    var _ ports.AnalysisRepository = db
    var _ ports.ProbeJobRepository = db

    opts := []analyzer.Option{}
    if cfg.CacheSize > 0 {
        opts = append(opts, analyzer.WithCache(cfg.CacheSize))
    }
    if len(cfg.HighRiskCodes) > 0 {
        weights := analyzer.DefaultWeights()
        weights.HighRiskCodes = cfg.HighRiskCodes
        opts = append(opts, analyzer.WithWeights(weights))
    }
    svc := analyzer.New(phonenum.New(), artifacts.Default(), opts...)

    srv := httpadapter.New(svc, db, db)
    r := chi.NewRouter()
    r.Mount("/", srv.Routes())

    // Optional background probe workers
    if cfg.ProbeWorkers > 0 {
        prober := probe.New(time.Duration(cfg.ProbeTimeout) * time.Second)
        processor := proberunner.HTTPProcessor{Repo: db, Prober: prober}
        go proberunner.Run(ctx, db, processor, cfg.ProbeWorkers, 500*time.Millisecond)
        log.Printf("probe workers started: %d", cfg.ProbeWorkers)
    }

    errCh := make(chan error, 1)
    go func() { errCh <- http.ListenAndServe(cfg.ListenAddr, r) }()
    log.Printf("listening on %s", cfg.ListenAddr)

    sigCh := make(chan os.Signal, 1)
    signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
    select {
    case sig := <-sigCh:
        log.Printf("shutting down on %s", sig)
        cancel()
        time.Sleep(300 * time.Millisecond)
    case err := <-errCh:
        log.Fatal(fmt.Errorf("server error: %w", err))
    }
}
