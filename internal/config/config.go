package config

import (
    "fmt"
    "os"
    "strings"

    "github.com/joho/godotenv"
)

type Config struct {
    Env          string
    ListenAddr   string
    DatabaseURL  string
    ProbeWorkers int
    ProbeTimeout int // seconds
    CacheSize    int
    // HighRiskCodes overrides the default high-risk country calling codes
    // when HIGH_RISK_CODES is set (comma-separated integers).
    HighRiskCodes []int
}

func getenv(key, def string) string {
    if v := os.Getenv(key); v != "" {
        return v
    }
    return def
}

func Load() (Config, error) {
    // Optional .env for local runs; absence is not an error.
    _ = godotenv.Load()

    cfg := Config{
        Env:           getenv("APP_ENV", "development"),
        ListenAddr:    getenv("LISTEN_ADDR", ":8080"),
        DatabaseURL:   os.Getenv("DATABASE_URL"),
        ProbeWorkers:  getenvInt("PROBE_WORKERS", 0),
        ProbeTimeout:  getenvInt("PROBE_TIMEOUT_SECONDS", 5),
        CacheSize:     getenvInt("CACHE_SIZE", 0),
        HighRiskCodes: getenvInts("HIGH_RISK_CODES"),
    }
    if cfg.DatabaseURL == "" {
        // Not fatal for early local runs; warn via error value so callers can decide.
        return cfg, fmt.Errorf("DATABASE_URL not set")
    }
    return cfg, nil
}

func getenvInt(key string, def int) int {
    if v := os.Getenv(key); v != "" {
        var out int
        _, err := fmt.Sscanf(v, "%d", &out)
        if err == nil { return out }
    }
    return def
}

func getenvInts(key string) []int {
    v := os.Getenv(key)
    if v == "" { return nil }
    var out []int
    for _, part := range strings.Split(v, ",") {
        var code int
        if _, err := fmt.Sscanf(strings.TrimSpace(part), "%d", &code); err == nil {
            out = append(out, code)
        }
    }
    return out
}
