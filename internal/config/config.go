package config

import (
    "os"
    "strconv"
    "time"
)

type Config struct {
    Port          string
    StorageDriver string // "memory" or "postgres"
    DataFile      string // snapshot path for the memory driver
    SeedDemo      string // "true" seeds one room into an empty store
    DBHost        string
    DBPort        string
    DBUser        string
    DBPassword    string
    DBName        string
    DBSSLMode     string
    LogLevel      string
    LogFormat     string
    // Dashboard client
    APIBaseURL         string
    WSURL              string
    HTTPTimeoutSeconds string // 0 disables the client timeout
    WSReconnectSeconds string
}

func Load() *Config {
    return &Config{
        Port:               getenv("PORT", "5000"),
        StorageDriver:      getenv("STORAGE_DRIVER", "memory"),
        DataFile:           getenv("DATA_FILE", "rooms_data.json"),
        SeedDemo:           getenv("SEED_DEMO", "false"),
        DBHost:             getenv("DB_HOST", "localhost"),
        DBPort:             getenv("DB_PORT", "5432"),
        DBUser:             getenv("DB_USER", "postgres"),
        DBPassword:         getenv("DB_PASSWORD", "postgres"),
        DBName:             getenv("DB_NAME", "restroom_db"),
        DBSSLMode:          getenv("DB_SSLMODE", "disable"),
        LogLevel:           getenv("LOG_LEVEL", "info"),
        LogFormat:          getenv("LOG_FORMAT", "console"),
        APIBaseURL:         getenv("API_BASE_URL", "http://localhost:5000"),
        WSURL:              getenv("WS_URL", "ws://localhost:5000/ws"),
        HTTPTimeoutSeconds: getenv("HTTP_TIMEOUT_SECONDS", "0"),
        WSReconnectSeconds: getenv("WS_RECONNECT_SECONDS", "3"),
    }
}

// HTTPTimeout returns the dashboard client timeout; invalid values fall back to none.
func (c *Config) HTTPTimeout() time.Duration {
    return seconds(c.HTTPTimeoutSeconds, 0)
}

func (c *Config) WSReconnect() time.Duration {
    return seconds(c.WSReconnectSeconds, 3*time.Second)
}

func (c *Config) ShouldSeedDemo() bool {
    v, err := strconv.ParseBool(c.SeedDemo)
    return err == nil && v
}

func seconds(raw string, fallback time.Duration) time.Duration {
    n, err := strconv.Atoi(raw)
    if err != nil || n < 0 {
        return fallback
    }
    return time.Duration(n) * time.Second
}

func getenv(key, fallback string) string {
    v := os.Getenv(key)
    if v == "" {
        return fallback
    }
    return v
}
