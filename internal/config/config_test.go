package config

import (
    "testing"
    "time"

    "github.com/stretchr/testify/require"
)

func TestLoad_DefaultValues(t *testing.T) {
    for _, key := range []string{"PORT", "STORAGE_DRIVER", "DATA_FILE", "API_BASE_URL", "WS_URL", "HTTP_TIMEOUT_SECONDS", "WS_RECONNECT_SECONDS"} {
        t.Setenv(key, "")
    }

    cfg := Load()
    require.Equal(t, "5000", cfg.Port)
    require.Equal(t, "memory", cfg.StorageDriver)
    require.Equal(t, "rooms_data.json", cfg.DataFile)
    require.Equal(t, "http://localhost:5000", cfg.APIBaseURL)
    require.Equal(t, time.Duration(0), cfg.HTTPTimeout())
    require.Equal(t, 3*time.Second, cfg.WSReconnect())
}

func TestLoad_EnvOverrides(t *testing.T) {
    t.Setenv("PORT", "9090")
    t.Setenv("STORAGE_DRIVER", "postgres")
    t.Setenv("HTTP_TIMEOUT_SECONDS", "15")
    t.Setenv("WS_RECONNECT_SECONDS", "bogus")

    cfg := Load()
    require.Equal(t, "9090", cfg.Port)
    require.Equal(t, "postgres", cfg.StorageDriver)
    require.Equal(t, 15*time.Second, cfg.HTTPTimeout())
    require.Equal(t, 3*time.Second, cfg.WSReconnect())
}
