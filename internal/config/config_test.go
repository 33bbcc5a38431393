package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var allKeys = []string{
	"DATABASE_URL", "BIND_ADDR", "LOG_LEVEL", "LOG_FORMAT",
	"DEBUG_MODE", "MIGRATE_ON_START", "SHUTDOWN_TIMEOUT",
}

// setEnv clears every known key, then applies env. t.Setenv forbids t.Parallel.
func setEnv(t *testing.T, env map[string]string) {
	t.Helper()

	for _, k := range allKeys {
		t.Setenv(k, "")
	}

	for k, v := range env {
		t.Setenv(k, v)
	}
}

func TestLoadDefaults(t *testing.T) {
	setEnv(t, map[string]string{"DATABASE_URL": "postgres://localhost/books"})

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, &Config{
		DatabaseURL:     "postgres://localhost/books",
		BindAddr:        ":8080",
		LogLevel:        slog.LevelDebug,
		LogFormat:       "text",
		DebugMode:       false,
		MigrateOnStart:  true,
		ShutdownTimeout: 5 * time.Second,
	}, cfg)
}

func TestLoadOverrides(t *testing.T) {
	setEnv(t, map[string]string{
		"DATABASE_URL":     "postgres://db/books",
		"BIND_ADDR":        "127.0.0.1:9000",
		"LOG_LEVEL":        "WARN",
		"LOG_FORMAT":       "json",
		"DEBUG_MODE":       "yes",
		"MIGRATE_ON_START": "off",
		"SHUTDOWN_TIMEOUT": "15s",
	})

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, &Config{
		DatabaseURL:     "postgres://db/books",
		BindAddr:        "127.0.0.1:9000",
		LogLevel:        slog.LevelWarn,
		LogFormat:       "json",
		DebugMode:       true,
		MigrateOnStart:  false,
		ShutdownTimeout: 15 * time.Second,
	}, cfg)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr string
	}{
		{
			name:    "missing database url",
			env:     map[string]string{},
			wantErr: ErrMissingDatabaseURL.Error(),
		},
		{
			name:    "bad log level",
			env:     map[string]string{"DATABASE_URL": "postgres://db", "LOG_LEVEL": "loud"},
			wantErr: "LOG_LEVEL must be one of",
		},
		{
			name:    "bad shutdown timeout",
			env:     map[string]string{"DATABASE_URL": "postgres://db", "SHUTDOWN_TIMEOUT": "soon"},
			wantErr: "SHUTDOWN_TIMEOUT must be a positive duration",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setEnv(t, tt.env)

			_, err := Load()
			require.ErrorContains(t, err, tt.wantErr)
		})
	}
}
