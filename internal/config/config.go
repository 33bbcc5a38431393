package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	defaultBindAddr        = ":8080"
	defaultLogLevel        = "debug"
	defaultLogFormat       = "text"
	defaultMigrateOnStart  = true
	defaultShutdownTimeout = 5 * time.Second
)

var ErrMissingDatabaseURL = errors.New("DATABASE_URL must be set")

type Config struct {
	DatabaseURL     string
	BindAddr        string
	LogLevel        slog.Level
	LogFormat       string
	DebugMode       bool
	MigrateOnStart  bool
	ShutdownTimeout time.Duration
}

// Load reads the configuration from the process environment.
func Load() (*Config, error) {
	v := viper.New()
	cfg := &Config{}

	var err error
	if cfg.DatabaseURL, err = parseEnvString(v, "database_url", "DATABASE_URL"); err != nil {
		return nil, err
	}

	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		return nil, ErrMissingDatabaseURL
	}

	if cfg.BindAddr, err = parseEnvString(v, "bind_addr", "BIND_ADDR", defaultBindAddr); err != nil {
		return nil, err
	}

	level, err := parseEnvString(v, "log_level", "LOG_LEVEL", defaultLogLevel)
	if err != nil {
		return nil, err
	}

	if err = cfg.LogLevel.UnmarshalText([]byte(strings.ToLower(level))); err != nil {
		return nil, fmt.Errorf("LOG_LEVEL must be one of debug, info, warn or error: %w", err)
	}

	if cfg.LogFormat, err = parseEnvString(v, "log_format", "LOG_FORMAT", defaultLogFormat); err != nil {
		return nil, err
	}
	cfg.LogFormat = strings.ToLower(cfg.LogFormat)

	if cfg.DebugMode, err = parseEnvBool(v, "debug_mode", "DEBUG_MODE"); err != nil {
		return nil, err
	}

	if cfg.MigrateOnStart, err = parseEnvBool(v, "migrate_on_start", "MIGRATE_ON_START", defaultMigrateOnStart); err != nil {
		return nil, err
	}

	if cfg.ShutdownTimeout, err = parseEnvDuration(v, "shutdown_timeout", "SHUTDOWN_TIMEOUT", defaultShutdownTimeout); err != nil {
		return nil, err
	}

	return cfg, nil
}

func bind(v *viper.Viper, key, envVar string, defaultValue ...any) error {
	if err := v.BindEnv(key, envVar); err != nil {
		return fmt.Errorf("bind %s: %w", envVar, err)
	}

	if len(defaultValue) > 0 {
		v.SetDefault(key, defaultValue[0])
	}

	return nil
}

func parseEnvString(v *viper.Viper, key, envVar string, defaultValue ...string) (string, error) {
	if err := bind(v, key, envVar, anys(defaultValue)...); err != nil {
		return "", err
	}

	return strings.TrimSpace(v.GetString(key)), nil
}

// parseEnvBool accepts yes/on and no/off in any case, as well as anything
// strconv.ParseBool understands (true, false, 1, 0, ...).
func parseEnvBool(v *viper.Viper, key, envVar string, defaultValue ...bool) (bool, error) {
	if err := bind(v, key, envVar, anys(defaultValue)...); err != nil {
		return false, err
	}

	switch strings.ToLower(strings.TrimSpace(v.GetString(key))) {
	case "yes", "on":
		return true, nil
	case "no", "off":
		return false, nil
	}

	return v.GetBool(key), nil
}

func parseEnvDuration(v *viper.Viper, key, envVar string, defaultValue ...time.Duration) (time.Duration, error) {
	if err := bind(v, key, envVar, anys(defaultValue)...); err != nil {
		return 0, err
	}

	d := v.GetDuration(key)
	if d <= 0 {
		return 0, fmt.Errorf("%s must be a positive duration, got %q", envVar, v.GetString(key))
	}

	return d, nil
}

func anys[T any](vals []T) []any {
	ret := make([]any, len(vals))
	for i, val := range vals {
		ret[i] = val
	}

	return ret
}
