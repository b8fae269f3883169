// Package config resolves runtime settings from flags, the environment and
// an optional .env file.
package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"tip-time/internal/money"
)

type Config struct {
	Addr            string
	Locale          string
	ServiceName     string
	ExportTelemetry bool
	ExportLogs      bool
	ShutdownTimeout time.Duration
}

// LoadDotEnv loads environment variables from .env when present.
// Existing process environment variables are not overridden.
func LoadDotEnv(paths ...string) error {
	err := godotenv.Load(paths...)
	if err == nil {
		return nil
	}

	if errors.Is(err, os.ErrNotExist) {
		return nil
	}

	return fmt.Errorf("load .env: %w", err)
}

// Parse reads flags from args and falls back to environment variables for
// anything not given on the command line.
func Parse(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("tip-time", flag.ContinueOnError)

	fs.StringVar(&cfg.Addr, "addr", "", "Listen address")
	fs.StringVar(&cfg.Locale, "locale", "", "Default currency locale (BCP-47)")
	fs.StringVar(&cfg.ServiceName, "service-name", "", "OpenTelemetry service name")
	fs.BoolVar(&cfg.ExportTelemetry, "otel-export", false, "Export traces and metrics over OTLP")
	fs.BoolVar(&cfg.ExportLogs, "otel-logs", false, "Export logs over OTLP")
	fs.DurationVar(&cfg.ShutdownTimeout, "shutdown-timeout", 0, "Graceful shutdown timeout")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if cfg.Addr == "" {
		cfg.Addr = getEnv("ADDR", ":8080")
	}

	if cfg.Locale == "" {
		cfg.Locale = Locale()
	}
	if _, err := money.NewFormatter(cfg.Locale); err != nil {
		return Config{}, err
	}

	if cfg.ServiceName == "" {
		cfg.ServiceName = getEnv("OTEL_SERVICE_NAME", "tip-time")
	}

	if !cfg.ExportTelemetry {
		v, err := envBool("OTEL_EXPORT_ENABLED")
		if err != nil {
			return Config{}, err
		}
		cfg.ExportTelemetry = v
	}

	if !cfg.ExportLogs {
		v, err := envBool("OTEL_LOGS_ENABLED")
		if err != nil {
			return Config{}, err
		}
		cfg.ExportLogs = v
	}

	if cfg.ShutdownTimeout == 0 {
		cfg.ShutdownTimeout = 5 * time.Second
		if s := os.Getenv("SHUTDOWN_TIMEOUT"); s != "" {
			d, err := time.ParseDuration(s)
			if err != nil {
				return Config{}, fmt.Errorf("invalid SHUTDOWN_TIMEOUT: %w", err)
			}
			cfg.ShutdownTimeout = d
		}
	}

	return cfg, nil
}

// Locale returns the default currency locale from TIP_LOCALE, without
// touching any of the server-only settings.
func Locale() string {
	return getEnv("TIP_LOCALE", "en-US")
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func envBool(key string) (bool, error) {
	s := os.Getenv(key)
	if s == "" {
		return false, nil
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %w", key, err)
	}
	return v, nil
}
