package server

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
)

// Environment variables read by LoadConfig.
const (
	EnvAddr          = "GRIDSEARCH_ADDR"
	EnvMaxCells      = "GRIDSEARCH_MAX_CELLS"
	EnvMaxExpansions = "GRIDSEARCH_MAX_EXPANSIONS"
	EnvLogLevel      = "GRIDSEARCH_LOG_LEVEL"
	EnvCORSOrigins   = "GRIDSEARCH_CORS_ORIGINS"
)

// Config holds the service settings:
//   - Addr:          listen address.
//   - MaxCells:      largest accepted map (width·height).
//   - MaxExpansions: expansion ceiling applied to every search; a request
//     may lower it but never raise it.
//   - LogLevel:      slog level for the service logger.
//   - CORSOrigins:   allowed origins; empty allows all.
type Config struct {
	Addr          string
	MaxCells      int
	MaxExpansions int
	LogLevel      slog.Level
	CORSOrigins   []string
}

// DefaultConfig returns the settings used when no variable is set.
func DefaultConfig() Config {
	return Config{
		Addr:          ":8080",
		MaxCells:      250_000,
		MaxExpansions: 1_000_000,
		LogLevel:      slog.LevelInfo,
	}
}

// LoadConfig overlays the GRIDSEARCH_* variables returned by getenv onto
// DefaultConfig. Malformed values yield ErrBadConfig.
func LoadConfig(getenv func(string) string) (Config, error) {
	cfg := DefaultConfig()
	if v := getenv(EnvAddr); v != "" {
		cfg.Addr = v
	}
	var err error
	if cfg.MaxCells, err = positiveInt(getenv, EnvMaxCells, cfg.MaxCells); err != nil {
		return cfg, err
	}
	if cfg.MaxExpansions, err = positiveInt(getenv, EnvMaxExpansions, cfg.MaxExpansions); err != nil {
		return cfg, err
	}
	if v := getenv(EnvLogLevel); v != "" {
		if err = cfg.LogLevel.UnmarshalText([]byte(v)); err != nil {
			return cfg, fmt.Errorf("%w: %s=%q", ErrBadConfig, EnvLogLevel, v)
		}
	}
	if v := getenv(EnvCORSOrigins); v != "" {
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.CORSOrigins = append(cfg.CORSOrigins, o)
			}
		}
	}

	return cfg, nil
}

func positiveInt(getenv func(string) string, key string, def int) (int, error) {
	v := getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return def, fmt.Errorf("%w: %s must be a positive integer, got %q", ErrBadConfig, key, v)
	}

	return n, nil
}
