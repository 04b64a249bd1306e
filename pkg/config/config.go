// Package config loads environment-variable-driven configuration for the
// CLI and HTTP façade, grounded on the teacher's pkg/config package.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/cuzdav/akari/pkg/constants"
)

// Config holds the façade's runtime configuration.
type Config struct {
	HTTPAddr      string
	LogPath       string
	LevelPackPath string
	MaxSolveSteps int
}

// Load reads configuration from the environment, applying defaults from
// pkg/constants and validating numeric fields.
func Load() (*Config, error) {
	cfg := &Config{
		HTTPAddr:      getEnv("AKARI_HTTP_ADDR", constants.DefaultHTTPAddr),
		LogPath:       getEnv("AKARI_LOG_PATH", ""),
		LevelPackPath: getEnv("AKARI_LEVEL_PACK_PATH", ""),
		MaxSolveSteps: constants.DefaultMaxSolveSteps,
	}

	if raw := os.Getenv("AKARI_MAX_SOLVE_STEPS"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("config: AKARI_MAX_SOLVE_STEPS must be an integer: %w", err)
		}
		if n <= 0 {
			return nil, fmt.Errorf("config: AKARI_MAX_SOLVE_STEPS must be positive, got %d", n)
		}
		cfg.MaxSolveSteps = n
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
