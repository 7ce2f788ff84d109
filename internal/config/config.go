package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr           string
	DBPath         string
	OpeningsCSV    string
	ModelPath      string
	AssetsDir      string
	LogLevel       string
	MetricsEnabled bool
	WSEnabled      bool
}

// Load reads configuration from a .env file (if present) and environment variables,
// applying sensible defaults when values are missing or invalid.
func Load() Config {
	// Ignore error so the app still starts when .env is absent in production.
	_ = godotenv.Load()

	return Config{
		Addr:           envOr("ADDR", ":8080"),
		DBPath:         envOr("DB_PATH", "file:chessdash.db"),
		OpeningsCSV:    envOr("OPENINGS_CSV", "openings_analysis.csv"),
		ModelPath:      envOr("MODEL_PATH", "outcome_model.yaml"),
		AssetsDir:      envOr("ASSETS_DIR", "."),
		LogLevel:       envOr("LOG_LEVEL", "INFO"),
		MetricsEnabled: envBoolOr("METRICS_ENABLED", true),
		WSEnabled:      envBoolOr("WS_ENABLED", true),
	}
}

// Validate reports the first setting that would prevent the server from starting.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Addr) == "" {
		return fmt.Errorf("ADDR cannot be empty")
	}
	if strings.TrimSpace(c.DBPath) == "" {
		return fmt.Errorf("DB_PATH cannot be empty")
	}
	if strings.TrimSpace(c.OpeningsCSV) == "" {
		return fmt.Errorf("OPENINGS_CSV cannot be empty")
	}
	if strings.TrimSpace(c.ModelPath) == "" {
		return fmt.Errorf("MODEL_PATH cannot be empty")
	}
	if c.AssetsDir != "" {
		info, err := os.Stat(c.AssetsDir)
		if err != nil {
			return fmt.Errorf("ASSETS_DIR %q: %w", c.AssetsDir, err)
		}
		if !info.IsDir() {
			return fmt.Errorf("ASSETS_DIR %q is not a directory", c.AssetsDir)
		}
	}
	switch strings.ToUpper(c.LogLevel) {
	case "DEBUG", "INFO", "WARN", "WARNING", "ERROR":
	default:
		return fmt.Errorf("LOG_LEVEL %q must be one of DEBUG, INFO, WARN, ERROR", c.LogLevel)
	}
	return nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envBoolOr(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
		log.Printf("invalid value for %s=%q, using default %t", key, v, def)
	}
	return def
}
