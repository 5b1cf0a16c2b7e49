// Package config loads the application's configuration from the
// environment, with optional .env file support.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds everything the binary needs that is not a per-command flag.
type Config struct {
	// StateFile is where the current snapshot is persisted between runs.
	StateFile string
	// ExportDir is the default destination of timestamped exports.
	ExportDir string
	// Addr is the listen address of the web interface.
	Addr string
	// LogLevel is a zerolog level name (debug, info, warn, error).
	LogLevel string
}

// Load reads a .env file if one exists, then the COMPTES_* environment
// variables, applying defaults for anything unset.
func Load() *Config {
	// A missing .env is the normal case, not an error.
	_ = godotenv.Load()

	return &Config{
		StateFile: getEnv("COMPTES_STATE_FILE", "comptes.json"),
		ExportDir: getEnv("COMPTES_EXPORT_DIR", "."),
		Addr:      getEnv("COMPTES_ADDR", ":8080"),
		LogLevel:  getEnv("COMPTES_LOG_LEVEL", "info"),
	}
}

// Validate returns an error naming every invalid setting.
func (c *Config) Validate() error {
	var problems []string
	if c.StateFile == "" {
		problems = append(problems, "state file path cannot be empty")
	}
	if c.Addr == "" {
		problems = append(problems, "listen address cannot be empty")
	}
	switch c.LogLevel {
	case "trace", "debug", "info", "warn", "error", "fatal", "panic":
	default:
		problems = append(problems, fmt.Sprintf("unknown log level %q", c.LogLevel))
	}
	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
