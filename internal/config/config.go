package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all client configuration.
type Config struct {
	// APIBaseURL is the root of the SGA backend, without the /api prefix.
	APIBaseURL  string
	HTTPTimeout time.Duration
	// TokenFile is where the access token is persisted between runs.
	TokenFile string
	LogLevel  string
	LogFormat string
}

// Load reads configuration from environment variables with sensible defaults.
// It loads .env file if present but does not fail if missing.
func Load() *Config {
	_ = godotenv.Load() // Ignore error — .env is optional

	return &Config{
		APIBaseURL:  getEnv("SGA_API_BASE_URL", "http://localhost:8000"),
		HTTPTimeout: time.Duration(getEnvInt("SGA_HTTP_TIMEOUT_SECONDS", 10)) * time.Second,
		TokenFile:   getEnv("SGA_TOKEN_FILE", defaultTokenFile()),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogFormat:   getEnv("LOG_FORMAT", "pretty"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

// defaultTokenFile places the token under the user's home directory,
// falling back to the working directory when home cannot be resolved.
func defaultTokenFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".sga_token"
	}
	return filepath.Join(home, ".sga", "access_token")
}
