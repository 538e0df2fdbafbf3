package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config represents the full application configuration surface.
type Config struct {
	API     APIConfig
	Session SessionConfig
	Watch   WatchConfig
	Log     LogConfig
}

// APIConfig holds options for the inventory server connection.
type APIConfig struct {
	BaseURL string
	Timeout time.Duration
}

// SessionConfig locates the persisted session state.
type SessionConfig struct {
	FilePath string
}

// WatchConfig holds the low-stock watch schedule. An empty schedule disables
// the watch entirely.
type WatchConfig struct {
	CronSchedule string
}

// LogConfig holds logging options.
type LogConfig struct {
	Level string
}

// Load reads environment variables (optionally from the provided file) and
// materializes a Config instance.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("failed loading env file %s: %w", envFile, err)
			}
		}
	} else {
		// Ignore the returned error here; missing .env files are acceptable when
		// configuration comes from the environment directly.
		_ = godotenv.Load()
	}

	timeoutSeconds, err := strconv.Atoi(getenvWithDefault("HTTP_TIMEOUT_SECONDS", "15"))
	if err != nil {
		return nil, fmt.Errorf("invalid HTTP_TIMEOUT_SECONDS: %w", err)
	}

	cfg := &Config{
		API: APIConfig{
			BaseURL: getenvWithDefault("API_BASE_URL", "http://localhost:8080/api"),
			Timeout: time.Duration(timeoutSeconds) * time.Second,
		},
		Session: SessionConfig{
			FilePath: getenvWithDefault("SESSION_FILE", "session.json"),
		},
		Watch: WatchConfig{
			CronSchedule: getenvWithDefault("LOW_STOCK_CRON", "*/30 * * * *"),
		},
		Log: LogConfig{
			Level: getenvWithDefault("LOG_LEVEL", "info"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate ensures that required configuration fields are populated.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}

	if c.API.BaseURL == "" {
		return errors.New("API_BASE_URL must not be empty")
	}

	if c.API.Timeout <= 0 {
		return errors.New("HTTP_TIMEOUT_SECONDS must be positive")
	}

	if c.Session.FilePath == "" {
		return errors.New("SESSION_FILE must not be empty")
	}

	return nil
}

func getenvWithDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
