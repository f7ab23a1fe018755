package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration, read from the environment.
type Config struct {
	GeminiAPIKey string
	SerperAPIKey string

	GeminiModel    string
	GeminiBaseURL  string
	MaxSteps       int
	ReportLanguage string

	Port          int
	DevMode       bool
	LogLevel      string
	DefaultTicker string

	CacheTTL     time.Duration
	LookbackDays int
}

// Load reads configuration from environment variables. A .env file in the
// working directory is honored if present. Missing required secrets fail
// here, before any client library gets a chance to blow up deeper in.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		GeminiAPIKey:   os.Getenv("GEMINI_API_KEY"),
		SerperAPIKey:   os.Getenv("SERPER_API_KEY"),
		GeminiModel:    getEnv("GEMINI_MODEL", "gemini-1.5-flash"),
		GeminiBaseURL:  getEnv("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com/v1beta/openai/"),
		MaxSteps:       getEnvAsInt("AGENT_MAX_STEPS", 7),
		ReportLanguage: getEnv("REPORT_LANGUAGE", "Korean"),
		Port:           getEnvAsInt("PORT", 8501),
		DevMode:        getEnvAsBool("DEV_MODE", false),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		DefaultTicker:  getEnv("DEFAULT_TICKER", "NVDA"),
		CacheTTL:       getEnvAsDuration("CACHE_TTL", time.Hour),
		LookbackDays:   getEnvAsInt("LOOKBACK_DAYS", 365),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that required secrets are present.
func (c *Config) Validate() error {
	if c.GeminiAPIKey == "" {
		return fmt.Errorf("configuration: GEMINI_API_KEY is required")
	}
	if c.SerperAPIKey == "" {
		return fmt.Errorf("configuration: SERPER_API_KEY is required")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
