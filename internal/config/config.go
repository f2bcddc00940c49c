package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration. Required values come from
// CLI flags with environment fallbacks; everything else has defaults.
type Config struct {
	Backend BackendConfig
	Paths   PathsConfig
}

// BackendConfig holds text-understanding backend configuration.
type BackendConfig struct {
	APIKey      string
	BaseURL     string
	Model       string
	Temperature float32
	Timeout     time.Duration
}

// PathsConfig holds the filesystem configuration of one batch run.
type PathsConfig struct {
	TemplatePath string
	ReportsDir   string
	OutputPath   string
}

// LoadConfig loads configuration from environment variables. Flag values
// override these in main.
func LoadConfig() *Config {
	return &Config{
		Backend: BackendConfig{
			APIKey:      getEnv("OPENROUTER_API_KEY", ""),
			BaseURL:     getEnv("OPENROUTER_BASE_URL", "https://openrouter.ai/api/v1"),
			Model:       getEnv("OPENROUTER_MODEL", "anthropic/claude-3-opus"),
			Temperature: getEnvAsFloat32("OPENROUTER_TEMPERATURE", 0.0),
			Timeout:     getEnvAsDuration("OPENROUTER_TIMEOUT", 45*time.Second),
		},
		Paths: PathsConfig{
			TemplatePath: getEnv("ANSYS_TEMPLATE_PATH", ""),
			ReportsDir:   getEnv("ANSYS_REPORTS_DIR", ""),
			OutputPath:   getEnv("ANSYS_OUTPUT_PATH", ""),
		},
	}
}

// Validate checks that every required configuration value is present.
func (c *Config) Validate() error {
	if c.Backend.APIKey == "" {
		return NewMissingConfigError("api key is required (--api-key or OPENROUTER_API_KEY)")
	}
	if c.Paths.TemplatePath == "" {
		return NewMissingConfigError("template path is required (--template)")
	}
	if c.Paths.ReportsDir == "" {
		return NewMissingConfigError("reports directory is required (--reports-dir)")
	}
	if c.Paths.OutputPath == "" {
		return NewMissingConfigError("output path is required (--output)")
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsFloat32(key string, defaultValue float32) float32 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 32); err == nil {
			return float32(floatVal)
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
