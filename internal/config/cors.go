package config

import (
	"fmt"
	"time"
)

// CORSConfig holds cross-origin settings for the browser client.
type CORSConfig struct {
	AllowOrigins []string
	MaxAge       time.Duration
}

// LoadCORSConfigFromEnv loads CORS configuration from environment variables.
func LoadCORSConfigFromEnv() CORSConfig {
	return CORSConfig{
		AllowOrigins: GetEnvList("CORS_ALLOW_ORIGINS", []string{"*"}),
		MaxAge:       GetEnvDuration("CORS_MAX_AGE", 12*time.Hour),
	}
}

// AllowAll reports whether every origin is allowed.
func (c CORSConfig) AllowAll() bool {
	for _, origin := range c.AllowOrigins {
		if origin == "*" {
			return true
		}
	}
	return false
}

// Validate validates CORS configuration.
func (c CORSConfig) Validate() error {
	if len(c.AllowOrigins) == 0 {
		return fmt.Errorf("at least one allowed origin is required")
	}
	if c.MaxAge < 0 {
		return fmt.Errorf("MaxAge must be non-negative")
	}
	return nil
}
