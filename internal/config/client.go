package config

import (
	"fmt"
	"net/url"
	"time"
)

// ClientConfig holds configuration for the league API client.
type ClientConfig struct {
	// BaseURL is the league API root, e.g. http://localhost:5000.
	BaseURL string
	// Timeout is the per-request timeout.
	Timeout time.Duration
	// ReadAttempts is how many times reads are tried while the API is unreachable.
	ReadAttempts int
}

// LoadClientConfigFromEnv loads client configuration from environment variables.
func LoadClientConfigFromEnv() ClientConfig {
	return ClientConfig{
		BaseURL:      GetEnv("LEAGUE_API_URL", "http://localhost:5000"),
		Timeout:      GetEnvDuration("LEAGUE_API_TIMEOUT", 30*time.Second),
		ReadAttempts: GetEnvInt("LEAGUE_API_READ_ATTEMPTS", 1),
	}
}

// Validate validates client configuration.
func (c ClientConfig) Validate() error {
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid LEAGUE_API_URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid LEAGUE_API_URL scheme: %q (must be http or https)", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("invalid LEAGUE_API_URL: missing host")
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("Timeout must be greater than 0")
	}
	if c.ReadAttempts <= 0 {
		return fmt.Errorf("ReadAttempts must be greater than 0")
	}
	return nil
}
