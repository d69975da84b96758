// Package eastmoney provides a client for the Eastmoney live quote API.
package eastmoney

import (
	"os"
	"time"
)

// Config holds configuration for the Eastmoney quote client.
type Config struct {
	BaseURL string        // Base URL of the quote API (e.g., "https://push2.eastmoney.com")
	Referer string        // Referer header expected by the API
	Timeout time.Duration // HTTP request timeout
}

// LoadConfig loads Eastmoney client configuration from environment
// variables, falling back to the public endpoints.
func LoadConfig() Config {
	base := os.Getenv("EASTMONEY_BASE_URL")
	if base == "" {
		base = "https://push2.eastmoney.com"
	}
	return Config{
		BaseURL: base,
		Referer: "https://quote.eastmoney.com/",
		Timeout: 10 * time.Second,
	}
}
