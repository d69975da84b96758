// Package sge provides a client for the Shanghai Gold Exchange daily
// benchmark price (基准价) feed.
package sge

import (
	"os"
	"time"
)

// Config holds configuration for the SGE benchmark feed client.
type Config struct {
	BaseURL string        // Base URL of the exchange site (e.g., "https://www.sge.com.cn")
	Referer string        // Referer header expected by the feed
	Timeout time.Duration // HTTP request timeout
}

// LoadConfig loads SGE client configuration from environment variables,
// falling back to the public endpoints.
func LoadConfig() Config {
	base := os.Getenv("SGE_BASE_URL")
	if base == "" {
		base = "https://www.sge.com.cn"
	}
	return Config{
		BaseURL: base,
		Referer: base + "/sjzx/jzj",
		Timeout: 10 * time.Second,
	}
}
