// Package config loads the application configuration from a YAML file
// with environment variable overrides.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Server struct {
		Addr string `yaml:"addr"`
	} `yaml:"server"`
	Redis struct {
		Host     string `yaml:"host"`
		Port     string `yaml:"port"`
		Password string `yaml:"password"`
	} `yaml:"redis"`
	History struct {
		RefreshIntervalStr string `yaml:"refresh_interval"`
		RefreshInterval    time.Duration
		BaseDate           string `yaml:"base_date"`
	} `yaml:"history"`
	Spot struct {
		CacheTTLStr string `yaml:"cache_ttl"`
		CacheTTL    time.Duration
	} `yaml:"spot"`
	Schedule struct {
		SpotRefresh    string `yaml:"spot_refresh"`    // cron spec, e.g. "@every 30s"
		HistoryRefresh string `yaml:"history_refresh"` // cron spec, e.g. "@every 5m"
	} `yaml:"schedule"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides. A missing file is not an error; defaults and environment
// variables still apply.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("SERVER_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	if v := os.Getenv("REDIS_HOST"); v != "" {
		cfg.Redis.Host = v
	}
	if v := os.Getenv("REDIS_PORT"); v != "" {
		cfg.Redis.Port = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		cfg.Redis.Password = v
	}
	if v := os.Getenv("HISTORY_BASE_DATE"); v != "" {
		cfg.History.BaseDate = v
	}

	// yaml.v3 does not decode durations, so they ride in as strings
	if cfg.History.RefreshIntervalStr != "" {
		if cfg.History.RefreshInterval, err = time.ParseDuration(cfg.History.RefreshIntervalStr); err != nil {
			return nil, fmt.Errorf("parse history.refresh_interval: %w", err)
		}
	}
	if cfg.Spot.CacheTTLStr != "" {
		if cfg.Spot.CacheTTL, err = time.ParseDuration(cfg.Spot.CacheTTLStr); err != nil {
			return nil, fmt.Errorf("parse spot.cache_ttl: %w", err)
		}
	}

	// Defaults
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = ":8080"
	}
	if cfg.Schedule.SpotRefresh == "" {
		cfg.Schedule.SpotRefresh = "@every 30s"
	}
	if cfg.Schedule.HistoryRefresh == "" {
		cfg.Schedule.HistoryRefresh = "@every 5m"
	}

	return cfg, nil
}

// RedisAddr returns the host:port address of the Redis server, or an
// empty string when Redis is not configured.
func (c *Config) RedisAddr() string {
	if c.Redis.Host == "" {
		return ""
	}
	port := c.Redis.Port
	if port == "" {
		port = "6379"
	}
	return c.Redis.Host + ":" + port
}
