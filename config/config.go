// ABOUTME: This file implements configuration management with environment variable support
// ABOUTME: Provides validation and named defaults for every pipeline setting
package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"
)

// Config holds all collector configuration.
type Config struct {
	API    APIConfig
	HTTP   HTTPConfig
	Fetch  FetchConfig
	Output OutputConfig
}

// APIConfig describes the upstream provider.
type APIConfig struct {
	BaseURL     string `json:"base_url" env:"NEWS_API_BASE_URL" default:"https://apisinhala.newsfirst.lk"`
	SiteBaseURL string `json:"site_base_url" env:"NEWS_SITE_BASE_URL" default:"https://sinhala.newsfirst.lk/"`
	Source      string `json:"source" env:"NEWS_SOURCE_NAME" default:"News First"`
}

// HTTPConfig holds HTTP client settings.
type HTTPConfig struct {
	Timeout   time.Duration `json:"timeout" env:"HTTP_TIMEOUT" default:"30s"`
	UserAgent string        `json:"user_agent" env:"HTTP_USER_AGENT" default:"news-collector/1.0"`
}

// FetchConfig holds the default pagination parameters for a single run.
type FetchConfig struct {
	CategoryID int `json:"category_id" env:"FETCH_CATEGORY_ID" default:"83"`
	Page       int `json:"page" env:"FETCH_PAGE" default:"2"`
	Count      int `json:"count" env:"FETCH_COUNT" default:"5"`
}

// OutputConfig holds output destinations.
type OutputConfig struct {
	Path       string `json:"path" env:"OUTPUT_PATH" default:"output.json"`
	ArchiveDir string `json:"archive_dir" env:"ARCHIVE_DIR" default:"data"`
}

// LoadConfig returns the configuration with environment variable overrides.
func LoadConfig() (*Config, error) {
	config := &Config{
		API: APIConfig{
			BaseURL:     getEnvString("NEWS_API_BASE_URL", "https://apisinhala.newsfirst.lk"),
			SiteBaseURL: getEnvString("NEWS_SITE_BASE_URL", "https://sinhala.newsfirst.lk/"),
			Source:      getEnvString("NEWS_SOURCE_NAME", "News First"),
		},
		HTTP: HTTPConfig{
			Timeout:   getEnvDuration("HTTP_TIMEOUT", 30*time.Second),
			UserAgent: getEnvString("HTTP_USER_AGENT", "news-collector/1.0"),
		},
		Fetch: FetchConfig{
			CategoryID: getEnvInt("FETCH_CATEGORY_ID", 83),
			Page:       getEnvInt("FETCH_PAGE", 2),
			Count:      getEnvInt("FETCH_COUNT", 5),
		},
		Output: OutputConfig{
			Path:       getEnvString("OUTPUT_PATH", "output.json"),
			ArchiveDir: getEnvString("ARCHIVE_DIR", "data"),
		},
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return config, nil
}

func validateConfig(config *Config) error {
	if _, err := url.ParseRequestURI(config.API.BaseURL); err != nil {
		return fmt.Errorf("invalid NEWS_API_BASE_URL %q: %w", config.API.BaseURL, err)
	}

	if _, err := url.ParseRequestURI(config.API.SiteBaseURL); err != nil {
		return fmt.Errorf("invalid NEWS_SITE_BASE_URL %q: %w", config.API.SiteBaseURL, err)
	}

	if config.API.Source == "" {
		return fmt.Errorf("NEWS_SOURCE_NAME must not be empty")
	}

	if config.HTTP.Timeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive, got %s", config.HTTP.Timeout)
	}

	if config.Fetch.CategoryID <= 0 {
		return fmt.Errorf("FETCH_CATEGORY_ID must be positive, got %d", config.Fetch.CategoryID)
	}

	if config.Fetch.Page <= 0 {
		return fmt.Errorf("FETCH_PAGE must be positive, got %d", config.Fetch.Page)
	}

	if config.Fetch.Count <= 0 {
		return fmt.Errorf("FETCH_COUNT must be positive, got %d", config.Fetch.Count)
	}

	if config.Output.Path == "" {
		return fmt.Errorf("OUTPUT_PATH must not be empty")
	}

	if config.Output.ArchiveDir == "" {
		return fmt.Errorf("ARCHIVE_DIR must not be empty")
	}

	return nil
}

func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
