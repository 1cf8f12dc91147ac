// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Defines configuration structures for server, storage, scraping and summarization

package config

import (
	"errors"
	"os"
	"strconv"
)

// Config holds all application configuration
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig

	// Database contains SQLite configuration
	Database DatabaseConfig

	// Scraper contains scraping pipeline configuration
	Scraper ScraperConfig

	// Summarizer contains summarization engine configuration
	Summarizer SummarizerConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string

	// LogLevel is the application log level
	LogLevel string

	// RateLimit is the allowed requests per client per minute, 0 disables
	RateLimit int
}

// DatabaseConfig holds SQLite configuration
type DatabaseConfig struct {
	// Path is the SQLite database file path
	Path string
}

// ScraperConfig holds scraping pipeline configuration
type ScraperConfig struct {
	// RequestTimeout bounds each fetch and page render, in seconds
	RequestTimeout int

	// BrowserPath is an optional local browser binary for rendering
	BrowserPath string
}

// SummarizerConfig holds summarization engine configuration
type SummarizerConfig struct {
	// APIKey authenticates against the summarization backend; empty
	// means the summarizer runs on its truncation fallback
	APIKey string

	// BaseURL overrides the backend endpoint (OpenAI-compatible)
	BaseURL string

	// Model is the summarization model name
	Model string
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:      getEnvOrDefault("PORT", "8000"),
			LogLevel:  getEnvOrDefault("LOG_LEVEL", "info"),
			RateLimit: getEnvAsIntOrDefault("RATE_LIMIT", 100),
		},
		Database: DatabaseConfig{
			Path: getEnvOrDefault("DATABASE_FILE", "realify_news.db"),
		},
		Scraper: ScraperConfig{
			RequestTimeout: getEnvAsIntOrDefault("REQUEST_TIMEOUT", 15),
			BrowserPath:    getEnvOrDefault("BROWSER_PATH", ""),
		},
		Summarizer: SummarizerConfig{
			APIKey:  getEnvOrDefault("OPENAI_API_KEY", ""),
			BaseURL: getEnvOrDefault("OPENAI_BASE_URL", ""),
			Model:   getEnvOrDefault("OPENAI_MODEL", "gpt-4o-mini"),
		},
	}

	return cfg, nil
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as int or a default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("port cannot be empty")
	}

	if c.Database.Path == "" {
		return errors.New("database path cannot be empty")
	}

	if c.Scraper.RequestTimeout < 1 {
		return errors.New("request timeout must be at least 1 second")
	}

	return nil
}
