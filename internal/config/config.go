package config

import (
	"log"
	"os"
	"strconv"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	// Environment
	Env string // "development", "production", etc.

	// Server
	ServerAddr string
	StaticDir  string

	// Storage
	DataFile  string // xlsx workbook holding the reject table
	ChartPath string // rendered chart, overwritten on every view

	// Process list
	ProcessesFile string // optional YAML override of the built-in list

	// Rate limiting
	RedisURL     string // limiter storage; in-memory when empty
	RateLimitMax int    // requests per minute per IP

	// Uploads
	UploadLimitMB int

	// Background jobs
	IntegrityCheckMinutes int // data file check interval

	// Site Branding
	SiteTitle string // env: SITE_TITLE, default: "Reject Monitoring System"
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	return &Config{
		Env:           getEnv("ENV", "development"),
		ServerAddr:    getEnv("SERVER_ADDR", ":5000"),
		StaticDir:     getEnv("STATIC_DIR", "./static"),
		DataFile:      getEnv("DATA_FILE", "reject_data.xlsx"),
		ChartPath:     getEnv("CHART_PATH", "static/chart.png"),
		ProcessesFile: getEnv("PROCESSES_FILE", "processes.yaml"),
		RedisURL:      getEnv("REDIS_URL", ""),
		RateLimitMax:  getEnvAsInt("RATE_LIMIT_MAX", 100),
		UploadLimitMB: getEnvAsInt("UPLOAD_LIMIT_MB", 10),
		SiteTitle:     getEnv("SITE_TITLE", "Reject Monitoring System"),

		IntegrityCheckMinutes: getEnvAsInt("INTEGRITY_CHECK_MINUTES", 5),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return fallback
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil || value <= 0 {
		log.Printf("Invalid value for %s: expected a positive integer, got '%s'; using %d", key, valueStr, fallback)
		return fallback
	}
	return value
}

// IsDev returns true if the environment is set to development.
func (c *Config) IsDev() bool {
	return c.Env == "development" || c.Env == "dev"
}

// BodyLimit returns the maximum request body size in bytes.
func (c *Config) BodyLimit() int {
	return c.UploadLimitMB * 1024 * 1024
}
