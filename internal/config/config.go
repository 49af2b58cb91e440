package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Database DatabaseConfig
	Cache    CacheConfig
	API      APIConfig
}

// DatabaseConfig holds database connection configuration
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// CacheConfig holds lookup cache configuration (Redis)
type CacheConfig struct {
	RedisURL  string
	FilterTTL time.Duration
}

// APIConfig holds API server configuration
type APIConfig struct {
	Port int
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	apiPort, err := strconv.Atoi(getEnv("API_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid API_PORT: %w", err)
	}

	filterTTL, err := strconv.Atoi(getEnv("FILTER_CACHE_TTL_SECONDS", "300"))
	if err != nil {
		return nil, fmt.Errorf("invalid FILTER_CACHE_TTL_SECONDS: %w", err)
	}

	return &Config{
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     dbPort,
			User:     getEnv("DB_USER", "customer_insights"),
			Password: getEnv("DB_PASSWORD", "customer_insights"),
			DBName:   getEnv("DB_NAME", "customer_insights"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Cache: CacheConfig{
			RedisURL:  getEnv("REDIS_URL", "redis://localhost:6379/0"),
			FilterTTL: time.Duration(filterTTL) * time.Second,
		},
		API: APIConfig{
			Port: apiPort,
		},
	}, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
