package config

import (
	"log"
	"os"
	"strconv"
	"strings"
)

const (
	defaultPort            = 3000
	defaultRequestTimeout  = 60 // seconds
	defaultThrottleLimit   = 100
	defaultDatabasePath    = "chardb.db"
	defaultAllowedOrigins  = "http://localhost:5173"
	defaultListPageSize    = 10
	defaultListPageSizeMax = 100
)

type Config struct {
	// HTTP server settings
	Port           int
	RequestTimeout int // seconds
	ThrottleLimit  int // max in-flight requests

	// database path
	DatabasePath string

	// CORS
	AllowedOrigins []string

	// list endpoint pagination bounds
	ListPageSize    int
	ListPageSizeMax int
}

func getEnvOrDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvIntOrDefault(envVar string, defaultVal int) int {
	valStr := os.Getenv(envVar)
	if valStr == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(valStr)
	if err != nil || val <= 0 {
		log.Printf("Warning: Invalid %s '%s'. Using default %d. Error: %v", envVar, valStr, defaultVal, err)
		return defaultVal
	}
	return val
}

func LoadConfig() (Config, error) {
	origins := strings.Split(getEnvOrDefault("CORS_ALLOWED_ORIGINS", defaultAllowedOrigins), ",")
	for i := range origins {
		origins[i] = strings.TrimSpace(origins[i])
	}

	cfg := Config{
		Port:            getEnvIntOrDefault("PORT", defaultPort),
		RequestTimeout:  getEnvIntOrDefault("REQUEST_TIMEOUT_SECONDS", defaultRequestTimeout),
		ThrottleLimit:   getEnvIntOrDefault("THROTTLE_LIMIT", defaultThrottleLimit),
		DatabasePath:    getEnvOrDefault("DATABASE_PATH", defaultDatabasePath),
		AllowedOrigins:  origins,
		ListPageSize:    getEnvIntOrDefault("LIST_PAGE_SIZE", defaultListPageSize),
		ListPageSizeMax: getEnvIntOrDefault("LIST_PAGE_SIZE_MAX", defaultListPageSizeMax),
	}

	return cfg, nil
}
