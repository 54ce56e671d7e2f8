// internal/infrastructure/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// App
	AppVersion string

	// PostgreSQL (input snapshot)
	PostgresURI string

	// MongoDB (optional feature snapshot sink)
	MongoExport   bool
	MongoURI      string
	MongoDB       string
	MongoUser     string
	MongoPassword string

	// Cohort selection
	CohortStart     time.Time
	MinSessionCount int

	// Pipeline
	Workers   int
	OutputDir string

	// Metrics; empty port disables the endpoint
	MetricsPort string
}

const cohortDateLayout = "2006-01-02"

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	// Load .env file if it exists
	godotenv.Load()

	cohortStart, err := time.Parse(cohortDateLayout, getEnv("COHORT_START", "2023-01-04"))
	if err != nil {
		return nil, fmt.Errorf("invalid COHORT_START: %w", err)
	}

	// Set defaults and override with env vars
	config := &Config{
		AppVersion: getEnv("APP_VERSION", "1.0.0"),

		PostgresURI: getEnv("POSTGRES_DSN", "postgres://localhost:5432/traveltide"),

		MongoExport:   getEnvAsBool("MONGO_EXPORT", false),
		MongoURI:      getEnv("MONGODB_DSN", "mongodb://localhost:27017"),
		MongoDB:       getEnv("MONGO_DB", "traveltide"),
		MongoUser:     getEnv("MONGO_USER", ""),
		MongoPassword: getEnv("MONGO_PASSWORD", ""),

		CohortStart:     cohortStart,
		MinSessionCount: getEnvAsInt("MIN_SESSION_COUNT", 7),

		Workers:   getEnvAsInt("PIPELINE_WORKERS", 4),
		OutputDir: getEnv("OUTPUT_DIR", "exports"),

		MetricsPort: getEnv("METRICS_PORT", ""),
	}

	if config.Workers < 1 {
		config.Workers = 1
	}

	return config, nil
}

// Helper functions to get environment variables
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}
