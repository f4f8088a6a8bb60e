package config

import (
	"os"
	"strconv"
	"time"
)

// parseEnv overlays Config fields from environment variables. Unset or
// malformed variables leave the current value untouched.
//
// Recognized variables:
//
//	ADDRESS               HTTP bind address (e.g., ":8080")
//	DATABASE_DSN          PostgreSQL DSN
//	JWT_SECRET            session token signing secret
//	TOKEN_VALIDITY_DAYS   session token validity, days
//	APP_ENV               "development" or a deployment environment name
//	CORS_ALLOWED_ORIGINS  comma-separated allowed origins
func parseEnv(config *Config) {
	config.Address = getEnv("ADDRESS", config.Address)
	config.DatabaseDSN = getEnv("DATABASE_DSN", config.DatabaseDSN)
	config.SecretKey = getEnv("JWT_SECRET", config.SecretKey)
	config.Environment = getEnv("APP_ENV", config.Environment)
	config.CORSAllowedOrigins = getEnv("CORS_ALLOWED_ORIGINS", config.CORSAllowedOrigins)

	if v := os.Getenv("TOKEN_VALIDITY_DAYS"); v != "" {
		if days, err := strconv.Atoi(v); err == nil {
			config.TokenValidityDuration = time.Duration(days) * 24 * time.Hour
		}
	}
}

// getEnv returns the value of the environment variable or the fallback if
// the variable is unset or empty.
func getEnv(key string, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}
