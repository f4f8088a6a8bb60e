package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseEnv_OverridesDefaults(t *testing.T) {
	t.Setenv("ADDRESS", ":9090")
	t.Setenv("DATABASE_DSN", "postgres://u:p@db:5432/app")
	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("APP_ENV", "production")
	t.Setenv("TOKEN_VALIDITY_DAYS", "7")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://example.com")

	var c Config
	c.LoadDefaults()
	parseEnv(&c)

	assert.Equal(t, c.Address, ":9090")
	assert.Equal(t, c.DatabaseDSN, "postgres://u:p@db:5432/app")
	assert.Equal(t, c.SecretKey, "env-secret")
	assert.Equal(t, c.Environment, "production")
	assert.Equal(t, c.TokenValidityDuration, 7*24*time.Hour)
	assert.Equal(t, c.CORSAllowedOrigins, "https://example.com")
}

func TestParseEnv_KeepsDefaultsWhenUnset(t *testing.T) {
	var c Config
	c.LoadDefaults()
	parseEnv(&c)

	assert.Equal(t, c.Address, ":8080")
	assert.Equal(t, c.SecretKey, "secretKey")
	assert.Equal(t, c.TokenValidityDuration, 15*24*time.Hour)
}

func TestParseEnv_IgnoresMalformedValidity(t *testing.T) {
	t.Setenv("TOKEN_VALIDITY_DAYS", "not-a-number")

	var c Config
	c.LoadDefaults()
	parseEnv(&c)

	assert.Equal(t, c.TokenValidityDuration, 15*24*time.Hour)
}
