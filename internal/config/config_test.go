package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "redis", cfg.SessionBackend)
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
	assert.Equal(t, "inbucks_session", cfg.CookieName)
	assert.False(t, cfg.IsProduction())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("ADDR", ":9999")
	t.Setenv("APP_ENV", "production")
	t.Setenv("SESSION_BACKEND", "memory")
	t.Setenv("SESSION_TTL_HOURS", "48")

	cfg := Load()

	assert.Equal(t, ":9999", cfg.Addr)
	assert.Equal(t, "memory", cfg.SessionBackend)
	assert.Equal(t, 48*time.Hour, cfg.SessionTTL)
	assert.True(t, cfg.IsProduction())
}

func TestLoadBadTTLFallsBack(t *testing.T) {
	t.Setenv("SESSION_TTL_HOURS", "not-a-number")

	cfg := Load()

	assert.Equal(t, DefaultSessionTTL, cfg.SessionTTL)
}
