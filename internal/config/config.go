package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds everything the server reads from the environment at startup.
type Config struct {
	// Addr is the listen address for the HTTP server.
	Addr string
	// Env is the deployment environment ("development" or "production").
	// Session cookies are only marked Secure in production.
	Env string
	// SQLitePath is the path to the sqlite database file.
	SQLitePath string
	// RedisAddr is the address of the redis server backing sessions.
	RedisAddr string
	// SessionBackend selects the session store: "redis" or "memory".
	SessionBackend string
	// SessionTTL is how long an issued session stays valid.
	SessionTTL time.Duration
	// CookieName is the name of the session cookie.
	CookieName string
}

const DefaultSessionTTL = 24 * time.Hour

// Load reads the configuration from the environment, falling back to
// development defaults for anything unset.
func Load() Config {
	return Config{
		Addr:           getEnv("ADDR", ":8080"),
		Env:            getEnv("APP_ENV", "development"),
		SQLitePath:     getEnv("SQLITE_PATH", "./inbucks.db"),
		RedisAddr:      getEnv("REDIS_CONNSTRING", "localhost:6379"),
		SessionBackend: getEnv("SESSION_BACKEND", "redis"),
		SessionTTL:     getDuration("SESSION_TTL_HOURS", DefaultSessionTTL),
		CookieName:     getEnv("SESSION_COOKIE_NAME", "inbucks_session"),
	}
}

// IsProduction reports whether the server runs in production mode.
func (c Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	hours, err := strconv.Atoi(v)
	if err != nil || hours <= 0 {
		return fallback
	}
	return time.Duration(hours) * time.Hour
}
