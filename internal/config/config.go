package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config is assembled from environment variables; cmd/web loads .env first.
type Config struct {
	ListenAddr      string
	UpstreamBaseURL string
	UpstreamTimeout time.Duration
	CookieSecret    []byte
	SessionCookie   string
	FlashCookie     string
	SecureCookies   bool
	SessionTTL      time.Duration
}

func Load() (Config, error) {
	cfg := Config{
		ListenAddr:      getenv("APP_ADDR", ":8080"),
		UpstreamBaseURL: getenv("UPSTREAM_BASE_URL", "http://localhost:8000"),
		UpstreamTimeout: getdur("UPSTREAM_TIMEOUT", 30*time.Second),
		SessionCookie:   getenv("SESSION_COOKIE", "jst_session"),
		FlashCookie:     getenv("FLASH_COOKIE", "jst_flash"),
		SecureCookies:   getbool("SECURE_COOKIES", false),
		SessionTTL:      getdur("SESSION_TTL", 12*time.Hour),
	}

	secret := os.Getenv("COOKIE_SECRET")
	if secret == "" {
		return Config{}, fmt.Errorf("COOKIE_SECRET environment variable is required")
	}
	if len(secret) < 32 {
		return Config{}, fmt.Errorf("COOKIE_SECRET must be at least 32 bytes")
	}
	cfg.CookieSecret = []byte(secret)

	return cfg, nil
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getbool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

func getdur(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}
