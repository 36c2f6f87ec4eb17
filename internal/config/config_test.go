package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("COOKIE_SECRET", "0123456789abcdef0123456789abcdef")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, ":8080", cfg.ListenAddr)
		assert.Equal(t, "http://localhost:8000", cfg.UpstreamBaseURL)
		assert.Equal(t, 30*time.Second, cfg.UpstreamTimeout)
		assert.Equal(t, "jst_session", cfg.SessionCookie)
		assert.Equal(t, 12*time.Hour, cfg.SessionTTL)
		assert.False(t, cfg.SecureCookies)
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("COOKIE_SECRET", "0123456789abcdef0123456789abcdef")
		t.Setenv("APP_ADDR", ":9090")
		t.Setenv("UPSTREAM_BASE_URL", "http://api.internal:8000")
		t.Setenv("UPSTREAM_TIMEOUT", "5s")
		t.Setenv("SECURE_COOKIES", "true")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, ":9090", cfg.ListenAddr)
		assert.Equal(t, "http://api.internal:8000", cfg.UpstreamBaseURL)
		assert.Equal(t, 5*time.Second, cfg.UpstreamTimeout)
		assert.True(t, cfg.SecureCookies)
	})

	t.Run("missing secret", func(t *testing.T) {
		t.Setenv("COOKIE_SECRET", "")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("short secret", func(t *testing.T) {
		t.Setenv("COOKIE_SECRET", "too-short")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("bad duration falls back to default", func(t *testing.T) {
		t.Setenv("COOKIE_SECRET", "0123456789abcdef0123456789abcdef")
		t.Setenv("UPSTREAM_TIMEOUT", "soon")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, 30*time.Second, cfg.UpstreamTimeout)
	})
}
