package env

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()
	assert.NotNil(t, cfg)
	assert.Equal(t, time.Hour, cfg.TokenTTL)
	assert.Equal(t, 5, cfg.RateLimit)
	assert.Equal(t, "disable", cfg.SSLMode)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("ADDR", ":9000")
	t.Setenv("TOKEN_TTL", "15m")
	t.Setenv("RATE_LIMIT", "20")
	t.Setenv("REDIS_ADDR", "127.0.0.1:6379")

	cfg := Load()
	assert.Equal(t, ":9000", cfg.Addr)
	assert.Equal(t, 15*time.Minute, cfg.TokenTTL)
	assert.Equal(t, 20, cfg.RateLimit)
	assert.Equal(t, "127.0.0.1:6379", cfg.RedisAddr)
}

func TestLoadInvalidNumbersFallBack(t *testing.T) {
	t.Setenv("TOKEN_TTL", "soon")
	t.Setenv("RATE_LIMIT", "many")

	cfg := Load()
	assert.Equal(t, time.Hour, cfg.TokenTTL)
	assert.Equal(t, 5, cfg.RateLimit)
}
