package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "bizhub-api", cfg.App.Name)
	assert.Equal(t, 100, cfg.RateLimit.Requests)
	assert.Equal(t, 60, cfg.RateLimit.Duration)
}

func TestLoadFloorsRateLimitValues(t *testing.T) {
	t.Setenv("RATE_LIMIT_REQUESTS", "0")
	t.Setenv("RATE_LIMIT_DURATION", "0")

	cfg := Load()

	// A zero window would divide the request count to infinity and
	// switch the limiter off.
	assert.Equal(t, 1, cfg.RateLimit.Requests)
	assert.Equal(t, 1, cfg.RateLimit.Duration)
}
