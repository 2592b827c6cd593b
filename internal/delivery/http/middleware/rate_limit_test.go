package middleware

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRateLimitConfigsHonorWindow(t *testing.T) {
	window := 30 * time.Second

	assert.Equal(t, window, DefaultRateLimitConfig(50, window).Window)
	assert.Equal(t, window, AuthRateLimitConfig(5, window).Window)
	assert.Equal(t, window, AIRateLimitConfig(10, window).Window)
	assert.Equal(t, window, UploadRateLimitConfig(window).Window)
}

func TestRateLimitConfigDefaults(t *testing.T) {
	cfg := DefaultRateLimitConfig(0, 0)
	assert.Equal(t, 100, cfg.Limit)
	assert.Equal(t, 1*time.Minute, cfg.Window)
	assert.False(t, cfg.FailClosed)

	auth := AuthRateLimitConfig(0, -time.Second)
	assert.Equal(t, 10, auth.Limit)
	assert.Equal(t, 1*time.Minute, auth.Window)
	assert.True(t, auth.FailClosed)
}
