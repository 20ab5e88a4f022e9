package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLimiter(perMin, burst int) *Limiter {
	return NewLimiter(&Config{
		Enabled:        true,
		RequestsPerMin: perMin,
		Burst:          burst,
	})
}

func TestLimiterAllowsWithinBurst(t *testing.T) {
	l := newTestLimiter(60, 5)
	defer l.Stop()

	for i := 0; i < 5; i++ {
		allowed, info := l.Allow("client-a")
		require.True(t, allowed, "request %d should be allowed", i)
		assert.Equal(t, 60, info.Limit)
	}

	allowed, info := l.Allow("client-a")
	assert.False(t, allowed)
	assert.Greater(t, info.RetryAfter, time.Duration(0))
}

func TestLimiterClientsAreIndependent(t *testing.T) {
	l := newTestLimiter(60, 1)
	defer l.Stop()

	allowed, _ := l.Allow("client-a")
	require.True(t, allowed)
	allowed, _ = l.Allow("client-a")
	require.False(t, allowed)

	allowed, _ = l.Allow("client-b")
	assert.True(t, allowed, "second client has its own bucket")
}

func TestLimiterRefills(t *testing.T) {
	// 6000/min = 100 tokens per second, so a drained burst of 1
	// recovers within tens of milliseconds.
	l := newTestLimiter(6000, 1)
	defer l.Stop()

	allowed, _ := l.Allow("client-a")
	require.True(t, allowed)
	allowed, _ = l.Allow("client-a")
	require.False(t, allowed)

	time.Sleep(50 * time.Millisecond)

	allowed, _ = l.Allow("client-a")
	assert.True(t, allowed, "bucket should refill over time")
}

func TestLimiterDisabled(t *testing.T) {
	l := NewLimiter(&Config{Enabled: false, RequestsPerMin: 1, Burst: 1})
	defer l.Stop()

	for i := 0; i < 10; i++ {
		allowed, info := l.Allow("client-a")
		assert.True(t, allowed)
		assert.Equal(t, 0, info.Limit)
	}
}

func TestLimiterNilConfigUsesDefaults(t *testing.T) {
	l := NewLimiter(nil)
	defer l.Stop()

	allowed, info := l.Allow("client-a")
	assert.True(t, allowed)
	assert.Equal(t, 600, info.Limit)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("RATE_LIMIT_ENABLED", "false")
	t.Setenv("RATE_LIMIT_REQUESTS_PER_MIN", "120")
	t.Setenv("RATE_LIMIT_BURST", "10")

	cfg := LoadConfig()
	assert.False(t, cfg.Enabled)
	assert.Equal(t, 120, cfg.RequestsPerMin)
	assert.Equal(t, 10, cfg.Burst)
}

func TestLoadConfigIgnoresGarbage(t *testing.T) {
	t.Setenv("RATE_LIMIT_REQUESTS_PER_MIN", "not-a-number")
	t.Setenv("RATE_LIMIT_BURST", "-3")

	cfg := LoadConfig()
	assert.Equal(t, 600, cfg.RequestsPerMin)
	assert.Equal(t, 60, cfg.Burst)
}

func TestRemoveStale(t *testing.T) {
	l := newTestLimiter(60, 5)
	defer l.Stop()

	l.Allow("client-a")
	l.mu.Lock()
	l.touched["client-a"] = time.Now().Add(-2 * time.Hour)
	l.mu.Unlock()

	l.removeStale()

	l.mu.RLock()
	_, ok := l.buckets["client-a"]
	l.mu.RUnlock()
	assert.False(t, ok, "stale bucket should be dropped")
}
