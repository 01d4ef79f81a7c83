package api

import (
	"strings"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
)

const (
	loginAttemptsLimit  = 8
	loginAttemptsWindow = 15 * time.Minute
)

// attemptLimiter counts failures per key inside a sliding window.
type attemptLimiter struct {
	mu       sync.Mutex
	failures map[string][]time.Time
}

func newAttemptLimiter() *attemptLimiter {
	return &attemptLimiter{failures: make(map[string][]time.Time)}
}

func (limiter *attemptLimiter) tooManyRecent(key string, now time.Time, limit int, window time.Duration) bool {
	limiter.mu.Lock()
	defer limiter.mu.Unlock()
	return len(limiter.activeLocked(key, now, window)) >= limit
}

// retryAfter is how long until the oldest failure in the window expires.
func (limiter *attemptLimiter) retryAfter(key string, now time.Time, window time.Duration) time.Duration {
	limiter.mu.Lock()
	defer limiter.mu.Unlock()

	active := limiter.activeLocked(key, now, window)
	if len(active) == 0 {
		return 0
	}
	return active[0].Add(window).Sub(now)
}

func (limiter *attemptLimiter) addFailure(key string, now time.Time, window time.Duration) {
	limiter.mu.Lock()
	defer limiter.mu.Unlock()
	limiter.failures[key] = append(limiter.activeLocked(key, now, window), now)
}

func (limiter *attemptLimiter) reset(key string) {
	limiter.mu.Lock()
	defer limiter.mu.Unlock()
	delete(limiter.failures, key)
}

func (limiter *attemptLimiter) activeLocked(key string, now time.Time, window time.Duration) []time.Time {
	threshold := now.Add(-window)
	active := make([]time.Time, 0, len(limiter.failures[key]))
	for _, failedAt := range limiter.failures[key] {
		if failedAt.After(threshold) {
			active = append(active, failedAt)
		}
	}
	if len(active) == 0 {
		delete(limiter.failures, key)
		return active
	}
	limiter.failures[key] = active
	return active
}

func requestLimiterKey(c *fiber.Ctx) string {
	if key := strings.TrimSpace(c.IP()); key != "" {
		return key
	}
	return "unknown"
}
