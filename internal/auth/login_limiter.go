package auth

import (
	"context"
	"strings"
	"time"

	"techshop/internal/cache"
)

const loginFailuresKeyPrefix = "login_failures:"

// LoginLimiterInterface defines the throttling operations used by the login flow.
type LoginLimiterInterface interface {
	Allow(ctx context.Context, email string) bool
	RecordFailure(ctx context.Context, email string)
	Reset(ctx context.Context, email string)
}

// LoginLimiter counts failed logins per email in Redis within a fixed window.
// It fails open: when Redis is unavailable every attempt is allowed.
type LoginLimiter struct {
	cache       *cache.Client
	maxAttempts int
	window      time.Duration
}

// Ensure LoginLimiter implements LoginLimiterInterface
var _ LoginLimiterInterface = (*LoginLimiter)(nil)

// NewLoginLimiter creates a limiter. A non-positive maxAttempts disables throttling.
func NewLoginLimiter(cache *cache.Client, maxAttempts int, window time.Duration) *LoginLimiter {
	return &LoginLimiter{cache: cache, maxAttempts: maxAttempts, window: window}
}

func (l *LoginLimiter) key(email string) string {
	return loginFailuresKeyPrefix + strings.ToLower(strings.TrimSpace(email))
}

// Allow reports whether another login attempt may be made for email.
func (l *LoginLimiter) Allow(ctx context.Context, email string) bool {
	if l.maxAttempts <= 0 {
		return true
	}
	n, _ := l.cache.Count(ctx, l.key(email))
	return n < int64(l.maxAttempts)
}

// RecordFailure increments the failure counter for email.
func (l *LoginLimiter) RecordFailure(ctx context.Context, email string) {
	if l.maxAttempts <= 0 {
		return
	}
	_, _ = l.cache.Incr(ctx, l.key(email), l.window)
}

// Reset clears the failure counter after a successful login.
func (l *LoginLimiter) Reset(ctx context.Context, email string) {
	if l.maxAttempts <= 0 {
		return
	}
	_ = l.cache.Delete(ctx, l.key(email))
}
