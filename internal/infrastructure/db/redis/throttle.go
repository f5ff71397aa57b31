package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	defaultMaxAttempts = 10
	defaultWindow      = 15 * time.Minute
)

// LoginThrottle counts login attempts per email in a rolling window.
// Key format: login_attempts:<email>
type LoginThrottle struct {
	client      *redis.Client
	maxAttempts int64
	window      time.Duration
}

// NewLoginThrottle creates a LoginThrottle wrapping the given Redis client.
// Non-positive limits fall back to the defaults.
func NewLoginThrottle(client *redis.Client, maxAttempts int, window time.Duration) *LoginThrottle {
	if maxAttempts <= 0 {
		maxAttempts = defaultMaxAttempts
	}
	if window <= 0 {
		window = defaultWindow
	}
	return &LoginThrottle{client: client, maxAttempts: int64(maxAttempts), window: window}
}

// Allow records an attempt for the email and reports whether it is still
// within the window's budget. The expiry is set only on the first attempt so
// the window does not slide forward on every retry.
func (t *LoginThrottle) Allow(ctx context.Context, email string) (bool, error) {
	key := t.key(email)
	n, err := t.client.Incr(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("throttle incr: %w", err)
	}
	if n == 1 {
		if err := t.client.Expire(ctx, key, t.window).Err(); err != nil {
			return false, fmt.Errorf("throttle expire: %w", err)
		}
	}
	return n <= t.maxAttempts, nil
}

// Reset clears the attempt counter after a successful login.
func (t *LoginThrottle) Reset(ctx context.Context, email string) error {
	return t.client.Del(ctx, t.key(email)).Err()
}

func (t *LoginThrottle) key(email string) string {
	return "login_attempts:" + email
}
