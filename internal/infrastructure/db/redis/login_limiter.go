package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	loginWindow      = time.Minute
	loginMaxAttempts = 10
)

// LoginLimiter throttles login attempts per caller using a fixed window
// counter in Redis. Key format: login_attempts:<key>
type LoginLimiter struct {
	client *redis.Client
}

// NewLoginLimiter creates a LoginLimiter wrapping the given Redis client.
func NewLoginLimiter(client *redis.Client) *LoginLimiter {
	return &LoginLimiter{client: client}
}

// Allow records an attempt and reports whether the caller is still within
// budget. The first attempt in a window sets the window's expiry.
func (l *LoginLimiter) Allow(ctx context.Context, key string) (bool, error) {
	k := l.key(key)

	n, err := l.client.Incr(ctx, k).Result()
	if err != nil {
		return false, fmt.Errorf("login limiter incr: %w", err)
	}
	if n == 1 {
		if err := l.client.Expire(ctx, k, loginWindow).Err(); err != nil {
			return false, fmt.Errorf("login limiter expire: %w", err)
		}
	}
	return n <= loginMaxAttempts, nil
}

func (l *LoginLimiter) key(key string) string {
	return "login_attempts:" + key
}
