package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bsm/redislock"
)

// ErrLockHeld is returned by Locker.Obtain when another holder owns the lock.
var ErrLockHeld = errors.New("lock held by another process")

// Locker hands out short-lived distributed locks stored in Redis.
type Locker struct {
	client *redislock.Client
}

// NewLocker creates a Locker on the given RedisClient.
func NewLocker(r *RedisClient) *Locker {
	return &Locker{client: redislock.New(r.Client())}
}

// Obtain takes the lock named key for ttl without waiting. The returned
// function releases it; releasing an expired lock is not an error.
func (l *Locker) Obtain(ctx context.Context, key string, ttl time.Duration) (func(context.Context) error, error) {
	lock, err := l.client.Obtain(ctx, "lock:"+key, ttl, nil)
	if errors.Is(err, redislock.ErrNotObtained) {
		return nil, ErrLockHeld
	}
	if err != nil {
		return nil, fmt.Errorf("obtain lock %s: %w", key, err)
	}
	return func(ctx context.Context) error {
		if err := lock.Release(ctx); err != nil && !errors.Is(err, redislock.ErrLockNotHeld) {
			return fmt.Errorf("release lock %s: %w", key, err)
		}
		return nil
	}, nil
}
