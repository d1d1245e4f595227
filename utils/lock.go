package utils

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

// ErrLockNotAcquired is returned when a lock could not be taken within the
// locker's wait bound.
var ErrLockNotAcquired = errors.New("lock not acquired within wait deadline")

const lockKeyPrefix = "lock:"

// releaseScript deletes the lock only if it still holds our token, so an
// expired lease taken over by another holder is never released by us.
var releaseScript = redis.NewScript(`
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
end
return 0
`)

// RedisLocker provides a lease-based mutual exclusion scope on a Redis key.
// The TTL bounds how long a crashed holder can block others.
type RedisLocker struct {
	client    *redis.Client
	ttl       time.Duration
	wait      time.Duration
	retryStep time.Duration
}

// NewRedisLocker constructs a locker with the given lease TTL and wait bound.
func NewRedisLocker(client *redis.Client, ttl, wait time.Duration) *RedisLocker {
	return &RedisLocker{
		client:    client,
		ttl:       ttl,
		wait:      wait,
		retryStep: 50 * time.Millisecond,
	}
}

// Acquire takes the lock for key, polling until the wait bound elapses. On
// success it returns a release function; callers must invoke it when done.
func (l *RedisLocker) Acquire(ctx context.Context, key string) (func(), error) {
	redisKey := lockKeyPrefix + key
	token := uuid.New().String()
	deadline := time.Now().Add(l.wait)

	for {
		ok, err := l.client.SetNX(ctx, redisKey, token, l.ttl).Result()
		if err != nil {
			return nil, fmt.Errorf("failed to acquire lock %s: %w", key, err)
		}
		if ok {
			release := func() {
				releaseCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
				defer cancel()
				_ = releaseScript.Run(releaseCtx, l.client, []string{redisKey}, token).Err()
			}
			return release, nil
		}
		if time.Now().After(deadline) {
			return nil, ErrLockNotAcquired
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(l.retryStep):
		}
	}
}
