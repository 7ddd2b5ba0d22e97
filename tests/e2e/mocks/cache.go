package mocks

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// MissCache never holds a value; every Get is a miss.
type MissCache struct{}

func (c *MissCache) Get(ctx context.Context, key string, dest any) error {
	return redis.Nil
}

func (c *MissCache) Set(ctx context.Context, key string, value any, exp time.Duration) error {
	return nil
}

func (c *MissCache) DeleteByPrefix(ctx context.Context, prefix string) error {
	return nil
}

func (c *MissCache) Close() error {
	return nil
}

// TrackingCache counts cache traffic without storing real serialized values;
// Get always misses so handlers recompute.
type TrackingCache struct {
	mu       sync.Mutex
	getCalls int
	setCalls int
	delCalls int
}

func (c *TrackingCache) Get(ctx context.Context, key string, dest any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.getCalls++
	return redis.Nil
}

func (c *TrackingCache) Set(ctx context.Context, key string, value any, exp time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.setCalls++
	return nil
}

func (c *TrackingCache) DeleteByPrefix(ctx context.Context, prefix string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.delCalls++
	return nil
}

func (c *TrackingCache) Close() error {
	return nil
}

// Counts returns a consistent snapshot of the call counters.
func (c *TrackingCache) Counts() (gets, sets, dels int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.getCalls, c.setCalls, c.delCalls
}
