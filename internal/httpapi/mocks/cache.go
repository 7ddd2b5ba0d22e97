package mocks

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// MockCacher is a mock implementation of the cache interface for testing the
// handler layer. It uses function-based mocking for flexibility; the default
// Get behavior is a cache miss.
type MockCacher struct {
	GetFunc            func(ctx context.Context, key string, dest any) error
	SetFunc            func(ctx context.Context, key string, value any, expiration time.Duration) error
	DeleteByPrefixFunc func(ctx context.Context, prefix string) error
	CloseFunc          func() error
}

// Get implements the cache interface
func (m *MockCacher) Get(ctx context.Context, key string, dest any) error {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, key, dest)
	}
	return redis.Nil
}

// Set implements the cache interface
func (m *MockCacher) Set(ctx context.Context, key string, value any, expiration time.Duration) error {
	if m.SetFunc != nil {
		return m.SetFunc(ctx, key, value, expiration)
	}
	return nil
}

// DeleteByPrefix implements the cache interface
func (m *MockCacher) DeleteByPrefix(ctx context.Context, prefix string) error {
	if m.DeleteByPrefixFunc != nil {
		return m.DeleteByPrefixFunc(ctx, prefix)
	}
	return nil
}

// Close implements the cache interface
func (m *MockCacher) Close() error {
	if m.CloseFunc != nil {
		return m.CloseFunc()
	}
	return nil
}
