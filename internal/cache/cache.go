// Package cache provides the process-wide get-or-compute cache used by the
// caching repository.
package cache

import (
	"context"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
)

// DefaultSize is the number of entries kept when no size is configured
const DefaultSize = 1024

// ComputeFunc produces the value for a missing key
type ComputeFunc func(ctx context.Context) (interface{}, error)

// Service is a get-or-compute cache. Entries have no TTL.
type Service interface {
	GetOrCompute(ctx context.Context, key string, compute ComputeFunc) (interface{}, error)
	Len() int
}

// LRU is a bounded Service. Concurrent misses on one key share one computation.
type LRU struct {
	entries *lru.Cache[string, interface{}]
	group   singleflight.Group
	log     *logrus.Entry
}

// NewLRU creates a cache holding at most size entries
func NewLRU(size int) (*LRU, error) {
	if size <= 0 {
		size = DefaultSize
	}
	entries, err := lru.New[string, interface{}](size)
	if err != nil {
		return nil, fmt.Errorf("failed to create cache: %w", err)
	}
	return &LRU{
		entries: entries,
		log:     logrus.WithField("component", "cache"),
	}, nil
}

// GetOrCompute returns the cached value for key, computing and storing it on a miss.
// Failed computations are not cached.
func (c *LRU) GetOrCompute(ctx context.Context, key string, compute ComputeFunc) (interface{}, error) {
	if v, ok := c.entries.Get(key); ok {
		c.log.WithField("key", key).Trace("hit")
		return v, nil
	}

	v, err, shared := c.group.Do(key, func() (interface{}, error) {
		if v, ok := c.entries.Get(key); ok {
			return v, nil
		}
		v, err := compute(ctx)
		if err != nil {
			return nil, err
		}
		c.entries.Add(key, v)
		return v, nil
	})
	if err != nil {
		return nil, err
	}
	c.log.WithFields(logrus.Fields{"key": key, "shared": shared}).Debug("miss")
	return v, nil
}

// Len returns the number of cached entries
func (c *LRU) Len() int {
	return c.entries.Len()
}

// Get is a typed wrapper around Service.GetOrCompute
func Get[T any](ctx context.Context, s Service, key string, compute func(ctx context.Context) (T, error)) (T, error) {
	v, err := s.GetOrCompute(ctx, key, func(ctx context.Context) (interface{}, error) {
		return compute(ctx)
	})
	if err != nil {
		var zero T
		return zero, err
	}
	typed, ok := v.(T)
	if !ok {
		var zero T
		return zero, fmt.Errorf("cache entry %s has type %T", key, v)
	}
	return typed, nil
}
