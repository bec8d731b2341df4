package reconcile

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// ReconcileCache is a lock index loaded from a Store.
type ReconcileCache struct {
	// LockIndex maps every stored token to its save flag.
	LockIndex map[string]bool
	// Built is when the index was loaded.
	Built time.Time
	// TTL is how long the index may be reused. Zero disables reuse.
	TTL time.Duration
}

// IsExpired reports whether the index must be reloaded.
func (c *ReconcileCache) IsExpired() bool {
	return c.TTL <= 0 || time.Since(c.Built) > c.TTL
}

// indexCache holds one lock index per store name.
type indexCache struct {
	mu      sync.RWMutex
	entries map[string]*ReconcileCache
	group   singleflight.Group
}

var locksCache = &indexCache{entries: make(map[string]*ReconcileCache)}

func (s *indexCache) fresh(key string) (*ReconcileCache, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.entries[key]
	if !ok || c.IsExpired() {
		return nil, false
	}
	return c, true
}

func (s *indexCache) put(key string, c *ReconcileCache) {
	s.mu.Lock()
	s.entries[key] = c
	s.mu.Unlock()
}

func (s *indexCache) drop(key string) {
	s.mu.Lock()
	delete(s.entries, key)
	s.mu.Unlock()
}

// BuildCache loads the lock index of spec.Store without storing it.
func BuildCache(ctx context.Context, spec *Spec) (*ReconcileCache, error) {
	index, err := spec.Store.LoadIndex(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load lock index from %s: %w", spec.Store.Name(), err)
	}
	if index == nil {
		index = map[string]bool{}
	}
	return &ReconcileCache{LockIndex: index, Built: time.Now(), TTL: spec.CacheTTL}, nil
}

// GetOrBuildCache returns the cached lock index for spec, loading it when it
// is missing or expired. Concurrent loads of one store share a single call.
func GetOrBuildCache(ctx context.Context, spec *Spec) (*ReconcileCache, error) {
	key := spec.CacheKey()
	if c, ok := locksCache.fresh(key); ok {
		return c, nil
	}

	v, err, _ := locksCache.group.Do(key, func() (interface{}, error) {
		if c, ok := locksCache.fresh(key); ok {
			return c, nil
		}
		c, err := BuildCache(ctx, spec)
		if err != nil {
			return nil, err
		}
		locksCache.put(key, c)
		return c, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*ReconcileCache), nil
}

// InvalidateCache drops the cached lock index for spec.
// ApplyPlan calls it after mutating the lock store.
func InvalidateCache(spec *Spec) {
	locksCache.drop(spec.CacheKey())
}
