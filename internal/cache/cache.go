package cache

import (
	"context"
	"strconv"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

const (
	SourceCache    = "cache"
	SourceComputed = "computed"
)

// Value is a finished sieve run.
type Value struct {
	Primes     []int
	ComputedAt time.Time
	Elapsed    time.Duration
}

type item struct {
	val       Value
	expiresAt time.Time
}

// Cache keeps sieve results per limit for a TTL and coalesces concurrent
// computations of the same limit with singleflight. At most maxEntries
// results are held; the entry closest to expiry is evicted first.
type Cache struct {
	mu         sync.RWMutex
	items      map[int]item
	ttl        time.Duration
	maxEntries int
	timeout    time.Duration
	group      singleflight.Group
}

// New returns a cache holding up to maxEntries results (unbounded when
// maxEntries <= 0). Computations run detached from the caller's context and
// are bounded by computeTimeout when it is positive.
func New(ttl time.Duration, maxEntries int, computeTimeout time.Duration) *Cache {
	return &Cache{items: make(map[int]item), ttl: ttl, maxEntries: maxEntries, timeout: computeTimeout}
}

// GetOrCompute returns the cached primes for n if still fresh. Otherwise
// compute runs once for all concurrent callers asking for n and the result
// is stored. Each caller stops waiting when its own ctx is done; the
// computation carries on for the others. The returned source is SourceCache
// or SourceComputed. Callers must not modify Value.Primes.
func (c *Cache) GetOrCompute(ctx context.Context, n int, compute func(context.Context) (Value, error)) (Value, string, error) {
	c.mu.RLock()
	it, ok := c.items[n]
	c.mu.RUnlock()
	if ok && time.Now().Before(it.expiresAt) {
		return it.val, SourceCache, nil
	}

	ch := c.group.DoChan(strconv.Itoa(n), func() (interface{}, error) {
		cctx := context.WithoutCancel(ctx)
		if c.timeout > 0 {
			var cancel context.CancelFunc
			cctx, cancel = context.WithTimeout(cctx, c.timeout)
			defer cancel()
		}
		v, err := compute(cctx)
		if err != nil {
			return nil, err
		}
		c.store(n, v)
		return v, nil
	})
	select {
	case <-ctx.Done():
		return Value{}, "", ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return Value{}, "", res.Err
		}
		return res.Val.(Value), SourceComputed, nil
	}
}

func (c *Cache) store(n int, v Value) {
	now := time.Now()
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.items[n]; !ok && c.maxEntries > 0 {
		for k, it := range c.items {
			if !now.Before(it.expiresAt) {
				delete(c.items, k)
			}
		}
		for len(c.items) >= c.maxEntries {
			oldest, first := 0, true
			for k, it := range c.items {
				if first || it.expiresAt.Before(c.items[oldest].expiresAt) {
					oldest, first = k, false
				}
			}
			delete(c.items, oldest)
		}
	}
	c.items[n] = item{val: v, expiresAt: now.Add(c.ttl)}
}

// Purge drops expired entries and reports how many were removed.
func (c *Cache) Purge() int {
	now := time.Now()
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for k, it := range c.items {
		if !now.Before(it.expiresAt) {
			delete(c.items, k)
			n++
		}
	}
	return n
}

// Len returns the number of stored entries, expired or not.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
