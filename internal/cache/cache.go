package cache

import (
	"context"
	"log"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

type entry struct {
	value     any
	fetchedAt time.Time
}

// Store is a process-wide read-through cache for the public read paths.
// Entries stay fresh for a TTL window; concurrent reads of the same key share
// one fetch; a failed refresh serves the previous value when one exists.
// Mutations never write into the store; they Invalidate, and the next read
// re-fetches.
type Store struct {
	defaultTTL time.Duration

	mu        sync.RWMutex
	ttls      map[Key]time.Duration
	entries   map[Key]entry
	group     singleflight.Group
	now       func() time.Time
}

func New(defaultTTL time.Duration) *Store {
	return &Store{
		defaultTTL: defaultTTL,
		ttls:       make(map[Key]time.Duration),
		entries:    make(map[Key]entry),
		now:        time.Now,
	}
}

// SetTTL overrides the freshness window for one key.
func (s *Store) SetTTL(k Key, ttl time.Duration) {
	if s == nil {
		return
	}
	s.mu.Lock()
	s.ttls[k] = ttl
	s.mu.Unlock()
}

// Invalidate marks keys stale so the next read re-fetches. Safe on a nil
// store, which behaves as a cache that holds nothing.
func (s *Store) Invalidate(keys ...Key) {
	if s == nil {
		return
	}
	s.mu.Lock()
	for _, k := range keys {
		delete(s.entries, k)
	}
	s.mu.Unlock()
}

func (s *Store) ttl(k Key) time.Duration {
	if ttl, ok := s.ttls[k]; ok {
		return ttl
	}
	return s.defaultTTL
}

// fresh returns the entry value if it is inside its freshness window.
func (s *Store) fresh(k Key) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.entries[k]
	if !ok {
		return nil, false
	}
	if s.now().Sub(e.fetchedAt) > s.ttl(k) {
		return nil, false
	}
	return e.value, true
}

// stale returns whatever value is held, regardless of age.
func (s *Store) stale(k Key) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.entries[k]
	return e.value, ok
}

func (s *Store) put(k Key, v any) {
	s.mu.Lock()
	s.entries[k] = entry{value: v, fetchedAt: s.now()}
	s.mu.Unlock()
}

// GetOrFetch returns the fresh cached value for k, or runs fetch and caches
// its result. In-flight fetches for the same key are deduplicated. When fetch
// fails and a stale value exists, the stale value is returned and the error is
// logged, mirroring how the site previously kept showing the last data it had.
func (s *Store) GetOrFetch(ctx context.Context, k Key, fetch func(ctx context.Context) (any, error)) (any, error) {
	if v, ok := s.fresh(k); ok {
		return v, nil
	}

	v, err, _ := s.group.Do(string(k), func() (any, error) {
		// A concurrent caller may have refreshed while we waited.
		if v, ok := s.fresh(k); ok {
			return v, nil
		}
		v, err := fetch(ctx)
		if err != nil {
			if prev, ok := s.stale(k); ok {
				log.Printf("cache refresh failed key=%s err=%v, serving stale", k, err)
				return prev, nil
			}
			return nil, err
		}
		s.put(k, v)
		return v, nil
	})
	if err != nil {
		return nil, err
	}
	return v, nil
}

// Fetch is the typed front of GetOrFetch.
func Fetch[T any](ctx context.Context, s *Store, k Key, fetch func(ctx context.Context) (T, error)) (T, error) {
	var zero T
	if s == nil {
		return fetch(ctx)
	}
	v, err := s.GetOrFetch(ctx, k, func(ctx context.Context) (any, error) {
		return fetch(ctx)
	})
	if err != nil {
		return zero, err
	}
	typed, ok := v.(T)
	if !ok {
		// Key reused with a different type; treat the entry as garbage.
		s.Invalidate(k)
		return fetch(ctx)
	}
	return typed, nil
}
