package cache

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/riskibarqy/golf-tracker/internal/platform/resilience"
)

type entry struct {
	value     any
	expiresAt time.Time
}

// Store is an in-process TTL cache. Loads for the same key are collapsed, and a load
// that raced with Invalidate never writes its result back.
type Store struct {
	mu       sync.RWMutex
	entries  map[string]entry
	versions map[string]uint64
	ttl      time.Duration
	now      func() time.Time
	flight   resilience.SingleFlight
}

// NewStore creates a store; ttl <= 0 keeps entries until invalidated.
func NewStore(ttl time.Duration) *Store {
	return &Store{
		entries:  make(map[string]entry),
		versions: make(map[string]uint64),
		ttl:      ttl,
		now:      time.Now,
	}
}

func (s *Store) Get(_ context.Context, key string) (any, bool) {
	if key == "" {
		return nil, false
	}

	s.mu.RLock()
	e, ok := s.entries[key]
	s.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if !e.expiresAt.IsZero() && !e.expiresAt.After(s.now()) {
		s.mu.Lock()
		if cur, ok := s.entries[key]; ok && cur.expiresAt.Equal(e.expiresAt) {
			delete(s.entries, key)
		}
		s.mu.Unlock()
		return nil, false
	}

	return e.value, true
}

func (s *Store) Set(_ context.Context, key string, value any) {
	if key == "" {
		return
	}

	s.mu.Lock()
	s.entries[key] = s.newEntry(value)
	s.mu.Unlock()
}

// Version reports the invalidation counter of key. Pair it with SetIfVersion when the
// value is loaded outside GetOrLoad.
func (s *Store) Version(key string) uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.versions[key]
}

// SetIfVersion stores value only if key has not been invalidated since version was read.
func (s *Store) SetIfVersion(_ context.Context, key string, value any, version uint64) bool {
	if key == "" {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.versions[key] != version {
		return false
	}
	s.entries[key] = s.newEntry(value)
	return true
}

// Invalidate drops key and discards any load for it that is still running.
func (s *Store) Invalidate(_ context.Context, key string) {
	if key == "" {
		return
	}

	s.mu.Lock()
	delete(s.entries, key)
	s.versions[key]++
	s.mu.Unlock()
	s.flight.Forget(key)
}

func (s *Store) GetOrLoad(ctx context.Context, key string, loader func(context.Context) (any, error)) (any, error) {
	if loader == nil {
		return nil, fmt.Errorf("loader is required")
	}
	if key == "" {
		return loader(ctx)
	}
	if value, ok := s.Get(ctx, key); ok {
		return value, nil
	}

	value, err, _ := s.flight.Do(key, func() (any, error) {
		if cached, ok := s.Get(ctx, key); ok {
			return cached, nil
		}

		s.mu.RLock()
		version := s.versions[key]
		s.mu.RUnlock()

		loaded, err := loader(ctx)
		if err != nil {
			return nil, err
		}

		s.mu.Lock()
		if s.versions[key] == version {
			s.entries[key] = s.newEntry(loaded)
		}
		s.mu.Unlock()
		return loaded, nil
	})
	if err != nil {
		return nil, err
	}

	return value, nil
}

func (s *Store) newEntry(value any) entry {
	e := entry{value: value}
	if s.ttl > 0 {
		e.expiresAt = s.now().Add(s.ttl)
	}
	return e
}
