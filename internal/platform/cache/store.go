package cache

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

type entry struct {
	value     any
	expiresAt time.Time
}

// generation identifies the invalidation state a load started from. A load
// whose generation is stale by the time it finishes is returned to its
// callers but never stored.
type generation struct {
	key   uint64
	epoch uint64
}

// Store is a TTL map whose loads are de-duplicated per key.
type Store struct {
	mu      sync.RWMutex
	entries map[string]entry
	gens    map[string]uint64
	epoch   uint64
	ttl     time.Duration
	flight  singleflight.Group
	now     func() time.Time
}

func NewStore(ttl time.Duration) *Store {
	return &Store{
		entries: make(map[string]entry),
		gens:    make(map[string]uint64),
		ttl:     ttl,
		now:     time.Now,
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
	if s.expired(e) {
		s.mu.Lock()
		if current, stillThere := s.entries[key]; stillThere && s.expired(current) {
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

// Delete drops key and marks any load already running for it as stale.
func (s *Store) Delete(_ context.Context, key string) {
	if key == "" {
		return
	}

	s.mu.Lock()
	delete(s.entries, key)
	s.gens[key]++
	s.mu.Unlock()
}

// DeletePrefix drops every key under prefix. Loads in flight for any key are
// marked stale since their keys may not be in the map yet.
func (s *Store) DeletePrefix(_ context.Context, prefix string) {
	if prefix == "" {
		return
	}

	s.mu.Lock()
	for key := range s.entries {
		if strings.HasPrefix(key, prefix) {
			delete(s.entries, key)
		}
	}
	s.epoch++
	s.mu.Unlock()
}

// GetOrLoad returns the cached value or runs loader once for all concurrent
// callers of the same key. Loader errors are not cached.
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

	gen := s.generation(key)
	flightKey := fmt.Sprintf("%s#%d.%d", key, gen.key, gen.epoch)
	value, err, _ := s.flight.Do(flightKey, func() (any, error) {
		if cached, ok := s.Get(ctx, key); ok {
			return cached, nil
		}

		loaded, loadErr := loader(ctx)
		if loadErr != nil {
			return nil, loadErr
		}
		s.setIfCurrent(key, loaded, gen)
		return loaded, nil
	})
	if err != nil {
		return nil, err
	}

	return value, nil
}

func (s *Store) generation(key string) generation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return generation{key: s.gens[key], epoch: s.epoch}
}

func (s *Store) setIfCurrent(key string, value any, gen generation) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gens[key] != gen.key || s.epoch != gen.epoch {
		return false
	}
	s.entries[key] = s.newEntry(value)
	return true
}

func (s *Store) newEntry(value any) entry {
	var expiresAt time.Time
	if s.ttl > 0 {
		expiresAt = s.now().Add(s.ttl)
	}
	return entry{value: value, expiresAt: expiresAt}
}

func (s *Store) expired(e entry) bool {
	return s.ttl > 0 && !e.expiresAt.After(s.now())
}
