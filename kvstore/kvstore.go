// Package kvstore provides a generic in-memory key-value store with
// per-entry TTL support.
//
// Entries expire lazily on read and are additionally removed by a
// background sweeper goroutine. The store is safe for concurrent use.
package kvstore

import (
	"sync"
	"time"
)

const (
	defaultSweepInterval = time.Minute
	defaultTTL           = 30 * time.Minute
)

type entry[V any] struct {
	value     V
	expiresAt time.Time
}

func (e entry[V]) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && now.After(e.expiresAt)
}

// Store is an in-memory TTL key-value store.
type Store[V any] struct {
	mu      sync.RWMutex
	entries map[string]entry[V]

	defaultTTL    time.Duration
	sweepInterval time.Duration

	stopOnce sync.Once
	stopCh   chan struct{}
}

// Option configures a Store.
type Option func(*options)

type options struct {
	defaultTTL    time.Duration
	sweepInterval time.Duration
}

// WithDefaultTTL sets the TTL applied when Set is called with a zero ttl.
func WithDefaultTTL(ttl time.Duration) Option {
	return func(o *options) { o.defaultTTL = ttl }
}

// WithSweepInterval sets how often the background sweeper removes expired
// entries.
func WithSweepInterval(interval time.Duration) Option {
	return func(o *options) { o.sweepInterval = interval }
}

// New creates a Store and starts its background sweeper.
// The caller must Close the store when it is no longer needed.
func New[V any](opts ...Option) *Store[V] {
	o := options{
		defaultTTL:    defaultTTL,
		sweepInterval: defaultSweepInterval,
	}
	for _, opt := range opts {
		opt(&o)
	}

	s := &Store[V]{
		entries:       make(map[string]entry[V]),
		defaultTTL:    o.defaultTTL,
		sweepInterval: o.sweepInterval,
		stopCh:        make(chan struct{}),
	}

	go s.sweepLoop()

	return s
}

// Set stores value under key. A zero ttl falls back to the store's default
// TTL. A negative ttl stores the value without expiration.
func (s *Store[V]) Set(key string, value V, ttl time.Duration) {
	if ttl == 0 {
		ttl = s.defaultTTL
	}

	var expiresAt time.Time
	if ttl > 0 {
		expiresAt = time.Now().Add(ttl)
	}

	s.mu.Lock()
	s.entries[key] = entry[V]{value: value, expiresAt: expiresAt}
	s.mu.Unlock()
}

// Get returns the value stored under key. The second return value reports
// whether the key was present and not expired.
func (s *Store[V]) Get(key string) (V, bool) {
	s.mu.RLock()
	e, ok := s.entries[key]
	s.mu.RUnlock()

	if !ok {
		var zero V
		return zero, false
	}

	if e.expired(time.Now()) {
		s.Delete(key)
		var zero V
		return zero, false
	}

	return e.value, true
}

// Update atomically replaces the value under key with fn(current) and
// returns the new value. If the key is absent or expired, fn receives the
// zero value and the entry's TTL is reset; otherwise the original
// expiration is kept.
func (s *Store[V]) Update(key string, ttl time.Duration, fn func(V) V) V {
	if ttl == 0 {
		ttl = s.defaultTTL
	}

	now := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok || e.expired(now) {
		e = entry[V]{}
		if ttl > 0 {
			e.expiresAt = now.Add(ttl)
		}
	}

	e.value = fn(e.value)
	s.entries[key] = e

	return e.value
}

// Delete removes the entry under key, if any.
func (s *Store[V]) Delete(key string) {
	s.mu.Lock()
	delete(s.entries, key)
	s.mu.Unlock()
}

// Len returns the number of stored entries, including not-yet-swept
// expired ones.
func (s *Store[V]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Close stops the background sweeper. The store remains usable after
// Close, but expired entries are only removed lazily on read.
func (s *Store[V]) Close() {
	s.stopOnce.Do(func() { close(s.stopCh) })
}

func (s *Store[V]) sweepLoop() {
	ticker := time.NewTicker(s.sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopCh:
			return
		case now := <-ticker.C:
			s.sweep(now)
		}
	}
}

func (s *Store[V]) sweep(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for key, e := range s.entries {
		if e.expired(now) {
			delete(s.entries, key)
		}
	}
}
