// Package cache wraps a kv.Store with an LRU cache for reads.
package cache

import (
	"context"
	"fmt"
	"sync"

	"github.com/envelope-zero/expenses/pkg/kv"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	_ kv.Store   = (*Store)(nil)
	_ kv.Batcher = (*Store)(nil)
)

var lookups = prometheus.NewCounterVec(prometheus.CounterOpts{
	Namespace: "expenses",
	Subsystem: "kv_cache",
	Name:      "lookups_total",
	Help:      "Cache lookups, partitioned by result.",
}, []string{"result"})

// Collectors returns the Prometheus collectors of this package.
func Collectors() []prometheus.Collector {
	return []prometheus.Collector{lookups}
}

// Store serves Get from an LRU cache and invalidates keys on every write.
// List is never cached.
//
// Missing keys are not cached, so a write through another handle to the
// same backing store becomes visible as soon as the key was never read or
// was evicted. Use a single Store per backing store.
//
// A value read on a miss is only added if no write started or finished
// while it was read from the backing store.
type Store struct {
	next  kv.Store
	cache *lru.Cache[string, []byte]

	mu         sync.Mutex
	generation uint64
	inflight   int
}

// New wraps next with a cache holding at most size values.
func New(next kv.Store, size int) (*Store, error) {
	c, err := lru.New[string, []byte](size)
	if err != nil {
		return nil, fmt.Errorf("could not create cache: %w", err)
	}

	return &Store{next: next, cache: c}, nil
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	if v, ok := s.cache.Get(key); ok {
		lookups.WithLabelValues("hit").Inc()
		return kv.Copy(v), nil
	}
	lookups.WithLabelValues("miss").Inc()

	s.mu.Lock()
	gen := s.generation
	s.mu.Unlock()

	v, err := s.next.Get(ctx, key)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	if gen == s.generation && s.inflight == 0 {
		s.cache.Add(key, kv.Copy(v))
	}
	s.mu.Unlock()

	return v, nil
}

func (s *Store) Put(ctx context.Context, key string, value []byte) error {
	s.beginWrite(key)
	defer s.endWrite(key)

	return s.next.Put(ctx, key, value)
}

func (s *Store) Delete(ctx context.Context, key string) error {
	s.beginWrite(key)
	defer s.endWrite(key)

	return s.next.Delete(ctx, key)
}

func (s *Store) List(ctx context.Context, prefix string) ([]kv.Entry, error) {
	return s.next.List(ctx, prefix)
}

// Batch forwards to the backing store. If the backing store is not a
// kv.Batcher, the ops are applied one by one.
func (s *Store) Batch(ctx context.Context, ops []kv.Op) error {
	keys := make([]string, 0, len(ops))
	for _, op := range ops {
		keys = append(keys, op.Key)
	}

	s.beginWrite(keys...)
	defer s.endWrite(keys...)

	return kv.Apply(ctx, s.next, ops...)
}

// Atomic reports if batches are applied atomically by the backing store.
func (s *Store) Atomic() bool {
	_, ok := s.next.(kv.Batcher)
	return ok
}

func (s *Store) Close() error {
	s.cache.Purge()
	return s.next.Close()
}

// Len returns the number of cached values.
func (s *Store) Len() int {
	return s.cache.Len()
}

// beginWrite drops the keys from the cache and blocks caching of values
// read on a miss until the matching endWrite.
func (s *Store) beginWrite(keys ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.generation++
	s.inflight++
	for _, k := range keys {
		s.cache.Remove(k)
	}
}

// endWrite drops the keys again and invalidates every miss that was in
// flight during the write.
func (s *Store) endWrite(keys ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.generation++
	s.inflight--
	for _, k := range keys {
		s.cache.Remove(k)
	}
}
