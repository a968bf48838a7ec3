// Package memory provides an in-memory kv.Store used for tests and
// ephemeral instances.
//
// It does not implement kv.Batcher, writes are applied one key at a time.
package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/envelope-zero/expenses/pkg/kv"
	"golang.org/x/exp/slices"
)

var _ kv.Store = (*Store)(nil)

type Store struct {
	mu     sync.RWMutex
	data   map[string][]byte
	closed bool
}

func New() *Store {
	return &Store{data: make(map[string][]byte)}
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, kv.ErrClosed
	}

	v, ok := s.data[key]
	if !ok {
		return nil, kv.ErrNotFound
	}
	return kv.Copy(v), nil
}

func (s *Store) Put(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return kv.ErrClosed
	}

	s.data[key] = kv.Copy(value)
	return nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return kv.ErrClosed
	}

	delete(s.data, key)
	return nil
}

func (s *Store) List(ctx context.Context, prefix string) ([]kv.Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, kv.ErrClosed
	}

	entries := make([]kv.Entry, 0)
	for k, v := range s.data {
		if strings.HasPrefix(k, prefix) {
			entries = append(entries, kv.Entry{Key: k, Value: kv.Copy(v)})
		}
	}

	slices.SortFunc(entries, func(a, b kv.Entry) int {
		return strings.Compare(a.Key, b.Key)
	})

	return entries, nil
}

// Close marks the store as closed. All later calls fail with kv.ErrClosed.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	return nil
}

// Len returns the number of keys in the store.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.data)
}
