// Package pebble implements kv.Store on top of a Pebble LSM database.
//
// Batches are committed atomically, so the entity layer writes records and
// their index in one step when running on this store.
package pebble

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/cockroachdb/pebble"
	"github.com/cockroachdb/pebble/vfs"
	"github.com/envelope-zero/expenses/pkg/kv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var (
	_ kv.Store   = (*Store)(nil)
	_ kv.Batcher = (*Store)(nil)
)

// WriteOptions are used for every write. Expenses are small and rare, so
// every write is synced.
var WriteOptions = pebble.Sync

type Store struct {
	mu sync.RWMutex
	db *pebble.DB
}

// Open opens or creates the database in dir.
func Open(dir string) (*Store, error) {
	return open(dir, nil)
}

// OpenInMemory opens a database that lives in memory only.
func OpenInMemory() (*Store, error) {
	return open("", vfs.NewMem())
}

func open(dir string, fs vfs.FS) (*Store, error) {
	opts := &pebble.Options{
		FS:     fs,
		Logger: logger{log.Logger.With().Str("store", "pebble").Logger()},
	}

	db, err := pebble.Open(dir, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open pebble database: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.db == nil {
		return nil, kv.ErrClosed
	}

	value, closer, err := s.db.Get([]byte(key))
	if errors.Is(err, pebble.ErrNotFound) {
		return nil, kv.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	defer closer.Close()

	// The value is only valid until the closer is closed
	return kv.Copy(value), nil
}

func (s *Store) Put(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.db == nil {
		return kv.ErrClosed
	}

	return s.db.Set([]byte(key), value, WriteOptions)
}

func (s *Store) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.db == nil {
		return kv.ErrClosed
	}

	return s.db.Delete([]byte(key), WriteOptions)
}

func (s *Store) List(ctx context.Context, prefix string) ([]kv.Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.db == nil {
		return nil, kv.ErrClosed
	}

	it, err := s.db.NewIter(&pebble.IterOptions{
		LowerBound: []byte(prefix),
		UpperBound: upperBound([]byte(prefix)),
	})
	if err != nil {
		return nil, err
	}
	defer it.Close()

	entries := make([]kv.Entry, 0)
	for valid := it.First(); valid; valid = it.Next() {
		entries = append(entries, kv.Entry{
			Key:   string(it.Key()),
			Value: kv.Copy(it.Value()),
		})
	}

	return entries, it.Error()
}

func (s *Store) Batch(ctx context.Context, ops []kv.Op) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.db == nil {
		return kv.ErrClosed
	}

	b := s.db.NewBatch()
	defer b.Close()

	for _, op := range ops {
		var err error
		switch op.Type {
		case kv.OpPut:
			err = b.Set([]byte(op.Key), op.Value, nil)
		case kv.OpDelete:
			err = b.Delete([]byte(op.Key), nil)
		default:
			err = fmt.Errorf("unsupported batch operation %s", op.Type)
		}

		if err != nil {
			return err
		}
	}

	return b.Commit(WriteOptions)
}

func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return kv.ErrClosed
	}

	err := s.db.Close()
	s.db = nil
	return err
}

// upperBound returns the smallest key that is larger than every key with
// the given prefix. nil means there is no upper bound.
func upperBound(prefix []byte) []byte {
	end := kv.Copy(prefix)
	for i := len(end) - 1; i >= 0; i-- {
		end[i]++
		if end[i] != 0 {
			return end[:i+1]
		}
	}
	return nil
}

// logger routes pebble's log output to zerolog.
type logger struct {
	zerolog.Logger
}

func (l logger) Infof(format string, args ...interface{}) {
	l.Logger.Debug().Msgf(format, args...)
}

func (l logger) Errorf(format string, args ...interface{}) {
	l.Logger.Error().Msgf(format, args...)
}

func (l logger) Fatalf(format string, args ...interface{}) {
	l.Logger.Fatal().Msgf(format, args...)
}
