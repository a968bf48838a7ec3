// Package kv defines the key-value store contract the entity layer persists to.
//
// A Store offers single-key atomicity only. Stores that can apply several
// writes atomically additionally implement Batcher.
package kv

import (
	"context"
	"errors"
)

var (
	ErrNotFound    = errors.New("key not found")
	ErrClosed      = errors.New("the store is closed")
	ErrUnavailable = errors.New("the store is currently unavailable")
)

// Entry is a single key-value pair returned by List.
type Entry struct {
	Key   string
	Value []byte
}

// Store is a key-value store with string keys.
type Store interface {
	// Get returns the value stored at key or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Put stores value at key, replacing any previous value.
	Put(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// List returns all entries whose key starts with prefix, ordered by key.
	List(ctx context.Context, prefix string) ([]Entry, error)

	Close() error
}

// OpType is the kind of write in a batch.
type OpType int

const (
	OpPut OpType = iota
	OpDelete
)

func (t OpType) String() string {
	switch t {
	case OpPut:
		return "put"
	case OpDelete:
		return "delete"
	}
	return "unknown"
}

// Op is a single write that is part of a batch.
type Op struct {
	Type  OpType
	Key   string
	Value []byte // Ignored for OpDelete
}

// Put returns a put operation.
func Put(key string, value []byte) Op {
	return Op{Type: OpPut, Key: key, Value: value}
}

// Delete returns a delete operation.
func Delete(key string) Op {
	return Op{Type: OpDelete, Key: key}
}

// Batcher is implemented by stores that apply several writes atomically.
type Batcher interface {
	// Batch applies all ops or none of them.
	Batch(ctx context.Context, ops []Op) error
}

// Apply writes ops to the store. If the store implements Batcher, the ops are
// applied atomically. Otherwise they are applied one after another in order
// and the first error stops the sequence.
func Apply(ctx context.Context, s Store, ops ...Op) error {
	if b, ok := s.(Batcher); ok {
		return b.Batch(ctx, ops)
	}

	for _, op := range ops {
		var err error
		switch op.Type {
		case OpPut:
			err = s.Put(ctx, op.Key, op.Value)
		case OpDelete:
			err = s.Delete(ctx, op.Key)
		}

		if err != nil {
			return err
		}
	}

	return nil
}

// Copy returns a copy of b. nil stays nil.
func Copy(b []byte) []byte {
	if b == nil {
		return nil
	}

	c := make([]byte, len(b))
	copy(c, b)
	return c
}
