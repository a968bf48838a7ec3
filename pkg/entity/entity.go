// Package entity stores typed records in a kv.Store and keeps a per-type index
// of their IDs for listing, pagination, seeding and repair.
//
// Records live at "entity:<name>:<id>", the index at "index:<indexName>" as a
// JSON array of IDs in insertion order.
package entity

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/envelope-zero/expenses/pkg/kv"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"
)

const (
	recordPrefix = "entity"
	indexPrefix  = "index"
)

// Record is implemented by every type stored by a Repository.
type Record[T any] interface {
	GetID() string

	// WithID returns a copy of the record with the ID set.
	WithID(id string) T
}

// Config describes one kind of entity.
type Config[T any] struct {
	// Name is the entity name used in record keys, e.g. "category".
	Name string

	// IndexName is the name of the index holding the IDs, e.g. "categories".
	IndexName string

	// Default is the value stored records are decoded onto. Fields that are
	// absent from a stored record keep their value from Default.
	Default T

	// Seed returns the records written by EnsureSeed. May be nil.
	Seed func() []T
}

// Repository reads and writes one kind of entity.
//
// The index is maintained with a read-modify-write cycle. Cycles are
// serialized within a Repository, so there must be only one Repository per
// store and entity kind.
type Repository[T Record[T]] struct {
	store kv.Store
	cfg   Config[T]

	// mu serializes read-modify-write cycles on the index
	mu sync.Mutex

	hooksMu sync.RWMutex
	hooks   []func(Change)
}

// New returns a repository for the entity kind described by cfg.
func New[T Record[T]](store kv.Store, cfg Config[T]) *Repository[T] {
	return &Repository[T]{
		store: store,
		cfg:   cfg,
	}
}

// Name returns the entity name.
func (r *Repository[T]) Name() string {
	return r.cfg.Name
}

// IndexName returns the name of the index.
func (r *Repository[T]) IndexName() string {
	return r.cfg.IndexName
}

// Key returns the store key for the record with the given ID.
func (r *Repository[T]) Key(id string) string {
	return fmt.Sprintf("%s:%s:%s", recordPrefix, r.cfg.Name, id)
}

// IndexKey returns the store key of the index.
func (r *Repository[T]) IndexKey() string {
	return fmt.Sprintf("%s:%s", indexPrefix, r.cfg.IndexName)
}

func (r *Repository[T]) prefix() string {
	return fmt.Sprintf("%s:%s:", recordPrefix, r.cfg.Name)
}

// Create stores v and adds its ID to the index. If v has no ID, a random UUID
// is assigned. Creating a record with an ID that already exists overwrites the
// record and leaves the index unchanged.
func (r *Repository[T]) Create(ctx context.Context, v T) (T, error) {
	if v.GetID() == "" {
		v = v.WithID(uuid.NewString())
	}
	id := v.GetID()

	data, err := json.Marshal(v)
	if err != nil {
		return v, fmt.Errorf("encoding %s %s: %w", r.cfg.Name, id, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	ids, err := r.readIndex(ctx)
	if err != nil {
		return v, err
	}

	ops := []kv.Op{kv.Put(r.Key(id), data)}
	if !slices.Contains(ids, id) {
		op, err := r.indexOp(append(ids, id))
		if err != nil {
			return v, err
		}
		ops = append(ops, op)
	}

	// Without batches, the record is written before the index. A failure in
	// between leaves an un-indexed record that Repair picks up.
	if err := kv.Apply(ctx, r.store, ops...); err != nil {
		return v, fmt.Errorf("creating %s %s: %w", r.cfg.Name, id, err)
	}

	r.emit(ctx, Change{Entity: r.cfg.Name, Index: r.cfg.IndexName, ID: id, Op: OpCreate})
	return v, nil
}

// Exists reports whether a record is stored for id. The index is not consulted.
func (r *Repository[T]) Exists(ctx context.Context, id string) (bool, error) {
	_, err := r.store.Get(ctx, r.Key(id))
	if errors.Is(err, kv.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("reading %s %s: %w", r.cfg.Name, id, err)
	}

	return true, nil
}

// Get returns the record for id or ErrNotFound.
func (r *Repository[T]) Get(ctx context.Context, id string) (T, error) {
	data, err := r.store.Get(ctx, r.Key(id))
	if errors.Is(err, kv.ErrNotFound) {
		var zero T
		return zero, fmt.Errorf("%s %s: %w", r.cfg.Name, id, ErrNotFound)
	}
	if err != nil {
		var zero T
		return zero, fmt.Errorf("reading %s %s: %w", r.cfg.Name, id, err)
	}

	return r.decode(id, data)
}

// Save overwrites the stored record with v. The index is not touched, so the
// caller must make sure the record exists. Use Update for a checked write.
func (r *Repository[T]) Save(ctx context.Context, v T) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding %s %s: %w", r.cfg.Name, v.GetID(), err)
	}

	if err := r.store.Put(ctx, r.Key(v.GetID()), data); err != nil {
		return fmt.Errorf("saving %s %s: %w", r.cfg.Name, v.GetID(), err)
	}

	r.emit(ctx, Change{Entity: r.cfg.Name, Index: r.cfg.IndexName, ID: v.GetID(), Op: OpSave})
	return nil
}

// Update saves v if a record with its ID exists and returns ErrNotFound otherwise.
func (r *Repository[T]) Update(ctx context.Context, v T) (T, error) {
	ok, err := r.Exists(ctx, v.GetID())
	if err != nil {
		return v, err
	}

	if !ok {
		return v, fmt.Errorf("%s %s: %w", r.cfg.Name, v.GetID(), ErrNotFound)
	}

	return v, r.Save(ctx, v)
}

// Delete removes the record for id and its index entry. It reports whether a
// record existed. A stale index entry without a record is removed as well.
func (r *Repository[T]) Delete(ctx context.Context, id string) (bool, error) {
	existed, err := r.Exists(ctx, id)
	if err != nil {
		return false, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	ids, err := r.readIndex(ctx)
	if err != nil {
		return false, err
	}

	var ops []kv.Op
	if i := slices.Index(ids, id); i >= 0 {
		op, err := r.indexOp(slices.Delete(ids, i, i+1))
		if err != nil {
			return false, err
		}
		ops = append(ops, op)
	}

	// Without batches, the index is updated first. A failure in between
	// leaves an un-indexed record that Repair picks up.
	if existed {
		ops = append(ops, kv.Delete(r.Key(id)))
	}

	if len(ops) == 0 {
		return false, nil
	}

	if err := kv.Apply(ctx, r.store, ops...); err != nil {
		return false, fmt.Errorf("deleting %s %s: %w", r.cfg.Name, id, err)
	}

	if existed {
		r.emit(ctx, Change{Entity: r.cfg.Name, Index: r.cfg.IndexName, ID: id, Op: OpDelete})
	}
	return existed, nil
}

// IDs returns the IDs in the index in insertion order.
func (r *Repository[T]) IDs(ctx context.Context) ([]string, error) {
	return r.readIndex(ctx)
}

func (r *Repository[T]) readIndex(ctx context.Context) ([]string, error) {
	data, err := r.store.Get(ctx, r.IndexKey())
	if errors.Is(err, kv.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading index %s: %w", r.cfg.IndexName, err)
	}

	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		return nil, fmt.Errorf("decoding index %s: %w", r.cfg.IndexName, err)
	}

	return ids, nil
}

func (r *Repository[T]) indexOp(ids []string) (kv.Op, error) {
	if ids == nil {
		ids = []string{}
	}

	data, err := json.Marshal(ids)
	if err != nil {
		return kv.Op{}, fmt.Errorf("encoding index %s: %w", r.cfg.IndexName, err)
	}

	return kv.Put(r.IndexKey(), data), nil
}

// decode unmarshals data onto a copy of the configured default.
func (r *Repository[T]) decode(id string, data []byte) (T, error) {
	v := r.cfg.Default
	if err := json.Unmarshal(data, &v); err != nil {
		return v, fmt.Errorf("decoding %s %s: %w", r.cfg.Name, id, err)
	}

	return v, nil
}

func (r *Repository[T]) logger() *zerolog.Logger {
	l := log.With().Str("entity", r.cfg.Name).Logger()
	return &l
}
