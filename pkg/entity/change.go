package entity

import (
	"context"
	"sort"
	"sync"
)

// Op is the kind of mutation that produced a Change.
type Op string

const (
	OpCreate Op = "create"
	OpSave   Op = "save"
	OpDelete Op = "delete"
	OpSeed   Op = "seed"
	OpRepair Op = "repair"
)

// Change describes a mutation of one record or, for OpSeed and OpRepair,
// of the whole index. ID is empty for index-wide changes.
type Change struct {
	Entity string
	Index  string
	ID     string
	Op     Op
}

// Subscribe registers fn to be called after every successful mutation.
// fn is called synchronously and must not call back into the repository.
func (r *Repository[T]) Subscribe(fn func(Change)) {
	r.hooksMu.Lock()
	defer r.hooksMu.Unlock()

	r.hooks = append(r.hooks, fn)
}

func (r *Repository[T]) emit(ctx context.Context, c Change) {
	mutations.WithLabelValues(c.Entity, string(c.Op)).Inc()

	if cs := ChangeSetFrom(ctx); cs != nil {
		cs.Add(c)
	}

	r.hooksMu.RLock()
	defer r.hooksMu.RUnlock()

	for _, fn := range r.hooks {
		fn(c)
	}
}

// ChangeSet collects the changes made during one request.
type ChangeSet struct {
	mu      sync.Mutex
	changes []Change
}

func (cs *ChangeSet) Add(c Change) {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	cs.changes = append(cs.changes, c)
}

// Changes returns the collected changes in the order they were made.
func (cs *ChangeSet) Changes() []Change {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	return append([]Change(nil), cs.changes...)
}

// Indexes returns the sorted, deduplicated names of all touched indexes.
func (cs *ChangeSet) Indexes() []string {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	seen := make(map[string]bool)
	var names []string
	for _, c := range cs.changes {
		if !seen[c.Index] {
			seen[c.Index] = true
			names = append(names, c.Index)
		}
	}

	sort.Strings(names)
	return names
}

type changeSetKey struct{}

// WithChangeSet returns a context carrying cs. Mutations made with the
// returned context are recorded in cs.
func WithChangeSet(ctx context.Context, cs *ChangeSet) context.Context {
	return context.WithValue(ctx, changeSetKey{}, cs)
}

// ChangeSetFrom returns the ChangeSet carried by ctx or nil.
func ChangeSetFrom(ctx context.Context) *ChangeSet {
	cs, _ := ctx.Value(changeSetKey{}).(*ChangeSet)
	return cs
}
