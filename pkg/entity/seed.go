package entity

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/envelope-zero/expenses/pkg/kv"
)

// EnsureSeed writes the seed records if the index is empty and reports
// whether it did. Once the index holds an ID, EnsureSeed does nothing.
func (r *Repository[T]) EnsureSeed(ctx context.Context) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ids, err := r.readIndex(ctx)
	if err != nil {
		return false, err
	}

	if len(ids) > 0 || r.cfg.Seed == nil {
		return false, nil
	}

	seeds := r.cfg.Seed()
	if len(seeds) == 0 {
		return false, nil
	}

	ops := make([]kv.Op, 0, len(seeds)+1)
	ids = make([]string, 0, len(seeds))
	for _, s := range seeds {
		data, err := json.Marshal(s)
		if err != nil {
			return false, fmt.Errorf("encoding seed %s %s: %w", r.cfg.Name, s.GetID(), err)
		}

		ops = append(ops, kv.Put(r.Key(s.GetID()), data))
		ids = append(ids, s.GetID())
	}

	op, err := r.indexOp(ids)
	if err != nil {
		return false, err
	}
	ops = append(ops, op)

	if err := kv.Apply(ctx, r.store, ops...); err != nil {
		return false, fmt.Errorf("seeding %s: %w", r.cfg.IndexName, err)
	}

	r.logger().Info().Int("count", len(seeds)).Msg("seeded")
	r.emit(ctx, Change{Entity: r.cfg.Name, Index: r.cfg.IndexName, Op: OpSeed})
	return true, nil
}
