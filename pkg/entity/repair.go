package entity

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
)

// RepairReport lists what Repair changed in the index.
type RepairReport struct {
	Entity string `json:"entity"`

	// Removed are IDs that were in the index without a record.
	Removed []string `json:"removed"`

	// Added are IDs of records that were missing from the index.
	Added []string `json:"added"`

	// Duplicates is the number of repeated index entries that were dropped.
	Duplicates int `json:"duplicates"`
}

// Changed reports whether the index was rewritten.
func (r RepairReport) Changed() bool {
	return len(r.Removed) > 0 || len(r.Added) > 0 || r.Duplicates > 0
}

// Repair rebuilds the index from the stored records. Existing entries keep
// their order, entries without a record are dropped and records without an
// entry are appended in ID order.
func (r *Repository[T]) Repair(ctx context.Context) (RepairReport, error) {
	report := RepairReport{Entity: r.cfg.Name, Removed: []string{}, Added: []string{}}

	r.mu.Lock()
	defer r.mu.Unlock()

	entries, err := r.store.List(ctx, r.prefix())
	if err != nil {
		return report, fmt.Errorf("listing %s records: %w", r.cfg.Name, err)
	}

	stored := make(map[string]bool, len(entries))
	var storedIDs []string
	for _, e := range entries {
		id := strings.TrimPrefix(e.Key, r.prefix())
		stored[id] = true
		storedIDs = append(storedIDs, id)
	}

	ids, err := r.readIndex(ctx)
	if err != nil {
		return report, err
	}

	indexed := make(map[string]bool, len(ids))
	rebuilt := make([]string, 0, len(storedIDs))
	for _, id := range ids {
		switch {
		case indexed[id]:
			report.Duplicates++
		case !stored[id]:
			report.Removed = append(report.Removed, id)
		default:
			rebuilt = append(rebuilt, id)
		}
		indexed[id] = true
	}

	slices.Sort(storedIDs)
	for _, id := range storedIDs {
		if !indexed[id] {
			report.Added = append(report.Added, id)
			rebuilt = append(rebuilt, id)
		}
	}

	if !report.Changed() {
		return report, nil
	}

	op, err := r.indexOp(rebuilt)
	if err != nil {
		return report, err
	}

	if err := r.store.Put(ctx, op.Key, op.Value); err != nil {
		return report, fmt.Errorf("writing index %s: %w", r.cfg.IndexName, err)
	}

	r.logger().Info().
		Strs("removed", report.Removed).
		Strs("added", report.Added).
		Int("duplicates", report.Duplicates).
		Msg("repaired index")
	r.emit(ctx, Change{Entity: r.cfg.Name, Index: r.cfg.IndexName, Op: OpRepair})
	return report, nil
}
