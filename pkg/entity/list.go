package entity

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"

	"github.com/envelope-zero/expenses/pkg/kv"
)

// DefaultLimit is the page size used when List is called with limit <= 0.
const DefaultLimit = 100

// Page is one page of a listing.
type Page[T any] struct {
	Items []T

	// Next is the cursor for the following page. It is empty on the last page.
	Next string
}

// List returns up to limit records starting at cursor. An empty cursor starts
// at the beginning of the index.
//
// Index entries whose record is missing are skipped, so a page can contain
// fewer than limit items even when Next is not empty.
func (r *Repository[T]) List(ctx context.Context, cursor string, limit int) (Page[T], error) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	start, err := decodeCursor(cursor)
	if err != nil {
		return Page[T]{}, err
	}

	ids, err := r.readIndex(ctx)
	if err != nil {
		return Page[T]{}, err
	}

	page := Page[T]{Items: []T{}}
	if start >= len(ids) {
		return page, nil
	}

	end := start + limit
	if end > len(ids) {
		end = len(ids)
	}

	for _, id := range ids[start:end] {
		data, err := r.store.Get(ctx, r.Key(id))
		if errors.Is(err, kv.ErrNotFound) {
			orphans.WithLabelValues(r.cfg.Name).Inc()
			r.logger().Debug().Str("id", id).Msg("skipping index entry without record")
			continue
		}
		if err != nil {
			return Page[T]{}, fmt.Errorf("reading %s %s: %w", r.cfg.Name, id, err)
		}

		v, err := r.decode(id, data)
		if err != nil {
			return Page[T]{}, err
		}
		page.Items = append(page.Items, v)
	}

	if end < len(ids) {
		page.Next = encodeCursor(end)
	}

	return page, nil
}

// All returns every record by walking all pages of the index.
func (r *Repository[T]) All(ctx context.Context) ([]T, error) {
	items := []T{}
	cursor := ""
	for {
		page, err := r.List(ctx, cursor, DefaultLimit)
		if err != nil {
			return nil, err
		}

		items = append(items, page.Items...)
		if page.Next == "" {
			return items, nil
		}
		cursor = page.Next
	}
}

func encodeCursor(pos int) string {
	return base64.RawURLEncoding.EncodeToString([]byte(strconv.Itoa(pos)))
}

func decodeCursor(cursor string) (int, error) {
	if cursor == "" {
		return 0, nil
	}

	b, err := base64.RawURLEncoding.DecodeString(cursor)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidCursor, err)
	}

	pos, err := strconv.Atoi(string(b))
	if err != nil || pos < 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidCursor, cursor)
	}

	return pos, nil
}
