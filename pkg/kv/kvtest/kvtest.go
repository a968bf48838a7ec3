// Package kvtest contains the checks every kv.Store implementation must pass.
package kvtest

import (
	"context"
	"testing"

	"github.com/envelope-zero/expenses/pkg/kv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Factory returns a fresh, empty store. Cleanup is the caller's responsibility
// via t.Cleanup.
type Factory func(t *testing.T) kv.Store

// Run runs the conformance tests against stores created by newStore.
func Run(t *testing.T, newStore Factory) {
	tests := []struct {
		name string
		fn   func(t *testing.T, s kv.Store)
	}{
		{"GetMissing", testGetMissing},
		{"PutGet", testPutGet},
		{"Overwrite", testOverwrite},
		{"Delete", testDelete},
		{"DeleteMissing", testDeleteMissing},
		{"ListPrefix", testListPrefix},
		{"ListEmpty", testListEmpty},
		{"ValueIsCopied", testValueIsCopied},
		{"Apply", testApply},
		{"Closed", testClosed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.fn(t, newStore(t))
		})
	}
}

func testGetMissing(t *testing.T, s kv.Store) {
	_, err := s.Get(context.Background(), "does-not-exist")
	assert.ErrorIs(t, err, kv.ErrNotFound)
}

func testPutGet(t *testing.T, s kv.Store) {
	ctx := context.Background()
	require.Nil(t, s.Put(ctx, "a", []byte("alpha")))

	v, err := s.Get(ctx, "a")
	require.Nil(t, err)
	assert.Equal(t, []byte("alpha"), v)
}

func testOverwrite(t *testing.T, s kv.Store) {
	ctx := context.Background()
	require.Nil(t, s.Put(ctx, "a", []byte("first")))
	require.Nil(t, s.Put(ctx, "a", []byte("second")))

	v, err := s.Get(ctx, "a")
	require.Nil(t, err)
	assert.Equal(t, []byte("second"), v)
}

func testDelete(t *testing.T, s kv.Store) {
	ctx := context.Background()
	require.Nil(t, s.Put(ctx, "a", []byte("alpha")))
	require.Nil(t, s.Delete(ctx, "a"))

	_, err := s.Get(ctx, "a")
	assert.ErrorIs(t, err, kv.ErrNotFound)
}

func testDeleteMissing(t *testing.T, s kv.Store) {
	assert.Nil(t, s.Delete(context.Background(), "never-written"))
}

func testListPrefix(t *testing.T, s kv.Store) {
	ctx := context.Background()
	for _, k := range []string{"entity:b:2", "entity:a:1", "entity:a:3", "entity:a:2", "index:a", "entity:ab:1"} {
		require.Nil(t, s.Put(ctx, k, []byte(k)))
	}

	entries, err := s.List(ctx, "entity:a:")
	require.Nil(t, err)

	keys := make([]string, 0, len(entries))
	for _, e := range entries {
		keys = append(keys, e.Key)
		assert.Equal(t, []byte(e.Key), e.Value)
	}
	assert.Equal(t, []string{"entity:a:1", "entity:a:2", "entity:a:3"}, keys)
}

func testListEmpty(t *testing.T, s kv.Store) {
	entries, err := s.List(context.Background(), "nothing:")
	require.Nil(t, err)
	assert.Len(t, entries, 0)
}

func testValueIsCopied(t *testing.T, s kv.Store) {
	ctx := context.Background()
	value := []byte("original")
	require.Nil(t, s.Put(ctx, "a", value))
	value[0] = 'X'

	v, err := s.Get(ctx, "a")
	require.Nil(t, err)
	assert.Equal(t, []byte("original"), v)

	v[0] = 'Y'
	again, err := s.Get(ctx, "a")
	require.Nil(t, err)
	assert.Equal(t, []byte("original"), again)
}

func testApply(t *testing.T, s kv.Store) {
	ctx := context.Background()
	require.Nil(t, s.Put(ctx, "gone", []byte("x")))

	err := kv.Apply(ctx, s, kv.Put("a", []byte("1")), kv.Put("b", []byte("2")), kv.Delete("gone"))
	require.Nil(t, err)

	a, err := s.Get(ctx, "a")
	require.Nil(t, err)
	assert.Equal(t, []byte("1"), a)

	b, err := s.Get(ctx, "b")
	require.Nil(t, err)
	assert.Equal(t, []byte("2"), b)

	_, err = s.Get(ctx, "gone")
	assert.ErrorIs(t, err, kv.ErrNotFound)
}

func testClosed(t *testing.T, s kv.Store) {
	require.Nil(t, s.Close())

	_, err := s.Get(context.Background(), "a")
	assert.ErrorIs(t, err, kv.ErrClosed)

	assert.ErrorIs(t, s.Put(context.Background(), "a", []byte("1")), kv.ErrClosed)
}
