// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package tstate

import (
	"context"
	"testing"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/database/memdb"
	"github.com/ava-labs/avalanchego/utils/maybe"
	"github.com/stretchr/testify/require"

	"github.com/ava-labs/fortunevm/keys"
	"github.com/ava-labs/fortunevm/state"
)

var (
	testKey = keys.EncodeChunks([]byte("key"), 1)
	testVal = []byte("value")
	key2    = keys.EncodeChunks([]byte("key2"), 2)
	key2str = string(key2)
)

func TestScope(t *testing.T) {
	require := require.New(t)
	ctx := context.TODO()
	ts := New(10)

	// No Scope
	tsv := ts.NewView(state.Keys{}, map[string][]byte{})
	val, err := tsv.GetValue(ctx, testKey)
	require.ErrorIs(err, ErrInvalidKeyOrPermission)
	require.Nil(val)
	require.ErrorIs(tsv.Insert(ctx, testKey, testVal), ErrInvalidKeyOrPermission)
	require.ErrorIs(tsv.Remove(ctx, testKey), ErrInvalidKeyOrPermission)
}

func TestGetValue(t *testing.T) {
	require := require.New(t)
	ctx := context.TODO()
	ts := New(10)

	tsv := ts.NewView(state.Keys{string(testKey): state.Read}, map[string][]byte{string(testKey): testVal})
	val, err := tsv.GetValue(ctx, testKey)
	require.NoError(err, "unable to get value")
	require.Equal(testVal, val, "value was not saved correctly")
}

func TestGetValueNoStorage(t *testing.T) {
	require := require.New(t)
	ctx := context.TODO()
	ts := New(10)

	tsv := ts.NewView(state.Keys{string(testKey): state.All}, map[string][]byte{})
	_, err := tsv.GetValue(ctx, testKey)
	require.ErrorIs(err, database.ErrNotFound, "data should not exist")
}

func TestAllocateRequiresPermission(t *testing.T) {
	require := require.New(t)
	ctx := context.TODO()
	ts := New(10)

	// Write does not allow creating a key
	tsv := ts.NewView(state.Keys{string(testKey): state.Write}, map[string][]byte{})
	require.ErrorIs(tsv.Insert(ctx, testKey, testVal), ErrInvalidKeyOrPermission)
	require.Zero(tsv.PendingChanges())

	// Allocate does
	tsv = ts.NewView(state.Keys{string(testKey): state.Allocate}, map[string][]byte{})
	require.NoError(tsv.Insert(ctx, testKey, testVal))
	require.Equal(1, tsv.PendingChanges())
}

func TestOverwriteRequiresPermission(t *testing.T) {
	require := require.New(t)
	ctx := context.TODO()
	ts := New(10)

	// Allocate only: an occupied key cannot be overwritten
	tsv := ts.NewView(state.Keys{string(testKey): state.Allocate}, map[string][]byte{string(testKey): testVal})
	require.ErrorIs(tsv.Insert(ctx, testKey, []byte("other")), ErrInvalidKeyOrPermission)
	val, err := tsv.GetValue(ctx, testKey)
	require.NoError(err)
	require.Equal(testVal, val)

	// Same within a single view: allocate, then try to allocate again
	tsv = ts.NewView(state.Keys{string(testKey): state.Allocate}, map[string][]byte{})
	require.NoError(tsv.Insert(ctx, testKey, testVal))
	require.ErrorIs(tsv.Insert(ctx, testKey, []byte("other")), ErrInvalidKeyOrPermission)
}

func TestInsertNew(t *testing.T) {
	require := require.New(t)
	ctx := context.TODO()
	ts := New(10)

	tsv := ts.NewView(state.Keys{string(testKey): state.All}, map[string][]byte{})

	// Insert key
	require.NoError(tsv.Insert(ctx, testKey, testVal))
	val, err := tsv.GetValue(ctx, testKey)
	require.NoError(err)
	require.Equal(1, tsv.PendingChanges(), "insert was not recorded")
	require.Equal(testVal, val, "value was not set correctly")

	// Check commit
	tsv.Commit()
	require.Equal(1, ts.PendingChanges())
}

func TestInsertInvalid(t *testing.T) {
	require := require.New(t)
	ctx := context.TODO()
	ts := New(10)

	key := keys.EncodeChunks([]byte("hello"), 0)
	tsv := ts.NewView(state.Keys{string(key): state.All}, map[string][]byte{})

	require.ErrorIs(tsv.Insert(ctx, key, []byte("cool")), ErrInvalidKeyValue)
	_, err := tsv.GetValue(ctx, key)
	require.ErrorIs(err, database.ErrNotFound)
}

func TestInsertUpdateCommit(t *testing.T) {
	require := require.New(t)
	ctx := context.TODO()
	ts := New(10)

	tsv := ts.NewView(state.Keys{string(testKey): state.Write}, map[string][]byte{string(testKey): testVal})
	require.Zero(ts.PendingChanges())

	newVal := []byte("newVal")
	require.NoError(tsv.Insert(ctx, testKey, newVal))
	val, err := tsv.GetValue(ctx, testKey)
	require.NoError(err)
	require.Equal(newVal, val, "value was not set correctly")
	allocates, writes := tsv.KeyOperations()
	require.Empty(allocates, "overwrite is not an allocation")
	require.Equal(map[string]uint16{string(testKey): 1}, writes)

	// A later view sees the committed value, not the stale storage
	tsv.Commit()
	tsv = ts.NewView(state.Keys{string(testKey): state.Read}, map[string][]byte{string(testKey): testVal})
	val, err = tsv.GetValue(ctx, testKey)
	require.NoError(err)
	require.Equal(newVal, val, "value was not committed correctly")
}

func TestInsertRemoveKeyOperations(t *testing.T) {
	require := require.New(t)
	ctx := context.TODO()
	ts := New(10)

	tsv := ts.NewView(state.Keys{key2str: state.All}, map[string][]byte{})

	// Remove of a missing key is not recorded
	require.NoError(tsv.Remove(ctx, key2))
	allocates, writes := tsv.KeyOperations()
	require.Empty(allocates)
	require.Empty(writes)
	require.Zero(tsv.PendingChanges())

	// Insert key for first time
	require.NoError(tsv.Insert(ctx, key2, testVal))
	allocates, writes = tsv.KeyOperations()
	require.Equal(map[string]uint16{key2str: 2}, allocates)
	require.Equal(map[string]uint16{key2str: 1}, writes)
	require.Equal(maybe.Some(testVal), tsv.pendingChangedKeys[key2str])

	// Remove key
	require.NoError(tsv.Remove(ctx, key2))
	allocates, writes = tsv.KeyOperations()
	require.Empty(allocates)
	require.Equal(map[string]uint16{key2str: 0}, writes)
	require.Equal(maybe.Nothing[[]byte](), tsv.pendingChangedKeys[key2str])
	_, err := tsv.GetValue(ctx, key2)
	require.ErrorIs(err, database.ErrNotFound)
}

func TestWriteChanges(t *testing.T) {
	require := require.New(t)
	ctx := context.TODO()
	ts := New(10)

	db := memdb.New()
	require.NoError(db.Put(key2, testVal))

	tsv := ts.NewView(state.Keys{
		string(testKey): state.Allocate,
		key2str:         state.Write,
	}, map[string][]byte{key2str: testVal})
	require.NoError(tsv.Insert(ctx, testKey, testVal))
	require.NoError(tsv.Remove(ctx, key2))
	tsv.Commit()

	batch := db.NewBatch()
	require.NoError(ts.WriteChanges(batch))
	require.NoError(batch.Write())

	val, err := db.Get(testKey)
	require.NoError(err)
	require.Equal(testVal, val)
	has, err := db.Has(key2)
	require.NoError(err)
	require.False(has)
}

func TestUncommittedViewIsDiscarded(t *testing.T) {
	require := require.New(t)
	ctx := context.TODO()
	ts := New(10)

	tsv := ts.NewView(state.Keys{string(testKey): state.All}, map[string][]byte{})
	require.NoError(tsv.Insert(ctx, testKey, testVal))

	// Never committed
	require.Zero(ts.PendingChanges())
	db := memdb.New()
	require.NoError(ts.WriteChanges(db))
	has, err := db.Has(testKey)
	require.NoError(err)
	require.False(has)
}
