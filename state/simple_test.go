// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package state

import (
	"context"
	"testing"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/database/memdb"
	"github.com/stretchr/testify/require"
)

func TestSimpleMutable(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()

	db := memdb.New()
	require.NoError(db.Put([]byte("a"), []byte("1")))

	mu := NewSimpleMutable(NewReadOnly(db))
	v, err := mu.GetValue(ctx, []byte("a"))
	require.NoError(err)
	require.Equal([]byte("1"), v)

	require.NoError(mu.Insert(ctx, []byte("b"), []byte("2")))
	require.NoError(mu.Remove(ctx, []byte("a")))
	_, err = mu.GetValue(ctx, []byte("a"))
	require.ErrorIs(err, database.ErrNotFound)

	// Nothing reaches the database before commit
	has, err := db.Has([]byte("b"))
	require.NoError(err)
	require.False(has)

	require.NoError(mu.Commit(db))
	has, err = db.Has([]byte("a"))
	require.NoError(err)
	require.False(has)
	v, err = db.Get([]byte("b"))
	require.NoError(err)
	require.Equal([]byte("2"), v)
}
