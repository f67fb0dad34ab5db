// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package rpc

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/ava-labs/avalanchego/database/memdb"
	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/stretchr/testify/require"

	"github.com/ava-labs/fortunevm/actions"
	"github.com/ava-labs/fortunevm/chain"
	"github.com/ava-labs/fortunevm/chain/chaintest"
	"github.com/ava-labs/fortunevm/codec/codectest"
	"github.com/ava-labs/fortunevm/fortune"
	"github.com/ava-labs/fortunevm/storage"
	"github.com/ava-labs/fortunevm/trace"
)

func newTestServer(t *testing.T) (*chain.Ledger, *JSONRPCClient) {
	require := require.New(t)
	tracer := trace.Noop("test")
	ledger, err := chain.NewLedger(logging.NoLog{}, tracer, memdb.New(), chaintest.FixedClock(100))
	require.NoError(err)

	router, err := NewRouter(NewJSONRPCServer(logging.NoLog{}, tracer, ledger))
	require.NoError(err)
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return ledger, NewJSONRPCClient(srv.URL)
}

func TestJSONRPC(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	ledger, cli := newTestServer(t)
	owner := codectest.SequentialAddress()

	ok, err := cli.Ping(ctx)
	require.NoError(err)
	require.True(ok)

	stats, err := cli.Stats(ctx)
	require.NoError(err)
	require.False(stats.Initialized)

	_, err = ledger.Submit(ctx, owner, &actions.InitializeStats{})
	require.NoError(err)
	next, err := cli.NextCounter(ctx, owner)
	require.NoError(err)
	require.Zero(next)

	_, err = ledger.Submit(ctx, owner, &actions.OpenCookie{Archetype: 2, Counter: 5})
	require.NoError(err)

	stats, err = cli.Stats(ctx)
	require.NoError(err)
	require.True(stats.Initialized)
	require.Equal(uint64(1), stats.TotalOpens)
	require.Equal(uint64(100), stats.Slot)

	cookie, err := cli.Cookie(ctx, owner, 5)
	require.NoError(err)
	require.Equal(owner, cookie.Owner)
	require.Equal("vc", cookie.ArchetypeName)
	require.Equal(uint64(47), cookie.FortuneID)
	require.Equal(fortune.Common, cookie.Rarity)

	_, err = cli.Cookie(ctx, owner, 6)
	require.ErrorContains(err, storage.ErrCookieNotFound.Error())
}

func TestJSONRPCDerive(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	_, cli := newTestServer(t)

	reply, err := cli.Derive(ctx, &DeriveArgs{
		Slot:      100,
		Owner:     codectest.SequentialAddress(),
		Archetype: 2,
		Counter:   5,
	})
	require.NoError(err)
	require.Equal(uint64(47), reply.FortuneID)
	require.Equal(uint64(46), reply.RarityScore)
	require.Equal(fortune.Common, reply.Rarity)

	_, err = cli.Derive(ctx, &DeriveArgs{Archetype: fortune.NumArchetypes})
	require.ErrorContains(err, actions.ErrInvalidArchetype.Error())
}
