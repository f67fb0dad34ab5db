// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import (
	"context"
	"testing"

	"github.com/ava-labs/avalanchego/database/memdb"
	"github.com/stretchr/testify/require"

	"github.com/ava-labs/fortunevm/codec/codectest"
	"github.com/ava-labs/fortunevm/fortune"
	"github.com/ava-labs/fortunevm/keys"
	"github.com/ava-labs/fortunevm/state"
)

func newState() *state.SimpleMutable {
	return state.NewSimpleMutable(state.NewReadOnly(memdb.New()))
}

func TestCookieKeys(t *testing.T) {
	require := require.New(t)

	owner := codectest.NewRandomAddress()
	other := codectest.NewRandomAddress()

	require.Equal(CookieKey(owner, 1), CookieKey(owner, 1))
	require.NotEqual(CookieKey(owner, 1), CookieKey(owner, 2))
	require.NotEqual(CookieKey(owner, 1), CookieKey(other, 1))
	require.NotEqual(StatsKey(), SlotKey())

	for _, k := range [][]byte{CookieKey(owner, 0), StatsKey(), SlotKey()} {
		require.True(keys.Valid(k))
	}
	require.True(keys.VerifyValue(CookieKey(owner, 0), make([]byte, CookieLen)))
	require.True(keys.VerifyValue(StatsKey(), make([]byte, StatsLen)))
}

func TestCookieRecord(t *testing.T) {
	require := require.New(t)

	c := &Cookie{
		Owner:     codectest.NewRandomAddress(),
		Archetype: 3,
		FortuneID: 49,
		Rarity:    fortune.Legendary,
		Tag:       cookiePrefix,
	}
	b, err := MarshalCookie(c)
	require.NoError(err)
	require.Len(b, CookieLen)

	parsed, err := UnmarshalCookie(b)
	require.NoError(err)
	require.Equal(c, parsed)

	// Tag must match the key family
	b[len(b)-1] = statsPrefix
	_, err = UnmarshalCookie(b)
	require.ErrorIs(err, ErrInvalidTag)
}

func TestCreateCookie(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	mu := newState()

	owner := codectest.NewRandomAddress()
	_, err := GetCookie(ctx, mu, owner, 0)
	require.ErrorIs(err, ErrCookieNotFound)

	first := &Cookie{Owner: owner, Archetype: 1, FortuneID: 10, Rarity: fortune.Rare}
	require.NoError(CreateCookie(ctx, mu, 0, first))

	// Same (owner, counter) never overwrites
	second := &Cookie{Owner: owner, Archetype: 2, FortuneID: 11, Rarity: fortune.Common}
	require.ErrorIs(CreateCookie(ctx, mu, 0, second), ErrCookieExists)

	got, err := GetCookie(ctx, mu, owner, 0)
	require.NoError(err)
	require.Equal(uint8(1), got.Archetype)
	require.Equal(uint64(10), got.FortuneID)
	require.Equal(fortune.Rare, got.Rarity)
	require.Equal(cookiePrefix, got.Tag)

	// A different counter is independent
	require.NoError(CreateCookie(ctx, mu, 1, second))
	got, err = GetCookie(ctx, mu, owner, 1)
	require.NoError(err)
	require.Equal(uint8(2), got.Archetype)
}

func TestNextCounter(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	mu := newState()

	owner := codectest.NewRandomAddress()
	next, err := NextCounter(ctx, mu, owner)
	require.NoError(err)
	require.Zero(next)

	for i := uint64(0); i < 3; i++ {
		require.NoError(CreateCookie(ctx, mu, i, &Cookie{Owner: owner}))
	}
	next, err = NextCounter(ctx, mu, owner)
	require.NoError(err)
	require.Equal(uint64(3), next)

	// Other owners are unaffected
	next, err = NextCounter(ctx, mu, codectest.NewRandomAddress())
	require.NoError(err)
	require.Zero(next)
}

func TestStats(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	mu := newState()

	_, err := GetStats(ctx, mu)
	require.ErrorIs(err, ErrStatsMissing)
	_, err = IncrementStats(ctx, mu)
	require.ErrorIs(err, ErrStatsMissing)

	require.NoError(InitStats(ctx, mu))
	require.ErrorIs(InitStats(ctx, mu), ErrStatsExists)

	for i := uint64(1); i <= 5; i++ {
		total, err := IncrementStats(ctx, mu)
		require.NoError(err)
		require.Equal(i, total)
	}
	s, err := GetStats(ctx, mu)
	require.NoError(err)
	require.Equal(uint64(5), s.TotalOpens)
	require.Equal(statsPrefix, s.Tag)
}

func TestStatsOverflow(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	mu := newState()

	require.NoError(putStats(ctx, mu, &Stats{TotalOpens: ^uint64(0)}))
	_, err := IncrementStats(ctx, mu)
	require.ErrorIs(err, ErrStatsOverflow)
}

func TestSlot(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	db := memdb.New()
	im := state.NewReadOnly(db)

	slot, err := GetSlot(ctx, im)
	require.NoError(err)
	require.Zero(slot)

	require.NoError(SetSlot(db, 1234))
	slot, err = GetSlot(ctx, im)
	require.NoError(err)
	require.Equal(uint64(1234), slot)
}
