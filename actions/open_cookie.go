// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"context"

	"github.com/ava-labs/fortunevm/chain"
	"github.com/ava-labs/fortunevm/codec"
	"github.com/ava-labs/fortunevm/fortune"
	"github.com/ava-labs/fortunevm/state"
	"github.com/ava-labs/fortunevm/storage"
)

var _ chain.Action = (*OpenCookie)(nil)

// OpenCookie derives a fortune for the actor and records it under
// (actor, Counter). Each pair can be opened at most once.
type OpenCookie struct {
	// Archetype must be below [fortune.NumArchetypes].
	Archetype uint8 `json:"archetype"`

	// Counter is chosen by the caller and must not have been used by the
	// same actor before.
	Counter uint64 `json:"counter"`
}

func (*OpenCookie) GetTypeID() uint8 {
	return OpenCookieID
}

// StateKeys declares the cookie key as allocate-only so an existing cookie
// can never be overwritten, and the stats key as read/write so it cannot be
// created by an open.
func (o *OpenCookie) StateKeys(actor codec.Address) state.Keys {
	return state.Keys{
		string(storage.CookieKey(actor, o.Counter)): state.Allocate,
		string(storage.StatsKey()):                  state.Read | state.Write,
	}
}

func (o *OpenCookie) Execute(
	ctx context.Context,
	mu state.Mutable,
	slot uint64,
	actor codec.Address,
) (codec.Typed, error) {
	if !fortune.ValidArchetype(o.Archetype) {
		return nil, ErrInvalidArchetype
	}
	if _, err := storage.GetStats(ctx, mu); err != nil {
		return nil, err
	}

	fortuneID, rarity := fortune.Derive(slot, actor, o.Archetype, o.Counter)
	if err := storage.CreateCookie(ctx, mu, o.Counter, &storage.Cookie{
		Owner:     actor,
		Archetype: o.Archetype,
		FortuneID: fortuneID,
		Rarity:    rarity,
	}); err != nil {
		return nil, err
	}
	total, err := storage.IncrementStats(ctx, mu)
	if err != nil {
		return nil, err
	}
	return &CookieOpened{
		User:       actor,
		Archetype:  o.Archetype,
		FortuneID:  fortuneID,
		Rarity:     rarity,
		Counter:    o.Counter,
		TotalOpens: total,
	}, nil
}
