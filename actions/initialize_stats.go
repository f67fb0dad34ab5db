// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"context"

	"github.com/ava-labs/fortunevm/chain"
	"github.com/ava-labs/fortunevm/codec"
	"github.com/ava-labs/fortunevm/state"
	"github.com/ava-labs/fortunevm/storage"
)

var _ chain.Action = (*InitializeStats)(nil)

// InitializeStats creates the global open counter. It succeeds once per
// deployment; the actor only pays for the record.
type InitializeStats struct{}

func (*InitializeStats) GetTypeID() uint8 {
	return InitializeStatsID
}

func (*InitializeStats) StateKeys(codec.Address) state.Keys {
	return state.Keys{
		string(storage.StatsKey()): state.Allocate,
	}
}

func (*InitializeStats) Execute(
	ctx context.Context,
	mu state.Mutable,
	_ uint64,
	actor codec.Address,
) (codec.Typed, error) {
	if err := storage.InitStats(ctx, mu); err != nil {
		return nil, err
	}
	return &StatsInitialized{Payer: actor}, nil
}

var _ codec.Typed = (*StatsInitialized)(nil)

type StatsInitialized struct {
	Payer codec.Address `json:"payer"`
}

func (*StatsInitialized) GetTypeID() uint8 {
	return InitializeStatsID
}
