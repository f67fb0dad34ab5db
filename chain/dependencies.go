// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"context"

	"github.com/ava-labs/avalanchego/database"

	"github.com/ava-labs/fortunevm/codec"
	"github.com/ava-labs/fortunevm/state"
)

// Action is a single state transition submitted by an authenticated caller.
type Action interface {
	codec.Typed

	// StateKeys lists every key [Execute] may touch and the permissions it
	// needs. Keys outside this set are unreadable during execution.
	StateKeys(actor codec.Address) state.Keys

	// Execute applies the action. Any returned error discards every change
	// made to [mu].
	//
	// [slot] is the ledger clock value the call executes at.
	Execute(
		ctx context.Context,
		mu state.Mutable,
		slot uint64,
		actor codec.Address,
	) (codec.Typed, error)
}

// Clock supplies the monotonic slot a call executes at.
type Clock interface {
	// Slot returns the current slot. It must never return a value lower than
	// [floor], the slot of the last successful call.
	Slot(ctx context.Context, floor uint64) (uint64, error)
}

// Database is the persistent store behind the ledger.
type Database interface {
	database.KeyValueReader
	database.Batcher
}

// BatchReleaser is implemented by batches that hold resources until they are
// released. The ledger releases every batch it creates, written or not.
type BatchReleaser interface {
	Release() error
}
