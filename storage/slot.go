// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import (
	"context"
	"errors"

	"github.com/ava-labs/avalanchego/database"

	"github.com/ava-labs/fortunevm/keys"
	"github.com/ava-labs/fortunevm/state"
)

// SlotKey stores the last slot a call executed at, so the ledger clock never
// moves backwards across restarts.
func SlotKey() []byte {
	return keys.EncodeChunks([]byte{slotPrefix}, SlotChunks)
}

// GetSlot returns the last persisted slot (0 if none).
func GetSlot(ctx context.Context, im state.Immutable) (uint64, error) {
	v, err := im.GetValue(ctx, SlotKey())
	if errors.Is(err, database.ErrNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return database.ParseUInt64(v)
}

// SetSlot writes [slot] outside of any call scope. The ledger adds it to the
// batch of the call that advanced the clock.
func SetSlot(w database.KeyValueWriter, slot uint64) error {
	return w.Put(SlotKey(), database.PackUInt64(slot))
}
