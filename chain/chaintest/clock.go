// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chaintest

import (
	"context"
	"sync"

	"github.com/ava-labs/fortunevm/chain"
)

var (
	_ chain.Clock = FixedClock(0)
	_ chain.Clock = (*ManualClock)(nil)
)

// FixedClock always returns the same slot, ignoring the floor.
type FixedClock uint64

func (c FixedClock) Slot(context.Context, uint64) (uint64, error) {
	return uint64(c), nil
}

// ManualClock returns a slot set by the test.
type ManualClock struct {
	l    sync.Mutex
	slot uint64
}

func NewManualClock(slot uint64) *ManualClock {
	return &ManualClock{slot: slot}
}

func (c *ManualClock) Set(slot uint64) {
	c.l.Lock()
	defer c.l.Unlock()

	c.slot = slot
}

func (c *ManualClock) Advance(n uint64) {
	c.l.Lock()
	defer c.l.Unlock()

	c.slot += n
}

func (c *ManualClock) Slot(context.Context, uint64) (uint64, error) {
	c.l.Lock()
	defer c.l.Unlock()

	return c.slot, nil
}
