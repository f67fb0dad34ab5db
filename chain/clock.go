// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"context"
	"time"
)

var _ Clock = (*SlotClock)(nil)

// SlotClock derives slots from wall time: slot n covers
// [genesis + n*width, genesis + (n+1)*width).
type SlotClock struct {
	genesis time.Time
	width   time.Duration
	now     func() time.Time
}

func NewSlotClock(genesis time.Time, width time.Duration) (*SlotClock, error) {
	if width <= 0 {
		return nil, ErrInvalidSlotWidth
	}
	return &SlotClock{
		genesis: genesis,
		width:   width,
		now:     time.Now,
	}, nil
}

// Slot returns the wall clock slot, held at [floor] if the wall clock is
// behind it (e.g. after a clock adjustment).
func (c *SlotClock) Slot(_ context.Context, floor uint64) (uint64, error) {
	var slot uint64
	if elapsed := c.now().Sub(c.genesis); elapsed > 0 {
		slot = uint64(elapsed / c.width)
	}
	return max(slot, floor), nil
}
