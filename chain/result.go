// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import "github.com/ava-labs/fortunevm/codec"

// Result is delivered to subscribers after the writes of a call are
// persisted.
type Result struct {
	Slot   uint64        `json:"slot"`
	Actor  codec.Address `json:"actor"`
	Action uint8         `json:"action"`
	Output codec.Typed   `json:"output,omitempty"`
}
