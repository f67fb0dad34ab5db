// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import "errors"

var (
	ErrInvalidKeyValue  = errors.New("invalid key or value")
	ErrClockRegressed   = errors.New("clock returned a slot below the last executed slot")
	ErrInvalidSlotWidth = errors.New("slot duration must be positive")
)
