// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

// Typed is implemented by every action and action output so that results
// can be dispatched on without reflection.
type Typed interface {
	GetTypeID() uint8
}
