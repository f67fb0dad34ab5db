// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import "errors"

var (
	ErrInvalidArchetype = errors.New("invalid archetype")
	ErrUnknownEvent     = errors.New("unknown event")
)
