// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import "errors"

var (
	ErrInvalidArgs      = errors.New("invalid args")
	ErrConflictingFlags = errors.New("--archetype and --random are mutually exclusive")
)
