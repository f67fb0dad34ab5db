// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import "errors"

var (
	ErrCookieExists      = errors.New("cookie already exists")
	ErrCookieNotFound    = errors.New("cookie not found")
	ErrStatsExists       = errors.New("stats already initialized")
	ErrStatsMissing      = errors.New("stats not initialized")
	ErrStatsOverflow     = errors.New("total opens overflow")
	ErrInvalidTag        = errors.New("record tag does not match its key")
	ErrCountersExhausted = errors.New("no free counter in scan window")
)
