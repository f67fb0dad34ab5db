// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package consts

const (
	// Name is used to namespace metrics, logs, and the default data directory.
	Name    = "fortunevm"
	Version = "v0.1.0"

	IDLen     = 32
	BoolLen   = 1
	ByteLen   = 1
	Uint8Len  = 1
	Uint16Len = 2
	IntLen    = 4
	Uint64Len = 8

	MaxUint8  = ^uint8(0)
	MaxUint16 = ^uint16(0)
	MaxUint   = ^uint(0)
	MaxInt    = int(MaxUint >> 1)
	MaxUint64 = ^uint64(0)
)
