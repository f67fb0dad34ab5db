// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import (
	"github.com/ava-labs/fortunevm/codec"
	"github.com/ava-labs/fortunevm/consts"
)

// Key prefixes. The prefix of a record's key is also the derivation tag
// stored inside the record.
const (
	slotPrefix byte = iota
	statsPrefix
	cookiePrefix
)

// Seeds mixed into storage addresses.
var (
	cookieSeed = []byte("cookie")
	statsSeed  = []byte("stats")
)

// Chunks
const (
	SlotChunks   uint16 = 1
	StatsChunks  uint16 = 1
	CookieChunks uint16 = 1
)

// Record sizes
const (
	CookieLen = codec.AddressLen + consts.Uint8Len + consts.Uint64Len + consts.Uint8Len + consts.ByteLen
	StatsLen  = consts.Uint64Len + consts.ByteLen
	SlotLen   = consts.Uint64Len
)

// MaxCounterScan bounds how far [NextCounter] searches for a free counter.
const MaxCounterScan = 4_096
