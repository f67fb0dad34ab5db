// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codectest

import (
	"crypto/rand"

	"github.com/ava-labs/fortunevm/codec"
)

// NewRandomAddress returns a random address
// for use during testing
func NewRandomAddress() codec.Address {
	b := make([]byte, codec.AddressLen)
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}
	var a codec.Address
	copy(a[:], b)
	return a
}

// SequentialAddress returns the address whose bytes are 1, 2, ..., 32.
func SequentialAddress() codec.Address {
	var a codec.Address
	for i := range a {
		a[i] = byte(i + 1)
	}
	return a
}
