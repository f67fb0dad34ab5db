// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPackerFixedRecord(t *testing.T) {
	require := require.New(t)

	owner := Address{1, 2, 3}
	wp := NewWriter(AddressLen+8+1, 64)
	wp.PackAddress(owner)
	wp.PackUint64(42)
	wp.PackByte(7)
	require.NoError(wp.Err())
	require.Len(wp.Bytes(), AddressLen+8+1)

	rp := NewReader(wp.Bytes(), 64)
	var got Address
	rp.UnpackAddress(&got)
	require.Equal(owner, got)
	require.Equal(uint64(42), rp.UnpackUint64(true))
	require.Equal(byte(7), rp.UnpackByte())
	require.NoError(rp.Done())
}

func TestPackerRequiredUnpack(t *testing.T) {
	require := require.New(t)

	wp := NewWriter(8, 8)
	wp.PackUint64(0)
	rp := NewReader(wp.Bytes(), 8)
	require.Zero(rp.UnpackUint64(true))
	require.ErrorIs(rp.Err(), ErrFieldNotPopulated)

	rp = NewReader(make([]byte, AddressLen), AddressLen)
	var a Address
	rp.UnpackAddress(&a)
	require.ErrorIs(rp.Done(), ErrFieldNotPopulated)
}

func TestPackerTrailingBytes(t *testing.T) {
	require := require.New(t)

	rp := NewReader([]byte{1, 2}, 2)
	require.Equal(byte(1), rp.UnpackByte())
	require.ErrorIs(rp.Done(), ErrExtraBytes)
}

func TestPackerShortInput(t *testing.T) {
	require := require.New(t)

	rp := NewReader([]byte{1, 2, 3}, 3)
	rp.UnpackUint64(false)
	require.Error(rp.Err())
}

func TestPackerWriterLimit(t *testing.T) {
	require := require.New(t)

	wp := NewWriter(0, 4)
	wp.PackUint64(1)
	require.Error(wp.Err())
}
