// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseAddress(t *testing.T) {
	require := require.New(t)

	var addr Address
	for i := range addr {
		addr[i] = byte(i)
	}
	parsed, err := ParseAddress(addr.String())
	require.NoError(err)
	require.Equal(addr, parsed)

	// Prefix is optional
	parsed, err = ParseAddress(addr.String()[2:])
	require.NoError(err)
	require.Equal(addr, parsed)

	_, err = ParseAddress("0x0102")
	require.ErrorIs(err, ErrInvalidSize)
}

func TestAddressJSON(t *testing.T) {
	require := require.New(t)

	type wrapper struct {
		Owner Address `json:"owner"`
	}
	w := wrapper{Owner: Address{0xff}}
	b, err := json.Marshal(w)
	require.NoError(err)
	require.Contains(string(b), `"owner":"0xff00`)

	var out wrapper
	require.NoError(json.Unmarshal(b, &out))
	require.Equal(w, out)
}

func TestToAddress(t *testing.T) {
	require := require.New(t)

	_, err := ToAddress(make([]byte, AddressLen-1))
	require.ErrorIs(err, ErrInvalidSize)

	a, err := ToAddress(make([]byte, AddressLen))
	require.NoError(err)
	require.Equal(EmptyAddress, a)
}
