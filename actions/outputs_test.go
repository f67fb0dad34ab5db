// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ava-labs/fortunevm/codec"
	"github.com/ava-labs/fortunevm/codec/codectest"
	"github.com/ava-labs/fortunevm/fortune"
)

func TestCookieOpenedEvent(t *testing.T) {
	require := require.New(t)

	opened := &CookieOpened{
		User:       codectest.SequentialAddress(),
		Archetype:  2,
		FortuneID:  47,
		Rarity:     fortune.Rare,
		Counter:    5,
		TotalOpens: 9,
	}
	b, err := opened.MarshalEvent()
	require.NoError(err)
	// discriminator | user | archetype | fortuneId (little endian) | rarity
	require.Len(b, discriminatorLen+codec.AddressLen+1+8+1)
	require.Equal(cookieOpenedDiscriminator[:], b[:discriminatorLen])
	require.Equal(opened.User[:], b[discriminatorLen:discriminatorLen+codec.AddressLen])
	require.Equal(byte(2), b[discriminatorLen+codec.AddressLen])
	require.Equal(byte(47), b[discriminatorLen+codec.AddressLen+1])
	require.Equal(byte(fortune.Rare), b[len(b)-1])

	decoded, err := UnmarshalEvent(b)
	require.NoError(err)
	require.Equal(opened.User, decoded.User)
	require.Equal(opened.Archetype, decoded.Archetype)
	require.Equal(opened.FortuneID, decoded.FortuneID)
	require.Equal(opened.Rarity, decoded.Rarity)
	require.Zero(decoded.TotalOpens)
}

func TestUnmarshalEventErrors(t *testing.T) {
	require := require.New(t)

	_, err := UnmarshalEvent([]byte{1, 2})
	require.ErrorIs(err, codec.ErrInsufficientLength)

	b, err := (&CookieOpened{}).MarshalEvent()
	require.NoError(err)
	b[0] ^= 0xff
	_, err = UnmarshalEvent(b)
	require.ErrorIs(err, ErrUnknownEvent)
}
