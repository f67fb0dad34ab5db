// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"github.com/ava-labs/avalanchego/utils/hashing"
	"github.com/near/borsh-go"

	"github.com/ava-labs/fortunevm/codec"
	"github.com/ava-labs/fortunevm/fortune"
)

const discriminatorLen = 8

// cookieOpenedDiscriminator prefixes every encoded [CookieOpened] event so
// off-system decoders can tell event kinds apart.
var cookieOpenedDiscriminator = eventDiscriminator("CookieOpened")

var _ codec.Typed = (*CookieOpened)(nil)

// CookieOpened is the notification emitted by a successful [OpenCookie].
type CookieOpened struct {
	User      codec.Address  `json:"user"`
	Archetype uint8          `json:"archetype"`
	FortuneID uint64         `json:"fortuneId"`
	Rarity    fortune.Rarity `json:"rarity"`

	Counter    uint64 `json:"counter"`
	TotalOpens uint64 `json:"totalOpens"`
}

func (*CookieOpened) GetTypeID() uint8 {
	return OpenCookieID
}

// cookieOpenedEvent is the wire layout of the event: the discriminator
// followed by the borsh encoding of these fields.
type cookieOpenedEvent struct {
	User      [codec.AddressLen]byte
	Archetype uint8
	FortuneID uint64
	Rarity    uint8
}

// MarshalEvent returns the discriminator-prefixed borsh encoding of the
// event payload {user, archetype, fortuneId, rarity}.
func (c *CookieOpened) MarshalEvent() ([]byte, error) {
	b, err := borsh.Serialize(cookieOpenedEvent{
		User:      c.User,
		Archetype: c.Archetype,
		FortuneID: c.FortuneID,
		Rarity:    uint8(c.Rarity),
	})
	if err != nil {
		return nil, err
	}
	return append(cookieOpenedDiscriminator[:], b...), nil
}

// UnmarshalEvent decodes bytes produced by [CookieOpened.MarshalEvent].
// Fields that are not part of the event payload are left zero.
func UnmarshalEvent(b []byte) (*CookieOpened, error) {
	if len(b) < discriminatorLen {
		return nil, codec.ErrInsufficientLength
	}
	if [discriminatorLen]byte(b[:discriminatorLen]) != cookieOpenedDiscriminator {
		return nil, ErrUnknownEvent
	}
	var e cookieOpenedEvent
	if err := borsh.Deserialize(&e, b[discriminatorLen:]); err != nil {
		return nil, err
	}
	return &CookieOpened{
		User:      e.User,
		Archetype: e.Archetype,
		FortuneID: e.FortuneID,
		Rarity:    fortune.Rarity(e.Rarity),
	}, nil
}

func eventDiscriminator(name string) [discriminatorLen]byte {
	h := hashing.ComputeHash256([]byte("event:" + name))
	return [discriminatorLen]byte(h[:discriminatorLen])
}
