// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import (
	"context"
	"encoding/binary"
	"errors"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/ids"

	"github.com/ava-labs/fortunevm/codec"
	"github.com/ava-labs/fortunevm/fortune"
	"github.com/ava-labs/fortunevm/keys"
	"github.com/ava-labs/fortunevm/state"
	"github.com/ava-labs/fortunevm/utils"
)

// Cookie is the immutable record written by a successful open.
type Cookie struct {
	Owner     codec.Address  `json:"owner"`
	Archetype uint8          `json:"archetype"`
	FortuneID uint64         `json:"fortuneId"`
	Rarity    fortune.Rarity `json:"rarity"`
	Tag       byte           `json:"tag"`
}

// CookieAddress derives the storage address of the cookie [owner] opens
// with [counter] from the seeds (owner, "cookie", little-endian counter).
func CookieAddress(owner codec.Address, counter uint64) ids.ID {
	v := make([]byte, 0, codec.AddressLen+len(cookieSeed)+8)
	v = append(v, owner[:]...)
	v = append(v, cookieSeed...)
	v = binary.LittleEndian.AppendUint64(v, counter)
	return utils.ToID(v)
}

// CookieKey returns the state key of the cookie at (owner, counter).
func CookieKey(owner codec.Address, counter uint64) []byte {
	addr := CookieAddress(owner, counter)
	k := make([]byte, 0, 1+ids.IDLen+2)
	k = append(k, cookiePrefix)
	k = append(k, addr[:]...)
	return keys.EncodeChunks(k, CookieChunks)
}

// MarshalCookie encodes [c] as owner|archetype|fortuneId|rarity|tag.
func MarshalCookie(c *Cookie) ([]byte, error) {
	p := codec.NewWriter(CookieLen, CookieLen)
	p.PackAddress(c.Owner)
	p.PackByte(c.Archetype)
	p.PackUint64(c.FortuneID)
	p.PackByte(byte(c.Rarity))
	p.PackByte(c.Tag)
	return p.Bytes(), p.Err()
}

// UnmarshalCookie decodes a record written by [MarshalCookie].
func UnmarshalCookie(b []byte) (*Cookie, error) {
	p := codec.NewReader(b, CookieLen)
	var c Cookie
	p.UnpackAddress(&c.Owner)
	c.Archetype = p.UnpackByte()
	c.FortuneID = p.UnpackUint64(false)
	c.Rarity = fortune.Rarity(p.UnpackByte())
	c.Tag = p.UnpackByte()
	if err := p.Done(); err != nil {
		return nil, err
	}
	if c.Tag != cookiePrefix {
		return nil, ErrInvalidTag
	}
	return &c, nil
}

// CreateCookie stores a new cookie at (owner, counter). It fails with
// [ErrCookieExists] if the key is already occupied; cookies are never
// overwritten.
func CreateCookie(
	ctx context.Context,
	mu state.Mutable,
	counter uint64,
	c *Cookie,
) error {
	k := CookieKey(c.Owner, counter)
	_, err := mu.GetValue(ctx, k)
	switch {
	case err == nil:
		return ErrCookieExists
	case !errors.Is(err, database.ErrNotFound):
		return err
	}
	c.Tag = cookiePrefix
	v, err := MarshalCookie(c)
	if err != nil {
		return err
	}
	return mu.Insert(ctx, k, v)
}

// GetCookie returns the cookie at (owner, counter) or [ErrCookieNotFound].
func GetCookie(
	ctx context.Context,
	im state.Immutable,
	owner codec.Address,
	counter uint64,
) (*Cookie, error) {
	v, err := im.GetValue(ctx, CookieKey(owner, counter))
	if errors.Is(err, database.ErrNotFound) {
		return nil, ErrCookieNotFound
	}
	if err != nil {
		return nil, err
	}
	return UnmarshalCookie(v)
}

// NextCounter returns the lowest counter with no cookie for [owner]. Owners
// that always open with the next counter keep their counters dense, so this
// is also the number of cookies they own.
func NextCounter(ctx context.Context, im state.Immutable, owner codec.Address) (uint64, error) {
	for counter := uint64(0); counter < MaxCounterScan; counter++ {
		_, err := im.GetValue(ctx, CookieKey(owner, counter))
		if errors.Is(err, database.ErrNotFound) {
			return counter, nil
		}
		if err != nil {
			return 0, err
		}
	}
	return 0, ErrCountersExhausted
}
