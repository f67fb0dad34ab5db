// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ed25519

import (
	"bytes"
	"crypto/ed25519"

	"github.com/ava-labs/fortunevm/codec"
	"github.com/ava-labs/fortunevm/utils"
)

type (
	PublicKey  [ed25519.PublicKeySize]byte
	PrivateKey [ed25519.PrivateKeySize]byte
)

const (
	PublicKeyLen  = ed25519.PublicKeySize
	PrivateKeyLen = ed25519.PrivateKeySize
	// PrivateKeySeedLen is defined because ed25519.PrivateKey
	// is formatted as privateKey = seed|publicKey. We use this const
	// to extract the publicKey below.
	PrivateKeySeedLen = ed25519.SeedSize
)

var (
	EmptyPublicKey  = [ed25519.PublicKeySize]byte{}
	EmptyPrivateKey = [ed25519.PrivateKeySize]byte{}
)

// GeneratePrivateKey returns a Ed25519 PrivateKey.
func GeneratePrivateKey() (PrivateKey, error) {
	_, k, err := ed25519.GenerateKey(nil)
	if err != nil {
		return EmptyPrivateKey, err
	}
	return PrivateKey(k), nil
}

// PublicKey returns a PublicKey associated with the Ed25519 PrivateKey p.
// The PublicKey is the last 32 bytes of p.
func (p PrivateKey) PublicKey() PublicKey {
	return PublicKey(p[PrivateKeySeedLen:])
}

// Address returns the ledger identity of the key holder.
func (p PrivateKey) Address() codec.Address {
	return codec.Address(p.PublicKey())
}

func (p PrivateKey) ToHex() string {
	return codec.ToHex(p[:])
}

// Save writes [p] hex encoded to [filename] readable only by the owner.
func (p PrivateKey) Save(filename string) error {
	return utils.SaveBytes(filename, p[:])
}

// HexToKey parses a hex encoded private key and checks that its public half
// matches its seed.
func HexToKey(s string) (PrivateKey, error) {
	b, err := codec.LoadHex(s, PrivateKeyLen)
	if err != nil {
		return EmptyPrivateKey, ErrInvalidPrivateKey
	}
	return toKey(b)
}

func toKey(b []byte) (PrivateKey, error) {
	expected := ed25519.NewKeyFromSeed(b[:PrivateKeySeedLen])
	if !bytes.Equal(expected, b) {
		return EmptyPrivateKey, ErrInvalidPrivateKey
	}
	return PrivateKey(b), nil
}

// LoadKey reads a key written by [PrivateKey.Save].
func LoadKey(filename string) (PrivateKey, error) {
	b, err := utils.LoadBytes(filename, PrivateKeyLen)
	if err != nil {
		return EmptyPrivateKey, err
	}
	return toKey(b)
}
