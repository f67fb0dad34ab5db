// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package fortune

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrUnknownRarity    = errors.New("unknown rarity")
	ErrUnknownArchetype = errors.New("unknown archetype")
)

// Rarity is the tier of an opened cookie.
type Rarity uint8

const (
	Common Rarity = iota
	Uncommon
	Rare
	Legendary

	NumRarities = 4
)

var rarityNames = [NumRarities]string{"common", "uncommon", "rare", "legendary"}

// Valid returns true if r is one of the four tiers.
func (r Rarity) Valid() bool {
	return r < NumRarities
}

func (r Rarity) String() string {
	if !r.Valid() {
		return "rarity(" + strconv.Itoa(int(r)) + ")"
	}
	return rarityNames[r]
}

// MarshalText encodes the tier by name.
func (r Rarity) MarshalText() ([]byte, error) {
	if !r.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownRarity, r)
	}
	return []byte(r.String()), nil
}

// UnmarshalText accepts either the tier name or its index.
func (r *Rarity) UnmarshalText(b []byte) error {
	parsed, err := ParseRarity(string(b))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// ParseRarity parses a tier name or index.
func ParseRarity(s string) (Rarity, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range rarityNames {
		if s == name {
			return Rarity(i), nil
		}
	}
	if n, err := strconv.ParseUint(s, 10, 8); err == nil && Rarity(n).Valid() {
		return Rarity(n), nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownRarity, s)
}

// Archetypes are named by index.
var archetypeNames = [NumArchetypes]string{"degen", "builder", "vc", "founder"}

// ArchetypeName returns the name of [archetype], or its number if it is out
// of range.
func ArchetypeName(archetype uint8) string {
	if !ValidArchetype(archetype) {
		return strconv.Itoa(int(archetype))
	}
	return archetypeNames[archetype]
}

// Archetypes returns the archetype names in index order.
func Archetypes() []string {
	return archetypeNames[:]
}

// ValidArchetype returns true if [archetype] is in [0, NumArchetypes).
func ValidArchetype(archetype uint8) bool {
	return archetype < NumArchetypes
}

// ParseArchetype parses an archetype name or index. Indexes are not range
// checked, so callers can submit (and have rejected) invalid archetypes.
func ParseArchetype(s string) (uint8, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range archetypeNames {
		if s == name {
			return uint8(i), nil
		}
	}
	n, err := strconv.ParseUint(s, 10, 8)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrUnknownArchetype, s)
	}
	return uint8(n), nil
}
