// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package fortune derives the outcome of opening a cookie.
//
// The derivation is a pure function of the slot, the owner's identity, the
// archetype and the caller's counter. It is deliberately simple, weak and
// reproducible: anyone holding the inputs can recompute the result. All
// arithmetic is on uint64 and wraps modulo 2^64.
package fortune

import "github.com/ava-labs/fortunevm/codec"

const (
	// NumFortunes bounds the fortune id to [0, NumFortunes).
	NumFortunes = 50

	// NumArchetypes bounds valid archetypes to [0, NumArchetypes).
	NumArchetypes = 4

	raritySpace = 100

	// Scores in [0, uncommonThreshold) are common, [uncommonThreshold,
	// rareThreshold) uncommon, [rareThreshold, legendaryThreshold) rare and
	// the remaining single slot legendary.
	uncommonThreshold  = 70
	rareThreshold      = 90
	legendaryThreshold = 99

	raritySlotMultiplier = 7
	rarityMultiplier     = 13
)

// Outcome is the result of a derivation.
type Outcome struct {
	FortuneID uint64 `json:"fortuneId"`
	Rarity    Rarity `json:"rarity"`
}

// Derive maps the inputs of an open to a fortune id in [0, NumFortunes) and a
// rarity tier. It never fails.
func Derive(slot uint64, owner codec.Address, archetype uint8, counter uint64) (uint64, Rarity) {
	return FortuneID(slot, owner, archetype, counter), TierForScore(RarityScore(slot, owner, archetype))
}

// DeriveOutcome is [Derive] returning an [Outcome].
func DeriveOutcome(slot uint64, owner codec.Address, archetype uint8, counter uint64) Outcome {
	id, rarity := Derive(slot, owner, archetype, counter)
	return Outcome{FortuneID: id, Rarity: rarity}
}

// FortuneID walks the identity forwards, weighting byte i by i+1, on top of
// the slot, then adds the archetype and the counter.
func FortuneID(slot uint64, owner codec.Address, archetype uint8, counter uint64) uint64 {
	seed := slot
	for i, b := range owner {
		seed += uint64(b) * uint64(i+1)
	}
	seed += uint64(archetype)
	seed += counter
	return seed % NumFortunes
}

// RarityScore walks the identity backwards, weighting the i-th byte from the
// end by i+3, on top of 7*slot, then adds the archetype and scales by 13.
// The counter does not participate. The result is in [0, 100).
func RarityScore(slot uint64, owner codec.Address, archetype uint8) uint64 {
	seed := slot * raritySlotMultiplier
	for i := 0; i < len(owner); i++ {
		b := owner[len(owner)-1-i]
		seed += uint64(b) * uint64(i+3)
	}
	seed = (seed + uint64(archetype)) * rarityMultiplier
	return seed % raritySpace
}

// TierForScore maps a rarity score in [0, 100) to its tier. Scores outside
// that range are folded into it first.
func TierForScore(score uint64) Rarity {
	switch score %= raritySpace; {
	case score < uncommonThreshold:
		return Common
	case score < rareThreshold:
		return Uncommon
	case score < legendaryThreshold:
		return Rare
	default:
		return Legendary
	}
}
