// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import (
	"context"
	"errors"

	"github.com/ava-labs/avalanchego/database"

	smath "github.com/ava-labs/avalanchego/utils/math"

	"github.com/ava-labs/fortunevm/codec"
	"github.com/ava-labs/fortunevm/keys"
	"github.com/ava-labs/fortunevm/state"
)

// Stats is the global singleton counting successful opens.
type Stats struct {
	TotalOpens uint64 `json:"totalOpens"`
	Tag        byte   `json:"tag"`
}

// StatsKey returns the fixed state key of the [Stats] singleton.
func StatsKey() []byte {
	k := make([]byte, 0, 1+len(statsSeed)+2)
	k = append(k, statsPrefix)
	k = append(k, statsSeed...)
	return keys.EncodeChunks(k, StatsChunks)
}

func MarshalStats(s *Stats) ([]byte, error) {
	p := codec.NewWriter(StatsLen, StatsLen)
	p.PackUint64(s.TotalOpens)
	p.PackByte(s.Tag)
	return p.Bytes(), p.Err()
}

func UnmarshalStats(b []byte) (*Stats, error) {
	p := codec.NewReader(b, StatsLen)
	var s Stats
	s.TotalOpens = p.UnpackUint64(false)
	s.Tag = p.UnpackByte()
	if err := p.Done(); err != nil {
		return nil, err
	}
	if s.Tag != statsPrefix {
		return nil, ErrInvalidTag
	}
	return &s, nil
}

// InitStats creates the singleton with zero opens. It refuses to run twice.
func InitStats(ctx context.Context, mu state.Mutable) error {
	k := StatsKey()
	_, err := mu.GetValue(ctx, k)
	switch {
	case err == nil:
		return ErrStatsExists
	case !errors.Is(err, database.ErrNotFound):
		return err
	}
	return putStats(ctx, mu, &Stats{})
}

// GetStats returns the singleton or [ErrStatsMissing].
func GetStats(ctx context.Context, im state.Immutable) (*Stats, error) {
	v, err := im.GetValue(ctx, StatsKey())
	if errors.Is(err, database.ErrNotFound) {
		return nil, ErrStatsMissing
	}
	if err != nil {
		return nil, err
	}
	return UnmarshalStats(v)
}

// IncrementStats adds one open to the singleton and returns the new total.
func IncrementStats(ctx context.Context, mu state.Mutable) (uint64, error) {
	s, err := GetStats(ctx, mu)
	if err != nil {
		return 0, err
	}
	total, err := smath.Add(s.TotalOpens, 1)
	if err != nil {
		return 0, ErrStatsOverflow
	}
	s.TotalOpens = total
	return total, putStats(ctx, mu, s)
}

func putStats(ctx context.Context, mu state.Mutable, s *Stats) error {
	s.Tag = statsPrefix
	v, err := MarshalStats(s)
	if err != nil {
		return err
	}
	return mu.Insert(ctx, StatsKey(), v)
}
