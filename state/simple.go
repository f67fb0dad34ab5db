// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package state

import (
	"context"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/utils/maybe"
)

var (
	_ Immutable = (*ReadOnly)(nil)
	_ Mutable   = (*SimpleMutable)(nil)
)

// ReadOnly exposes a database as [Immutable].
type ReadOnly struct {
	db database.KeyValueReader
}

func NewReadOnly(db database.KeyValueReader) *ReadOnly {
	return &ReadOnly{db: db}
}

func (r *ReadOnly) GetValue(_ context.Context, k []byte) ([]byte, error) {
	return r.db.Get(k)
}

// SimpleMutable buffers changes on top of an [Immutable] without any scope
// enforcement.
type SimpleMutable struct {
	im Immutable

	changes map[string]maybe.Maybe[[]byte]
}

func NewSimpleMutable(im Immutable) *SimpleMutable {
	return &SimpleMutable{im, make(map[string]maybe.Maybe[[]byte])}
}

func (s *SimpleMutable) GetValue(ctx context.Context, k []byte) ([]byte, error) {
	if v, ok := s.changes[string(k)]; ok {
		if v.IsNothing() {
			return nil, database.ErrNotFound
		}
		return v.Value(), nil
	}
	return s.im.GetValue(ctx, k)
}

func (s *SimpleMutable) Insert(_ context.Context, k []byte, v []byte) error {
	s.changes[string(k)] = maybe.Some(v)
	return nil
}

func (s *SimpleMutable) Remove(_ context.Context, k []byte) error {
	s.changes[string(k)] = maybe.Nothing[[]byte]()
	return nil
}

// Commit writes the buffered changes to [w].
func (s *SimpleMutable) Commit(w database.KeyValueWriterDeleter) error {
	for k, v := range s.changes {
		if v.IsNothing() {
			if err := w.Delete([]byte(k)); err != nil {
				return err
			}
			continue
		}
		if err := w.Put([]byte(k), v.Value()); err != nil {
			return err
		}
	}
	clear(s.changes)
	return nil
}
