// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package event

import (
	"context"
	"io"
	"sync"

	"gopkg.in/natefinch/lumberjack.v2"
)

var _ Subscription[struct{}] = (*Journal[struct{}])(nil)

// Encoder renders an event as a single journal line. Returning nil skips the
// event.
type Encoder[T any] func(T) ([]byte, error)

// JournalConfig controls rotation of the journal file.
type JournalConfig struct {
	Path       string `yaml:"path"       env:"PATH"`
	MaxSizeMB  int    `yaml:"maxSizeMB"  env:"MAX_SIZE_MB"`
	MaxBackups int    `yaml:"maxBackups" env:"MAX_BACKUPS"`
	Compress   bool   `yaml:"compress"   env:"COMPRESS"`
}

// Journal appends every accepted event to a size-rotated file.
type Journal[T any] struct {
	l   sync.Mutex
	w   io.WriteCloser
	enc Encoder[T]
}

func NewJournal[T any](cfg JournalConfig, enc Encoder[T]) *Journal[T] {
	return NewJournalWriter(&lumberjack.Logger{
		Filename:   cfg.Path,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		Compress:   cfg.Compress,
	}, enc)
}

// NewJournalWriter writes to [w] instead of a rotated file.
func NewJournalWriter[T any](w io.WriteCloser, enc Encoder[T]) *Journal[T] {
	return &Journal[T]{w: w, enc: enc}
}

func (j *Journal[T]) Accept(_ context.Context, t T) error {
	line, err := j.enc(t)
	if err != nil || line == nil {
		return err
	}

	j.l.Lock()
	defer j.l.Unlock()

	_, err = j.w.Write(append(line, '\n'))
	return err
}

func (j *Journal[T]) Close() error {
	j.l.Lock()
	defer j.l.Unlock()

	return j.w.Close()
}
