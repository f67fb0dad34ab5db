// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package pebble

import (
	"errors"
	"slices"
	"sync"
	"time"

	"github.com/ava-labs/avalanchego/database"
	"github.com/cockroachdb/pebble"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	_ database.Batch               = (*batch)(nil)
	_ interface{ Release() error } = (*batch)(nil)
)

type Config struct {
	CacheSize                   int  `yaml:"cacheSize"                   env:"CACHE_SIZE"`
	BytesPerSync                int  `yaml:"bytesPerSync"                env:"BYTES_PER_SYNC"`
	WALBytesPerSync             int  `yaml:"walBytesPerSync"             env:"WAL_BYTES_PER_SYNC"`
	MemTableStopWritesThreshold int  `yaml:"memTableStopWritesThreshold" env:"MEM_TABLE_STOP_WRITES_THRESHOLD"`
	MemTableSize                int  `yaml:"memTableSize"                env:"MEM_TABLE_SIZE"`
	MaxOpenFiles                int  `yaml:"maxOpenFiles"                env:"MAX_OPEN_FILES"`
	ConcurrentCompactions       int  `yaml:"concurrentCompactions"       env:"CONCURRENT_COMPACTIONS"`
	Sync                        bool `yaml:"sync"                        env:"SYNC"`
}

func NewDefaultConfig() Config {
	return Config{
		CacheSize:                   64 * 1024 * 1024,
		BytesPerSync:                1024 * 1024,
		WALBytesPerSync:             1024 * 1024,
		MemTableStopWritesThreshold: 8,
		MemTableSize:                16 * 1024 * 1024,
		MaxOpenFiles:                1_024,
		ConcurrentCompactions:       2,
		Sync:                        true,
	}
}

// Database is the persistent ledger store. It implements the key/value
// reader and batcher the ledger needs on top of pebble.
type Database struct {
	db      *pebble.DB
	cache   *pebble.Cache
	sync    bool
	metrics *metrics

	closing chan struct{}
	closed  sync.Once
	wg      sync.WaitGroup
}

func New(file string, cfg Config) (*Database, *prometheus.Registry, error) {
	// These default settings are based on https://github.com/ethereum/go-ethereum/blob/master/ethdb/pebble/pebble.go
	d := &Database{
		cache:   pebble.NewCache(int64(cfg.CacheSize)),
		sync:    cfg.Sync,
		closing: make(chan struct{}),
	}
	opts := &pebble.Options{
		Cache:                       d.cache,
		BytesPerSync:                cfg.BytesPerSync,
		WALBytesPerSync:             cfg.WALBytesPerSync,
		MemTableStopWritesThreshold: cfg.MemTableStopWritesThreshold,
		MemTableSize:                uint64(cfg.MemTableSize),
		MaxOpenFiles:                cfg.MaxOpenFiles,
		MaxConcurrentCompactions:    func() int { return cfg.ConcurrentCompactions },
		Levels:                      make([]pebble.LevelOptions, 7),
	}
	for i := 0; i < len(opts.Levels); i++ {
		l := &opts.Levels[i]
		l.BlockSize = 32 * 1024
		l.IndexBlockSize = 256 * 1024
		l.FilterPolicy = nil
		if i > 0 {
			l.TargetFileSize = opts.Levels[i-1].TargetFileSize * 2
		}
		l.EnsureDefaults()
	}
	registry, metrics, err := newMetrics()
	if err != nil {
		d.cache.Unref()
		return nil, nil, err
	}
	d.metrics = metrics
	opts.EventListener = &pebble.EventListener{
		CompactionBegin: d.onCompactionBegin,
		CompactionEnd:   d.onCompactionEnd,
		WriteStallBegin: d.onWriteStallBegin,
		WriteStallEnd:   d.onWriteStallEnd,
	}
	db, err := pebble.Open(file, opts)
	if err != nil {
		d.cache.Unref()
		return nil, nil, err
	}
	d.db = db
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		d.collectMetrics()
	}()
	return d, registry, nil
}

func (db *Database) Has(key []byte) (bool, error) {
	_, closer, err := db.db.Get(key)
	if errors.Is(err, pebble.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, closer.Close()
}

func (db *Database) Get(key []byte) ([]byte, error) {
	start := time.Now()
	defer func() {
		db.metrics.getLatency.Observe(float64(time.Since(start)))
	}()

	v, closer, err := db.db.Get(key)
	if errors.Is(err, pebble.ErrNotFound) {
		return nil, database.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	// The value is only valid until [closer] is closed.
	value := slices.Clone(v)
	return value, closer.Close()
}

func (db *Database) Put(key []byte, value []byte) error {
	return db.db.Set(key, value, db.writeOptions())
}

func (db *Database) Delete(key []byte) error {
	return db.db.Delete(key, db.writeOptions())
}

func (db *Database) NewBatch() database.Batch {
	return &batch{db: db, b: db.db.NewBatch()}
}

func (db *Database) writeOptions() *pebble.WriteOptions {
	if db.sync {
		return pebble.Sync
	}
	return pebble.NoSync
}

func (db *Database) Close() error {
	var err error
	db.closed.Do(func() {
		close(db.closing)
		db.wg.Wait()
		err = db.db.Close()
		db.cache.Unref()
	})
	return err
}

// batch writes to pebble and keeps a copy of every operation so it can be
// replayed onto another writer. It must be released once it is no longer
// needed so pebble can reuse its buffers.
type batch struct {
	database.BatchOps

	db *Database
	b  *pebble.Batch
}

func (b *batch) Put(key []byte, value []byte) error {
	if b.b == nil {
		return ErrBatchReleased
	}
	if err := b.BatchOps.Put(key, value); err != nil {
		return err
	}
	return b.b.Set(key, value, nil)
}

func (b *batch) Delete(key []byte) error {
	if b.b == nil {
		return ErrBatchReleased
	}
	if err := b.BatchOps.Delete(key); err != nil {
		return err
	}
	return b.b.Delete(key, nil)
}

func (b *batch) Write() error {
	if b.b == nil {
		return ErrBatchReleased
	}
	start := time.Now()
	if err := b.b.Commit(b.db.writeOptions()); err != nil {
		return err
	}
	b.db.metrics.writeLatency.Observe(float64(time.Since(start)))
	b.db.metrics.batches.Inc()
	return nil
}

func (b *batch) Reset() {
	b.BatchOps.Reset()
	if b.b != nil {
		b.b.Reset()
	}
}

// Release returns the underlying pebble batch to its pool. Calling it more
// than once is a no-op; every other call fails afterwards.
func (b *batch) Release() error {
	if b.b == nil {
		return nil
	}
	err := b.b.Close()
	b.b = nil
	return err
}

func (b *batch) Inner() database.Batch {
	return b
}
