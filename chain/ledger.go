// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/ava-labs/fortunevm/codec"
	"github.com/ava-labs/fortunevm/event"
	"github.com/ava-labs/fortunevm/keys"
	"github.com/ava-labs/fortunevm/state"
	"github.com/ava-labs/fortunevm/storage"
	"github.com/ava-labs/fortunevm/trace"
	"github.com/ava-labs/fortunevm/tstate"
)

// Ledger is the runtime actions execute in. It supplies the slot and caller
// identity, restricts every call to the keys it declares, and makes each call
// atomic: either all of its writes are persisted and subscribers notified, or
// nothing happens.
//
// Calls are serialized, so two callers racing for the same key cannot both
// create it and no increment is lost.
type Ledger struct {
	log     logging.Logger
	tracer  trace.Tracer
	db      Database
	clock   Clock
	subs    []event.Subscription[*Result]
	metrics *ledgerMetrics
	reg     *prometheus.Registry

	l sync.Mutex
}

func NewLedger(
	log logging.Logger,
	tracer trace.Tracer,
	db Database,
	clock Clock,
	subs ...event.Subscription[*Result],
) (*Ledger, error) {
	reg, metrics, err := newMetrics()
	if err != nil {
		return nil, err
	}
	return &Ledger{
		log:     log,
		tracer:  tracer,
		db:      db,
		clock:   clock,
		subs:    subs,
		metrics: metrics,
		reg:     reg,
	}, nil
}

// Registry returns the ledger's metrics.
func (l *Ledger) Registry() *prometheus.Registry {
	return l.reg
}

// State returns a read-only view of committed state.
func (l *Ledger) State() state.Immutable {
	return state.NewReadOnly(l.db)
}

// Submit executes [action] on behalf of [actor].
func (l *Ledger) Submit(ctx context.Context, actor codec.Address, action Action) (*Result, error) {
	ctx, span := l.tracer.Start(ctx, "Ledger.Submit")
	defer span.End()

	l.l.Lock()
	defer l.l.Unlock()

	start := time.Now()
	label := strconv.Itoa(int(action.GetTypeID()))
	result, ops, err := l.submit(ctx, actor, action)
	if err != nil {
		l.metrics.rejected.WithLabelValues(label).Inc()
		l.log.Debug("call rejected",
			zap.Stringer("actor", actor),
			zap.Uint8("action", action.GetTypeID()),
			zap.Error(err),
		)
		return nil, err
	}
	l.metrics.executed.WithLabelValues(label).Inc()
	l.metrics.stateChanges.Add(float64(ops.changes))
	l.metrics.allocations.Add(float64(ops.allocations))
	l.metrics.writes.Add(float64(ops.writes))
	l.metrics.lastSlot.Set(float64(result.Slot))
	l.metrics.submit.Observe(float64(time.Since(start)))
	l.log.Debug("call committed",
		zap.Stringer("actor", actor),
		zap.Uint8("action", action.GetTypeID()),
		zap.Uint64("slot", result.Slot),
		zap.Int("changes", ops.changes),
	)

	// State is already persisted, so subscriber failures are reported but do
	// not fail the call.
	if err := event.NotifyAll(ctx, result, l.subs...); err != nil {
		l.metrics.notifyFailures.Inc()
		l.log.Warn("failed to notify subscribers",
			zap.Uint64("slot", result.Slot),
			zap.Error(err),
		)
	}
	return result, nil
}

// keyOps summarizes what a committed call did to state.
type keyOps struct {
	changes     int
	allocations int
	writes      int
}

func (l *Ledger) submit(ctx context.Context, actor codec.Address, action Action) (*Result, keyOps, error) {
	floor, err := storage.GetSlot(ctx, l.State())
	if err != nil {
		return nil, keyOps{}, err
	}
	slot, err := l.clock.Slot(ctx, floor)
	if err != nil {
		return nil, keyOps{}, err
	}
	if slot < floor {
		return nil, keyOps{}, fmt.Errorf("%w: %d < %d", ErrClockRegressed, slot, floor)
	}

	stateKeys := action.StateKeys(actor)
	scopeStorage, err := l.fetch(stateKeys)
	if err != nil {
		return nil, keyOps{}, err
	}

	// It is critical we explicitly set the scope before each call is
	// processed
	ts := tstate.New(len(stateKeys))
	tsv := ts.NewView(stateKeys, scopeStorage)
	output, err := action.Execute(ctx, tsv, slot, actor)
	if err != nil {
		return nil, keyOps{}, err
	}
	tsv.Commit()
	allocations, writes := tsv.KeyOperations()

	batch := l.db.NewBatch()
	defer l.release(batch)
	if err := ts.WriteChanges(batch); err != nil {
		return nil, keyOps{}, err
	}
	if slot != floor {
		if err := storage.SetSlot(batch, slot); err != nil {
			return nil, keyOps{}, err
		}
	}
	if err := batch.Write(); err != nil {
		return nil, keyOps{}, err
	}
	return &Result{
		Slot:   slot,
		Actor:  actor,
		Action: action.GetTypeID(),
		Output: output,
	}, keyOps{
		changes:     ts.PendingChanges(),
		allocations: len(allocations),
		writes:      len(writes),
	}, nil
}

func (l *Ledger) release(batch database.Batch) {
	r, ok := batch.(BatchReleaser)
	if !ok {
		return
	}
	if err := r.Release(); err != nil {
		l.log.Warn("failed to release batch", zap.Error(err))
	}
}

func (l *Ledger) fetch(stateKeys state.Keys) (map[string][]byte, error) {
	scopeStorage := make(map[string][]byte, len(stateKeys))
	for k := range stateKeys {
		v, err := l.db.Get([]byte(k))
		if errors.Is(err, database.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		if !keys.VerifyValue([]byte(k), v) {
			return nil, ErrInvalidKeyValue
		}
		scopeStorage[k] = v
	}
	return scopeStorage, nil
}

// Close closes every subscriber.
func (l *Ledger) Close() error {
	return event.CloseAll(l.subs...)
}
