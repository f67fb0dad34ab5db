// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"github.com/ava-labs/avalanchego/utils/metric"
	"github.com/ava-labs/avalanchego/utils/wrappers"
	"github.com/prometheus/client_golang/prometheus"
)

type ledgerMetrics struct {
	executed       *prometheus.CounterVec
	rejected       *prometheus.CounterVec
	stateChanges   prometheus.Counter
	allocations    prometheus.Counter
	writes         prometheus.Counter
	notifyFailures prometheus.Counter
	lastSlot       prometheus.Gauge
	submit         metric.Averager
}

func newMetrics() (*prometheus.Registry, *ledgerMetrics, error) {
	r := prometheus.NewRegistry()

	submit, err := metric.NewAverager(
		"ledger_submit",
		"time spent executing and committing a call",
		r,
	)
	if err != nil {
		return nil, nil, err
	}

	m := &ledgerMetrics{
		submit: submit,
		executed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ledger",
			Name:      "executed",
			Help:      "number of calls committed",
		}, []string{"action"}),
		rejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ledger",
			Name:      "rejected",
			Help:      "number of calls that failed with no effect",
		}, []string{"action"}),
		stateChanges: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "ledger",
			Name:      "state_changes",
			Help:      "number of keys written",
		}),
		allocations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "ledger",
			Name:      "allocations",
			Help:      "number of keys created",
		}),
		writes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "ledger",
			Name:      "writes",
			Help:      "number of keys written or removed",
		}),
		notifyFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "ledger",
			Name:      "notify_failures",
			Help:      "number of subscriber errors after commit",
		}),
		lastSlot: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "ledger",
			Name:      "last_slot",
			Help:      "slot of the last committed call",
		}),
	}
	errs := wrappers.Errs{}
	errs.Add(
		r.Register(m.executed),
		r.Register(m.rejected),
		r.Register(m.stateChanges),
		r.Register(m.allocations),
		r.Register(m.writes),
		r.Register(m.notifyFailures),
		r.Register(m.lastSlot),
	)
	return r, m, errs.Err
}
