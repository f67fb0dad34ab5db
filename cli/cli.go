// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cli

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/ava-labs/fortunevm/actions"
	"github.com/ava-labs/fortunevm/chain"
	"github.com/ava-labs/fortunevm/config"
	"github.com/ava-labs/fortunevm/crypto/ed25519"
	"github.com/ava-labs/fortunevm/event"
	"github.com/ava-labs/fortunevm/pebble"
	"github.com/ava-labs/fortunevm/trace"
	"github.com/ava-labs/fortunevm/utils"
)

// Handler owns everything a command needs: the persistent ledger, its
// logger and tracer, and the local key.
type Handler struct {
	cfg    *config.Config
	log    logging.Logger
	tracer trace.Tracer

	db     *pebble.Database
	dbReg  *prometheus.Registry
	ledger *chain.Ledger
}

func New(cfg *config.Config) (*Handler, error) {
	if _, err := utils.InitSubDirectory(cfg.DataDir, "logs"); err != nil {
		return nil, err
	}
	log := newLogger(cfg)
	tracer, err := trace.New(cfg.GetTraceConfig())
	if err != nil {
		return nil, err
	}
	db, dbReg, err := pebble.New(cfg.DatabasePath(), cfg.Pebble)
	if err != nil {
		return nil, err
	}
	clock, err := chain.NewSlotClock(cfg.GetGenesis(), cfg.SlotDuration)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	ledger, err := chain.NewLedger(
		log,
		tracer,
		db,
		clock,
		actions.NewJournal(cfg.JournalConfig()),
		event.SubscriptionFunc[*chain.Result]{AcceptF: logResult(log)},
	)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	log.Info("opened ledger",
		zap.String("database", cfg.DatabasePath()),
		zap.Duration("slotDuration", cfg.SlotDuration),
	)
	return &Handler{
		cfg:    cfg,
		log:    log,
		tracer: tracer,
		db:     db,
		dbReg:  dbReg,
		ledger: ledger,
	}, nil
}

func (h *Handler) Config() *config.Config { return h.cfg }
func (h *Handler) Logger() logging.Logger { return h.log }
func (h *Handler) Tracer() trace.Tracer   { return h.tracer }
func (h *Handler) Ledger() *chain.Ledger  { return h.ledger }

// Gatherer collects the metrics of the ledger and its database.
func (h *Handler) Gatherer() prometheus.Gatherer {
	return prometheus.Gatherers{h.ledger.Registry(), h.dbReg}
}

// Key loads the local key.
func (h *Handler) Key() (ed25519.PrivateKey, error) {
	key, err := ed25519.LoadKey(h.cfg.KeyPath())
	if errors.Is(err, os.ErrNotExist) {
		return ed25519.EmptyPrivateKey, ErrNoKey
	}
	return key, err
}

// StoreKey replaces the local key.
func (h *Handler) StoreKey(key ed25519.PrivateKey) error {
	if err := os.MkdirAll(filepath.Dir(h.cfg.KeyPath()), 0o700); err != nil {
		return err
	}
	return key.Save(h.cfg.KeyPath())
}

func (h *Handler) Close() error {
	errs := []error{
		h.ledger.Close(),
		h.db.Close(),
		h.tracer.Close(),
	}
	h.log.Stop()
	return errors.Join(errs...)
}
