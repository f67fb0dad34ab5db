// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package rpc

import (
	"errors"
	"net/http"

	"github.com/ava-labs/avalanchego/utils/logging"
	"go.uber.org/zap"

	"github.com/ava-labs/fortunevm/actions"
	"github.com/ava-labs/fortunevm/codec"
	"github.com/ava-labs/fortunevm/fortune"
	"github.com/ava-labs/fortunevm/state"
	"github.com/ava-labs/fortunevm/storage"
	"github.com/ava-labs/fortunevm/trace"
)

// Ledger is the read side of the ledger the server answers from.
type Ledger interface {
	State() state.Immutable
}

// JSONRPCServer answers read-only queries about cookies and stats.
type JSONRPCServer struct {
	log    logging.Logger
	tracer trace.Tracer
	ledger Ledger
}

func NewJSONRPCServer(log logging.Logger, tracer trace.Tracer, ledger Ledger) *JSONRPCServer {
	return &JSONRPCServer{
		log:    log,
		tracer: tracer,
		ledger: ledger,
	}
}

type PingReply struct {
	Success bool `json:"success"`
}

func (j *JSONRPCServer) Ping(_ *http.Request, _ *struct{}, reply *PingReply) (err error) {
	j.log.Info("ping")
	reply.Success = true
	return nil
}

type StatsReply struct {
	// Initialized is false until InitializeStats has succeeded.
	Initialized bool   `json:"initialized"`
	TotalOpens  uint64 `json:"totalOpens"`
	Slot        uint64 `json:"slot"`
}

func (j *JSONRPCServer) Stats(req *http.Request, _ *struct{}, reply *StatsReply) error {
	ctx, span := j.tracer.Start(req.Context(), "JSONRPCServer.Stats")
	defer span.End()

	im := j.ledger.State()
	slot, err := storage.GetSlot(ctx, im)
	if err != nil {
		return err
	}
	reply.Slot = slot

	stats, err := storage.GetStats(ctx, im)
	if errors.Is(err, storage.ErrStatsMissing) {
		return nil
	}
	if err != nil {
		return err
	}
	reply.Initialized = true
	reply.TotalOpens = stats.TotalOpens
	return nil
}

type CookieArgs struct {
	Owner   codec.Address `json:"owner"`
	Counter uint64        `json:"counter"`
}

type CookieReply struct {
	Owner         codec.Address  `json:"owner"`
	Archetype     uint8          `json:"archetype"`
	ArchetypeName string         `json:"archetypeName"`
	FortuneID     uint64         `json:"fortuneId"`
	Rarity        fortune.Rarity `json:"rarity"`
}

func (j *JSONRPCServer) Cookie(req *http.Request, args *CookieArgs, reply *CookieReply) error {
	ctx, span := j.tracer.Start(req.Context(), "JSONRPCServer.Cookie")
	defer span.End()

	cookie, err := storage.GetCookie(ctx, j.ledger.State(), args.Owner, args.Counter)
	if err != nil {
		return err
	}
	reply.Owner = cookie.Owner
	reply.Archetype = cookie.Archetype
	reply.ArchetypeName = fortune.ArchetypeName(cookie.Archetype)
	reply.FortuneID = cookie.FortuneID
	reply.Rarity = cookie.Rarity
	return nil
}

type NextCounterArgs struct {
	Owner codec.Address `json:"owner"`
}

type NextCounterReply struct {
	Counter uint64 `json:"counter"`
}

func (j *JSONRPCServer) NextCounter(req *http.Request, args *NextCounterArgs, reply *NextCounterReply) error {
	ctx, span := j.tracer.Start(req.Context(), "JSONRPCServer.NextCounter")
	defer span.End()

	counter, err := storage.NextCounter(ctx, j.ledger.State(), args.Owner)
	if err != nil {
		return err
	}
	reply.Counter = counter
	return nil
}

type DeriveArgs struct {
	Slot      uint64        `json:"slot"`
	Owner     codec.Address `json:"owner"`
	Archetype uint8         `json:"archetype"`
	Counter   uint64        `json:"counter"`
}

type DeriveReply struct {
	FortuneID   uint64         `json:"fortuneId"`
	RarityScore uint64         `json:"rarityScore"`
	Rarity      fortune.Rarity `json:"rarity"`
}

// Derive runs the derivation without touching state.
func (j *JSONRPCServer) Derive(_ *http.Request, args *DeriveArgs, reply *DeriveReply) error {
	if !fortune.ValidArchetype(args.Archetype) {
		return actions.ErrInvalidArchetype
	}
	reply.FortuneID = fortune.FortuneID(args.Slot, args.Owner, args.Archetype, args.Counter)
	reply.RarityScore = fortune.RarityScore(args.Slot, args.Owner, args.Archetype)
	reply.Rarity = fortune.TierForScore(reply.RarityScore)
	j.log.Debug("derived fortune",
		zap.Stringer("owner", args.Owner),
		zap.Uint64("slot", args.Slot),
		zap.Uint64("fortuneID", reply.FortuneID),
		zap.Stringer("rarity", reply.Rarity),
	)
	return nil
}
