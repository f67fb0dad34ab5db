// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"encoding/json"

	"github.com/ava-labs/fortunevm/chain"
	"github.com/ava-labs/fortunevm/codec"
	"github.com/ava-labs/fortunevm/event"
)

var _ event.Encoder[*chain.Result] = EncodeJournalEntry

// JournalEntry is one line of the event journal.
type JournalEntry struct {
	Slot  uint64        `json:"slot"`
	Event codec.Bytes   `json:"event"`
	Data  *CookieOpened `json:"data"`
}

// EncodeJournalEntry renders [CookieOpened] results as JSON journal lines and
// skips every other result.
func EncodeJournalEntry(r *chain.Result) ([]byte, error) {
	opened, ok := r.Output.(*CookieOpened)
	if !ok {
		return nil, nil
	}
	raw, err := opened.MarshalEvent()
	if err != nil {
		return nil, err
	}
	return json.Marshal(&JournalEntry{
		Slot:  r.Slot,
		Event: raw,
		Data:  opened,
	})
}

// NewJournal returns a subscription appending every opened cookie to the
// journal described by [cfg].
func NewJournal(cfg event.JournalConfig) *event.Journal[*chain.Result] {
	return event.NewJournal(cfg, EncodeJournalEntry)
}
