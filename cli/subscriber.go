// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cli

import (
	"context"

	"github.com/ava-labs/avalanchego/utils/logging"
	"go.uber.org/zap"

	"github.com/ava-labs/fortunevm/actions"
	"github.com/ava-labs/fortunevm/chain"
	"github.com/ava-labs/fortunevm/fortune"
)

func logResult(log logging.Logger) func(context.Context, *chain.Result) error {
	return func(_ context.Context, r *chain.Result) error {
		opened, ok := r.Output.(*actions.CookieOpened)
		if !ok {
			return nil
		}
		log.Info("cookie opened",
			zap.Stringer("user", opened.User),
			zap.String("archetype", fortune.ArchetypeName(opened.Archetype)),
			zap.Uint64("fortuneID", opened.FortuneID),
			zap.Stringer("rarity", opened.Rarity),
			zap.Uint64("slot", r.Slot),
		)
		return nil
	}
}
