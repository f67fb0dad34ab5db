// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"context"
	"math/rand"

	"github.com/spf13/cobra"

	"github.com/ava-labs/fortunevm/actions"
	"github.com/ava-labs/fortunevm/cli"
	"github.com/ava-labs/fortunevm/cli/prompt"
	"github.com/ava-labs/fortunevm/codec"
	"github.com/ava-labs/fortunevm/fortune"
	"github.com/ava-labs/fortunevm/state"
	"github.com/ava-labs/fortunevm/storage"
	"github.com/ava-labs/fortunevm/utils"
)

var initStatsCmd = &cobra.Command{
	Use:   "init-stats",
	Short: "Create the global open counter",
	RunE: func(*cobra.Command, []string) error {
		ctx := context.Background()
		priv, err := handler.Key()
		if err != nil {
			return err
		}
		result, err := handler.Ledger().Submit(ctx, priv.Address(), &actions.InitializeStats{})
		if err != nil {
			return err
		}
		utils.Outf("{{green}}stats initialized{{/}} {{yellow}}slot:{{/}} %d\n", result.Slot)
		return nil
	},
}

var openCmd = &cobra.Command{
	Use:   "open",
	Short: "Open a fortune cookie",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := context.Background()
		priv, err := handler.Key()
		if err != nil {
			return err
		}
		owner := priv.Address()

		archetype, err := chooseArchetype()
		if err != nil {
			return err
		}
		next, err := resolveCounter(
			ctx,
			handler.Ledger().State(),
			owner,
			openCounter,
			cmd.Flags().Changed("counter"),
		)
		if err != nil {
			return err
		}

		result, err := handler.Ledger().Submit(ctx, owner, &actions.OpenCookie{
			Archetype: archetype,
			Counter:   next,
		})
		if err != nil {
			return err
		}
		opened := result.Output.(*actions.CookieOpened)
		utils.Outf("{{green}}cookie opened{{/}} {{yellow}}slot:{{/}} %d {{yellow}}total opens:{{/}} %d\n", result.Slot, opened.TotalOpens)
		cli.PrintFortune(owner, opened.Counter, opened.Archetype, opened.FortuneID, opened.Rarity)
		return nil
	},
}

// resolveCounter returns [counter] when it was given explicitly and the first
// unused counter of [owner] otherwise.
func resolveCounter(
	ctx context.Context,
	im state.Immutable,
	owner codec.Address,
	counter uint64,
	set bool,
) (uint64, error) {
	if set {
		return counter, nil
	}
	return storage.NextCounter(ctx, im, owner)
}

func chooseArchetype() (uint8, error) {
	switch {
	case randomPick && len(archetypeName) > 0:
		return 0, ErrConflictingFlags
	case randomPick:
		return uint8(rand.Intn(fortune.NumArchetypes)), nil //nolint:gosec
	case len(archetypeName) > 0:
		return fortune.ParseArchetype(archetypeName)
	default:
		return prompt.Archetype("archetype")
	}
}
