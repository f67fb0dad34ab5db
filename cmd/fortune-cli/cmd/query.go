// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/ava-labs/fortunevm/cli"
	"github.com/ava-labs/fortunevm/codec"
	"github.com/ava-labs/fortunevm/fortune"
	"github.com/ava-labs/fortunevm/storage"
	"github.com/ava-labs/fortunevm/utils"
)

// owner resolves --owner, falling back to the local key.
func owner() (codec.Address, error) {
	if len(ownerHex) > 0 {
		return codec.ParseAddress(ownerHex)
	}
	priv, err := handler.Key()
	if err != nil {
		return codec.EmptyAddress, err
	}
	return priv.Address(), nil
}

var cookieCmd = &cobra.Command{
	Use:   "cookie",
	Short: "Look up an opened cookie",
	RunE: func(*cobra.Command, []string) error {
		ctx := context.Background()
		addr, err := owner()
		if err != nil {
			return err
		}
		cookie, err := storage.GetCookie(ctx, handler.Ledger().State(), addr, queryCounter)
		if errors.Is(err, storage.ErrCookieNotFound) {
			utils.Outf("{{red}}no cookie at counter %d{{/}}\n", queryCounter)
			return nil
		}
		if err != nil {
			return err
		}
		cli.PrintFortune(cookie.Owner, queryCounter, cookie.Archetype, cookie.FortuneID, cookie.Rarity)
		return nil
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show the global open counter",
	RunE: func(*cobra.Command, []string) error {
		ctx := context.Background()
		im := handler.Ledger().State()
		lastSlot, err := storage.GetSlot(ctx, im)
		if err != nil {
			return err
		}
		stats, err := storage.GetStats(ctx, im)
		if errors.Is(err, storage.ErrStatsMissing) {
			utils.Outf("{{red}}stats not initialized, run init-stats{{/}}\n")
			return nil
		}
		if err != nil {
			return err
		}
		utils.Outf(
			"{{yellow}}total opens:{{/}} %d {{yellow}}last slot:{{/}} %d\n",
			stats.TotalOpens,
			lastSlot,
		)
		return nil
	},
}

var deriveCmd = &cobra.Command{
	Use:   "derive",
	Short: "Compute a fortune without opening a cookie",
	RunE: func(*cobra.Command, []string) error {
		addr, err := owner()
		if err != nil {
			return err
		}
		archetype, err := fortune.ParseArchetype(archetypeName)
		if err != nil {
			return err
		}
		outcome := fortune.DeriveOutcome(slot, addr, archetype, queryCounter)
		utils.Outf(
			"{{yellow}}slot:{{/}} %d {{yellow}}rarity score:{{/}} %d\n",
			slot,
			fortune.RarityScore(slot, addr, archetype),
		)
		cli.PrintFortune(addr, queryCounter, archetype, outcome.FortuneID, outcome.Rarity)
		return nil
	},
}
