// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ava-labs/fortunevm/crypto/ed25519"
	"github.com/ava-labs/fortunevm/utils"
)

var keyCmd = &cobra.Command{
	Use: "key",
	RunE: func(*cobra.Command, []string) error {
		return ErrInvalidArgs
	},
}

var genKeyCmd = &cobra.Command{
	Use: "generate",
	RunE: func(*cobra.Command, []string) error {
		priv, err := ed25519.GeneratePrivateKey()
		if err != nil {
			return err
		}
		if err := handler.StoreKey(priv); err != nil {
			return err
		}
		utils.Outf(
			"{{green}}created address:{{/}} %s\n",
			priv.Address(),
		)
		return nil
	},
}

var importKeyCmd = &cobra.Command{
	Use: "import [hex]",
	PreRunE: func(_ *cobra.Command, args []string) error {
		if len(args) != 1 {
			return ErrInvalidArgs
		}
		return nil
	},
	RunE: func(_ *cobra.Command, args []string) error {
		priv, err := ed25519.HexToKey(args[0])
		if err != nil {
			return err
		}
		if err := handler.StoreKey(priv); err != nil {
			return err
		}
		utils.Outf(
			"{{green}}imported address:{{/}} %s\n",
			priv.Address(),
		)
		return nil
	},
}

var showKeyCmd = &cobra.Command{
	Use: "show",
	RunE: func(*cobra.Command, []string) error {
		priv, err := handler.Key()
		if err != nil {
			return err
		}
		utils.Outf("{{cyan}}address:{{/}} %s\n", priv.Address())
		return nil
	},
}
