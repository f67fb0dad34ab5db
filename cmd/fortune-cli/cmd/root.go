// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ava-labs/fortunevm/cli"
	"github.com/ava-labs/fortunevm/config"
	"github.com/ava-labs/fortunevm/utils"
)

var (
	handler *cli.Handler

	configFile string
	dataDir    string

	archetypeName string
	openCounter   uint64
	queryCounter  uint64
	randomPick    bool
	slot          uint64
	ownerHex      string

	rootCmd = &cobra.Command{
		Use:        "fortune-cli",
		Short:      "FortuneVM CLI",
		SuggestFor: []string{"fortune-cli", "fortunecli"},
	}
)

func init() {
	cobra.EnablePrefixMatching = true
	rootCmd.AddCommand(
		keyCmd,
		initStatsCmd,
		openCmd,
		cookieCmd,
		statsCmd,
		deriveCmd,
		serveCmd,
	)
	rootCmd.PersistentFlags().StringVar(
		&configFile,
		"config",
		"",
		"path to a YAML config file",
	)
	rootCmd.PersistentFlags().StringVar(
		&dataDir,
		"data-dir",
		"",
		"data directory (overrides the config file)",
	)
	rootCmd.PersistentPreRunE = func(*cobra.Command, []string) error {
		cfg, err := config.Load(configFile)
		if err != nil {
			return err
		}
		if len(dataDir) > 0 {
			cfg.DataDir = dataDir
		}
		utils.Outf("{{yellow}}data dir:{{/}} %s\n", cfg.DataDir)
		handler, err = cli.New(cfg)
		return err
	}
	rootCmd.PersistentPostRunE = func(*cobra.Command, []string) error {
		if handler == nil {
			return nil
		}
		return handler.Close()
	}
	rootCmd.SilenceErrors = true

	// key
	keyCmd.AddCommand(
		genKeyCmd,
		importKeyCmd,
		showKeyCmd,
	)

	// open
	openCmd.PersistentFlags().StringVar(
		&archetypeName,
		"archetype",
		"",
		"archetype name or index (prompts if empty)",
	)
	openCmd.PersistentFlags().Uint64Var(
		&openCounter,
		"counter",
		0,
		"counter to open with (defaults to the next unused counter)",
	)
	openCmd.PersistentFlags().BoolVar(
		&randomPick,
		"random",
		false,
		"pick a random archetype",
	)

	// queries
	for _, c := range []*cobra.Command{cookieCmd, deriveCmd} {
		c.PersistentFlags().StringVar(
			&ownerHex,
			"owner",
			"",
			"owner address (defaults to the local key)",
		)
	}
	cookieCmd.PersistentFlags().Uint64Var(
		&queryCounter,
		"counter",
		0,
		"counter of the cookie",
	)
	deriveCmd.PersistentFlags().StringVar(
		&archetypeName,
		"archetype",
		"",
		"archetype name or index",
	)
	deriveCmd.PersistentFlags().Uint64Var(
		&queryCounter,
		"counter",
		0,
		"counter",
	)
	deriveCmd.PersistentFlags().Uint64Var(
		&slot,
		"slot",
		0,
		"slot",
	)
}

func Execute() error {
	return rootCmd.Execute()
}
