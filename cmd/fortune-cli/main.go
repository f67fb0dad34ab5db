// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// "fortune-cli" opens fortune cookies against a local ledger and serves
// read-only queries about them.
package main

import (
	"os"

	"github.com/ava-labs/fortunevm/cmd/fortune-cli/cmd"
	"github.com/ava-labs/fortunevm/utils"
)

func main() {
	if err := cmd.Execute(); err != nil {
		utils.Outf("{{red}}fortune-cli exited with error:{{/}} %+v\n", err)
		os.Exit(1)
	}
	os.Exit(0)
}
