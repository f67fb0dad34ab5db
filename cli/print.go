// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cli

import (
	"github.com/ava-labs/fortunevm/codec"
	"github.com/ava-labs/fortunevm/fortune"
	"github.com/ava-labs/fortunevm/utils"
)

var rarityColors = [fortune.NumRarities]string{"white", "green", "blue", "magenta"}

func rarityColor(r fortune.Rarity) string {
	if !r.Valid() {
		return "red"
	}
	return rarityColors[r]
}

// PrintFortune renders an opened or looked up cookie.
func PrintFortune(owner codec.Address, counter uint64, archetype uint8, fortuneID uint64, rarity fortune.Rarity) {
	utils.Outf(
		"{{yellow}}owner:{{/}} %s {{yellow}}counter:{{/}} %d\n",
		owner,
		counter,
	)
	utils.Outf(
		"{{yellow}}archetype:{{/}} %s {{yellow}}fortune:{{/}} %d {{yellow}}rarity:{{/}} {{%s}}{{bold}}%s{{/}}\n",
		fortune.ArchetypeName(archetype),
		fortuneID,
		rarityColor(rarity),
		rarity,
	)
}
