// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package prompt

import (
	"errors"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"

	"github.com/ava-labs/fortunevm/codec"
	"github.com/ava-labs/fortunevm/fortune"
	"github.com/ava-labs/fortunevm/utils"
)

var (
	ErrInputEmpty    = errors.New("input is empty")
	ErrInvalidChoice = errors.New("invalid choice")
)

func Address(label string) (codec.Address, error) {
	promptText := promptui.Prompt{
		Label: label,
		Validate: func(input string) error {
			_, err := codec.ParseAddress(strings.TrimSpace(input))
			return err
		},
	}
	owner, err := promptText.Run()
	if err != nil {
		return codec.EmptyAddress, err
	}
	return codec.ParseAddress(strings.TrimSpace(owner))
}

func Uint64(label string) (uint64, error) {
	parse := func(input string) (uint64, error) {
		input = strings.TrimSpace(input)
		if len(input) == 0 {
			return 0, ErrInputEmpty
		}
		return strconv.ParseUint(input, 10, 64)
	}
	promptText := promptui.Prompt{
		Label: label,
		Validate: func(input string) error {
			_, err := parse(input)
			return err
		},
	}
	raw, err := promptText.Run()
	if err != nil {
		return 0, err
	}
	return parse(raw)
}

// Archetype lets the user pick one of the named archetypes.
func Archetype(label string) (uint8, error) {
	sel := promptui.Select{
		Label: label,
		Items: fortune.Archetypes(),
	}
	index, _, err := sel.Run()
	if err != nil {
		return 0, err
	}
	return uint8(index), nil
}

func Continue() (bool, error) {
	promptText := promptui.Prompt{
		Label: "continue (y/n)",
		Validate: func(input string) error {
			if len(input) == 0 {
				return ErrInputEmpty
			}
			lower := strings.ToLower(input)
			if lower == "y" || lower == "n" {
				return nil
			}
			return ErrInvalidChoice
		},
	}
	rawContinue, err := promptText.Run()
	if err != nil {
		return false, err
	}
	cont := strings.ToLower(rawContinue)
	if cont == "n" {
		utils.Outf("{{red}}exiting...{{/}}\n")
		return false, nil
	}
	return true, nil
}
