// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cli

import "errors"

var (
	ErrNoKey  = errors.New("no key found, run `key generate` or `key import`")
	ErrClosed = errors.New("handler closed")
)
