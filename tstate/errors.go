// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package tstate

import "errors"

var (
	ErrInvalidKeyOrPermission = errors.New("key is missing from scope or lacks the required permission")
	ErrInvalidKeyValue        = errors.New("invalid key or value")
)
