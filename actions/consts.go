// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

// Action and output type IDs. Outputs reuse the ID of the action that
// produces them.
const (
	InitializeStatsID uint8 = 0
	OpenCookieID      uint8 = 1
)
