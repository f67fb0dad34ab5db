// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package rpc

import "github.com/ava-labs/fortunevm/consts"

const (
	Name            = consts.Name
	JSONRPCEndpoint = "/fortuneapi"
)
