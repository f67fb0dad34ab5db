// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package rpc

import (
	"context"
	"strings"

	"github.com/ava-labs/fortunevm/codec"
)

type JSONRPCClient struct {
	requester *EndpointRequester
}

func NewJSONRPCClient(uri string) *JSONRPCClient {
	uri = strings.TrimSuffix(uri, "/")
	uri += JSONRPCEndpoint
	return &JSONRPCClient{requester: NewEndpointRequester(uri, Name)}
}

func (cli *JSONRPCClient) Ping(ctx context.Context) (bool, error) {
	resp := new(PingReply)
	err := cli.requester.SendRequest(ctx,
		"ping",
		nil,
		resp,
	)
	return resp.Success, err
}

func (cli *JSONRPCClient) Stats(ctx context.Context) (*StatsReply, error) {
	resp := new(StatsReply)
	err := cli.requester.SendRequest(
		ctx,
		"stats",
		nil,
		resp,
	)
	return resp, err
}

func (cli *JSONRPCClient) Cookie(ctx context.Context, owner codec.Address, counter uint64) (*CookieReply, error) {
	resp := new(CookieReply)
	err := cli.requester.SendRequest(
		ctx,
		"cookie",
		&CookieArgs{
			Owner:   owner,
			Counter: counter,
		},
		resp,
	)
	return resp, err
}

func (cli *JSONRPCClient) NextCounter(ctx context.Context, owner codec.Address) (uint64, error) {
	resp := new(NextCounterReply)
	err := cli.requester.SendRequest(
		ctx,
		"nextCounter",
		&NextCounterArgs{Owner: owner},
		resp,
	)
	return resp.Counter, err
}

func (cli *JSONRPCClient) Derive(ctx context.Context, args *DeriveArgs) (*DeriveReply, error) {
	resp := new(DeriveReply)
	err := cli.requester.SendRequest(
		ctx,
		"derive",
		args,
		resp,
	)
	return resp, err
}
