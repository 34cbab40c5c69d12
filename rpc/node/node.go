// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/shipchain/vaultd/counter"
	"github.com/shipchain/vaultd/engine"
	"github.com/shipchain/vaultd/rpc/ratelimit"
)

const (
	rateLimitNode = 200
	rateBurstNode = 100
)

// Node - type for RPC calls
type Node struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Start   time.Time
	Version string
	engine  *engine.Engine
	counter *counter.Counter
}

// InfoArguments - empty arguments for info request
type InfoArguments struct{}

// InfoReply - results from info request
type InfoReply struct {
	Success      bool   `json:"success"`
	Version      string `json:"version"`
	Uptime       string `json:"uptime"`
	RPCs         uint64 `json:"rpcs"`
	LockedVaults int    `json:"lockedVaults"`
	MaximumDepth int    `json:"maximumLinkDepth"`
}

// New - create node service
func New(log *logger.L, start time.Time, version string, counter *counter.Counter, e *engine.Engine) *Node {
	return &Node{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitNode, rateBurstNode),
		Start:   start,
		Version: version,
		engine:  e,
		counter: counter,
	}
}

// Info - return some information about this daemon
// only enough for clients to determine its state
func (node *Node) Info(_ *InfoArguments, reply *InfoReply) error {

	if err := ratelimit.Limit(node.Limiter); nil != err {
		return err
	}

	reply.Success = true
	reply.Version = node.Version
	reply.Uptime = time.Since(node.Start).String()
	reply.RPCs = node.counter.Uint64()
	reply.LockedVaults = node.engine.Locks().Count()
	reply.MaximumDepth = node.engine.Resolver().MaximumDepth()
	return nil
}
