// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package linked

import (
	"context"
	"encoding/json"
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/shipchain/vaultd/engine"
	"github.com/shipchain/vaultd/rpc/ratelimit"
)

const (
	rateLimitLinked = 200
	rateBurstLinked = 100

	requestTimeout = time.Minute
)

// Linked - type for RPC, called by remote resolvers
type Linked struct {
	Log     *logger.L
	Limiter *rate.Limiter
	engine  *engine.Engine
}

// Arguments - the locator to serve
type Arguments struct {
	LinkEntry string `json:"linkEntry"`
}

// New - create linked data service
func New(log *logger.L, e *engine.Engine) *Linked {
	return &Linked{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitLinked, rateBurstLinked),
		engine:  e,
	}
}

// GetLinkedData - shallow primitive state, tracking as an array and
// anything else as a JSON encoded string
func (l *Linked) GetLinkedData(args *Arguments, reply *json.RawMessage) error {
	if err := ratelimit.Limit(l.Limiter); nil != err {
		return err
	}

	l.Log.Infof("Linked.GetLinkedData: %q", args.LinkEntry)

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	data, err := l.engine.LinkedData(ctx, args.LinkEntry)
	if nil != err {
		return err
	}
	*reply = data
	return nil
}
