// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package primitives

import (
	"context"
	"encoding/json"

	"github.com/bitmark-inc/logger"

	"github.com/shipchain/vaultd/engine"
	"github.com/shipchain/vaultd/primitive"
	"github.com/shipchain/vaultd/rpc/arguments"
)

// Tracking - type for RPC
type Tracking struct {
	service
}

// NewTracking - Tracking service
func NewTracking(log *logger.L, e *engine.Engine) *Tracking {
	return &Tracking{service: newService(log, e)}
}

// TrackingArguments - one event to append
type TrackingArguments struct {
	arguments.Vault
	Payload json.RawMessage `json:"payload"`
}

// EventsReply - every event in order
type EventsReply struct {
	Success bool              `json:"success"`
	Events  []json.RawMessage `json:"events"`
}

// Add - append an event
func (t *Tracking) Add(args *TrackingArguments, reply *WriteReply) error {
	t.log.Infof("Tracking.Add: %+v", args.Vault)

	payload, err := arguments.Payload("payload", args.Payload)
	if nil != err {
		return err
	}
	return t.update(&args.Vault, primitive.KindTracking, func(x primitive.Primitive) error {
		return x.(*primitive.Tracking).Add(payload)
	}, reply)
}

// Get - events in the order added, empty rather than null
func (t *Tracking) Get(arguments *Vault, reply *EventsReply) error {
	t.log.Infof("Tracking.Get: %+v", arguments)
	return t.read(arguments, primitive.KindTracking, func(_ context.Context, _ *engine.Session, x primitive.Primitive) error {
		reply.Success = true
		reply.Events = x.(*primitive.Tracking).Get()
		return nil
	})
}
