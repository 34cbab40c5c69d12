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
	"github.com/shipchain/vaultd/link"
	"github.com/shipchain/vaultd/primitive"
	"github.com/shipchain/vaultd/rpc/arguments"
)

// List - type for RPC, registered once per list kind
type List struct {
	service
	kind primitive.Kind
}

// NewList - service for one list kind
func NewList(log *logger.L, e *engine.Engine, kind primitive.Kind) *List {
	return &List{
		service: newService(log, e),
		kind:    kind,
	}
}

// Name - the service name, the list kind
func (l *List) Name() string {
	return l.kind.String()
}

// EntityArguments - one list member
type EntityArguments struct {
	arguments.Vault
	LinkID string          `json:"linkId"`
	Link   json.RawMessage `json:"link"`
}

// LinkIDArguments - a list member id
type LinkIDArguments struct {
	arguments.Vault
	LinkID string `json:"linkId"`
}

// CountReply - number of members
type CountReply struct {
	Success bool `json:"success"`
	Count   int  `json:"count"`
}

// LinkIDsReply - member ids in insertion order
type LinkIDsReply struct {
	Success bool     `json:"success"`
	LinkIDs []string `json:"linkIds"`
}

// Add - insert a new member, an existing id is rejected
func (l *List) Add(args *EntityArguments, reply *WriteReply) error {
	l.log.Infof("%s.Add: %+v  linkId: %q", l.Name(), args.Vault, args.LinkID)

	if err := arguments.String("linkId", args.LinkID); nil != err {
		return err
	}
	e, err := arguments.Link("link", args.Link)
	if nil != err {
		return err
	}
	return l.update(&args.Vault, l.kind, func(x primitive.Primitive) error {
		return x.(*primitive.List).AddEntity(args.LinkID, e)
	}, reply)
}

// Get - resolve one member
func (l *List) Get(args *LinkIDArguments, reply *DataReply) error {
	l.log.Infof("%s.Get: %+v", l.Name(), args)

	if err := arguments.String("linkId", args.LinkID); nil != err {
		return err
	}
	return l.resolve(&args.Vault, l.kind, func(x primitive.Primitive) (*link.Entry, error) {
		return x.(*primitive.List).Get(args.LinkID)
	}, reply)
}

// Count - number of members
func (l *List) Count(arguments *Vault, reply *CountReply) error {
	l.log.Infof("%s.Count: %+v", l.Name(), arguments)
	return l.read(arguments, l.kind, func(_ context.Context, _ *engine.Session, x primitive.Primitive) error {
		reply.Success = true
		reply.Count = x.(*primitive.List).Count()
		return nil
	})
}

// List - member ids in insertion order
func (l *List) List(arguments *Vault, reply *LinkIDsReply) error {
	l.log.Infof("%s.List: %+v", l.Name(), arguments)
	return l.read(arguments, l.kind, func(_ context.Context, _ *engine.Session, x primitive.Primitive) error {
		reply.Success = true
		reply.LinkIDs = x.(*primitive.List).List()
		return nil
	})
}

// GetAll - every member resolved, keyed by link id
func (l *List) GetAll(arguments *Vault, reply *DataReply) error {
	l.log.Infof("%s.GetAll: %+v", l.Name(), arguments)
	return l.get(arguments, l.kind, reply)
}
