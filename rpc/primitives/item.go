// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package primitives

import (
	"github.com/bitmark-inc/logger"

	"github.com/shipchain/vaultd/engine"
	"github.com/shipchain/vaultd/link"
	"github.com/shipchain/vaultd/primitive"
	"github.com/shipchain/vaultd/rpc/arguments"
)

// Item - type for RPC
type Item struct {
	service
}

// NewItem - Item service
func NewItem(log *logger.L, e *engine.Engine) *Item {
	return &Item{service: newService(log, e)}
}

// Get - the item with its product resolved
func (i *Item) Get(arguments *Vault, reply *DataReply) error {
	i.log.Infof("Item.Get: %+v", arguments)
	return i.get(arguments, primitive.KindItem, reply)
}

// GetFields - field map
func (i *Item) GetFields(arguments *Vault, reply *FieldsReply) error {
	i.log.Infof("Item.GetFields: %+v", arguments)
	return i.getFields(arguments, primitive.KindItem, reply)
}

// SetFields - replace the field map
func (i *Item) SetFields(arguments *FieldsArguments, reply *WriteReply) error {
	i.log.Infof("Item.SetFields: %+v", arguments.Vault)
	return i.setFields(arguments, primitive.KindItem, reply)
}

// GetProduct - resolve the product link
func (i *Item) GetProduct(arguments *Vault, reply *DataReply) error {
	i.log.Infof("Item.GetProduct: %+v", arguments)
	return i.resolve(arguments, primitive.KindItem, func(x primitive.Primitive) (*link.Entry, error) {
		return x.(*primitive.Item).GetProduct()
	}, reply)
}

// SetProduct - replace the product link
func (i *Item) SetProduct(args *LinkArguments, reply *WriteReply) error {
	i.log.Infof("Item.SetProduct: %+v", args.Vault)

	e, err := arguments.Link("link", args.Link)
	if nil != err {
		return err
	}
	return i.update(&args.Vault, primitive.KindItem, func(x primitive.Primitive) error {
		return x.(*primitive.Item).SetProduct(e)
	}, reply)
}
