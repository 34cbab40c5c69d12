// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package primitives

import (
	"context"

	"github.com/bitmark-inc/logger"

	"github.com/shipchain/vaultd/engine"
	"github.com/shipchain/vaultd/link"
	"github.com/shipchain/vaultd/primitive"
	"github.com/shipchain/vaultd/resolver"
	"github.com/shipchain/vaultd/rpc/arguments"
)

// Shipment - type for RPC
type Shipment struct {
	service
}

// NewShipment - Shipment service
func NewShipment(log *logger.L, e *engine.Engine) *Shipment {
	return &Shipment{service: newService(log, e)}
}

// ItemsReply - unresolved item lines by key
type ItemsReply struct {
	Success bool                           `json:"success"`
	Items   map[string]*primitive.ItemLine `json:"items"`
}

// Get - the shipment with documents, items and tracking resolved
func (s *Shipment) Get(arguments *Vault, reply *DataReply) error {
	s.log.Infof("Shipment.Get: %+v", arguments)
	return s.get(arguments, primitive.KindShipment, reply)
}

// GetFields - field map
func (s *Shipment) GetFields(arguments *Vault, reply *FieldsReply) error {
	s.log.Infof("Shipment.GetFields: %+v", arguments)
	return s.getFields(arguments, primitive.KindShipment, reply)
}

// SetFields - replace the field map after schema validation
func (s *Shipment) SetFields(arguments *FieldsArguments, reply *WriteReply) error {
	s.log.Infof("Shipment.SetFields: %+v", arguments.Vault)
	return s.setFields(arguments, primitive.KindShipment, reply)
}

// AddDocument - link a document under a key
func (s *Shipment) AddDocument(args *AddArguments, reply *WriteReply) error {
	s.log.Infof("Shipment.AddDocument: %+v  key: %q", args.Vault, args.Key)

	if err := arguments.String("key", args.Key); nil != err {
		return err
	}
	e, err := arguments.Link("link", args.Link)
	if nil != err {
		return err
	}
	return s.update(&args.Vault, primitive.KindShipment, func(x primitive.Primitive) error {
		return x.(*primitive.Shipment).AddDocument(args.Key, e)
	}, reply)
}

// GetDocument - resolve the document under a key
func (s *Shipment) GetDocument(args *KeyArguments, reply *DataReply) error {
	s.log.Infof("Shipment.GetDocument: %+v", args)

	if err := arguments.String("key", args.Key); nil != err {
		return err
	}
	return s.resolve(&args.Vault, primitive.KindShipment, func(x primitive.Primitive) (*link.Entry, error) {
		return x.(*primitive.Shipment).GetDocument(args.Key)
	}, reply)
}

// ListDocuments - document links by key
func (s *Shipment) ListDocuments(arguments *Vault, reply *EntriesReply) error {
	s.log.Infof("Shipment.ListDocuments: %+v", arguments)
	return s.entries(arguments, primitive.KindShipment, func(x primitive.Primitive) primitive.Collection {
		return x.(*primitive.Shipment).Documents
	}, reply)
}

// AddItem - set the item line under a key, replacing any previous line
func (s *Shipment) AddItem(args *AddArguments, reply *WriteReply) error {
	s.log.Infof("Shipment.AddItem: %+v  key: %q", args.Vault, args.Key)

	if err := arguments.String("key", args.Key); nil != err {
		return err
	}
	e, err := arguments.Link("link", args.Link)
	if nil != err {
		return err
	}
	quantity, err := arguments.Quantity("quantity", args.Quantity)
	if nil != err {
		return err
	}
	return s.update(&args.Vault, primitive.KindShipment, func(x primitive.Primitive) error {
		return x.(*primitive.Shipment).AddItem(args.Key, quantity, e)
	}, reply)
}

// GetItem - quantity and resolved item under a key
func (s *Shipment) GetItem(args *KeyArguments, reply *DataReply) error {
	s.log.Infof("Shipment.GetItem: %+v", args)

	if err := arguments.String("key", args.Key); nil != err {
		return err
	}
	return s.read(&args.Vault, primitive.KindShipment, func(ctx context.Context, session *engine.Session, p primitive.Primitive) error {
		line, err := p.(*primitive.Shipment).GetItem(args.Key)
		if nil != err {
			return err
		}
		item, err := session.Resolve(ctx, line.Item)
		if nil != err {
			return err
		}
		reply.Success = true
		reply.Data = resolver.Object{
			"quantity": line.Quantity,
			"item":     item,
		}
		return nil
	})
}

// ListItems - item lines by key
func (s *Shipment) ListItems(arguments *Vault, reply *ItemsReply) error {
	s.log.Infof("Shipment.ListItems: %+v", arguments)
	return s.read(arguments, primitive.KindShipment, func(_ context.Context, _ *engine.Session, p primitive.Primitive) error {
		items := p.(*primitive.Shipment).Items
		reply.Success = true
		reply.Items = make(map[string]*primitive.ItemLine, len(items))
		for k, line := range items {
			reply.Items[k] = line
		}
		return nil
	})
}

// GetTracking - resolve the tracking link to its events
func (s *Shipment) GetTracking(arguments *Vault, reply *DataReply) error {
	s.log.Infof("Shipment.GetTracking: %+v", arguments)
	return s.resolve(arguments, primitive.KindShipment, func(x primitive.Primitive) (*link.Entry, error) {
		return x.(*primitive.Shipment).GetTracking()
	}, reply)
}

// SetTracking - replace the tracking link
func (s *Shipment) SetTracking(args *LinkArguments, reply *WriteReply) error {
	s.log.Infof("Shipment.SetTracking: %+v", args.Vault)

	e, err := arguments.Link("link", args.Link)
	if nil != err {
		return err
	}
	return s.update(&args.Vault, primitive.KindShipment, func(x primitive.Primitive) error {
		return x.(*primitive.Shipment).SetTracking(e)
	}, reply)
}
