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

// Procurement - type for RPC
type Procurement struct {
	service
}

// NewProcurement - Procurement service
func NewProcurement(log *logger.L, e *engine.Engine) *Procurement {
	return &Procurement{service: newService(log, e)}
}

// ProductsReply - unresolved product lines by key
type ProductsReply struct {
	Success  bool                              `json:"success"`
	Products map[string]*primitive.ProductLine `json:"products"`
}

// Get - the procurement with every link resolved
func (p *Procurement) Get(arguments *Vault, reply *DataReply) error {
	p.log.Infof("Procurement.Get: %+v", arguments)
	return p.get(arguments, primitive.KindProcurement, reply)
}

// GetFields - field map
func (p *Procurement) GetFields(arguments *Vault, reply *FieldsReply) error {
	p.log.Infof("Procurement.GetFields: %+v", arguments)
	return p.getFields(arguments, primitive.KindProcurement, reply)
}

// SetFields - replace the field map
func (p *Procurement) SetFields(arguments *FieldsArguments, reply *WriteReply) error {
	p.log.Infof("Procurement.SetFields: %+v", arguments.Vault)
	return p.setFields(arguments, primitive.KindProcurement, reply)
}

func (p *Procurement) addLink(name string, args *AddArguments, add func(*primitive.Procurement, *link.Entry) error, reply *WriteReply) error {
	p.log.Infof("Procurement.%s: %+v  key: %q", name, args.Vault, args.Key)

	if err := arguments.String("key", args.Key); nil != err {
		return err
	}
	e, err := arguments.Link("link", args.Link)
	if nil != err {
		return err
	}
	return p.update(&args.Vault, primitive.KindProcurement, func(x primitive.Primitive) error {
		return add(x.(*primitive.Procurement), e)
	}, reply)
}

func (p *Procurement) getLink(name string, args *KeyArguments, get func(*primitive.Procurement) (*link.Entry, error), reply *DataReply) error {
	p.log.Infof("Procurement.%s: %+v", name, args)

	if err := arguments.String("key", args.Key); nil != err {
		return err
	}
	return p.resolve(&args.Vault, primitive.KindProcurement, func(x primitive.Primitive) (*link.Entry, error) {
		return get(x.(*primitive.Procurement))
	}, reply)
}

// AddShipment - link a shipment under a key
func (p *Procurement) AddShipment(args *AddArguments, reply *WriteReply) error {
	return p.addLink("AddShipment", args, func(x *primitive.Procurement, e *link.Entry) error {
		return x.AddShipment(args.Key, e)
	}, reply)
}

// GetShipment - resolve the shipment under a key
func (p *Procurement) GetShipment(args *KeyArguments, reply *DataReply) error {
	return p.getLink("GetShipment", args, func(x *primitive.Procurement) (*link.Entry, error) {
		return x.GetShipment(args.Key)
	}, reply)
}

// ListShipments - shipment links by key
func (p *Procurement) ListShipments(arguments *Vault, reply *EntriesReply) error {
	p.log.Infof("Procurement.ListShipments: %+v", arguments)
	return p.entries(arguments, primitive.KindProcurement, func(x primitive.Primitive) primitive.Collection {
		return x.(*primitive.Procurement).Shipments
	}, reply)
}

// AddDocument - link a document under a key
func (p *Procurement) AddDocument(args *AddArguments, reply *WriteReply) error {
	return p.addLink("AddDocument", args, func(x *primitive.Procurement, e *link.Entry) error {
		return x.AddDocument(args.Key, e)
	}, reply)
}

// GetDocument - resolve the document under a key
func (p *Procurement) GetDocument(args *KeyArguments, reply *DataReply) error {
	return p.getLink("GetDocument", args, func(x *primitive.Procurement) (*link.Entry, error) {
		return x.GetDocument(args.Key)
	}, reply)
}

// ListDocuments - document links by key
func (p *Procurement) ListDocuments(arguments *Vault, reply *EntriesReply) error {
	p.log.Infof("Procurement.ListDocuments: %+v", arguments)
	return p.entries(arguments, primitive.KindProcurement, func(x primitive.Primitive) primitive.Collection {
		return x.(*primitive.Procurement).Documents
	}, reply)
}

// AddProduct - set the product line under a key, replacing any previous line
func (p *Procurement) AddProduct(args *AddArguments, reply *WriteReply) error {
	quantity, err := arguments.Quantity("quantity", args.Quantity)
	if nil != err {
		return err
	}
	return p.addLink("AddProduct", args, func(x *primitive.Procurement, e *link.Entry) error {
		return x.AddProduct(args.Key, quantity, e)
	}, reply)
}

// GetProduct - quantity and resolved product under a key
func (p *Procurement) GetProduct(args *KeyArguments, reply *DataReply) error {
	p.log.Infof("Procurement.GetProduct: %+v", args)

	if err := arguments.String("key", args.Key); nil != err {
		return err
	}
	return p.read(&args.Vault, primitive.KindProcurement, func(ctx context.Context, session *engine.Session, x primitive.Primitive) error {
		line, err := x.(*primitive.Procurement).GetProduct(args.Key)
		if nil != err {
			return err
		}
		product, err := session.Resolve(ctx, line.Product)
		if nil != err {
			return err
		}
		reply.Success = true
		reply.Data = resolver.Object{
			"quantity": line.Quantity,
			"product":  product,
		}
		return nil
	})
}

// ListProducts - product lines by key
func (p *Procurement) ListProducts(arguments *Vault, reply *ProductsReply) error {
	p.log.Infof("Procurement.ListProducts: %+v", arguments)
	return p.read(arguments, primitive.KindProcurement, func(_ context.Context, _ *engine.Session, x primitive.Primitive) error {
		products := x.(*primitive.Procurement).Products
		reply.Success = true
		reply.Products = make(map[string]*primitive.ProductLine, len(products))
		for k, line := range products {
			reply.Products[k] = line
		}
		return nil
	})
}
