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

// Product - type for RPC
type Product struct {
	service
}

// NewProduct - Product service
func NewProduct(log *logger.L, e *engine.Engine) *Product {
	return &Product{service: newService(log, e)}
}

// Get - the product with its documents resolved
func (p *Product) Get(arguments *Vault, reply *DataReply) error {
	p.log.Infof("Product.Get: %+v", arguments)
	return p.get(arguments, primitive.KindProduct, reply)
}

// GetFields - field map
func (p *Product) GetFields(arguments *Vault, reply *FieldsReply) error {
	p.log.Infof("Product.GetFields: %+v", arguments)
	return p.getFields(arguments, primitive.KindProduct, reply)
}

// SetFields - replace the field map
func (p *Product) SetFields(arguments *FieldsArguments, reply *WriteReply) error {
	p.log.Infof("Product.SetFields: %+v", arguments.Vault)
	return p.setFields(arguments, primitive.KindProduct, reply)
}

// AddDocument - link a document under a key
func (p *Product) AddDocument(args *AddArguments, reply *WriteReply) error {
	p.log.Infof("Product.AddDocument: %+v  key: %q", args.Vault, args.Key)

	if err := arguments.String("key", args.Key); nil != err {
		return err
	}
	e, err := arguments.Link("link", args.Link)
	if nil != err {
		return err
	}
	return p.update(&args.Vault, primitive.KindProduct, func(x primitive.Primitive) error {
		return x.(*primitive.Product).AddDocument(args.Key, e)
	}, reply)
}

// GetDocument - resolve the document under a key
func (p *Product) GetDocument(args *KeyArguments, reply *DataReply) error {
	p.log.Infof("Product.GetDocument: %+v", args)

	if err := arguments.String("key", args.Key); nil != err {
		return err
	}
	return p.resolve(&args.Vault, primitive.KindProduct, func(x primitive.Primitive) (*link.Entry, error) {
		return x.(*primitive.Product).GetDocument(args.Key)
	}, reply)
}

// ListDocuments - document links by key
func (p *Product) ListDocuments(arguments *Vault, reply *EntriesReply) error {
	p.log.Infof("Product.ListDocuments: %+v", arguments)
	return p.entries(arguments, primitive.KindProduct, func(x primitive.Primitive) primitive.Collection {
		return x.(*primitive.Product).Documents
	}, reply)
}
