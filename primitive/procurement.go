// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package primitive

import (
	"github.com/shipchain/vaultd/fault"
	"github.com/shipchain/vaultd/link"
)

// ProductLine - product link with its quantity
type ProductLine struct {
	Quantity int64       `json:"quantity"`
	Product  *link.Entry `json:"product"`
}

// Procurement - a bundle of shipments, documents and ordered products
type Procurement struct {
	Fields    Fields                  `json:"fields"`
	Shipments Collection              `json:"shipments"`
	Documents Collection              `json:"documents"`
	Products  map[string]*ProductLine `json:"products"`
}

// Kind - primitive interface
func (p *Procurement) Kind() Kind { return KindProcurement }

// GetFields - copy of the field map
func (p *Procurement) GetFields() Fields { return p.Fields.clone() }

// SetFields - replace the field map
func (p *Procurement) SetFields(fields Fields) error {
	p.Fields = fields.clone()
	return nil
}

// AddShipment - set a keyed shipment link
func (p *Procurement) AddShipment(key string, e *link.Entry) error {
	return p.Shipments.add(KindShipment, key, e)
}

// GetShipment - keyed shipment link
func (p *Procurement) GetShipment(key string) (*link.Entry, error) {
	return p.Shipments.get("Shipment", key, KindProcurement)
}

// AddDocument - set a keyed document link
func (p *Procurement) AddDocument(key string, e *link.Entry) error {
	return p.Documents.add(KindDocument, key, e)
}

// GetDocument - keyed document link
func (p *Procurement) GetDocument(key string) (*link.Entry, error) {
	return p.Documents.get("Document", key, KindProcurement)
}

// AddProduct - set a keyed product line, last write wins per key
func (p *Procurement) AddProduct(key string, quantity int64, e *link.Entry) error {
	if nil == e {
		return fault.InvalidLinkEntry
	}
	if err := e.Expect(KindProduct.String()); nil != err {
		return err
	}
	p.Products[key] = &ProductLine{Quantity: quantity, Product: e}
	return nil
}

// GetProduct - keyed product line
func (p *Procurement) GetProduct(key string) (*ProductLine, error) {
	line, ok := p.Products[key]
	if !ok {
		return nil, fault.CollectionKeyNotFound("Product", key, KindProcurement.String())
	}
	if nil == line || nil == line.Product {
		return nil, fault.InvalidLinkEntry
	}
	return line, nil
}

func (p *Procurement) normalise() error {
	if nil == p.Fields {
		p.Fields = Fields{}
	}
	if nil == p.Shipments {
		p.Shipments = Collection{}
	}
	if nil == p.Documents {
		p.Documents = Collection{}
	}
	if nil == p.Products {
		p.Products = map[string]*ProductLine{}
	}
	for _, line := range p.Products {
		if nil == line || nil == line.Product {
			return fault.InvalidLinkEntry
		}
	}
	if err := p.Shipments.check(); nil != err {
		return err
	}
	return p.Documents.check()
}
