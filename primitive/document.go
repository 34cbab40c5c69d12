// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package primitive

import (
	"github.com/shipchain/vaultd/fault"
	"github.com/shipchain/vaultd/link"
)

// Document - a bare field record
type Document struct {
	Fields Fields `json:"fields"`
}

// Kind - primitive interface
func (d *Document) Kind() Kind { return KindDocument }

// GetFields - copy of the field map
func (d *Document) GetFields() Fields { return d.Fields.clone() }

// SetFields - replace the field map
func (d *Document) SetFields(fields Fields) error {
	d.Fields = fields.clone()
	return nil
}

func (d *Document) normalise() error {
	if nil == d.Fields {
		d.Fields = Fields{}
	}
	return nil
}

// Product - fields plus supporting documents
type Product struct {
	Fields    Fields     `json:"fields"`
	Documents Collection `json:"documents"`
}

// Kind - primitive interface
func (p *Product) Kind() Kind { return KindProduct }

// GetFields - copy of the field map
func (p *Product) GetFields() Fields { return p.Fields.clone() }

// SetFields - replace the field map
func (p *Product) SetFields(fields Fields) error {
	p.Fields = fields.clone()
	return nil
}

// AddDocument - set a keyed document link
func (p *Product) AddDocument(key string, e *link.Entry) error {
	return p.Documents.add(KindDocument, key, e)
}

// GetDocument - keyed document link
func (p *Product) GetDocument(key string) (*link.Entry, error) {
	return p.Documents.get("Document", key, KindProduct)
}

func (p *Product) normalise() error {
	if nil == p.Fields {
		p.Fields = Fields{}
	}
	if nil == p.Documents {
		p.Documents = Collection{}
	}
	return p.Documents.check()
}

// Item - fields plus the product it is an instance of
type Item struct {
	Fields  Fields      `json:"fields"`
	Product *link.Entry `json:"product"`
}

// Kind - primitive interface
func (i *Item) Kind() Kind { return KindItem }

// GetFields - copy of the field map
func (i *Item) GetFields() Fields { return i.Fields.clone() }

// SetFields - replace the field map
func (i *Item) SetFields(fields Fields) error {
	i.Fields = fields.clone()
	return nil
}

// SetProduct - replace the product link
func (i *Item) SetProduct(e *link.Entry) error {
	if nil == e {
		return fault.InvalidLinkEntry
	}
	if err := e.Expect(KindProduct.String()); nil != err {
		return err
	}
	i.Product = e
	return nil
}

// GetProduct - the product link, if set
func (i *Item) GetProduct() (*link.Entry, error) {
	if nil == i.Product {
		return nil, fault.LinkNotFound("Product", KindItem.String())
	}
	return i.Product, nil
}

func (i *Item) normalise() error {
	if nil == i.Fields {
		i.Fields = Fields{}
	}
	return nil
}
