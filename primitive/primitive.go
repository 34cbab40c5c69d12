// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package primitive

import (
	"bytes"
	"encoding/json"

	"github.com/shipchain/vaultd/fault"
	"github.com/shipchain/vaultd/link"
)

// Primitive - one typed record held in a vault
type Primitive interface {
	Kind() Kind
}

// FieldHolder - primitives carrying an open field map
type FieldHolder interface {
	Primitive
	GetFields() Fields
	SetFields(fields Fields) error
}

// Fields - open string keyed map of JSON values
type Fields map[string]json.RawMessage

// Collection - caller keyed map of links
type Collection map[string]*link.Entry

// New - empty instance of a kind
func New(kind Kind) (Primitive, error) {
	switch kind {
	case KindDocument:
		return &Document{Fields: Fields{}}, nil
	case KindProduct:
		return &Product{Fields: Fields{}, Documents: Collection{}}, nil
	case KindItem:
		return &Item{Fields: Fields{}}, nil
	case KindShipment:
		return &Shipment{
			Fields:    Fields{},
			Documents: Collection{},
			Items:     map[string]*ItemLine{},
		}, nil
	case KindProcurement:
		return &Procurement{
			Fields:    Fields{},
			Shipments: Collection{},
			Documents: Collection{},
			Products:  map[string]*ProductLine{},
		}, nil
	case KindTracking:
		return &Tracking{Events: []json.RawMessage{}}, nil
	default:
		if kind.IsList() {
			return &List{kind: kind, Order: []string{}, Entries: Collection{}}, nil
		}
	}
	return nil, fault.InvalidPrimitiveType(kind.String())
}

// NewByName - empty instance from a wire name
func NewByName(name string) (Primitive, error) {
	kind, err := KindFromName(name)
	if nil != err {
		return nil, err
	}
	return New(kind)
}

// ParseFields - accept only a JSON object
func ParseFields(raw json.RawMessage) (Fields, error) {
	trimmed := bytes.TrimSpace(raw)
	if 0 == len(trimmed) || '{' != trimmed[0] {
		return nil, fault.InvalidFields
	}
	fields := Fields{}
	if err := json.Unmarshal(trimmed, &fields); nil != err {
		return nil, fault.InvalidFields
	}
	for k, v := range fields {
		b := &bytes.Buffer{}
		if err := json.Compact(b, v); nil != err {
			return nil, fault.InvalidFields
		}
		fields[k] = b.Bytes()
	}
	return fields, nil
}

// copy so callers never alias stored state
func (f Fields) clone() Fields {
	c := make(Fields, len(f))
	for k, v := range f {
		c[k] = v
	}
	return c
}

func (c Collection) get(singular string, key string, owner Kind) (*link.Entry, error) {
	e, ok := c[key]
	if !ok {
		return nil, fault.CollectionKeyNotFound(singular, key, owner.String())
	}
	return e, nil
}

// every stored key must hold a link
func (c Collection) check() error {
	for _, e := range c {
		if nil == e {
			return fault.InvalidLinkEntry
		}
	}
	return nil
}

func (c Collection) add(expected Kind, key string, e *link.Entry) error {
	if nil == e {
		return fault.InvalidLinkEntry
	}
	if err := e.Expect(expected.String()); nil != err {
		return err
	}
	c[key] = e
	return nil
}
