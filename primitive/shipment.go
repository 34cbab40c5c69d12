// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package primitive

import (
	"github.com/shipchain/vaultd/fault"
	"github.com/shipchain/vaultd/link"
)

// ItemLine - item link with its quantity
type ItemLine struct {
	Quantity int64       `json:"quantity"`
	Item     *link.Entry `json:"item"`
}

// Shipment - schema checked fields, documents, items and tracking
type Shipment struct {
	Fields    Fields               `json:"fields"`
	Documents Collection           `json:"documents"`
	Items     map[string]*ItemLine `json:"items"`
	Tracking  *link.Entry          `json:"tracking"`
}

// Kind - primitive interface
func (s *Shipment) Kind() Kind { return KindShipment }

// GetFields - copy of the field map
func (s *Shipment) GetFields() Fields { return s.Fields.clone() }

// SetFields - validate against the shipment schema then replace
func (s *Shipment) SetFields(fields Fields) error {
	if err := ValidateShipmentFields(fields); nil != err {
		return err
	}
	s.Fields = fields.clone()
	return nil
}

// AddDocument - set a keyed document link
func (s *Shipment) AddDocument(key string, e *link.Entry) error {
	return s.Documents.add(KindDocument, key, e)
}

// GetDocument - keyed document link
func (s *Shipment) GetDocument(key string) (*link.Entry, error) {
	return s.Documents.get("Document", key, KindShipment)
}

// AddItem - set a keyed item line, last write wins per key
func (s *Shipment) AddItem(key string, quantity int64, e *link.Entry) error {
	if nil == e {
		return fault.InvalidLinkEntry
	}
	if err := e.Expect(KindItem.String()); nil != err {
		return err
	}
	s.Items[key] = &ItemLine{Quantity: quantity, Item: e}
	return nil
}

// GetItem - keyed item line
func (s *Shipment) GetItem(key string) (*ItemLine, error) {
	line, ok := s.Items[key]
	if !ok {
		return nil, fault.CollectionKeyNotFound("Item", key, KindShipment.String())
	}
	if nil == line || nil == line.Item {
		return nil, fault.InvalidLinkEntry
	}
	return line, nil
}

// SetTracking - replace the tracking link
func (s *Shipment) SetTracking(e *link.Entry) error {
	if nil == e {
		return fault.InvalidLinkEntry
	}
	if err := e.Expect(KindTracking.String()); nil != err {
		return err
	}
	s.Tracking = e
	return nil
}

// GetTracking - the tracking link, if set
func (s *Shipment) GetTracking() (*link.Entry, error) {
	if nil == s.Tracking {
		return nil, fault.LinkNotFound("Tracking", KindShipment.String())
	}
	return s.Tracking, nil
}

func (s *Shipment) normalise() error {
	if nil == s.Fields {
		s.Fields = Fields{}
	}
	if nil == s.Documents {
		s.Documents = Collection{}
	}
	if nil == s.Items {
		s.Items = map[string]*ItemLine{}
	}
	for _, line := range s.Items {
		if nil == line || nil == line.Item {
			return fault.InvalidLinkEntry
		}
	}
	return s.Documents.check()
}
