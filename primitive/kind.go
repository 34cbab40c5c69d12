// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package primitive

import (
	"github.com/shipchain/vaultd/fault"
)

// Kind - closed set of primitive record kinds
type Kind int

// the primitive kinds
const (
	KindDocument Kind = iota
	KindProduct
	KindItem
	KindShipment
	KindProcurement
	KindTracking
	KindDocumentList
	KindItemList
	KindProductList
	KindShipmentList
	KindProcurementList

	kindLimit // keep last
)

var kindNames = [kindLimit]string{
	KindDocument:        "Document",
	KindProduct:         "Product",
	KindItem:            "Item",
	KindShipment:        "Shipment",
	KindProcurement:     "Procurement",
	KindTracking:        "Tracking",
	KindDocumentList:    "DocumentList",
	KindItemList:        "ItemList",
	KindProductList:     "ProductList",
	KindShipmentList:    "ShipmentList",
	KindProcurementList: "ProcurementList",
}

// element kind held by each list kind
var listElement = map[Kind]Kind{
	KindDocumentList:    KindDocument,
	KindItemList:        KindItem,
	KindProductList:     KindProduct,
	KindShipmentList:    KindShipment,
	KindProcurementList: KindProcurement,
}

// KindFromName - registry lookup, rejects unknown names
func KindFromName(name string) (Kind, error) {
	for k, n := range kindNames {
		if n == name {
			return Kind(k), nil
		}
	}
	return 0, fault.InvalidPrimitiveType(name)
}

// Kinds - every kind in declaration order
func Kinds() []Kind {
	k := make([]Kind, kindLimit)
	for i := range k {
		k[i] = Kind(i)
	}
	return k
}

// String - the wire name of the kind
func (k Kind) String() string {
	if k < 0 || k >= kindLimit {
		return "*unknown*"
	}
	return kindNames[k]
}

// IsList - true for the five link list kinds
func (k Kind) IsList() bool {
	_, ok := listElement[k]
	return ok
}

// Element - kind of entry a list kind accepts
func (k Kind) Element() (Kind, bool) {
	e, ok := listElement[k]
	return e, ok
}

// MarshalText - kinds travel by name
func (k Kind) MarshalText() ([]byte, error) {
	if k < 0 || k >= kindLimit {
		return nil, fault.InvalidPrimitiveType(k.String())
	}
	return []byte(k.String()), nil
}

// UnmarshalText - parse a kind name
func (k *Kind) UnmarshalText(s []byte) error {
	kind, err := KindFromName(string(s))
	if nil != err {
		return err
	}
	*k = kind
	return nil
}
