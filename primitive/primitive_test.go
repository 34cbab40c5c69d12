// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package primitive_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shipchain/vaultd/fault"
	"github.com/shipchain/vaultd/link"
	"github.com/shipchain/vaultd/primitive"
)

func entry(t *testing.T, kind string) *link.Entry {
	e, err := link.Build("VAULTREF#local/cred/wallet/vault/" + kind)
	assert.Nil(t, err, "build entry")
	return e
}

func TestKindFromName(t *testing.T) {
	for _, k := range primitive.Kinds() {
		found, err := primitive.KindFromName(k.String())
		assert.Nil(t, err, "kind: %s", k)
		assert.Equal(t, k, found, "kind: %s", k)
	}

	_, err := primitive.KindFromName("Telemetry")
	assert.Equal(t, "Primitive type is not valid [Telemetry]", err.Error(), "wrong message")
	assert.True(t, fault.IsErrInvalid(err), "wrong class")

	_, err = primitive.NewByName("shipment")
	assert.NotNil(t, err, "case insensitive name accepted")
}

func TestParseFields(t *testing.T) {
	for _, raw := range []string{`[]`, `"x"`, `1`, ``, `null`, `{`} {
		_, err := primitive.ParseFields(json.RawMessage(raw))
		assert.Equal(t, fault.InvalidFields, err, "accepted: %q", raw)
	}

	f, err := primitive.ParseFields(json.RawMessage(` { "a" : [ 1, 2 ] , "b": "x" } `))
	assert.Nil(t, err, "object rejected")
	assert.Equal(t, `[1,2]`, string(f["a"]), "value not compacted")
}

func TestSetFieldsReplaces(t *testing.T) {
	d, _ := primitive.New(primitive.KindDocument)
	doc := d.(*primitive.Document)

	first, _ := primitive.ParseFields(json.RawMessage(`{"k":"v","old":1}`))
	second, _ := primitive.ParseFields(json.RawMessage(`{"k":"w"}`))

	assert.Nil(t, doc.SetFields(first), "set first")
	assert.Nil(t, doc.SetFields(second), "set second")
	assert.Equal(t, primitive.Fields{"k": json.RawMessage(`"w"`)}, doc.GetFields(), "fields merged")
}

func TestShipmentSchema(t *testing.T) {
	p, _ := primitive.New(primitive.KindShipment)
	s := p.(*primitive.Shipment)

	ok, _ := primitive.ParseFields(json.RawMessage(`{"carrier_scac":"ABCD","package_qty":3}`))
	assert.Nil(t, s.SetFields(ok), "valid fields rejected")

	bad, _ := primitive.ParseFields(json.RawMessage(`{"carrier_scac":"ABCD","not_a_field":1}`))
	err := s.SetFields(bad)
	assert.Equal(t, "Shipment Invalid: data should NOT have additional properties", err.Error(), "wrong message")
	assert.True(t, fault.IsErrInvalid(err), "wrong class")
	assert.Equal(t, ok, s.GetFields(), "invalid set mutated fields")

	wrongType, _ := primitive.ParseFields(json.RawMessage(`{"package_qty":"three"}`))
	err = s.SetFields(wrongType)
	assert.NotNil(t, err, "wrong type accepted")
}

func TestItemProduct(t *testing.T) {
	p, _ := primitive.New(primitive.KindItem)
	item := p.(*primitive.Item)

	_, err := item.GetProduct()
	assert.Equal(t, "Product not found in Item", err.Error(), "wrong unset message")

	err = item.SetProduct(entry(t, "Document"))
	assert.Equal(t, "Expecting Link to [Product] instead received [Document]", err.Error(), "wrong mismatch message")
	assert.Nil(t, item.Product, "mismatch mutated item")

	product := entry(t, "Product")
	assert.Nil(t, item.SetProduct(product), "set product")
	got, err := item.GetProduct()
	assert.Nil(t, err, "get product")
	assert.Equal(t, product, got, "wrong product")
}

func TestShipmentCollections(t *testing.T) {
	p, _ := primitive.New(primitive.KindShipment)
	s := p.(*primitive.Shipment)

	_, err := s.GetTracking()
	assert.Equal(t, "Tracking not found in Shipment", err.Error(), "wrong message")

	err = s.AddItem("item-1", 2, entry(t, "Product"))
	assert.True(t, fault.IsErrLinkType(err), "wrong item type accepted")
	assert.Equal(t, 0, len(s.Items), "mismatch mutated items")

	assert.Nil(t, s.AddItem("item-1", 2, entry(t, "Item")), "add item")
	assert.Nil(t, s.AddItem("item-1", 3, entry(t, "Item")), "replace item")
	line, err := s.GetItem("item-1")
	assert.Nil(t, err, "get item")
	assert.Equal(t, int64(3), line.Quantity, "last write did not win")

	_, err = s.GetItem("item-2")
	assert.Equal(t, "Item 'item-2' not found in Shipment", err.Error(), "wrong message")

	_, err = s.GetDocument("bol")
	assert.Equal(t, "Document 'bol' not found in Shipment", err.Error(), "wrong message")
	assert.Nil(t, s.AddDocument("bol", entry(t, "Document")), "add document")
	assert.Nil(t, s.SetTracking(entry(t, "Tracking")), "set tracking")
}

func TestProcurement(t *testing.T) {
	p, _ := primitive.New(primitive.KindProcurement)
	proc := p.(*primitive.Procurement)

	assert.Nil(t, proc.AddShipment("s1", entry(t, "Shipment")), "add shipment")
	assert.Nil(t, proc.AddProduct("p1", 7, entry(t, "Product")), "add product")
	assert.True(t, fault.IsErrLinkType(proc.AddDocument("d1", entry(t, "Shipment"))), "wrong document accepted")

	line, err := proc.GetProduct("p1")
	assert.Nil(t, err, "get product")
	assert.Equal(t, int64(7), line.Quantity, "wrong quantity")

	_, err = proc.GetShipment("s2")
	assert.Equal(t, "Shipment 's2' not found in Procurement", err.Error(), "wrong message")
}

func TestTrackingAppendOnly(t *testing.T) {
	p, _ := primitive.New(primitive.KindTracking)
	tracking := p.(*primitive.Tracking)

	assert.Equal(t, []json.RawMessage{}, tracking.Get(), "empty tracking not an empty list")

	payload := json.RawMessage(`{"lat": 1.5, "lon": 2}`)
	assert.Nil(t, tracking.Add(payload), "first add")
	assert.Nil(t, tracking.Add(payload), "second add")
	assert.Equal(t, []json.RawMessage{
		json.RawMessage(`{"lat":1.5,"lon":2}`),
		json.RawMessage(`{"lat":1.5,"lon":2}`),
	}, tracking.Get(), "wrong events")

	assert.NotNil(t, tracking.Add(json.RawMessage(`{`)), "invalid JSON accepted")
}

func TestList(t *testing.T) {
	p, _ := primitive.New(primitive.KindItemList)
	list := p.(*primitive.List)
	assert.Equal(t, primitive.KindItemList, list.Kind(), "wrong kind")

	assert.Nil(t, list.AddEntity("b", entry(t, "Item")), "add b")
	assert.Nil(t, list.AddEntity("a", entry(t, "Item")), "add a")

	err := list.AddEntity("a", entry(t, "Item"))
	assert.Equal(t, "LinkID [a] already exists!", err.Error(), "duplicate accepted")

	err = list.AddEntity("c", entry(t, "Document"))
	assert.True(t, fault.IsErrLinkType(err), "wrong element accepted")

	assert.Equal(t, []string{"b", "a"}, list.List(), "not insertion order")
	assert.Equal(t, len(list.List()), list.Count(), "count differs from list")

	_, err = list.Get("zz")
	assert.Equal(t, "LinkID [zz] not found!", err.Error(), "wrong message")
	assert.True(t, fault.IsErrNotFound(err), "wrong class")
}

func TestSetJSON(t *testing.T) {
	set := primitive.Set{}
	for _, name := range []string{"Shipment", "Tracking", "DocumentList"} {
		p, err := primitive.NewByName(name)
		assert.Nil(t, err, "new %s", name)
		set[p.Kind()] = p
	}
	list := set[primitive.KindDocumentList].(*primitive.List)
	assert.Nil(t, list.AddEntity("x", entry(t, "Document")), "add entity")

	b, err := json.Marshal(set)
	assert.Nil(t, err, "marshal")

	var decoded primitive.Set
	assert.Nil(t, json.Unmarshal(b, &decoded), "unmarshal")
	assert.Equal(t, []string{"DocumentList", "Shipment", "Tracking"}, decoded.Names(), "wrong names")
	assert.Equal(t, primitive.KindDocumentList, decoded[primitive.KindDocumentList].Kind(), "list kind lost")

	again, err := json.Marshal(decoded)
	assert.Nil(t, err, "remarshal")
	assert.Equal(t, string(b), string(again), "serialisation not stable")

	err = json.Unmarshal([]byte(`{"Widget":{}}`), &decoded)
	assert.NotNil(t, err, "unknown kind accepted")
}

func TestSetRejectsMissingLinks(t *testing.T) {
	for _, raw := range []string{
		`{"Shipment":{"items":{"x":null}}}`,
		`{"Shipment":{"items":{"x":{"quantity":1}}}}`,
		`{"Procurement":{"products":{"p":null}}}`,
		`{"Procurement":{"shipments":{"s":null}}}`,
		`{"Product":{"documents":{"d":null}}}`,
		`{"ItemList":{"order":["a"],"entries":{"a":null}}}`,
	} {
		decoded := primitive.Set{}
		err := json.Unmarshal([]byte(raw), &decoded)
		assert.Equal(t, fault.InvalidLinkEntry, err, "accepted: %s", raw)
	}
}
