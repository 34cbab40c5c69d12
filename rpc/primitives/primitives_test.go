// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package primitives_test

import (
	"context"
	"encoding/json"
	"os"
	"strconv"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/shipchain/vaultd/driver"
	"github.com/shipchain/vaultd/engine"
	"github.com/shipchain/vaultd/fault"
	"github.com/shipchain/vaultd/fixtures"
	"github.com/shipchain/vaultd/link"
	"github.com/shipchain/vaultd/mocks"
	"github.com/shipchain/vaultd/primitive"
	"github.com/shipchain/vaultd/resolver"
	"github.com/shipchain/vaultd/rpc/primitives"
	"github.com/shipchain/vaultd/signature"
	"github.com/shipchain/vaultd/vault"
	"github.com/shipchain/vaultd/wallet"
)

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger()
	rc := m.Run()
	fixtures.TeardownTestLogger()
	os.Exit(rc)
}

type setup struct {
	directory string
	log       *logger.L
	engine    *engine.Engine
}

func newSetup(t *testing.T, ctl *gomock.Controller) *setup {
	directory := fixtures.TempDirectory("primitives")
	w := wallet.New(fixtures.WalletID, "main", fixtures.NewKeyPair().PrivateKey)

	wallets := mocks.NewMockWalletLookup(ctl)
	wallets.EXPECT().GetByID(fixtures.WalletID).Return(w, nil).AnyTimes()
	wallets.EXPECT().GetByID(gomock.Any()).Return(nil, fault.WalletNotFound).AnyTimes()

	credentials := mocks.NewMockCredentialLookup(ctl)
	credentials.EXPECT().GetOptionsByID(fixtures.CredentialsID).Return(driver.Options{
		DriverType: driver.TypeLocal,
		BasePath:   directory,
	}, nil).AnyTimes()

	log := logger.New(fixtures.LogCategory)
	e := engine.New(log, wallets, credentials, signature.New(log), mocks.NewMockCaller(ctl), engine.Configuration{
		Vaults: vault.Options{StrictRevisions: true},
	})
	return &setup{directory: directory, log: log, engine: e}
}

func (s *setup) create(t *testing.T, names ...string) primitives.Vault {
	result, err := s.engine.Create(context.Background(), fixtures.CredentialsID, fixtures.WalletID, "", names)
	assert.Nil(t, err, "create vault")
	return primitives.Vault{
		StorageCredentials: fixtures.CredentialsID,
		VaultWallet:        fixtures.WalletID,
		Vault:              result.VaultID,
	}
}

// locator string as a JSON parameter
func ref(v primitives.Vault, kind string) json.RawMessage {
	return json.RawMessage(strconv.Quote(link.Locator{
		Endpoint:      link.LocalEndpoint,
		CredentialsID: v.StorageCredentials,
		WalletID:      v.VaultWallet,
		VaultID:       v.Vault,
		Type:          kind,
	}.String()))
}

func TestDocumentFields(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()
	s := newSetup(t, ctl)
	defer os.RemoveAll(s.directory)

	v := s.create(t, "Document")
	d := primitives.NewDocument(s.log, s.engine)

	var write primitives.WriteReply
	err := d.SetFields(&primitives.FieldsArguments{Vault: v, Fields: json.RawMessage(`{"name":"invoice"}`)}, &write)
	assert.Nil(t, err, "set fields")
	assert.True(t, write.Success, "not successful")
	assert.Equal(t, uint64(1), write.Revision, "wrong revision")
	assert.NotNil(t, write.Signed, "missing signature")

	var fields primitives.FieldsReply
	err = d.GetFields(&v, &fields)
	assert.Nil(t, err, "get fields")
	assert.Equal(t, `"invoice"`, string(fields.Fields["name"]), "wrong field")

	err = d.SetFields(&primitives.FieldsArguments{Vault: v}, &write)
	assert.Equal(t, "Missing required parameter: 'fields'", err.Error(), "wrong missing error")

	err = d.SetFields(&primitives.FieldsArguments{Vault: v, Fields: json.RawMessage(`[1]`)}, &write)
	assert.Equal(t, fault.InvalidFields, err, "wrong invalid error")
}

func TestMissingPrimitive(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()
	s := newSetup(t, ctl)
	defer os.RemoveAll(s.directory)

	v := s.create(t, "Document")
	var reply primitives.FieldsReply
	err := primitives.NewProduct(s.log, s.engine).GetFields(&v, &reply)
	assert.Equal(t, "Primitive Product not found in Vault "+v.Vault, err.Error(), "wrong error")
	assert.False(t, reply.Success, "should not succeed")
}

func TestInvalidVaultArguments(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()
	s := newSetup(t, ctl)
	defer os.RemoveAll(s.directory)

	var reply primitives.DataReply
	err := primitives.NewDocument(s.log, s.engine).Get(&primitives.Vault{}, &reply)
	assert.Equal(t, "Missing required parameter: 'storageCredentials'", err.Error(), "wrong error")
}

func TestShipmentItemsAndTracking(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()
	s := newSetup(t, ctl)
	defer os.RemoveAll(s.directory)

	catalogue := s.create(t, "Item", "Tracking", "Document")
	v := s.create(t, "Shipment")
	shipment := primitives.NewShipment(s.log, s.engine)

	var write primitives.WriteReply
	err := shipment.AddItem(&primitives.AddArguments{Vault: v, Key: "pallet", Link: ref(catalogue, "Item")}, &write)
	assert.Nil(t, err, "add item")
	err = shipment.AddItem(&primitives.AddArguments{Vault: v, Key: "pallet", Link: ref(catalogue, "Item"), Quantity: json.RawMessage(`4`)}, &write)
	assert.Nil(t, err, "replace item")
	assert.Equal(t, uint64(2), write.Revision, "wrong revision")

	err = shipment.AddItem(&primitives.AddArguments{Vault: v, Key: "crate", Link: ref(catalogue, "Item"), Quantity: json.RawMessage(`"many"`)}, &write)
	assert.Equal(t, "Invalid number provided for parameter: 'quantity'", err.Error(), "wrong quantity error")

	err = shipment.AddItem(&primitives.AddArguments{Vault: v, Key: "crate", Link: ref(catalogue, "Document")}, &write)
	assert.True(t, fault.IsErrLinkType(err), "wrong link type class")

	var item primitives.DataReply
	err = shipment.GetItem(&primitives.KeyArguments{Vault: v, Key: "pallet"}, &item)
	assert.Nil(t, err, "get item")
	line := item.Data.(resolver.Object)
	assert.Equal(t, int64(4), line["quantity"], "wrong quantity")
	assert.NotNil(t, line["item"], "item not resolved")

	var items primitives.ItemsReply
	err = shipment.ListItems(&v, &items)
	assert.Nil(t, err, "list items")
	assert.Equal(t, 1, len(items.Items), "wrong item count")

	err = shipment.SetTracking(&primitives.LinkArguments{Vault: v, Link: ref(catalogue, "Tracking")}, &write)
	assert.Nil(t, err, "set tracking")

	tracking := primitives.NewTracking(s.log, s.engine)
	err = tracking.Add(&primitives.TrackingArguments{Vault: catalogue, Payload: json.RawMessage(`{"lat":10}`)}, &write)
	assert.Nil(t, err, "add event")

	var events primitives.DataReply
	err = shipment.GetTracking(&v, &events)
	assert.Nil(t, err, "get tracking")
	data, _ := json.Marshal(events.Data)
	assert.Equal(t, `[{"lat":10}]`, string(data), "wrong events")

	var missing primitives.DataReply
	err = shipment.GetDocument(&primitives.KeyArguments{Vault: v, Key: "none"}, &missing)
	assert.True(t, fault.IsErrNotFound(err), "wrong missing document class")
}

func TestTrackingEvents(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()
	s := newSetup(t, ctl)
	defer os.RemoveAll(s.directory)

	v := s.create(t, "Tracking")
	tracking := primitives.NewTracking(s.log, s.engine)

	var events primitives.EventsReply
	err := tracking.Get(&v, &events)
	assert.Nil(t, err, "get empty")
	assert.NotNil(t, events.Events, "events should not be null")
	assert.Equal(t, 0, len(events.Events), "wrong empty count")

	var write primitives.WriteReply
	err = tracking.Add(&primitives.TrackingArguments{Vault: v}, &write)
	assert.Equal(t, "Missing required parameter: 'payload'", err.Error(), "wrong missing error")

	for _, p := range []string{`{"n":1}`, `{"n":2}`} {
		err = tracking.Add(&primitives.TrackingArguments{Vault: v, Payload: json.RawMessage(p)}, &write)
		assert.Nil(t, err, "add event")
	}

	err = tracking.Get(&v, &events)
	assert.Nil(t, err, "get events")
	assert.Equal(t, 2, len(events.Events), "wrong count")
	assert.Equal(t, `{"n":1}`, string(events.Events[0]), "wrong order")
}

func TestProcurement(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()
	s := newSetup(t, ctl)
	defer os.RemoveAll(s.directory)

	catalogue := s.create(t, "Product", "Shipment", "Document")
	v := s.create(t, "Procurement")
	procurement := primitives.NewProcurement(s.log, s.engine)

	var write primitives.WriteReply
	assert.Nil(t, procurement.AddShipment(&primitives.AddArguments{Vault: v, Key: "first", Link: ref(catalogue, "Shipment")}, &write), "add shipment")
	assert.Nil(t, procurement.AddDocument(&primitives.AddArguments{Vault: v, Key: "po", Link: ref(catalogue, "Document")}, &write), "add document")
	assert.Nil(t, procurement.AddProduct(&primitives.AddArguments{Vault: v, Key: "widget", Link: ref(catalogue, "Product"), Quantity: json.RawMessage(`12`)}, &write), "add product")
	assert.Equal(t, uint64(3), write.Revision, "wrong revision")

	err := procurement.AddShipment(&primitives.AddArguments{Vault: v, Link: ref(catalogue, "Shipment")}, &write)
	assert.Equal(t, "Missing required parameter: 'key'", err.Error(), "wrong missing key error")

	var shipments primitives.EntriesReply
	assert.Nil(t, procurement.ListShipments(&v, &shipments), "list shipments")
	assert.Equal(t, "Shipment", shipments.Entries["first"].Type, "wrong shipment entry")

	var product primitives.DataReply
	assert.Nil(t, procurement.GetProduct(&primitives.KeyArguments{Vault: v, Key: "widget"}, &product), "get product")
	assert.Equal(t, int64(12), product.Data.(resolver.Object)["quantity"], "wrong quantity")

	var products primitives.ProductsReply
	assert.Nil(t, procurement.ListProducts(&v, &products), "list products")
	assert.Equal(t, int64(12), products.Products["widget"].Quantity, "wrong listed quantity")

	var whole primitives.DataReply
	assert.Nil(t, procurement.Get(&v, &whole), "get procurement")
	hydrated := whole.Data.(resolver.Object)
	assert.Contains(t, hydrated["shipments"], "first", "shipment not hydrated")
	assert.Contains(t, hydrated["documents"], "po", "document not hydrated")
}

func TestList(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()
	s := newSetup(t, ctl)
	defer os.RemoveAll(s.directory)

	catalogue := s.create(t, "Document")
	v := s.create(t, "DocumentList")
	documents := primitives.NewList(s.log, s.engine, primitive.KindDocumentList)
	assert.Equal(t, "DocumentList", documents.Name(), "wrong name")

	var write primitives.WriteReply
	for _, id := range []string{"b", "a"} {
		err := documents.Add(&primitives.EntityArguments{Vault: v, LinkID: id, Link: ref(catalogue, "Document")}, &write)
		assert.Nil(t, err, "add "+id)
	}

	err := documents.Add(&primitives.EntityArguments{Vault: v, LinkID: "a", Link: ref(catalogue, "Document")}, &write)
	assert.True(t, fault.IsErrExists(err), "duplicate link id accepted")

	var count primitives.CountReply
	assert.Nil(t, documents.Count(&v, &count), "count")
	assert.Equal(t, 2, count.Count, "wrong count")

	var ids primitives.LinkIDsReply
	assert.Nil(t, documents.List(&v, &ids), "list")
	assert.Equal(t, []string{"b", "a"}, ids.LinkIDs, "wrong order")

	var one primitives.DataReply
	assert.Nil(t, documents.Get(&primitives.LinkIDArguments{Vault: v, LinkID: "a"}, &one), "get")
	assert.NotNil(t, one.Data, "not resolved")

	var all primitives.DataReply
	assert.Nil(t, documents.GetAll(&v, &all), "get all")
	assert.Equal(t, 2, len(all.Data.(resolver.Object)), "wrong hydrated count")
}
