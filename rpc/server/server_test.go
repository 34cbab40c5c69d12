// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server_test

import (
	"encoding/json"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"os"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/shipchain/vaultd/counter"
	"github.com/shipchain/vaultd/credential"
	"github.com/shipchain/vaultd/engine"
	"github.com/shipchain/vaultd/fault"
	"github.com/shipchain/vaultd/fixtures"
	"github.com/shipchain/vaultd/mocks"
	"github.com/shipchain/vaultd/rpc/credentials"
	"github.com/shipchain/vaultd/rpc/linked"
	"github.com/shipchain/vaultd/rpc/node"
	"github.com/shipchain/vaultd/rpc/primitives"
	"github.com/shipchain/vaultd/rpc/server"
	"github.com/shipchain/vaultd/rpc/shipchainvault"
	"github.com/shipchain/vaultd/rpc/wallets"
	"github.com/shipchain/vaultd/signature"
)

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger()
	rc := m.Run()
	fixtures.TeardownTestLogger()
	os.Exit(rc)
}

func newClient(t *testing.T, ctl *gomock.Controller) *rpc.Client {
	credentialManager := mocks.NewMockCredentialManager(ctl)
	credentialManager.EXPECT().List().Return([]credential.Summary{}, nil).AnyTimes()

	log := logger.New(fixtures.LogCategory)
	e := engine.New(
		log,
		mocks.NewMockWalletLookup(ctl),
		mocks.NewMockCredentialLookup(ctl),
		signature.New(log),
		mocks.NewMockCaller(ctl),
		engine.Configuration{},
	)

	c := counter.Counter(0)
	s, err := server.Create(log, "1.0", &c, e, mocks.NewMockWalletManager(ctl), credentialManager)
	assert.Nil(t, err, "create server")

	serverConn, clientConn := net.Pipe()
	go s.ServeCodec(jsonrpc.NewServerCodec(serverConn))
	return jsonrpc.NewClient(clientConn)
}

// every case fails argument validation inside the named method, which
// shows the method is registered under the expected name
func TestRegisteredMethods(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	client := newClient(t, ctl)
	defer client.Close()

	missingCredentials := fault.MissingParameter("storageCredentials").Error()

	err := client.Call("ShipChainVault.Create", &shipchainvault.CreateArguments{}, &shipchainvault.CreateReply{})
	assert.Equal(t, missingCredentials, err.Error(), "wrong ShipChainVault.Create")

	err = client.Call("ShipChainVault.InjectPrimitives", &shipchainvault.InjectArguments{Primitives: []string{"Document"}}, &shipchainvault.InjectReply{})
	assert.Equal(t, missingCredentials, err.Error(), "wrong ShipChainVault.InjectPrimitives")

	var data json.RawMessage
	err = client.Call("Linked.GetLinkedData", &linked.Arguments{}, &data)
	assert.Equal(t, fault.InvalidLinkEntry.Error(), err.Error(), "wrong Linked.GetLinkedData")

	err = client.Call("Wallet.Get", &wallets.GetArguments{}, &wallets.Reply{})
	assert.Equal(t, fault.MissingParameter("wallet").Error(), err.Error(), "wrong Wallet.Get")

	for _, method := range []string{
		"Document.GetFields",
		"Product.GetFields",
		"Item.GetFields",
		"Shipment.GetFields",
		"Procurement.GetFields",
		"Tracking.Get",
		"DocumentList.Count",
		"ItemList.Count",
		"ProductList.Count",
		"ShipmentList.Count",
		"ProcurementList.Count",
	} {
		err = client.Call(method, &primitives.Vault{}, &json.RawMessage{})
		assert.NotNil(t, err, method)
		assert.Equal(t, missingCredentials, err.Error(), "wrong "+method)
	}
}

func TestAdministration(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	client := newClient(t, ctl)
	defer client.Close()

	var info node.InfoReply
	err := client.Call("Node.Info", &node.InfoArguments{}, &info)
	assert.Nil(t, err, "wrong Node.Info")
	assert.Equal(t, "1.0", info.Version, "wrong version")

	err = client.Call("Nothing.Here", &node.InfoArguments{}, &info)
	assert.Contains(t, err.Error(), "can't find service", "wrong unknown service")

	var list credentials.ListReply
	err = client.Call("StorageCredentials.List", &credentials.ListArguments{}, &list)
	assert.Nil(t, err, "wrong StorageCredentials.List")
	assert.Equal(t, 0, len(list.Credentials), "wrong credential count")
}
