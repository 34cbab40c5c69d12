// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls_test

import (
	"bytes"
	"crypto/rand"
	"encoding/json"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"os"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/ed25519"

	"github.com/shipchain/vaultd/command/vault-cli/rpccalls"
	"github.com/shipchain/vaultd/credential"
	"github.com/shipchain/vaultd/driver"
	"github.com/shipchain/vaultd/fixtures"
	"github.com/shipchain/vaultd/mocks"
	"github.com/shipchain/vaultd/rpc/credentials"
	"github.com/shipchain/vaultd/rpc/wallets"
	"github.com/shipchain/vaultd/wallet"
)

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger()
	rc := m.Run()
	fixtures.TeardownTestLogger()
	os.Exit(rc)
}

func newClient(t *testing.T, w wallet.Manager, c credential.Manager, out *bytes.Buffer) *rpccalls.Client {
	log := logger.New(fixtures.LogCategory)

	s := rpc.NewServer()
	assert.Nil(t, s.Register(wallets.New(log, w)), "register wallets")
	assert.Nil(t, s.Register(credentials.New(log, c)), "register credentials")

	serverConn, clientConn := net.Pipe()
	go s.ServeCodec(jsonrpc.NewServerCodec(serverConn))

	return rpccalls.NewClientFromConnection(clientConn, nil != out, out)
}

func TestWallet(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	_, key, _ := ed25519.GenerateKey(rand.Reader)
	created := wallet.New(fixtures.WalletID, "address", key)

	manager := mocks.NewMockWalletManager(ctl)
	manager.EXPECT().Create().Return(created, nil).Times(1)
	manager.EXPECT().GetByID(fixtures.WalletID).Return(created, nil).Times(1)

	var out bytes.Buffer
	client := newClient(t, manager, mocks.NewMockCredentialManager(ctl), &out)
	defer client.Close()

	reply, err := client.CreateWallet()
	assert.Nil(t, err, "wrong create error")
	assert.True(t, reply.Success, "not success")
	assert.Equal(t, fixtures.WalletID, reply.Wallet.ID, "wrong id")
	assert.Equal(t, created.PublicKeyHex(), reply.Wallet.PublicKey, "wrong public key")

	reply, err = client.GetWallet(fixtures.WalletID)
	assert.Nil(t, err, "wrong get error")
	assert.Equal(t, "address", reply.Wallet.Address, "wrong address")

	_, err = client.GetWallet("not-a-uuid")
	assert.NotNil(t, err, "invalid id accepted")

	assert.Contains(t, out.String(), "Wallet Create Reply", "verbose output missing")
}

func TestCredentials(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	options := driver.Options{
		DriverType: driver.TypeLocal,
		BasePath:   "/tmp/vaults",
	}

	manager := mocks.NewMockCredentialManager(ctl)
	manager.EXPECT().Create("local", options).Return(&credential.Credential{
		ID:      fixtures.CredentialsID,
		Title:   "local",
		Options: options,
	}, nil).Times(1)
	manager.EXPECT().List().Return([]credential.Summary{
		{ID: fixtures.CredentialsID, Title: "local", DriverType: driver.TypeLocal, BasePath: "/tmp/vaults"},
	}, nil).Times(1)

	client := newClient(t, mocks.NewMockWalletManager(ctl), manager, nil)
	defer client.Close()

	created, err := client.CreateCredentials("local", options)
	assert.Nil(t, err, "wrong create error")
	assert.Equal(t, fixtures.CredentialsID, created.Credentials.ID, "wrong id")
	assert.Equal(t, "/tmp/vaults", created.Credentials.BasePath, "wrong base path")

	list, err := client.ListCredentials()
	assert.Nil(t, err, "wrong list error")
	assert.Equal(t, 1, len(list.Credentials), "wrong count")
}

func TestCall(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	manager := mocks.NewMockCredentialManager(ctl)
	manager.EXPECT().List().Return([]credential.Summary{}, nil).Times(1)

	client := newClient(t, mocks.NewMockWalletManager(ctl), manager, nil)
	defer client.Close()

	result, err := client.Call("StorageCredentials.List", nil)
	assert.Nil(t, err, "wrong error")

	var reply map[string]interface{}
	err = json.Unmarshal(result, &reply)
	assert.Nil(t, err, "wrong reply")
	assert.Equal(t, true, reply["success"], "not success")

	_, err = client.Call("Nothing.Here", json.RawMessage(`{}`))
	assert.NotNil(t, err, "unknown method accepted")
}
