// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package shipchainvault_test

import (
	"os"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/shipchain/vaultd/driver"
	"github.com/shipchain/vaultd/engine"
	"github.com/shipchain/vaultd/fault"
	"github.com/shipchain/vaultd/fixtures"
	"github.com/shipchain/vaultd/mocks"
	"github.com/shipchain/vaultd/rpc/arguments"
	"github.com/shipchain/vaultd/rpc/shipchainvault"
	"github.com/shipchain/vaultd/signature"
	"github.com/shipchain/vaultd/vault"
	"github.com/shipchain/vaultd/wallet"
)

const additionalWalletID = "0f8f6a52-4444-4d8e-9c1e-6a3c7a1f0a04"

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger()
	rc := m.Run()
	fixtures.TeardownTestLogger()
	os.Exit(rc)
}

func newService(ctl *gomock.Controller, directory string) *shipchainvault.ShipChainVault {
	w := wallet.New(fixtures.WalletID, "main", fixtures.NewKeyPair().PrivateKey)
	additional := wallet.New(additionalWalletID, "extra", fixtures.NewKeyPair().PrivateKey)

	wallets := mocks.NewMockWalletLookup(ctl)
	wallets.EXPECT().GetByID(fixtures.WalletID).Return(w, nil).AnyTimes()
	wallets.EXPECT().GetByID(additionalWalletID).Return(additional, nil).AnyTimes()

	credentials := mocks.NewMockCredentialLookup(ctl)
	credentials.EXPECT().GetOptionsByID(fixtures.CredentialsID).Return(driver.Options{
		DriverType: driver.TypeLocal,
		BasePath:   directory,
	}, nil).AnyTimes()
	credentials.EXPECT().GetOptionsByID(gomock.Any()).Return(driver.Options{}, fault.StorageCredentialsNotFound).AnyTimes()

	log := logger.New(fixtures.LogCategory)
	e := engine.New(log, wallets, credentials, signature.New(log), mocks.NewMockCaller(ctl), engine.Configuration{
		Vaults: vault.Options{StrictRevisions: true},
	})
	return shipchainvault.New(log, e)
}

func TestCreate(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()
	directory := fixtures.TempDirectory("shipchainvault")
	defer os.RemoveAll(directory)

	s := newService(ctl, directory)

	var reply shipchainvault.CreateReply
	err := s.Create(&shipchainvault.CreateArguments{
		StorageCredentials: fixtures.CredentialsID,
		VaultWallet:        fixtures.WalletID,
		AdditionalWallet:   additionalWalletID,
		Primitives:         []string{"Shipment", "Tracking"},
	}, &reply)
	assert.Nil(t, err, "wrong Create")
	assert.True(t, reply.Success, "not successful")
	assert.NotEqual(t, "", reply.VaultID, "missing vault id")
	assert.Contains(t, reply.URI, "file://", "wrong uri scheme")
	assert.NotNil(t, reply.Signed, "missing signature")
}

func TestCreateInvalidArguments(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()
	directory := fixtures.TempDirectory("shipchainvault")
	defer os.RemoveAll(directory)

	s := newService(ctl, directory)

	err := s.Create(&shipchainvault.CreateArguments{VaultWallet: fixtures.WalletID}, &shipchainvault.CreateReply{})
	assert.Equal(t, "Missing required parameter: 'storageCredentials'", err.Error(), "wrong missing error")

	err = s.Create(&shipchainvault.CreateArguments{
		StorageCredentials: fixtures.CredentialsID,
		VaultWallet:        fixtures.WalletID,
		AdditionalWallet:   "someone",
	}, &shipchainvault.CreateReply{})
	assert.Equal(t, "Invalid UUID provided for parameter: 'additionalWallet'", err.Error(), "wrong uuid error")

	err = s.Create(&shipchainvault.CreateArguments{
		StorageCredentials: fixtures.VaultID,
		VaultWallet:        fixtures.WalletID,
	}, &shipchainvault.CreateReply{})
	assert.Equal(t, fault.StorageCredentialsNotFound, err, "wrong credentials error")
}

func TestInjectPrimitives(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()
	directory := fixtures.TempDirectory("shipchainvault")
	defer os.RemoveAll(directory)

	s := newService(ctl, directory)

	var created shipchainvault.CreateReply
	err := s.Create(&shipchainvault.CreateArguments{
		StorageCredentials: fixtures.CredentialsID,
		VaultWallet:        fixtures.WalletID,
	}, &created)
	assert.Nil(t, err, "create")

	v := arguments.Vault{
		StorageCredentials: fixtures.CredentialsID,
		VaultWallet:        fixtures.WalletID,
		Vault:              created.VaultID,
	}

	var reply shipchainvault.InjectReply
	err = s.InjectPrimitives(&shipchainvault.InjectArguments{Vault: v, Primitives: []string{"Document", "ItemList"}}, &reply)
	assert.Nil(t, err, "wrong InjectPrimitives")
	assert.Equal(t, uint64(1), reply.Revision, "wrong revision")

	err = s.InjectPrimitives(&shipchainvault.InjectArguments{Vault: v, Primitives: []string{"Product", "Document"}}, &shipchainvault.InjectReply{})
	assert.True(t, fault.IsErrExists(err), "duplicate accepted")

	err = s.InjectPrimitives(&shipchainvault.InjectArguments{Vault: v}, &shipchainvault.InjectReply{})
	assert.Equal(t, "Missing required parameter: 'primitives'", err.Error(), "wrong missing error")

	err = s.InjectPrimitives(&shipchainvault.InjectArguments{Vault: v, Primitives: []string{"Crate"}}, &shipchainvault.InjectReply{})
	assert.Equal(t, "Primitive type is not valid [Crate]", err.Error(), "wrong type error")
}
