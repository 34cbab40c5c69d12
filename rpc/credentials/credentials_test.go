// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package credentials_test

import (
	"os"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/shipchain/vaultd/credential"
	"github.com/shipchain/vaultd/driver"
	"github.com/shipchain/vaultd/fault"
	"github.com/shipchain/vaultd/fixtures"
	"github.com/shipchain/vaultd/mocks"
	"github.com/shipchain/vaultd/rpc/credentials"
)

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger()
	rc := m.Run()
	fixtures.TeardownTestLogger()
	os.Exit(rc)
}

func TestCredentialsCreate(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockCredentialManager(ctl)
	options := driver.Options{
		DriverType:      driver.TypeS3,
		BasePath:        "vaults",
		Bucket:          "shipments",
		SecretAccessKey: "secret",
	}
	m.EXPECT().Create("warehouse", options).Return(&credential.Credential{
		ID:      fixtures.CredentialsID,
		Title:   "warehouse",
		Options: options,
	}, nil).Times(1)

	var reply credentials.CreateReply
	err := credentials.New(logger.New(fixtures.LogCategory), m).Create(&credentials.CreateArguments{
		Title:   "warehouse",
		Options: options,
	}, &reply)
	assert.Nil(t, err, "wrong Create")
	assert.True(t, reply.Success, "not successful")
	assert.Equal(t, credential.Summary{
		ID:         fixtures.CredentialsID,
		Title:      "warehouse",
		DriverType: driver.TypeS3,
		BasePath:   "vaults",
	}, reply.Credentials, "wrong summary")
}

func TestCredentialsCreateInvalid(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockCredentialManager(ctl)
	m.EXPECT().Create("", driver.Options{DriverType: "ftp"}).Return(nil, fault.InvalidStorageDriver("ftp")).Times(1)

	err := credentials.New(logger.New(fixtures.LogCategory), m).Create(&credentials.CreateArguments{
		Options: driver.Options{DriverType: "ftp"},
	}, &credentials.CreateReply{})
	assert.Equal(t, "Storage driver type is not valid [ftp]", err.Error(), "wrong error")
}

func TestCredentialsList(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockCredentialManager(ctl)
	list := []credential.Summary{{ID: fixtures.CredentialsID, Title: "local", DriverType: driver.TypeLocal}}
	m.EXPECT().List().Return(list, nil).Times(1)

	var reply credentials.ListReply
	err := credentials.New(logger.New(fixtures.LogCategory), m).List(&credentials.ListArguments{}, &reply)
	assert.Nil(t, err, "wrong List")
	assert.Equal(t, list, reply.Credentials, "wrong list")
}
