// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package credential_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/shipchain/vaultd/credential"
	"github.com/shipchain/vaultd/driver"
	"github.com/shipchain/vaultd/fault"
	"github.com/shipchain/vaultd/fixtures"
	"github.com/shipchain/vaultd/storage"
)

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger()
	directory := fixtures.TempDirectory("credential")

	err := storage.Initialise(filepath.Join(directory, "test"), storage.ReadWrite)
	if nil != err {
		panic(err)
	}

	rc := m.Run()

	storage.Finalise()
	os.RemoveAll(directory)
	fixtures.TeardownTestLogger()
	os.Exit(rc)
}

func TestCreateGetList(t *testing.T) {
	store := credential.NewStore(logger.New(fixtures.LogCategory), storage.Pool.Credentials)

	local, err := store.Create("b-local", driver.Options{DriverType: driver.TypeLocal, BasePath: "/var/lib/vaults"})
	assert.Nil(t, err, "create local")
	s3, err := store.Create("a-s3", driver.Options{DriverType: driver.TypeS3, Bucket: "vaults", SecretAccessKey: "secret"})
	assert.Nil(t, err, "create s3")

	options, err := store.GetOptionsByID(local.ID)
	assert.Nil(t, err, "get options")
	assert.Equal(t, "/var/lib/vaults", options.BasePath, "wrong base path")

	list, err := store.List()
	assert.Nil(t, err, "list")
	assert.Equal(t, 2, len(list), "wrong count")
	assert.Equal(t, s3.ID, list[0].ID, "not sorted by title")
	assert.Equal(t, driver.TypeLocal, list[1].DriverType, "wrong driver type")
}

func TestCreateInvalid(t *testing.T) {
	store := credential.NewStore(logger.New(fixtures.LogCategory), storage.Pool.Credentials)

	_, err := store.Create("x", driver.Options{DriverType: "dropbox"})
	assert.Equal(t, "Storage driver type is not valid [dropbox]", err.Error(), "wrong message")

	_, err = store.Create("x", driver.Options{})
	assert.Equal(t, "Missing required parameter: 'driver_type'", err.Error(), "wrong message")
}

func TestNotFound(t *testing.T) {
	store := credential.NewStore(logger.New(fixtures.LogCategory), storage.Pool.Credentials)
	_, err := store.GetOptionsByID("missing")
	assert.Equal(t, "StorageCredentials not found", err.Error(), "wrong message")
	assert.True(t, fault.IsErrNotFound(err), "wrong class")
}
