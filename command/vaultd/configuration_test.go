// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func writeConfiguration(t *testing.T, text string) (string, func()) {
	dir, err := ioutil.TempDir("", "vaultd-configuration")
	assert.Nil(t, err, "temp dir error")

	fileName := filepath.Join(dir, "vaultd.conf")
	err = ioutil.WriteFile(fileName, []byte(text), 0600)
	assert.Nil(t, err, "write configuration error")

	return fileName, func() {
		os.RemoveAll(dir)
	}
}

func TestGetConfigurationDefaults(t *testing.T) {
	fileName, cleanup := writeConfiguration(t, `return { data_directory = "." }`)
	defer cleanup()

	c, err := getConfiguration(fileName)
	assert.Nil(t, err, "wrong error")

	dir := filepath.Dir(fileName)
	assert.Equal(t, filepath.Clean(dir), c.DataDirectory, "wrong data directory")
	assert.Equal(t, filepath.Join(dir, "data", "vaultd"), c.Database.Name, "wrong database")
	assert.Equal(t, filepath.Join(dir, "rpc.crt"), c.ClientRPC.Certificate, "wrong certificate")
	assert.Equal(t, filepath.Join(dir, "rpc.key"), c.HttpsRPC.PrivateKey, "wrong key")
	assert.Equal(t, 8, c.Links.MaximumDepth, "wrong depth")
	assert.Equal(t, 30, c.Links.Timeout, "wrong timeout")
	assert.True(t, c.Vaults.StrictRevisions, "strict revisions not default")

	_, err = os.Stat(filepath.Join(dir, "log"))
	assert.Nil(t, err, "log directory not created")
}

func TestGetConfigurationOverrides(t *testing.T) {
	fileName, cleanup := writeConfiguration(t, `
return {
    data_directory = ".",
    pidfile = "vaultd.pid",
    wallet_password = "secret",
    links = {
        local_endpoints = { "https://vault.example.com/vaultd/rpc" },
        maximum_depth = 3,
    },
    vaults = {
        strict_revisions = false,
        verify_on_load = true,
    },
}`)
	defer cleanup()

	c, err := getConfiguration(fileName)
	assert.Nil(t, err, "wrong error")

	dir := filepath.Dir(fileName)
	assert.Equal(t, filepath.Join(dir, "vaultd.pid"), c.PidFile, "wrong pid file")
	assert.Equal(t, "secret", c.WalletPassword, "wrong password")
	assert.Equal(t, []string{"https://vault.example.com/vaultd/rpc"}, c.Links.LocalEndpoints, "wrong endpoints")
	assert.Equal(t, 3, c.Links.MaximumDepth, "wrong depth")
	assert.False(t, c.Vaults.StrictRevisions, "wrong strict revisions")
	assert.True(t, c.Vaults.VerifyOnLoad, "wrong verify on load")
}

func TestGetConfigurationPasswordFromEnvironment(t *testing.T) {
	fileName, cleanup := writeConfiguration(t, `return { data_directory = "." }`)
	defer cleanup()

	os.Setenv("VAULTD_WALLET_PASSWORD", "from-env")
	defer os.Unsetenv("VAULTD_WALLET_PASSWORD")

	c, err := getConfiguration(fileName)
	assert.Nil(t, err, "wrong error")
	assert.Equal(t, "from-env", c.WalletPassword, "wrong password")
}

func TestGetConfigurationErrors(t *testing.T) {
	fileName, cleanup := writeConfiguration(t, `return { }`)
	defer cleanup()

	_, err := getConfiguration(fileName)
	assert.NotNil(t, err, "blank data directory accepted")

	fileName, cleanup2 := writeConfiguration(t, `return { data_directory = ".", database = { name = "a/b" } }`)
	defer cleanup2()

	_, err = getConfiguration(fileName)
	assert.NotNil(t, err, "path as database name accepted")

	_, err = getConfiguration(filepath.Join(os.TempDir(), "no-such-vaultd.conf"))
	assert.NotNil(t, err, "missing file accepted")
}
