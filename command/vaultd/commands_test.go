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

func TestGetFilenameWithDirectory(t *testing.T) {
	assert.Equal(t, "rpc.crt", getFilenameWithDirectory(nil, "rpc.crt"), "wrong default")
	assert.Equal(t, "/etc/vaultd/rpc.key", getFilenameWithDirectory([]string{"/etc/vaultd", "host"}, "rpc.key"), "wrong directory")
}

func TestMakeWalletPassword(t *testing.T) {
	dir, err := ioutil.TempDir("", "vaultd-password")
	assert.Nil(t, err, "temp dir error")
	defer os.RemoveAll(dir)

	fileName := filepath.Join(dir, walletPasswordFilename)
	assert.Nil(t, makeWalletPassword(fileName), "wrong error")

	data, err := ioutil.ReadFile(fileName)
	assert.Nil(t, err, "read error")
	assert.Equal(t, 2*walletPasswordBytes, len(data), "wrong password length")

	assert.Equal(t, os.ErrExist, makeWalletPassword(fileName), "existing file replaced")
}

func TestStartCommand(t *testing.T) {
	assert.False(t, processSetupCommand("vaultd", []string{"start"}), "start did not continue")
	assert.False(t, processSetupCommand("vaultd", []string{"run"}), "run did not continue")
	assert.True(t, processSetupCommand("vaultd", []string{"version"}), "version continued")
}
