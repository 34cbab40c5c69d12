// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fixtures

import (
	"crypto/rand"
	"fmt"
	"io/ioutil"
	"os"
	"time"

	"github.com/bitmark-inc/certgen"
	"github.com/bitmark-inc/logger"
	"golang.org/x/crypto/ed25519"
)

const (
	dir         = "testing"
	LogCategory = "testing"
)

// fixed test identifiers
const (
	CredentialsID = "0f8f6a52-1111-4d8e-9c1e-6a3c7a1f0a01"
	WalletID      = "0f8f6a52-2222-4d8e-9c1e-6a3c7a1f0a02"
	VaultID       = "0f8f6a52-3333-4d8e-9c1e-6a3c7a1f0a03"
)

// SetupTestLogger - log to a scratch directory at critical level only
func SetupTestLogger() {
	removeFiles()
	_ = os.Mkdir(dir, 0700)

	logging := logger.Configuration{
		Directory: dir,
		File:      fmt.Sprintf("%s.log", LogCategory),
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

// TeardownTestLogger - stop logging and remove its files
func TeardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

func removeFiles() {
	err := os.RemoveAll(dir)
	if nil != err {
		fmt.Println("remove dir with error: ", err)
	}
}

// TempDirectory - fresh scratch directory, caller removes it
func TempDirectory(prefix string) string {
	d, err := ioutil.TempDir("", prefix)
	if nil != err {
		panic(err)
	}
	return d
}

// KeyPair - ed25519 key pair for signing tests
type KeyPair struct {
	PublicKey  ed25519.PublicKey
	PrivateKey ed25519.PrivateKey
}

// NewKeyPair - random ed25519 key pair
func NewKeyPair() KeyPair {
	publicKey, privateKey, err := ed25519.GenerateKey(rand.Reader)
	if nil != err {
		panic(err)
	}
	return KeyPair{PublicKey: publicKey, PrivateKey: privateKey}
}

// Certificate - self signed PEM certificate and key for localhost
func Certificate() (string, string) {
	certificate, key, err := certgen.NewTLSCertPair("vaultd test", time.Now().Add(time.Hour), false, []string{"127.0.0.1", "localhost"})
	if nil != err {
		panic(err)
	}
	return string(certificate), string(key)
}
