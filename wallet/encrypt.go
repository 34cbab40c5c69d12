// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wallet

import (
	"crypto/rand"
	"encoding/hex"

	"github.com/bitmark-inc/go-argon2"
	"golang.org/x/crypto/nacl/secretbox"

	"github.com/shipchain/vaultd/fault"
)

const (
	saltLength  = 32
	nonceLength = 24
)

func makeSalt() ([]byte, error) {
	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); nil != err {
		return nil, fault.CryptoFailed
	}
	return salt, nil
}

// derive the secretbox key from the master password
func generateKey(password []byte, salt []byte) (*[32]byte, error) {

	ctx := &argon2.Context{
		Iterations:  5,
		Memory:      1 << 16,
		Parallelism: 4,
		HashLen:     32,
		Mode:        argon2.ModeArgon2i,
		Version:     argon2.Version13,
	}

	hash, err := argon2.Hash(ctx, password, salt)
	if nil != err {
		return nil, err
	}

	var secretKey [32]byte
	copy(secretKey[:], hash)

	return &secretKey, nil
}

// seal bytes and convert to hex, nonce first
func seal(data []byte, secretKey *[32]byte) (string, error) {

	// a random 192 bit nonce per message
	var nonce [nonceLength]byte
	if _, err := rand.Read(nonce[:]); nil != err {
		return "", fault.CryptoFailed
	}

	ciphertext := secretbox.Seal(nonce[:], data, &nonce, secretKey)

	return hex.EncodeToString(ciphertext), nil
}

// open a hex string produced by seal
func open(ciphertext string, secretKey *[32]byte) ([]byte, error) {

	encrypted, err := hex.DecodeString(ciphertext)
	if nil != err {
		return nil, fault.CryptoFailed
	}
	if len(encrypted) <= nonceLength {
		return nil, fault.CryptoFailed
	}

	var nonce [nonceLength]byte
	copy(nonce[:], encrypted[:nonceLength])

	decrypted, ok := secretbox.Open(nil, encrypted[nonceLength:], &nonce, secretKey)
	if !ok {
		return nil, fault.WrongPassword
	}

	return decrypted, nil
}
