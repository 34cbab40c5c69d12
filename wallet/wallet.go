// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wallet

import (
	"encoding/hex"

	"golang.org/x/crypto/ed25519"

	"github.com/shipchain/vaultd/fault"
)

// Lookup - resolve wallets by id
type Lookup interface {
	GetByID(id string) (*Wallet, error)
}

// Manager - wallet creation as well as lookup
type Manager interface {
	Lookup
	Create() (*Wallet, error)
}

// Wallet - an unlocked signing identity
type Wallet struct {
	ID         string
	PublicKey  ed25519.PublicKey
	Address    string
	privateKey ed25519.PrivateKey
}

// New - wrap an unlocked key pair
func New(id string, address string, privateKey ed25519.PrivateKey) *Wallet {
	return &Wallet{
		ID:         id,
		PublicKey:  privateKey.Public().(ed25519.PublicKey),
		Address:    address,
		privateKey: privateKey,
	}
}

// PublicKeyHex - owner list form of the public key
func (w *Wallet) PublicKeyHex() string {
	return hex.EncodeToString(w.PublicKey)
}

// Sign - ed25519 signature over a digest
func (w *Wallet) Sign(digest []byte) ([]byte, error) {
	if ed25519.PrivateKeySize != len(w.privateKey) {
		return nil, fault.InvalidKeyLength
	}
	return ed25519.Sign(w.privateKey, digest), nil
}

// Info - public details for RPC replies
type Info struct {
	ID        string `json:"id"`
	PublicKey string `json:"public_key"`
	Address   string `json:"address"`
}

// Info - public details only
func (w *Wallet) Info() Info {
	return Info{
		ID:        w.ID,
		PublicKey: w.PublicKeyHex(),
		Address:   w.Address,
	}
}
