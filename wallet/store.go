// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wallet

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
	"golang.org/x/crypto/ed25519"

	"github.com/shipchain/vaultd/account"
	"github.com/shipchain/vaultd/fault"
	"github.com/shipchain/vaultd/storage"
)

const (
	unlockedExpiry  = 10 * time.Minute
	cleanupInterval = 20 * time.Minute
)

// persisted form, the private key never leaves sealed
type record struct {
	ID        string `json:"id"`
	PublicKey string `json:"public_key"`
	Address   string `json:"address"`
	Salt      string `json:"salt"`
	SealedKey string `json:"sealed_key"`
}

// Store - wallets sealed under the master password
type Store struct {
	log      *logger.L
	pool     storage.Handle
	password []byte
	unlocked *cache.Cache
}

// NewStore - create a store over a storage pool
func NewStore(log *logger.L, pool storage.Handle, password string) (*Store, error) {
	if "" == password {
		return nil, fault.MissingParameter("wallet_password")
	}
	return &Store{
		log:      log,
		pool:     pool,
		password: []byte(password),
		unlocked: cache.New(unlockedExpiry, cleanupInterval),
	}, nil
}

// Create - generate, seal and persist a new wallet
func (s *Store) Create() (*Wallet, error) {
	publicKey, privateKey, err := ed25519.GenerateKey(rand.Reader)
	if nil != err {
		return nil, fault.CryptoFailed
	}
	address, err := account.New(publicKey)
	if nil != err {
		return nil, err
	}

	salt, err := makeSalt()
	if nil != err {
		return nil, err
	}
	key, err := generateKey(s.password, salt)
	if nil != err {
		return nil, err
	}
	sealed, err := seal(privateKey, key)
	if nil != err {
		return nil, err
	}

	w := New(uuid.New().String(), address.String(), privateKey)
	r := record{
		ID:        w.ID,
		PublicKey: w.PublicKeyHex(),
		Address:   w.Address,
		Salt:      hex.EncodeToString(salt),
		SealedKey: sealed,
	}
	data, err := json.Marshal(r)
	if nil != err {
		return nil, err
	}
	if err := s.pool.Put([]byte(w.ID), data); nil != err {
		return nil, err
	}

	s.unlocked.SetDefault(w.ID, w)
	s.log.Infof("created wallet: %s  address: %s", w.ID, w.Address)
	return w, nil
}

// GetByID - unlock a stored wallet, cached for a while
func (s *Store) GetByID(id string) (*Wallet, error) {
	if cached, found := s.unlocked.Get(id); found {
		return cached.(*Wallet), nil
	}

	data, err := s.pool.Get([]byte(id))
	if nil != err {
		return nil, err
	}
	if nil == data {
		return nil, fault.WalletNotFound
	}

	var r record
	if err := json.Unmarshal(data, &r); nil != err {
		s.log.Errorf("wallet: %s  corrupt record: %s", id, err)
		return nil, fault.WalletNotFound
	}

	salt, err := hex.DecodeString(r.Salt)
	if nil != err {
		return nil, fault.CryptoFailed
	}
	key, err := generateKey(s.password, salt)
	if nil != err {
		return nil, err
	}
	privateKey, err := open(r.SealedKey, key)
	if nil != err {
		s.log.Warnf("wallet: %s  unseal error: %s", id, err)
		return nil, err
	}
	if ed25519.PrivateKeySize != len(privateKey) {
		return nil, fault.InvalidKeyLength
	}

	w := New(r.ID, r.Address, privateKey)
	if w.PublicKeyHex() != r.PublicKey {
		return nil, fault.InvalidPublicKey
	}

	s.unlocked.SetDefault(id, w)
	s.log.Debugf("unlocked wallet: %s", id)
	return w, nil
}
