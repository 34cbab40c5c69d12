// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package engine

import (
	"context"
	"encoding/json"

	"github.com/bitmark-inc/logger"
	"github.com/google/uuid"

	"github.com/shipchain/vaultd/credential"
	"github.com/shipchain/vaultd/driver"
	"github.com/shipchain/vaultd/fault"
	"github.com/shipchain/vaultd/link"
	"github.com/shipchain/vaultd/primitive"
	"github.com/shipchain/vaultd/resolver"
	"github.com/shipchain/vaultd/signature"
	"github.com/shipchain/vaultd/vault"
	"github.com/shipchain/vaultd/wallet"
)

// Configuration - the vaults and links blocks of the configuration file
type Configuration struct {
	Vaults vault.Options
	Links  resolver.Configuration
}

// Target - the collaborators a request names
type Target struct {
	CredentialsID string
	WalletID      string
	VaultID       string
}

// CreateResult - outcome of creating a vault
type CreateResult struct {
	VaultID string           `json:"vault_id"`
	Signed  *signature.Block `json:"vault_signed"`
	URI     string           `json:"vault_uri"`
}

// Engine - orchestrates wallets, storage, metadata and link resolution
type Engine struct {
	log         *logger.L
	wallets     wallet.Lookup
	credentials credential.Lookup
	signature   *signature.Service
	options     vault.Options
	locks       *vault.Locks
	resolver    *resolver.Resolver

	newDriver func(driver.Options) (driver.Driver, error)
}

// New - create an engine, the resolver reads local links through it
func New(
	log *logger.L,
	wallets wallet.Lookup,
	credentials credential.Lookup,
	sig *signature.Service,
	caller resolver.Caller,
	configuration Configuration,
) *Engine {
	e := &Engine{
		log:         log,
		wallets:     wallets,
		credentials: credentials,
		signature:   sig,
		options:     configuration.Vaults,
		locks:       vault.NewLocks(),
		newDriver:   driver.New,
	}
	e.resolver = resolver.New(logger.New("resolver"), e, caller, configuration.Links)

	log.Infof("strict revisions: %t  verify on load: %t", e.options.StrictRevisions, e.options.VerifyOnLoad)
	return e
}

// Resolver - the link resolver, for reconfiguration
func (e *Engine) Resolver() *resolver.Resolver {
	return e.resolver
}

// Locks - per vault write locks
func (e *Engine) Locks() *vault.Locks {
	return e.locks
}

// Session - one loaded vault with the wallet acting on it
type Session struct {
	engine *Engine
	Wallet *wallet.Wallet
	Store  *vault.MetadataStore
	unlock func()
}

// Close - release the vault lock if one is held
func (s *Session) Close() {
	if nil != s.unlock {
		s.unlock()
		s.unlock = nil
	}
}

// Resolve - hydrate one link, links into this vault read the loaded state
func (s *Session) Resolve(ctx context.Context, e *link.Entry) (interface{}, error) {
	return s.engine.resolver.Resolve(ctx, s.Store, e)
}

// Hydrate - resolve every link held by a primitive of this vault
func (s *Session) Hydrate(ctx context.Context, p primitive.Primitive) (interface{}, error) {
	return s.engine.resolver.Hydrate(ctx, s.Store, p)
}

// look up the wallet and the driver behind a target
func (e *Engine) collaborators(t Target) (*wallet.Wallet, driver.Driver, error) {
	options, err := e.credentials.GetOptionsByID(t.CredentialsID)
	if nil != err {
		return nil, nil, err
	}
	w, err := e.wallets.GetByID(t.WalletID)
	if nil != err {
		return nil, nil, err
	}
	d, err := e.newDriver(options)
	if nil != err {
		return nil, nil, err
	}
	return w, d, nil
}

// Open - load an existing vault, lock for a later write if requested
func (e *Engine) Open(ctx context.Context, t Target, lock bool) (*Session, error) {
	w, d, err := e.collaborators(t)
	if nil != err {
		return nil, err
	}

	s := &Session{
		engine: e,
		Wallet: w,
		Store:  vault.New(e.log, t.VaultID, d, e.signature, e.options),
	}
	if lock {
		s.unlock = e.locks.Lock(t.VaultID)
	}

	if err := s.Store.LoadMetadata(ctx); nil != err {
		s.Close()
		return nil, err
	}
	return s, nil
}

// Create - new vault owned by a wallet, optionally co-owned and pre-populated
func (e *Engine) Create(ctx context.Context, credentialsID string, walletID string, additionalWalletID string, primitives []string) (*CreateResult, error) {
	t := Target{
		CredentialsID: credentialsID,
		WalletID:      walletID,
		VaultID:       uuid.New().String(),
	}

	w, d, err := e.collaborators(t)
	if nil != err {
		return nil, err
	}

	var additional *wallet.Wallet
	if "" != additionalWalletID {
		additional, err = e.wallets.GetByID(additionalWalletID)
		if nil != err {
			return nil, err
		}
	}

	unlock := e.locks.Lock(t.VaultID)
	defer unlock()

	store := vault.New(e.log, t.VaultID, d, e.signature, e.options)
	if err := store.GetOrCreateMetadata(ctx, w); nil != err {
		return nil, err
	}

	if nil != additional {
		if err := store.Authorize(w, vault.OwnersRole, additional.PublicKeyHex()); nil != err {
			return nil, err
		}
	}

	for _, name := range primitives {
		if err := store.InjectPrimitive(name); nil != err {
			return nil, err
		}
	}

	result, err := store.WriteMetadata(ctx, w)
	if nil != err {
		return nil, err
	}

	e.log.Infof("created vault: %s  primitives: %v", t.VaultID, primitives)

	return &CreateResult{
		VaultID: t.VaultID,
		Signed:  result.Signed,
		URI:     store.MetaFileURI(),
	}, nil
}

// InjectPrimitives - add primitive kinds to an existing vault, all or none
func (e *Engine) InjectPrimitives(ctx context.Context, t Target, primitives []string) (*vault.WriteResult, error) {
	s, err := e.Open(ctx, t, true)
	if nil != err {
		return nil, err
	}
	defer s.Close()

	for _, name := range primitives {
		if err := s.Store.InjectPrimitive(name); nil != err {
			return nil, err
		}
	}
	return s.Store.WriteMetadata(ctx, s.Wallet)
}

// Read - run f against a primitive of an unlocked vault
func (e *Engine) Read(ctx context.Context, t Target, kind primitive.Kind, f func(*Session, primitive.Primitive) error) error {
	s, err := e.Open(ctx, t, false)
	if nil != err {
		return err
	}
	defer s.Close()

	p, err := s.Store.Primitive(kind)
	if nil != err {
		return err
	}
	return f(s, p)
}

// Update - mutate a primitive under the vault lock and commit the write
//
// nothing is written when f fails
func (e *Engine) Update(ctx context.Context, t Target, kind primitive.Kind, f func(primitive.Primitive) error) (*vault.WriteResult, error) {
	s, err := e.Open(ctx, t, true)
	if nil != err {
		return nil, err
	}
	defer s.Close()

	p, err := s.Store.Primitive(kind)
	if nil != err {
		return nil, err
	}
	if err := f(p); nil != err {
		return nil, err
	}
	return s.Store.WriteMetadata(ctx, s.Wallet)
}

// Shallow - a primitive read from a vault this process can open
func (e *Engine) Shallow(ctx context.Context, l link.Locator) (primitive.Primitive, error) {
	kind, err := primitive.KindFromName(l.Type)
	if nil != err {
		return nil, err
	}

	var p primitive.Primitive
	err = e.Read(ctx, Target{
		CredentialsID: l.CredentialsID,
		WalletID:      l.WalletID,
		VaultID:       l.VaultID,
	}, kind, func(_ *Session, found primitive.Primitive) error {
		p = found
		return nil
	})
	if nil != err {
		return nil, err
	}
	return p, nil
}

// LinkedData - serve one shallow primitive to a remote resolver
func (e *Engine) LinkedData(ctx context.Context, raw string) (json.RawMessage, error) {
	if "" == raw {
		return nil, fault.InvalidLinkEntry
	}
	entry, err := link.Build(raw)
	if nil != err {
		return nil, err
	}
	p, err := e.Shallow(ctx, entry.Locator)
	if nil != err {
		return nil, err
	}
	return resolver.EncodeLinkedData(p)
}
