// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wallets

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/shipchain/vaultd/rpc/arguments"
	"github.com/shipchain/vaultd/rpc/ratelimit"
	"github.com/shipchain/vaultd/wallet"
)

const (
	rateLimitWallet = 10
	rateBurstWallet = 20
)

// Wallet - type for RPC
type Wallet struct {
	Log     *logger.L
	Limiter *rate.Limiter
	manager wallet.Manager
}

// CreateArguments - no arguments
type CreateArguments struct{}

// GetArguments - wallet to fetch
type GetArguments struct {
	Wallet string `json:"wallet"`
}

// Reply - public details of a wallet
type Reply struct {
	Success bool        `json:"success"`
	Wallet  wallet.Info `json:"wallet"`
}

// New - create wallet service
func New(log *logger.L, manager wallet.Manager) *Wallet {
	return &Wallet{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitWallet, rateBurstWallet),
		manager: manager,
	}
}

// Create - a fresh signing wallet, the private key never leaves the store
func (w *Wallet) Create(_ *CreateArguments, reply *Reply) error {
	if err := ratelimit.Limit(w.Limiter); nil != err {
		return err
	}

	w.Log.Info("Wallet.Create")

	created, err := w.manager.Create()
	if nil != err {
		return err
	}
	reply.Success = true
	reply.Wallet = created.Info()
	return nil
}

// Get - public details of one wallet
func (w *Wallet) Get(args *GetArguments, reply *Reply) error {
	if err := ratelimit.Limit(w.Limiter); nil != err {
		return err
	}

	w.Log.Infof("Wallet.Get: %+v", args)

	if err := arguments.UUID("wallet", args.Wallet); nil != err {
		return err
	}
	found, err := w.manager.GetByID(args.Wallet)
	if nil != err {
		return err
	}
	reply.Success = true
	reply.Wallet = found.Info()
	return nil
}
