// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server

import (
	"net/rpc"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/shipchain/vaultd/counter"
	"github.com/shipchain/vaultd/credential"
	"github.com/shipchain/vaultd/engine"
	"github.com/shipchain/vaultd/primitive"
	"github.com/shipchain/vaultd/rpc/credentials"
	"github.com/shipchain/vaultd/rpc/linked"
	"github.com/shipchain/vaultd/rpc/node"
	"github.com/shipchain/vaultd/rpc/primitives"
	"github.com/shipchain/vaultd/rpc/shipchainvault"
	"github.com/shipchain/vaultd/rpc/wallets"
	"github.com/shipchain/vaultd/wallet"
)

// Create - rpc server with every vault service registered
func Create(
	log *logger.L,
	version string,
	rpcCount *counter.Counter,
	e *engine.Engine,
	walletManager wallet.Manager,
	credentialManager credential.Manager,
) (*rpc.Server, error) {

	start := time.Now().UTC()

	server := rpc.NewServer()

	services := []interface{}{
		shipchainvault.New(log, e),
		linked.New(log, e),
		node.New(log, start, version, rpcCount, e),
		wallets.New(log, walletManager),
		credentials.New(log, credentialManager),
		primitives.NewDocument(log, e),
		primitives.NewProduct(log, e),
		primitives.NewItem(log, e),
		primitives.NewShipment(log, e),
		primitives.NewProcurement(log, e),
		primitives.NewTracking(log, e),
	}
	for _, s := range services {
		if err := server.Register(s); nil != err {
			return nil, err
		}
	}

	// one service type serves every list kind
	for _, kind := range primitive.Kinds() {
		if !kind.IsList() {
			continue
		}
		list := primitives.NewList(log, e, kind)
		if err := server.RegisterName(list.Name(), list); nil != err {
			return nil, err
		}
	}

	return server, nil
}
