// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	gorpc "net/rpc"
	"sync"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/shipchain/vaultd/counter"
	"github.com/shipchain/vaultd/credential"
	"github.com/shipchain/vaultd/engine"
	"github.com/shipchain/vaultd/fault"
	"github.com/shipchain/vaultd/rpc/certificate"
	"github.com/shipchain/vaultd/rpc/handler"
	"github.com/shipchain/vaultd/rpc/listeners"
	"github.com/shipchain/vaultd/rpc/server"
	"github.com/shipchain/vaultd/wallet"
)

const (
	rpcName   = "client_rpc"
	httpsName = "https_rpc"
)

// Services - what the rpc services operate on
type Services struct {
	Engine      *engine.Engine
	Wallets     wallet.Manager
	Credentials credential.Manager
}

// globals
type rpcData struct {
	sync.RWMutex

	log       *logger.L
	count     counter.Counter
	listeners []listeners.Listener

	// set once during initialise
	initialised bool
}

// global data
var globalData rpcData

// Initialise - start the JSON-RPC and HTTPS listeners
func Initialise(
	rpcConfiguration *listeners.RPCConfiguration,
	httpsConfiguration *listeners.HTTPSConfiguration,
	version string,
	services Services,
) error {

	globalData.Lock()
	defer globalData.Unlock()

	// no need to start if already started
	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	log := logger.New("rpc")
	globalData.log = log
	log.Info("starting…")

	s, err := server.Create(log, version, &globalData.count, services.Engine, services.Wallets, services.Credentials)
	if nil != err {
		return err
	}

	tlsConfig, fingerprint, err := certificate.Load(log, rpcName, rpcConfiguration.Certificate, rpcConfiguration.PrivateKey)
	if nil != err {
		return err
	}

	rpcListener, err := listeners.NewRPC(rpcConfiguration, log, &globalData.count, s, tlsConfig, fingerprint)
	if nil != err {
		return err
	}
	if err := rpcListener.Serve(); nil != err {
		return err
	}
	globalData.listeners = append(globalData.listeners, rpcListener)

	if err := initialiseHTTPS(httpsConfiguration, version, s); nil != err {
		closeListeners()
		return err
	}

	// all data initialised
	globalData.initialised = true

	return nil
}

func initialiseHTTPS(configuration *listeners.HTTPSConfiguration, version string, s *gorpc.Server) error {
	log := globalData.log
	if 0 == len(configuration.Listen) {
		log.Infof("disable: %s", httpsName)
		return nil
	}

	tlsConfig, fingerprint, err := certificate.Load(log, httpsName, configuration.Certificate, configuration.PrivateKey)
	if nil != err {
		return err
	}
	log.Infof("%s: SHA3-256 fingerprint: %x", httpsName, fingerprint)

	hdlr := handler.New(log, s, time.Now(), version, configuration.MaximumConnections)
	httpsListener, err := listeners.NewHTTPS(configuration, log, tlsConfig, hdlr)
	if nil != err {
		return err
	}
	if err := httpsListener.Serve(); nil != err {
		return err
	}
	globalData.listeners = append(globalData.listeners, httpsListener)
	return nil
}

func closeListeners() {
	for _, l := range globalData.listeners {
		if err := l.Close(); nil != err {
			globalData.log.Warnf("close listener: %s", err)
		}
	}
	globalData.listeners = nil
}

// Finalise - stop all listeners
func Finalise() error {

	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	closeListeners()

	// finally...
	globalData.initialised = false

	globalData.log.Info("finished")
	globalData.log.Flush()

	return nil
}
