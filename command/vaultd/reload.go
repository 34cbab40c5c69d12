// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/bitmark-inc/logger"

	"github.com/shipchain/vaultd/resolver"
)

// Configurer - anything taking a fresh links block
type Configurer interface {
	Configure(resolver.Configuration)
}

// apply the links block of the configuration file on every change
//
// a file that fails to parse leaves the running configuration in place
func reloadLinks(log *logger.L, fileName string, target Configurer, channel WatcherChannel, done <-chan struct{}) {
	for {
		select {
		case <-done:
			return

		case <-channel.change:
			c, err := getConfiguration(fileName)
			if nil != err {
				log.Errorf("reload: %q  error: %s", fileName, err)
				continue
			}
			log.Infof("reload links: %+v", c.Links)
			target.Configure(c.Links)

		case <-channel.remove:
			log.Warnf("configuration file: %q removed, keeping current links", fileName)
		}
	}
}
