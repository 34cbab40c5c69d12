// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners

import (
	"github.com/bitmark-inc/logger"

	"github.com/shipchain/vaultd/fault"
	"github.com/shipchain/vaultd/util"
)

const minConnectionCount = 1

// Listener - a set of sockets accepting client requests
type Listener interface {
	Serve() error
	Close() error
}

// canonical listen addresses with the network each one needs
func parseListenAddress(addrs []string, log *logger.L) ([]string, []string, error) {
	canonical := make([]string, len(addrs))
	network := make([]string, len(addrs))
	for i, listen := range addrs {
		c, err := util.CanonicalIPandPort(listen)
		if nil != err {
			log.Errorf("listen: %q  error: %s", listen, err)
			return nil, nil, err
		}
		canonical[i] = c
		network[i] = util.NetworkOf(c)
	}
	if 0 == len(canonical) {
		return nil, nil, fault.MissingParameters
	}
	return canonical, network, nil
}
