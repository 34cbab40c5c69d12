// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"net"
	"strconv"
	"strings"

	"github.com/shipchain/vaultd/fault"
)

// CanonicalIPandPort - make a listen address canonical
//
// examples:
//   IPv4:  127.0.0.1:1234
//   IPv6:  [::1]:1234
//   any:   *:1234  becomes  [::]:1234
func CanonicalIPandPort(hostPort string) (string, error) {
	hostPort = strings.TrimSpace(hostPort)
	if strings.HasPrefix(hostPort, "*:") {
		hostPort = "[::]" + hostPort[1:]
	}

	host, port, err := net.SplitHostPort(hostPort)
	if nil != err {
		return "", fault.InvalidIpAddress
	}

	ip := net.ParseIP(strings.TrimSpace(host))
	if nil == ip {
		return "", fault.InvalidIpAddress
	}

	numericPort, err := strconv.Atoi(strings.TrimSpace(port))
	if nil != err || numericPort < 1 || numericPort > 65535 {
		return "", fault.InvalidPortNumber
	}

	if nil != ip.To4() {
		return ip.String() + ":" + strconv.Itoa(numericPort), nil
	}
	return "[" + ip.String() + "]:" + strconv.Itoa(numericPort), nil
}

// NetworkOf - tcp, tcp4 or tcp6 to match a canonical address
func NetworkOf(canonical string) string {
	switch {
	case strings.HasPrefix(canonical, "[::]:"):
		return "tcp"
	case strings.HasPrefix(canonical, "["):
		return "tcp6"
	default:
		return "tcp4"
	}
}
