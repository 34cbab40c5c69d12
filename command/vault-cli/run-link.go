// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/shipchain/vaultd/link"
	"github.com/shipchain/vaultd/primitive"
)

// composeLink - the wire form of a link to one primitive of a vault
func composeLink(endpoint string, credentials string, wallet string, vault string, kind string) (string, error) {
	k, err := primitive.KindFromName(kind)
	if nil != err {
		return "", err
	}
	entry, err := link.Encode(link.Locator{
		Endpoint:      endpoint,
		CredentialsID: credentials,
		WalletID:      wallet,
		VaultID:       vault,
		Type:          k.String(),
	}, "")
	if nil != err {
		return "", err
	}
	return entry.String(), nil
}

func runLink(c *cli.Context) error {
	m := getMetadata(c)

	v, err := vaultArguments(c)
	if nil != err {
		return err
	}

	s, err := composeLink(c.String("endpoint"), v.StorageCredentials, v.VaultWallet, v.Vault, c.String("type"))
	if nil != err {
		return err
	}

	fmt.Fprintf(m.w, "%s\n", s)
	return nil
}
