// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/shipchain/vaultd/command/vault-cli/rpccalls"
	"github.com/shipchain/vaultd/rpc/arguments"
)

func runCreate(c *cli.Context) error {
	credentials, err := checkRequired("credentials", c.String("credentials"))
	if nil != err {
		return err
	}
	wallet, err := checkRequired("wallet", c.String("wallet"))
	if nil != err {
		return err
	}

	client, m, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.CreateVault(&rpccalls.CreateVaultData{
		StorageCredentials: credentials,
		VaultWallet:        wallet,
		AdditionalWallet:   c.String("additional-wallet"),
		Primitives:         splitList(c.String("primitives")),
	})
	if nil != err {
		return err
	}

	printJson(m.w, reply)
	return nil
}

func vaultArguments(c *cli.Context) (arguments.Vault, error) {
	v := arguments.Vault{
		StorageCredentials: c.String("credentials"),
		VaultWallet:        c.String("wallet"),
		Vault:              c.String("vault"),
	}
	if _, err := v.Target(); nil != err {
		return arguments.Vault{}, err
	}
	return v, nil
}

func runInject(c *cli.Context) error {
	v, err := vaultArguments(c)
	if nil != err {
		return err
	}
	primitives := splitList(c.String("primitives"))
	if 0 == len(primitives) {
		return ErrMissingPrimitives
	}

	client, m, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.InjectPrimitives(v, primitives)
	if nil != err {
		return err
	}

	printJson(m.w, reply)
	return nil
}
