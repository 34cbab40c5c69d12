// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"
)

func runWalletCreate(c *cli.Context) error {
	client, m, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.CreateWallet()
	if nil != err {
		return err
	}

	printJson(m.w, reply)
	return nil
}

func runWalletGet(c *cli.Context) error {
	id, err := checkRequired("wallet", c.String("wallet"))
	if nil != err {
		return err
	}

	client, m, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.GetWallet(id)
	if nil != err {
		return err
	}

	printJson(m.w, reply)
	return nil
}
