// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/shipchain/vaultd/rpc/wallets"
)

// CreateWallet - new signing wallet held by vaultd
func (client *Client) CreateWallet() (*wallets.Reply, error) {
	args := wallets.CreateArguments{}
	client.trace("Wallet Create Request", args)

	var reply wallets.Reply
	if err := client.client.Call("Wallet.Create", args, &reply); err != nil {
		return nil, err
	}

	client.trace("Wallet Create Reply", reply)
	return &reply, nil
}

// GetWallet - public details of a wallet
func (client *Client) GetWallet(id string) (*wallets.Reply, error) {
	args := wallets.GetArguments{
		Wallet: id,
	}
	client.trace("Wallet Get Request", args)

	var reply wallets.Reply
	if err := client.client.Call("Wallet.Get", args, &reply); err != nil {
		return nil, err
	}

	client.trace("Wallet Get Reply", reply)
	return &reply, nil
}
