// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/shipchain/vaultd/rpc/arguments"
	"github.com/shipchain/vaultd/rpc/shipchainvault"
)

// CreateVaultData - parameters of a new vault
type CreateVaultData struct {
	StorageCredentials string
	VaultWallet        string
	AdditionalWallet   string
	Primitives         []string
}

// CreateVault - new vault owned by a wallet
func (client *Client) CreateVault(data *CreateVaultData) (*shipchainvault.CreateReply, error) {
	args := shipchainvault.CreateArguments{
		StorageCredentials: data.StorageCredentials,
		VaultWallet:        data.VaultWallet,
		AdditionalWallet:   data.AdditionalWallet,
		Primitives:         data.Primitives,
	}
	client.trace("Vault Create Request", args)

	var reply shipchainvault.CreateReply
	if err := client.client.Call("ShipChainVault.Create", args, &reply); err != nil {
		return nil, err
	}

	client.trace("Vault Create Reply", reply)
	return &reply, nil
}

// InjectPrimitives - add primitive kinds to an existing vault
func (client *Client) InjectPrimitives(vault arguments.Vault, primitives []string) (*shipchainvault.InjectReply, error) {
	args := shipchainvault.InjectArguments{
		Vault:      vault,
		Primitives: primitives,
	}
	client.trace("Inject Primitives Request", args)

	var reply shipchainvault.InjectReply
	if err := client.client.Call("ShipChainVault.InjectPrimitives", args, &reply); err != nil {
		return nil, err
	}

	client.trace("Inject Primitives Reply", reply)
	return &reply, nil
}
