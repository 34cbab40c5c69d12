// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/shipchain/vaultd/driver"
	"github.com/shipchain/vaultd/rpc/credentials"
)

// CreateCredentials - store the options of a storage driver
func (client *Client) CreateCredentials(title string, options driver.Options) (*credentials.CreateReply, error) {
	args := credentials.CreateArguments{
		Title:   title,
		Options: options,
	}

	var reply credentials.CreateReply
	if err := client.client.Call("StorageCredentials.Create", args, &reply); err != nil {
		return nil, err
	}

	client.trace("Storage Credentials Create Reply", reply)
	return &reply, nil
}

// ListCredentials - every stored credential without secrets
func (client *Client) ListCredentials() (*credentials.ListReply, error) {
	var reply credentials.ListReply
	if err := client.client.Call("StorageCredentials.List", credentials.ListArguments{}, &reply); err != nil {
		return nil, err
	}

	client.trace("Storage Credentials List Reply", reply)
	return &reply, nil
}
