// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"encoding/json"
)

// Call - any service method with raw JSON parameters
func (client *Client) Call(method string, params json.RawMessage) (json.RawMessage, error) {
	if 0 == len(params) {
		params = json.RawMessage("{}")
	}
	client.trace(method+" Request", params)

	var reply json.RawMessage
	if err := client.client.Call(method, params, &reply); err != nil {
		return nil, err
	}

	client.trace(method+" Reply", reply)
	return reply, nil
}
