// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"

	"github.com/urfave/cli"
)

// vault-cli call Document.GetFields '{"storageCredentials":…}'
func runCall(c *cli.Context) error {
	method := c.Args().Get(0)
	if "" == method {
		return ErrMissingMethod
	}

	var params json.RawMessage
	if text := c.Args().Get(1); "" != text {
		if !json.Valid([]byte(text)) {
			return cli.NewExitError("parameters are not valid JSON", 1)
		}
		params = json.RawMessage(text)
	}

	client, m, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.Call(method, params)
	if nil != err {
		return err
	}

	printJson(m.w, reply)
	return nil
}

func runInfo(c *cli.Context) error {
	client, m, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.GetInfo()
	if nil != err {
		return err
	}

	printJson(m.w, reply)
	return nil
}
