// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"

	"github.com/urfave/cli"

	"github.com/shipchain/vaultd/driver"
)

// flags override the same fields given in the JSON options
func credentialOptions(c *cli.Context) (driver.Options, error) {
	options := driver.Options{}
	if s := c.String("options"); "" != s {
		if err := json.Unmarshal([]byte(s), &options); nil != err {
			return driver.Options{}, err
		}
	}
	if d := c.String("driver"); "" != d {
		options.DriverType = d
	}
	if b := c.String("base-path"); "" != b {
		options.BasePath = b
	}
	return options, nil
}

func runCredentialsCreate(c *cli.Context) error {
	title := c.String("title")
	if "" == title {
		return ErrMissingTitle
	}
	options, err := credentialOptions(c)
	if nil != err {
		return err
	}

	client, m, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.CreateCredentials(title, options)
	if nil != err {
		return err
	}

	printJson(m.w, reply)
	return nil
}

func runCredentialsList(c *cli.Context) error {
	client, m, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.ListCredentials()
	if nil != err {
		return err
	}

	printJson(m.w, reply)
	return nil
}
