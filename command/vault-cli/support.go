// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/urfave/cli"

	"github.com/shipchain/vaultd/command/vault-cli/rpccalls"
	"github.com/shipchain/vaultd/fault"
)

func printJson(handle io.Writer, message interface{}) {
	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		fmt.Fprintf(handle, "error: %s\n", err)
		return
	}
	fmt.Fprintf(handle, "%s\n", b)
}

// settings from the global flags, sub-command apps may not carry the metadata
func getMetadata(c *cli.Context) *metadata {
	if m, ok := c.App.Metadata["config"].(*metadata); ok {
		return m
	}
	return &metadata{
		connect: c.GlobalString("connect"),
		verbose: c.GlobalBool("verbose"),
		e:       c.App.ErrWriter,
		w:       c.App.Writer,
	}
}

// connect using the global flags
func connect(c *cli.Context) (*rpccalls.Client, *metadata, error) {
	m := getMetadata(c)

	if m.verbose {
		fmt.Fprintf(m.e, "connect: %s\n", m.connect)
	}
	client, err := rpccalls.NewClient(m.connect, m.verbose, m.e)
	if nil != err {
		return nil, nil, err
	}
	return client, m, nil
}

func checkRequired(name string, value string) (string, error) {
	if "" == value {
		return "", fault.MissingParameter(name)
	}
	return value, nil
}

// "Document, Shipment" -> ["Document", "Shipment"]
func splitList(s string) []string {
	list := make([]string, 0)
	for _, item := range strings.Split(s, ",") {
		item = strings.TrimSpace(item)
		if "" != item {
			list = append(list, item)
		}
	}
	return list
}
