// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shipchain/vaultd/fixtures"
	"github.com/shipchain/vaultd/link"
)

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"Document", "Shipment"}, splitList("Document, Shipment"), "wrong list")
	assert.Equal(t, []string{"Tracking"}, splitList(",Tracking,,"), "wrong list")
	assert.Equal(t, []string{}, splitList(""), "wrong empty list")
}

func TestComposeLink(t *testing.T) {
	s, err := composeLink("local", fixtures.CredentialsID, fixtures.WalletID, fixtures.VaultID, "Document")
	assert.Nil(t, err, "wrong error")
	assert.True(t, strings.HasPrefix(s, link.Scheme+"local/"), "wrong prefix: "+s)

	l, err := link.Parse(s)
	assert.Nil(t, err, "composed link does not parse")
	assert.Equal(t, fixtures.VaultID, l.VaultID, "wrong vault")
	assert.Equal(t, "Document", l.Type, "wrong type")

	s, err = composeLink("https://vault.example.com/vaultd/rpc", fixtures.CredentialsID, fixtures.WalletID, fixtures.VaultID, "Shipment")
	assert.Nil(t, err, "wrong remote error")
	l, _ = link.Parse(s)
	assert.Equal(t, "https://vault.example.com/vaultd/rpc", l.Endpoint, "wrong endpoint")

	_, err = composeLink("local", fixtures.CredentialsID, fixtures.WalletID, fixtures.VaultID, "Nothing")
	assert.NotNil(t, err, "unknown kind accepted")

	_, err = composeLink("ftp://x", fixtures.CredentialsID, fixtures.WalletID, fixtures.VaultID, "Document")
	assert.NotNil(t, err, "bad endpoint accepted")
}

func run(args ...string) (string, error) {
	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	app.ErrWriter = &out
	err := app.Run(append([]string{"vault-cli"}, args...))
	return out.String(), err
}

func TestLinkCommand(t *testing.T) {
	out, err := run("link",
		"--credentials", fixtures.CredentialsID,
		"--wallet", fixtures.WalletID,
		"--vault", fixtures.VaultID,
		"--type", "Tracking",
	)
	assert.Nil(t, err, "wrong error")
	assert.Equal(t, link.Scheme+"local/"+fixtures.CredentialsID+"/"+fixtures.WalletID+"/"+fixtures.VaultID+"/Tracking\n", out, "wrong output")

	_, err = run("link", "--credentials", "x", "--wallet", fixtures.WalletID, "--vault", fixtures.VaultID, "--type", "Tracking")
	assert.NotNil(t, err, "invalid credentials accepted")
}

func TestRequiredArguments(t *testing.T) {
	_, err := run("call")
	assert.Equal(t, ErrMissingMethod, err, "wrong call error")

	_, err = run("credentials", "create")
	assert.Equal(t, ErrMissingTitle, err, "wrong credentials error")

	_, err = run("inject",
		"--credentials", fixtures.CredentialsID,
		"--wallet", fixtures.WalletID,
		"--vault", fixtures.VaultID,
	)
	assert.Equal(t, ErrMissingPrimitives, err, "wrong inject error")
}

func TestVersionCommand(t *testing.T) {
	out, err := run("version")
	assert.Nil(t, err, "wrong error")
	assert.Equal(t, version+"\n", out, "wrong version")
}
