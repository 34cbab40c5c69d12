// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/exitwithstatus"

	"github.com/shipchain/vaultd/rpc/certificate"
	"github.com/shipchain/vaultd/util"
)

const (
	rpcCertificateFilename = "rpc.crt"
	rpcPrivateKeyFilename  = "rpc.key"
	walletPasswordFilename = "wallet.password"

	walletPasswordBytes = 32
)

type setupCommand struct {
	names   []string
	args    string
	summary []string
}

var setupCommands = []setupCommand{
	{names: []string{"help", "h"}, summary: []string{"display this message"}},
	{names: []string{"version", "v"}, summary: []string{"display version string"}},
	{
		names: []string{"gen-rpc-cert", "rpc"},
		args:  "[DIR [HOSTS...]]",
		summary: []string{
			"create DIR/" + rpcPrivateKeyFilename + " and DIR/" + rpcCertificateFilename,
			"optional extra hosts or IPs for the certificate",
		},
	},
	{
		names: []string{"gen-wallet-password", "password"},
		args:  "[DIR]",
		summary: []string{
			"create DIR/" + walletPasswordFilename + " holding a random password",
			"read by the sample configuration to encrypt wallet keys",
		},
	},
	{
		names:   []string{"start", "run"},
		summary: []string{"run the daemon, same as no command"},
	},
}

// commands that only create files, they run before the configuration
// is read and never touch the database
//
// returns false when the daemon should start
func processSetupCommand(program string, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	switch command {
	case "gen-rpc-cert", "rpc":
		certificateFilename := getFilenameWithDirectory(arguments, rpcCertificateFilename)
		privateKeyFilename := getFilenameWithDirectory(arguments, rpcPrivateKeyFilename)

		hosts := []string{}
		if len(arguments) >= 2 {
			for _, a := range arguments[1:] {
				if "" != a {
					hosts = append(hosts, a)
				}
			}
		}

		err := certificate.MakeSelfSigned("vaultd", certificateFilename, privateKeyFilename, hosts)
		if nil != err {
			exitwithstatus.Message("generate RPC key: %q and certificate: %q error: %s", privateKeyFilename, certificateFilename, err)
		}
		fmt.Printf("generated RPC key: %q and certificate: %q\n", privateKeyFilename, certificateFilename)

	case "gen-wallet-password", "password":
		passwordFilename := getFilenameWithDirectory(arguments, walletPasswordFilename)
		if err := makeWalletPassword(passwordFilename); nil != err {
			exitwithstatus.Message("generate wallet password: %q error: %s", passwordFilename, err)
		}
		fmt.Printf("generated wallet password: %q\n", passwordFilename)

	case "start", "run":
		return false

	case "version", "v":
		fmt.Printf("%s\n", version)

	default:
		switch command {
		case "help", "h", "?":
		case "", " ":
			fmt.Printf("error: missing command\n")
		default:
			fmt.Printf("error: no such command: %v\n", command)
		}
		printUsage(program)
		exitwithstatus.Exit(1)
	}

	return true
}

func printUsage(program string) {
	fmt.Printf("usage: %s [--help] [--verbose] [--quiet] --config-file=FILE [[command|help] arguments...]\n", program)
	fmt.Printf("supported commands:\n\n")
	for _, c := range setupCommands {
		fmt.Printf("  %-36s (%s)\n", c.names[0]+" "+c.args, c.names[1])
		for _, s := range c.summary {
			fmt.Printf("      %s\n", s)
		}
		fmt.Printf("\n")
	}
}

// random hex password, an existing file is never replaced
func makeWalletPassword(fileName string) error {
	if util.EnsureFileExists(fileName) {
		return os.ErrExist
	}

	b := make([]byte, walletPasswordBytes)
	if _, err := rand.Read(b); nil != err {
		return err
	}
	return ioutil.WriteFile(fileName, []byte(hex.EncodeToString(b)), 0600)
}

// first argument is the directory, default is the current one
func getFilenameWithDirectory(arguments []string, name string) string {
	dir := "."
	if len(arguments) >= 1 {
		dir = arguments[0]
	}

	return filepath.Join(dir, name)
}
