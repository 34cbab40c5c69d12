// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"
)

type metadata struct {
	connect string
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	app := newApp()
	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {

	app := cli.NewApp()
	app.Name = "vault-cli"
	app.Usage = "vaultd client"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:   "connect, c",
			Value:  "127.0.0.1:2130",
			EnvVar: "VAULTD_CONNECT",
			Usage:  " vaultd client RPC `HOST:PORT`",
		},
	}

	vaultFlags := []cli.Flag{
		cli.StringFlag{
			Name:  "credentials, s",
			Value: "",
			Usage: "*storage credentials `ID`",
		},
		cli.StringFlag{
			Name:  "wallet, w",
			Value: "",
			Usage: "*vault wallet `ID`",
		},
		cli.StringFlag{
			Name:  "vault, V",
			Value: "",
			Usage: "*vault `ID`",
		},
	}

	app.Commands = []cli.Command{
		{
			Name:  "wallet",
			Usage: "signing wallets held by vaultd",
			Subcommands: []cli.Command{
				{
					Name:   "create",
					Usage:  "create a new wallet",
					Action: runWalletCreate,
				},
				{
					Name:      "get",
					Usage:     "display the public details of a wallet",
					ArgsUsage: "\n   (* = required)",
					Flags: []cli.Flag{
						cli.StringFlag{
							Name:  "wallet, w",
							Value: "",
							Usage: "*wallet `ID`",
						},
					},
					Action: runWalletGet,
				},
			},
		},
		{
			Name:    "credentials",
			Aliases: []string{"credential"},
			Usage:   "storage credentials held by vaultd",
			Subcommands: []cli.Command{
				{
					Name:      "create",
					Usage:     "store the options of a storage driver",
					ArgsUsage: "\n   (* = required)",
					Flags: []cli.Flag{
						cli.StringFlag{
							Name:  "title, t",
							Value: "",
							Usage: "*descriptive `TITLE`",
						},
						cli.StringFlag{
							Name:  "driver, d",
							Value: "local",
							Usage: " storage driver `TYPE` [local|s3|sftp]",
						},
						cli.StringFlag{
							Name:  "base-path, b",
							Value: "",
							Usage: "*root `PATH` of all vaults",
						},
						cli.StringFlag{
							Name:  "options, o",
							Value: "",
							Usage: " remaining driver options as `JSON`",
						},
					},
					Action: runCredentialsCreate,
				},
				{
					Name:   "list",
					Usage:  "list stored credentials without secrets",
					Action: runCredentialsList,
				},
			},
		},
		{
			Name:      "create",
			Usage:     "create a new vault",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "credentials, s",
					Value: "",
					Usage: "*storage credentials `ID`",
				},
				cli.StringFlag{
					Name:  "wallet, w",
					Value: "",
					Usage: "*vault owner wallet `ID`",
				},
				cli.StringFlag{
					Name:  "additional-wallet, a",
					Value: "",
					Usage: " co-owner wallet `ID`",
				},
				cli.StringFlag{
					Name:  "primitives, p",
					Value: "",
					Usage: " comma separated primitive `KINDS`",
				},
			},
			Action: runCreate,
		},
		{
			Name:      "inject",
			Usage:     "add primitives to an existing vault",
			ArgsUsage: "\n   (* = required)",
			Flags: append(vaultFlags,
				cli.StringFlag{
					Name:  "primitives, p",
					Value: "",
					Usage: "*comma separated primitive `KINDS`",
				},
			),
			Action: runInject,
		},
		{
			Name:      "call",
			Usage:     "call any service method",
			ArgsUsage: "SERVICE.METHOD [JSON]",
			Action:    runCall,
		},
		{
			Name:      "link",
			Usage:     "compose a VAULTREF link entry",
			ArgsUsage: "\n   (* = required)",
			Flags: append(vaultFlags,
				cli.StringFlag{
					Name:  "endpoint, e",
					Value: "local",
					Usage: " vault endpoint `URL` or local",
				},
				cli.StringFlag{
					Name:  "type, t",
					Value: "",
					Usage: "*primitive `KIND`",
				},
			),
			Action: runLink,
		},
		{
			Name:   "info",
			Usage:  "display vaultd status",
			Action: runInfo,
		},
		{
			Name:  "version",
			Usage: "display vault-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	app.Before = func(c *cli.Context) error {
		c.App.Metadata["config"] = &metadata{
			connect: c.GlobalString("connect"),
			verbose: c.GlobalBool("verbose"),
			e:       c.App.ErrWriter,
			w:       c.App.Writer,
		}
		return nil
	}

	return app
}
