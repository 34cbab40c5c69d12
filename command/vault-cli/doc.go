// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package main - vault-cli
//
// command line client for vaultd: manages wallets and storage
// credentials, creates vaults, injects primitives and can send any
// service method with raw JSON parameters
//
// the server is selected with --connect or the VAULTD_CONNECT
// environment variable
package main
