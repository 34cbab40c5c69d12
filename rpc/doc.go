// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rpc - starts the listeners that carry incoming JSON-RPC
// requests to the vault services
//
// the TLS listener speaks JSON-RPC 1.0 per connection so standard
// golang RPC clients can be used, the HTTPS listener also accepts
// JSON-RPC 2.0 for remote link resolution
package rpc
