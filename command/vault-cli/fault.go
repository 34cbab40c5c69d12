// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/shipchain/vaultd/fault"
)

// common errors - keep in alphabetic order
const (
	ErrMissingMethod     = fault.InvalidError("method is required")
	ErrMissingPrimitives = fault.InvalidError("at least one primitive is required")
	ErrMissingTitle      = fault.InvalidError("title is required")
)
