// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package configuration - Lua configuration files
//
// a configuration is a Lua chunk run with the standard libraries open,
// so it can compute values, call os.getenv or read secrets from
// neighbouring files; the value it returns must be a table, which is
// mapped onto a Go structure through "gluamapper" field tags
package configuration
