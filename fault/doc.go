// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - error values shared by every package
//
// plain failures are constants of a small set of string types so they
// compare with == and classify with the Is* helpers; failures that
// name a parameter or a primitive come from the constructors, keeping
// all message text that reaches a client in one place
package fault
