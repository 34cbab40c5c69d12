// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// maintain the on-disk data store
//
// maintain separate pools of a number of elements in key->value form
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the avaiable tables.
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ++   = concatenation of byte data
// 3. id   = textual UUID as assigned on creation
//
// Wallets:
//
//   W ++ id      - wallet record
//                  data: JSON {id, public_key, address, salt, sealed_key}
//
// Storage credentials:
//
//   C ++ id      - credential record
//                  data: JSON {id, title, options}
//
// Testing:
//   Z ++ key     - testing data
package storage
