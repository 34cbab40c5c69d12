// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package vault

import (
	"sync"
)

// Locks - one mutex per vault id, dropped when unused
type Locks struct {
	sync.Mutex
	vaults map[string]*vaultLock
}

type vaultLock struct {
	sync.Mutex
	users int
}

// NewLocks - empty lock table
func NewLocks() *Locks {
	return &Locks{
		vaults: make(map[string]*vaultLock),
	}
}

// Lock - block until the vault is free, returns the unlock function
func (l *Locks) Lock(id string) func() {
	l.Mutex.Lock()
	v, ok := l.vaults[id]
	if !ok {
		v = &vaultLock{}
		l.vaults[id] = v
	}
	v.users += 1
	l.Mutex.Unlock()

	v.Lock()

	return func() {
		v.Unlock()

		l.Mutex.Lock()
		v.users -= 1
		if 0 == v.users {
			delete(l.vaults, id)
		}
		l.Mutex.Unlock()
	}
}

// Count - number of vaults currently locked or waited on
func (l *Locks) Count() int {
	l.Mutex.Lock()
	defer l.Mutex.Unlock()
	return len(l.vaults)
}
