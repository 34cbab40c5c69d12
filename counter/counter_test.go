// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package counter_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shipchain/vaultd/counter"
)

func TestCounter(t *testing.T) {
	var c counter.Counter

	assert.Equal(t, uint64(0), c.Uint64(), "not zero at start")

	for i := 0; i < 5; i += 1 {
		c.Increment()
	}
	assert.Equal(t, uint64(5), c.Uint64(), "wrong value after increment")

	assert.Equal(t, uint64(4), c.Decrement(), "wrong value after decrement")
}

func TestAcquire(t *testing.T) {
	var c counter.Counter

	assert.True(t, c.Acquire(2), "first slot refused")
	assert.True(t, c.Acquire(2), "second slot refused")
	assert.False(t, c.Acquire(2), "slot above limit granted")
	assert.Equal(t, uint64(2), c.Uint64(), "refused acquire changed the count")

	c.Release()
	assert.True(t, c.Acquire(2), "released slot not reusable")

	var zero counter.Counter
	assert.False(t, zero.Acquire(0), "zero limit granted a slot")
}

func TestAcquireConcurrent(t *testing.T) {
	const limit = 10

	var c counter.Counter
	var granted counter.Counter
	var wg sync.WaitGroup

	for i := 0; i < 100; i += 1 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if c.Acquire(limit) {
				granted.Increment()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, uint64(limit), granted.Uint64(), "wrong number of slots granted")
	assert.Equal(t, uint64(limit), c.Uint64(), "wrong held count")
}
