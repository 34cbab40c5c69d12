// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ratelimit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"

	"github.com/shipchain/vaultd/fault"
	"github.com/shipchain/vaultd/rpc/ratelimit"
)

func TestLimit(t *testing.T) {
	limiter := rate.NewLimiter(1000, 10)
	for i := 0; i < 5; i += 1 {
		assert.Nil(t, ratelimit.Limit(limiter), "limit %d", i)
	}
}

func TestLimitN(t *testing.T) {
	limiter := rate.NewLimiter(1000, 10)

	assert.Nil(t, ratelimit.LimitN(limiter, 3, 5), "within maximum")
	assert.Equal(t, fault.InvalidCount, ratelimit.LimitN(limiter, 0, 5), "zero count")
	assert.Equal(t, fault.InvalidCount, ratelimit.LimitN(limiter, 6, 5), "over maximum")
}

func TestLimitBurstExceeded(t *testing.T) {
	limiter := rate.NewLimiter(1000, 2)
	assert.Equal(t, fault.RateLimiting, ratelimit.LimitN(limiter, 3, 5), "larger than burst")
}
