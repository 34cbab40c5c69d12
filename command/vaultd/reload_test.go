// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io/ioutil"
	"testing"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/shipchain/vaultd/fixtures"
	"github.com/shipchain/vaultd/resolver"
)

type recordingConfigurer struct {
	received chan resolver.Configuration
}

func (r *recordingConfigurer) Configure(c resolver.Configuration) {
	r.received <- c
}

func TestReloadLinks(t *testing.T) {
	fileName, cleanup := writeConfiguration(t, `
return {
    data_directory = ".",
    links = { maximum_depth = 5, local_endpoints = { "https://a.example.com/vaultd/rpc" } },
}`)
	defer cleanup()

	target := &recordingConfigurer{received: make(chan resolver.Configuration, 1)}
	channel := newTestChannel()
	done := make(chan struct{})
	defer close(done)

	go reloadLinks(logger.New(fixtures.LogCategory), fileName, target, channel, done)

	channel.change <- struct{}{}
	select {
	case c := <-target.received:
		assert.Equal(t, 5, c.MaximumDepth, "wrong depth")
		assert.Equal(t, []string{"https://a.example.com/vaultd/rpc"}, c.LocalEndpoints, "wrong endpoints")
	case <-time.After(5 * time.Second):
		t.Fatal("configuration not applied")
	}

	// a broken file keeps the current links
	err := ioutil.WriteFile(fileName, []byte("return {"), 0600)
	assert.Nil(t, err, "write file error")
	channel.change <- struct{}{}
	select {
	case <-target.received:
		t.Error("broken configuration applied")
	case <-time.After(200 * time.Millisecond):
	}
}
