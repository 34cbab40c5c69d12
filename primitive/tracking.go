// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package primitive

import (
	"bytes"
	"encoding/json"

	"github.com/shipchain/vaultd/fault"
)

// Tracking - append only sequence of arbitrary JSON events
type Tracking struct {
	Events []json.RawMessage `json:"events"`
}

// Kind - primitive interface
func (t *Tracking) Kind() Kind { return KindTracking }

// Add - append one event
func (t *Tracking) Add(payload json.RawMessage) error {
	if !json.Valid(payload) {
		return fault.InvalidParameterType("payload", "JSON")
	}
	b := &bytes.Buffer{}
	if err := json.Compact(b, payload); nil != err {
		return fault.InvalidParameterType("payload", "JSON")
	}
	t.Events = append(t.Events, b.Bytes())
	return nil
}

// Get - every event in order, never nil
func (t *Tracking) Get() []json.RawMessage {
	events := make([]json.RawMessage, len(t.Events))
	copy(events, t.Events)
	return events
}

func (t *Tracking) normalise() error {
	if nil == t.Events {
		t.Events = []json.RawMessage{}
	}
	return nil
}
