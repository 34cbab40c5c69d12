// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package resolver

import (
	"bytes"
	"encoding/json"

	"github.com/shipchain/vaultd/fault"
	"github.com/shipchain/vaultd/primitive"
)

// DecodeLinkedData - shallow primitive from a remote result
//
// a result is either the JSON data itself or a JSON string holding it
func DecodeLinkedData(kind primitive.Kind, result json.RawMessage) (primitive.Primitive, error) {
	data := bytes.TrimSpace(result)
	if 0 == len(data) {
		return nil, fault.WrongRemoteResponseEnvelope
	}

	if '"' == data[0] {
		var s string
		if err := json.Unmarshal(data, &s); nil != err {
			return nil, fault.WrongRemoteResponseEnvelope
		}
		data = bytes.TrimSpace([]byte(s))
		if 0 == len(data) {
			return nil, fault.WrongRemoteResponseEnvelope
		}
	}

	p, err := primitive.New(kind)
	if nil != err {
		return nil, err
	}

	// tracking may arrive as the bare event array
	if t, ok := p.(*primitive.Tracking); ok && '[' == data[0] {
		events := []json.RawMessage{}
		if err := json.Unmarshal(data, &events); nil != err {
			return nil, fault.WrongRemoteResponseEnvelope
		}
		for _, event := range events {
			if err := t.Add(event); nil != err {
				return nil, err
			}
		}
		return t, nil
	}

	if '{' != data[0] {
		return nil, fault.WrongRemoteResponseEnvelope
	}

	// reuse the set decoder so every kind is rebuilt and normalised
	set := primitive.Set{}
	wrapped, err := json.Marshal(map[string]json.RawMessage{kind.String(): data})
	if nil != err {
		return nil, err
	}
	if err := json.Unmarshal(wrapped, &set); nil != err {
		if fault.InvalidLinkEntry == err {
			return nil, err
		}
		return nil, fault.WrongRemoteResponseEnvelope
	}
	return set[kind], nil
}

// EncodeLinkedData - the result a remote caller expects for a primitive
//
// tracking is sent as its event array, everything else as a JSON string
func EncodeLinkedData(p primitive.Primitive) (json.RawMessage, error) {
	if t, ok := p.(*primitive.Tracking); ok {
		return json.Marshal(t.Get())
	}
	state, err := json.Marshal(p)
	if nil != err {
		return nil, err
	}
	return json.Marshal(string(state))
}
