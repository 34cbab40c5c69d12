// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package vault

import (
	"encoding/json"
	"sort"

	"github.com/shipchain/vaultd/primitive"
	"github.com/shipchain/vaultd/signature"
)

// OwnersRole - the only role a vault carries
const OwnersRole = "owners"

// Metadata - the persisted vault document
type Metadata struct {
	ID         string           `json:"id"`
	Revision   uint64           `json:"revision"`
	Primitives primitive.Set    `json:"primitives"`
	Owners     []string         `json:"owners"`
	Signed     *signature.Block `json:"signed,omitempty"`
}

// the hashed part, everything except the signature block
type unsigned struct {
	ID         string        `json:"id"`
	Revision   uint64        `json:"revision"`
	Primitives primitive.Set `json:"primitives"`
	Owners     []string      `json:"owners"`
}

func newMetadata(id string, owner string) *Metadata {
	return &Metadata{
		ID:         id,
		Revision:   0,
		Primitives: primitive.Set{},
		Owners:     []string{owner},
	}
}

// Canonical - deterministic serialisation without the signature block
//
// map keys are sorted by encoding/json and owners are kept sorted
func (m *Metadata) Canonical() ([]byte, error) {
	return json.Marshal(unsigned{
		ID:         m.ID,
		Revision:   m.Revision,
		Primitives: m.Primitives,
		Owners:     m.Owners,
	})
}

// IsOwner - public key is in the owners role
func (m *Metadata) IsOwner(publicKey string) bool {
	i := sort.SearchStrings(m.Owners, publicKey)
	return i < len(m.Owners) && m.Owners[i] == publicKey
}

func (m *Metadata) addOwner(publicKey string) {
	if m.IsOwner(publicKey) {
		return
	}
	m.Owners = append(m.Owners, publicKey)
	sort.Strings(m.Owners)
}

func (m *Metadata) normalise() {
	if nil == m.Primitives {
		m.Primitives = primitive.Set{}
	}
	if nil == m.Owners {
		m.Owners = []string{}
	}
	sort.Strings(m.Owners)
}
