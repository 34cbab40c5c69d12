// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package primitive

import (
	"encoding/json"
	"sort"
)

// Set - at most one primitive of each kind
type Set map[Kind]Primitive

type normaliser interface {
	normalise() error
}

// Names - kind names present, sorted
func (s Set) Names() []string {
	names := make([]string, 0, len(s))
	for k := range s {
		names = append(names, k.String())
	}
	sort.Strings(names)
	return names
}

// MarshalJSON - object keyed by kind name
func (s Set) MarshalJSON() ([]byte, error) {
	m := make(map[string]Primitive, len(s))
	for k, p := range s {
		m[k.String()] = p
	}
	return json.Marshal(m)
}

// UnmarshalJSON - rebuild each primitive from its kind name
func (s *Set) UnmarshalJSON(b []byte) error {
	var m map[string]json.RawMessage
	if err := json.Unmarshal(b, &m); nil != err {
		return err
	}
	set := make(Set, len(m))
	for name, raw := range m {
		kind, err := KindFromName(name)
		if nil != err {
			return err
		}
		p, err := New(kind)
		if nil != err {
			return err
		}
		if err := json.Unmarshal(raw, p); nil != err {
			return err
		}
		if n, ok := p.(normaliser); ok {
			if err := n.normalise(); nil != err {
				return err
			}
		}
		set[kind] = p
	}
	*s = set
	return nil
}
