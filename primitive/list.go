// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package primitive

import (
	"sort"

	"github.com/shipchain/vaultd/fault"
	"github.com/shipchain/vaultd/link"
)

// List - insertion ordered map of link id to entry
//
// shared by the five list kinds, each accepting one element kind
type List struct {
	kind    Kind
	Order   []string   `json:"order"`
	Entries Collection `json:"entries"`
}

// Kind - primitive interface
func (l *List) Kind() Kind { return l.kind }

// AddEntity - insert a new link id, existing ids are rejected
func (l *List) AddEntity(linkID string, e *link.Entry) error {
	if nil == e {
		return fault.InvalidLinkEntry
	}
	element, _ := l.kind.Element()
	if err := e.Expect(element.String()); nil != err {
		return err
	}
	if _, ok := l.Entries[linkID]; ok {
		return fault.LinkIDExists(linkID)
	}
	l.Entries[linkID] = e
	l.Order = append(l.Order, linkID)
	return nil
}

// Get - entry for a link id
func (l *List) Get(linkID string) (*link.Entry, error) {
	e, ok := l.Entries[linkID]
	if !ok {
		return nil, fault.LinkIDNotFound(linkID)
	}
	return e, nil
}

// Count - number of link ids
func (l *List) Count() int {
	return len(l.Order)
}

// List - link ids in insertion order
func (l *List) List() []string {
	ids := make([]string, len(l.Order))
	copy(ids, l.Order)
	return ids
}

func (l *List) normalise() error {
	if nil == l.Entries {
		l.Entries = Collection{}
	}
	if nil == l.Order {
		l.Order = []string{}
	}

	// drop order entries without a link and append unordered links
	seen := make(map[string]struct{}, len(l.Order))
	order := make([]string, 0, len(l.Entries))
	for _, id := range l.Order {
		if _, ok := l.Entries[id]; !ok {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		order = append(order, id)
	}
	extra := []string{}
	for id := range l.Entries {
		if _, ok := seen[id]; !ok {
			extra = append(extra, id)
		}
	}
	sort.Strings(extra)
	l.Order = append(order, extra...)
	return l.Entries.check()
}
