// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package link

import (
	"encoding/json"
	"net/url"
	"strings"

	"github.com/shipchain/vaultd/fault"
)

// Scheme - prefix of every wire locator
const Scheme = "VAULTREF#"

// LocalEndpoint - endpoint naming the process holding the link
const LocalEndpoint = "local"

const segmentCount = 4

// Locator - structured form of a VAULTREF
//
// wire: VAULTREF#<endpoint>/<credentials id>/<wallet id>/<vault id>/<Type>
type Locator struct {
	Endpoint      string
	CredentialsID string
	WalletID      string
	VaultID       string
	Type          string
}

// Parse - decode a wire locator
//
// the endpoint may itself contain '/' so the four identifiers are taken
// from the right
func Parse(raw string) (Locator, error) {
	if !strings.HasPrefix(raw, Scheme) {
		return Locator{}, fault.LinkMissingScheme
	}
	body := strings.TrimPrefix(raw, Scheme)

	parts := strings.Split(body, "/")
	if len(parts) < segmentCount+1 {
		return Locator{}, fault.LinkMissingSegments
	}
	n := len(parts)
	ids := parts[n-segmentCount:]
	for _, s := range ids {
		if "" == s {
			return Locator{}, fault.LinkMissingSegments
		}
	}

	endpoint := strings.Join(parts[:n-segmentCount], "/")
	if err := checkEndpoint(endpoint); nil != err {
		return Locator{}, err
	}

	return Locator{
		Endpoint:      endpoint,
		CredentialsID: ids[0],
		WalletID:      ids[1],
		VaultID:       ids[2],
		Type:          ids[3],
	}, nil
}

func checkEndpoint(endpoint string) error {
	if "" == endpoint {
		return fault.LinkInvalidEndpoint
	}
	if LocalEndpoint == endpoint {
		return nil
	}
	u, err := url.Parse(endpoint)
	if nil != err {
		return fault.LinkInvalidEndpoint
	}
	if ("http" != u.Scheme && "https" != u.Scheme) || "" == u.Host {
		return fault.LinkInvalidEndpoint
	}
	return nil
}

// String - the wire form
func (l Locator) String() string {
	return Scheme + strings.Join([]string{l.Endpoint, l.CredentialsID, l.WalletID, l.VaultID, l.Type}, "/")
}

// IsLocal - true when the endpoint is this process
func (l Locator) IsLocal() bool {
	return LocalEndpoint == l.Endpoint
}

// Validate - check a locator built in code rather than parsed
func (l Locator) Validate() error {
	if "" == l.CredentialsID || "" == l.WalletID || "" == l.VaultID || "" == l.Type {
		return fault.LinkMissingSegments
	}
	for _, s := range []string{l.CredentialsID, l.WalletID, l.VaultID, l.Type} {
		if strings.Contains(s, "/") {
			return fault.LinkMissingSegments
		}
	}
	return checkEndpoint(l.Endpoint)
}

// Entry - a typed reference to a primitive
type Entry struct {
	Locator Locator
	Type    string
}

type entryJSON struct {
	Ref  string `json:"ref"`
	Type string `json:"type"`
}

// Encode - pair a locator with its declared target type
func Encode(locator Locator, targetType string) (*Entry, error) {
	if err := locator.Validate(); nil != err {
		return nil, err
	}
	if "" == targetType {
		targetType = locator.Type
	}
	if targetType != locator.Type {
		return nil, fault.LinkTypeMismatch(locator.Type, targetType)
	}
	return &Entry{Locator: locator, Type: targetType}, nil
}

// Decode - parse the wire string of an entry
func Decode(raw string) (*Entry, error) {
	return Build(raw)
}

// Build - entry from a bare locator, type from the final segment
func Build(raw string) (*Entry, error) {
	locator, err := Parse(raw)
	if nil != err {
		return nil, err
	}
	return &Entry{Locator: locator, Type: locator.Type}, nil
}

// FromParameter - accept either a bare locator string or an entry object
//
// any parse failure is reported as an invalid entry
func FromParameter(raw json.RawMessage) (*Entry, error) {
	if 0 == len(raw) || "null" == string(raw) {
		return nil, fault.InvalidLinkEntry
	}
	e := &Entry{}
	if err := json.Unmarshal(raw, e); nil != err {
		if fault.IsErrLinkType(err) {
			return nil, err
		}
		return nil, fault.InvalidLinkEntry
	}
	return e, nil
}

// Expect - fail unless the entry targets the given type
func (e *Entry) Expect(expected string) error {
	if e.Type != expected {
		return fault.LinkTypeMismatch(expected, e.Type)
	}
	return nil
}

// String - the wire locator
func (e *Entry) String() string {
	return e.Locator.String()
}

// MarshalJSON - object form {"ref": ..., "type": ...}
func (e Entry) MarshalJSON() ([]byte, error) {
	return json.Marshal(entryJSON{
		Ref:  e.Locator.String(),
		Type: e.Type,
	})
}

// UnmarshalJSON - object form or a bare locator string
func (e *Entry) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if strings.HasPrefix(s, "\"") {
		var raw string
		if err := json.Unmarshal(b, &raw); nil != err {
			return err
		}
		built, err := Build(raw)
		if nil != err {
			return err
		}
		*e = *built
		return nil
	}

	var j entryJSON
	if err := json.Unmarshal(b, &j); nil != err {
		return err
	}
	locator, err := Parse(j.Ref)
	if nil != err {
		return err
	}
	if "" == j.Type {
		j.Type = locator.Type
	}
	if j.Type != locator.Type {
		return fault.LinkTypeMismatch(locator.Type, j.Type)
	}
	e.Locator = locator
	e.Type = j.Type
	return nil
}
