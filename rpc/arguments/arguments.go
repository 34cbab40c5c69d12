// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package arguments

import (
	"bytes"
	"encoding/json"

	"github.com/google/uuid"

	"github.com/shipchain/vaultd/engine"
	"github.com/shipchain/vaultd/fault"
	"github.com/shipchain/vaultd/link"
	"github.com/shipchain/vaultd/primitive"
)

// Vault - the collaborators every vault request names
type Vault struct {
	StorageCredentials string `json:"storageCredentials"`
	VaultWallet        string `json:"vaultWallet"`
	Vault              string `json:"vault"`
}

// Target - validated engine target
func (v *Vault) Target() (engine.Target, error) {
	if err := UUID("storageCredentials", v.StorageCredentials); nil != err {
		return engine.Target{}, err
	}
	if err := UUID("vaultWallet", v.VaultWallet); nil != err {
		return engine.Target{}, err
	}
	if err := UUID("vault", v.Vault); nil != err {
		return engine.Target{}, err
	}
	return engine.Target{
		CredentialsID: v.StorageCredentials,
		WalletID:      v.VaultWallet,
		VaultID:       v.Vault,
	}, nil
}

// UUID - required parameter holding a UUID
func UUID(name string, value string) error {
	if "" == value {
		return fault.MissingParameter(name)
	}
	if _, err := uuid.Parse(value); nil != err {
		return fault.InvalidParameterType(name, "UUID")
	}
	return nil
}

// OptionalUUID - empty or a UUID
func OptionalUUID(name string, value string) error {
	if "" == value {
		return nil
	}
	return UUID(name, value)
}

// String - required non-empty string parameter
func String(name string, value string) error {
	if "" == value {
		return fault.MissingParameter(name)
	}
	return nil
}

// Primitives - non-empty list of primitive names
func Primitives(name string, values []string) error {
	if 0 == len(values) {
		return fault.MissingParameter(name)
	}
	for _, v := range values {
		if "" == v {
			return fault.InvalidParameterType(name, "string array")
		}
	}
	return nil
}

func isMissing(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return 0 == len(trimmed) || "null" == string(trimmed)
}

// Fields - required object parameter
func Fields(name string, raw json.RawMessage) (primitive.Fields, error) {
	if isMissing(raw) {
		return nil, fault.MissingParameter(name)
	}
	return primitive.ParseFields(raw)
}

// Link - required locator string or link entry object
func Link(name string, raw json.RawMessage) (*link.Entry, error) {
	if isMissing(raw) {
		return nil, fault.MissingParameter(name)
	}
	return link.FromParameter(raw)
}

// Payload - required JSON value of any shape
func Payload(name string, raw json.RawMessage) (json.RawMessage, error) {
	if isMissing(raw) {
		return nil, fault.MissingParameter(name)
	}
	if !json.Valid(raw) {
		return nil, fault.InvalidParameterType(name, "JSON")
	}
	return raw, nil
}

// Quantity - optional positive integer, one when absent
func Quantity(name string, raw json.RawMessage) (int64, error) {
	if isMissing(raw) {
		return 1, nil
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); nil != err {
		return 0, fault.InvalidParameterType(name, "number")
	}
	q, err := n.Int64()
	if nil != err || q < 1 {
		return 0, fault.InvalidParameterType(name, "number")
	}
	return q, nil
}
