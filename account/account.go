// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"bytes"
	"encoding/hex"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/ed25519"
	"golang.org/x/crypto/sha3"

	"github.com/shipchain/vaultd/fault"
)

// miscellaneous constants
const (
	checksumLength = 4

	// bits in key code starting from LSB
	publicKeyCode = 0x01

	algorithmED25519 = 0x01
	algorithmShift   = 4 // shift 4 bits to get algorithm

	keyVariant = byte(algorithmED25519<<algorithmShift) | publicKeyCode
)

// Address - base58 form of a wallet public key
//
// layout: variant(1) ++ ed25519 public key(32) ++ SHA3-256 checksum(4)
type Address struct {
	PublicKey []byte
}

// New - wrap a raw ed25519 public key
func New(publicKey []byte) (*Address, error) {
	if ed25519.PublicKeySize != len(publicKey) {
		return nil, fault.InvalidKeyLength
	}
	k := make([]byte, ed25519.PublicKeySize)
	copy(k, publicKey)
	return &Address{PublicKey: k}, nil
}

// FromHex - wrap a hex encoded ed25519 public key
func FromHex(publicKeyHex string) (*Address, error) {
	k, err := hex.DecodeString(publicKeyHex)
	if nil != err {
		return nil, fault.InvalidPublicKey
	}
	return New(k)
}

// FromBase58 - decode and checksum a base58 address
func FromBase58(s string) (*Address, error) {
	decoded, err := base58.Decode(s)
	if nil != err || 0 == len(decoded) {
		return nil, fault.CannotDecodeAddress
	}

	if decoded[0] != keyVariant {
		return nil, fault.InvalidPublicKey
	}

	keyLength := len(decoded) - 1 - checksumLength
	if keyLength != ed25519.PublicKeySize {
		return nil, fault.InvalidKeyLength
	}

	checksumStart := len(decoded) - checksumLength
	checksum := sha3.Sum256(decoded[:checksumStart])
	if !bytes.Equal(checksum[:checksumLength], decoded[checksumStart:]) {
		return nil, fault.ChecksumMismatch
	}

	return New(decoded[1:checksumStart])
}

// Bytes - variant prefixed key
func (a *Address) Bytes() []byte {
	return append([]byte{keyVariant}, a.PublicKey...)
}

// String - base58 encoding with checksum
func (a *Address) String() string {
	buffer := a.Bytes()
	checksum := sha3.Sum256(buffer)
	buffer = append(buffer, checksum[:checksumLength]...)
	return base58.Encode(buffer)
}

// PublicKeyHex - the form stored in vault owner lists
func (a *Address) PublicKeyHex() string {
	return hex.EncodeToString(a.PublicKey)
}

// CheckSignature - verify an ed25519 signature over message
func (a *Address) CheckSignature(message []byte, signature Signature) error {
	if ed25519.SignatureSize != len(signature) {
		return fault.InvalidSignature
	}
	if !ed25519.Verify(a.PublicKey, message, signature) {
		return fault.InvalidSignature
	}
	return nil
}

// MarshalText - convert an address to its base58 JSON form
func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText - convert base58 text to an address
func (a *Address) UnmarshalText(s []byte) error {
	decoded, err := FromBase58(string(s))
	if nil != err {
		return err
	}
	a.PublicKey = decoded.PublicKey
	return nil
}
