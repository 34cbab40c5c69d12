// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package signature

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/shipchain/vaultd/account"
	"github.com/shipchain/vaultd/fault"
)

// Algorithm - the only digest in use
const Algorithm = "sha256"

// Signer - key holder able to sign a digest
type Signer interface {
	PublicKeyHex() string
	Sign(digest []byte) ([]byte, error)
}

// Block - result of the most recent signed write
type Block struct {
	Author    string `json:"author"`
	Hash      string `json:"hash"`
	At        string `json:"at"`
	Signature string `json:"signature"`
	Alg       string `json:"alg"`
}

// Service - hash, sign and verify metadata payloads
//
// must be created with New, the zero value refuses every call
type Service struct {
	log         *logger.L
	now         func() time.Time
	initialised bool
}

// New - create an initialised service
func New(log *logger.L) *Service {
	return &Service{
		log:         log,
		now:         time.Now,
		initialised: true,
	}
}

// Hash - sha256 digest of a canonical payload
func (s *Service) Hash(payload []byte) ([]byte, error) {
	if nil == s || !s.initialised {
		return nil, fault.SignatureNotInitialised
	}
	digest := sha256.Sum256(payload)
	return digest[:], nil
}

// Sign - hash payload and sign the digest as signer
func (s *Service) Sign(payload []byte, signer Signer) (*Block, error) {
	digest, err := s.Hash(payload)
	if nil != err {
		return nil, err
	}

	sig, err := signer.Sign(digest)
	if nil != err {
		return nil, err
	}

	block := &Block{
		Author:    signer.PublicKeyHex(),
		Hash:      hex.EncodeToString(digest),
		At:        s.now().UTC().Format(time.RFC3339Nano),
		Signature: hex.EncodeToString(sig),
		Alg:       Algorithm,
	}
	s.log.Debugf("signed: %s by: %s", block.Hash, block.Author)
	return block, nil
}

// Verify - payload matches the block and the block was signed by its author
func (s *Service) Verify(payload []byte, block *Block) error {
	digest, err := s.Hash(payload)
	if nil != err {
		return err
	}
	if nil == block {
		return fault.VaultSignatureMissing
	}
	if Algorithm != block.Alg {
		return fault.InvalidSignature
	}
	if hex.EncodeToString(digest) != block.Hash {
		return fault.ChecksumMismatch
	}

	author, err := account.FromHex(block.Author)
	if nil != err {
		return err
	}
	sig, err := account.SignatureFromHex(block.Signature)
	if nil != err {
		return fault.InvalidSignature
	}
	return author.CheckSignature(digest, sig)
}
