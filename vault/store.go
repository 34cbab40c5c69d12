// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package vault

import (
	"context"
	"encoding/json"

	"github.com/bitmark-inc/logger"

	"github.com/shipchain/vaultd/account"
	"github.com/shipchain/vaultd/driver"
	"github.com/shipchain/vaultd/fault"
	"github.com/shipchain/vaultd/primitive"
	"github.com/shipchain/vaultd/signature"
)

const metaFileName = "meta.json"

// Options - write and load policy
type Options struct {
	StrictRevisions bool `gluamapper:"strict_revisions" json:"strict_revisions"`
	VerifyOnLoad    bool `gluamapper:"verify_on_load" json:"verify_on_load"`
}

// WriteResult - outcome of a committed write
type WriteResult struct {
	Signed   *signature.Block `json:"vault_signed"`
	Revision uint64           `json:"vault_revision"`
}

// MetadataStore - lifecycle of one vault's metadata document
type MetadataStore struct {
	log       *logger.L
	id        string
	driver    driver.Driver
	signature *signature.Service
	options   Options

	meta *Metadata

	// revision as last read from or written to storage
	persisted         bool
	persistedRevision uint64
}

// New - store for a vault id on a driver, nothing is loaded yet
func New(log *logger.L, id string, d driver.Driver, s *signature.Service, options Options) *MetadataStore {
	return &MetadataStore{
		log:       log,
		id:        id,
		driver:    d,
		signature: s,
		options:   options,
	}
}

// ID - vault id
func (s *MetadataStore) ID() string {
	return s.id
}

// MetaFilePath - driver relative path of the metadata document
func (s *MetadataStore) MetaFilePath() string {
	return s.id + "/" + metaFileName
}

// MetaFileURI - driver specific location of the metadata document
func (s *MetadataStore) MetaFileURI() string {
	return s.driver.URI(s.MetaFilePath())
}

// Metadata - the loaded document, nil before load or create
func (s *MetadataStore) Metadata() *Metadata {
	return s.meta
}

// GetOrCreateMetadata - load if present, otherwise start revision 0 owned by author
func (s *MetadataStore) GetOrCreateMetadata(ctx context.Context, author signature.Signer) error {
	if nil != s.meta {
		return nil
	}

	exists, err := s.driver.Exists(ctx, s.MetaFilePath())
	if nil != err {
		return fault.UnableToLoadVault(err)
	}
	if exists {
		return s.LoadMetadata(ctx)
	}

	s.meta = newMetadata(s.id, author.PublicKeyHex())
	s.persisted = false
	s.log.Debugf("vault: %s  new metadata", s.id)
	return nil
}

// LoadMetadata - read and decode the persisted document
func (s *MetadataStore) LoadMetadata(ctx context.Context) error {
	meta, err := s.read(ctx)
	if nil != err {
		return err
	}
	s.meta = meta
	s.persisted = true
	s.persistedRevision = meta.Revision

	if s.options.VerifyOnLoad {
		if err := s.Verify(); nil != err {
			s.meta = nil
			s.persisted = false
			return err
		}
	}
	s.log.Debugf("vault: %s  loaded revision: %d", s.id, meta.Revision)
	return nil
}

func (s *MetadataStore) read(ctx context.Context) (*Metadata, error) {
	data, err := s.driver.Get(ctx, s.MetaFilePath())
	if nil != err {
		return nil, fault.UnableToLoadVault(err)
	}

	meta := &Metadata{}
	if err := json.Unmarshal(data, meta); nil != err {
		return nil, fault.UnableToLoadVault(err)
	}
	if meta.ID != s.id {
		return nil, fault.VaultVerificationFailed(s.id, "id mismatch")
	}
	meta.normalise()
	return meta, nil
}

// InjectPrimitive - add an empty primitive of a named kind
func (s *MetadataStore) InjectPrimitive(name string) error {
	if nil == s.meta {
		return fault.VaultMetadataNotLoaded
	}
	kind, err := primitive.KindFromName(name)
	if nil != err {
		return err
	}
	if _, ok := s.meta.Primitives[kind]; ok {
		return fault.PrimitiveExists(name, s.id)
	}
	p, err := primitive.New(kind)
	if nil != err {
		return err
	}
	s.meta.Primitives[kind] = p
	return nil
}

// Primitive - the vault's instance of a kind
func (s *MetadataStore) Primitive(kind primitive.Kind) (primitive.Primitive, error) {
	if nil == s.meta {
		return nil, fault.VaultMetadataNotLoaded
	}
	p, ok := s.meta.Primitives[kind]
	if !ok {
		return nil, fault.PrimitiveNotFound(kind.String(), s.id)
	}
	return p, nil
}

// Authorize - an existing owner adds a public key to a role
func (s *MetadataStore) Authorize(acting signature.Signer, role string, publicKey string) error {
	if nil == s.meta {
		return fault.VaultMetadataNotLoaded
	}
	if OwnersRole != role {
		return fault.InvalidRole(role)
	}
	if !s.meta.IsOwner(acting.PublicKeyHex()) {
		return fault.NotAuthorised(acting.PublicKeyHex(), s.id)
	}
	key, err := account.FromHex(publicKey)
	if nil != err {
		return err
	}
	s.meta.addOwner(key.PublicKeyHex())
	return nil
}

// WriteMetadata - sign and persist the current state
//
// the first write of a new vault is revision 0, every later write adds
// one; in strict mode the stored revision must still be the one loaded
func (s *MetadataStore) WriteMetadata(ctx context.Context, author signature.Signer) (*WriteResult, error) {
	if nil == s.meta {
		return nil, fault.VaultMetadataNotLoaded
	}
	if !s.meta.IsOwner(author.PublicKeyHex()) {
		return nil, fault.NotAuthorised(author.PublicKeyHex(), s.id)
	}

	if s.options.StrictRevisions {
		if err := s.checkRevision(ctx); nil != err {
			return nil, err
		}
	}

	revision := uint64(0)
	if s.persisted {
		revision = s.persistedRevision + 1
	}

	previousRevision := s.meta.Revision
	previousSigned := s.meta.Signed
	restore := func() {
		s.meta.Revision = previousRevision
		s.meta.Signed = previousSigned
	}

	s.meta.Revision = revision
	payload, err := s.meta.Canonical()
	if nil != err {
		restore()
		return nil, err
	}

	block, err := s.signature.Sign(payload, author)
	if nil != err {
		restore()
		return nil, err
	}
	s.meta.Signed = block

	data, err := json.Marshal(s.meta)
	if nil != err {
		restore()
		return nil, err
	}

	if err := s.driver.Put(ctx, s.MetaFilePath(), data); nil != err {
		restore()
		s.log.Errorf("vault: %s  write revision: %d  error: %s", s.id, revision, err)
		return nil, fault.UnableToWriteVault(err)
	}

	s.persisted = true
	s.persistedRevision = revision
	s.log.Infof("vault: %s  wrote revision: %d", s.id, revision)

	return &WriteResult{
		Signed:   block,
		Revision: revision,
	}, nil
}

// detect a concurrent writer
func (s *MetadataStore) checkRevision(ctx context.Context) error {
	if !s.persisted {
		exists, err := s.driver.Exists(ctx, s.MetaFilePath())
		if nil != err {
			return fault.UnableToLoadVault(err)
		}
		if exists {
			return fault.VaultMetadataAlreadyExists
		}
		return nil
	}

	stored, err := s.read(ctx)
	if nil != err {
		return err
	}
	if stored.Revision != s.persistedRevision {
		s.log.Warnf("vault: %s  revision conflict: expected: %d  found: %d", s.id, s.persistedRevision, stored.Revision)
		return fault.RevisionConflict(s.id, s.persistedRevision, stored.Revision)
	}
	return nil
}

// Verify - hash and signature of the loaded state match its block
func (s *MetadataStore) Verify() error {
	if nil == s.meta {
		return fault.VaultMetadataNotLoaded
	}
	if nil == s.meta.Signed {
		return fault.VaultSignatureMissing
	}
	if !s.meta.IsOwner(s.meta.Signed.Author) {
		return fault.VaultVerificationFailed(s.id, "author is not an owner")
	}
	payload, err := s.meta.Canonical()
	if nil != err {
		return err
	}
	if err := s.signature.Verify(payload, s.meta.Signed); nil != err {
		return fault.VaultVerificationFailed(s.id, err.Error())
	}
	return nil
}
