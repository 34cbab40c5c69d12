// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package credential

import (
	"encoding/json"
	"sort"

	"github.com/bitmark-inc/logger"
	"github.com/google/uuid"

	"github.com/shipchain/vaultd/driver"
	"github.com/shipchain/vaultd/fault"
	"github.com/shipchain/vaultd/storage"
)

// Lookup - resolve storage credentials to driver options
type Lookup interface {
	GetOptionsByID(id string) (driver.Options, error)
}

// Manager - credential creation and listing as well as lookup
type Manager interface {
	Lookup
	Create(title string, options driver.Options) (*Credential, error)
	List() ([]Summary, error)
}

// Credential - a named storage location
type Credential struct {
	ID      string         `json:"id"`
	Title   string         `json:"title"`
	Options driver.Options `json:"options"`
}

// Summary - listing form, secrets omitted
type Summary struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	DriverType string `json:"driver_type"`
	BasePath   string `json:"base_path"`
}

// Store - credentials persisted in a storage pool
type Store struct {
	log  *logger.L
	pool storage.Handle
}

// NewStore - create a store over a storage pool
func NewStore(log *logger.L, pool storage.Handle) *Store {
	return &Store{
		log:  log,
		pool: pool,
	}
}

// Create - validate the driver type and persist under a fresh id
func (s *Store) Create(title string, options driver.Options) (*Credential, error) {
	if "" == options.DriverType {
		return nil, fault.MissingParameter("driver_type")
	}
	if !driver.IsValidType(options.DriverType) {
		return nil, fault.InvalidStorageDriver(options.DriverType)
	}

	c := &Credential{
		ID:      uuid.New().String(),
		Title:   title,
		Options: options,
	}
	data, err := json.Marshal(c)
	if nil != err {
		return nil, err
	}
	if err := s.pool.Put([]byte(c.ID), data); nil != err {
		return nil, err
	}

	s.log.Infof("created storage credentials: %s  driver: %s", c.ID, options.DriverType)
	return c, nil
}

// get - the full record
func (s *Store) get(id string) (*Credential, error) {
	data, err := s.pool.Get([]byte(id))
	if nil != err {
		return nil, err
	}
	if nil == data {
		return nil, fault.StorageCredentialsNotFound
	}
	var c Credential
	if err := json.Unmarshal(data, &c); nil != err {
		s.log.Errorf("storage credentials: %s  corrupt record: %s", id, err)
		return nil, fault.StorageCredentialsNotFound
	}
	return &c, nil
}

// GetOptionsByID - driver options for a credential
func (s *Store) GetOptionsByID(id string) (driver.Options, error) {
	c, err := s.get(id)
	if nil != err {
		return driver.Options{}, err
	}
	return c.Options, nil
}

// List - every credential, sorted by title then id
func (s *Store) List() ([]Summary, error) {
	list := []Summary{}
	err := s.pool.Map(func(key []byte, value []byte) error {
		var c Credential
		if err := json.Unmarshal(value, &c); nil != err {
			s.log.Warnf("skip corrupt storage credentials: %s", key)
			return nil
		}
		list = append(list, Summary{
			ID:         c.ID,
			Title:      c.Title,
			DriverType: c.Options.DriverType,
			BasePath:   c.Options.BasePath,
		})
		return nil
	})
	if nil != err {
		return nil, err
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].Title == list[j].Title {
			return list[i].ID < list[j].ID
		}
		return list[i].Title < list[j].Title
	})
	return list, nil
}
