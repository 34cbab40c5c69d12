// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package credentials

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/shipchain/vaultd/credential"
	"github.com/shipchain/vaultd/driver"
	"github.com/shipchain/vaultd/rpc/ratelimit"
)

const (
	rateLimitCredentials = 10
	rateBurstCredentials = 20
)

// StorageCredentials - type for RPC
type StorageCredentials struct {
	Log     *logger.L
	Limiter *rate.Limiter
	manager credential.Manager
}

// CreateArguments - a title plus the driver options
type CreateArguments struct {
	Title string `json:"title"`
	driver.Options
}

// CreateReply - the new credentials without their secrets
type CreateReply struct {
	Success     bool               `json:"success"`
	Credentials credential.Summary `json:"storage_credentials"`
}

// ListArguments - no arguments
type ListArguments struct{}

// ListReply - every stored credential
type ListReply struct {
	Success     bool                 `json:"success"`
	Credentials []credential.Summary `json:"storage_credentials"`
}

// New - create storage credentials service
func New(log *logger.L, manager credential.Manager) *StorageCredentials {
	return &StorageCredentials{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitCredentials, rateBurstCredentials),
		manager: manager,
	}
}

// Create - validate and store a driver configuration
func (s *StorageCredentials) Create(args *CreateArguments, reply *CreateReply) error {
	if err := ratelimit.Limit(s.Limiter); nil != err {
		return err
	}

	s.Log.Infof("StorageCredentials.Create: title: %q  driver: %q", args.Title, args.DriverType)

	c, err := s.manager.Create(args.Title, args.Options)
	if nil != err {
		return err
	}
	reply.Success = true
	reply.Credentials = credential.Summary{
		ID:         c.ID,
		Title:      c.Title,
		DriverType: c.Options.DriverType,
		BasePath:   c.Options.BasePath,
	}
	return nil
}

// List - summaries of all credentials
func (s *StorageCredentials) List(_ *ListArguments, reply *ListReply) error {
	if err := ratelimit.Limit(s.Limiter); nil != err {
		return err
	}

	s.Log.Info("StorageCredentials.List")

	list, err := s.manager.List()
	if nil != err {
		return err
	}
	reply.Success = true
	reply.Credentials = list
	return nil
}
