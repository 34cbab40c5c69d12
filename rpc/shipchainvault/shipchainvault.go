// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package shipchainvault

import (
	"context"
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/shipchain/vaultd/engine"
	"github.com/shipchain/vaultd/primitive"
	"github.com/shipchain/vaultd/rpc/arguments"
	"github.com/shipchain/vaultd/rpc/ratelimit"
	"github.com/shipchain/vaultd/signature"
)

const (
	rateLimitVault = 50
	rateBurstVault = 50

	requestTimeout = 2 * time.Minute
)

// ShipChainVault - type for RPC
type ShipChainVault struct {
	Log     *logger.L
	Limiter *rate.Limiter
	engine  *engine.Engine
}

// CreateArguments - owner, optional co-owner and initial primitives
type CreateArguments struct {
	StorageCredentials string   `json:"storageCredentials"`
	VaultWallet        string   `json:"vaultWallet"`
	AdditionalWallet   string   `json:"additionalWallet"`
	Primitives         []string `json:"primitives"`
}

// CreateReply - the new vault
type CreateReply struct {
	Success bool             `json:"success"`
	VaultID string           `json:"vault_id"`
	Signed  *signature.Block `json:"vault_signed"`
	URI     string           `json:"vault_uri"`
}

// InjectArguments - primitives to add to an existing vault
type InjectArguments struct {
	arguments.Vault
	Primitives []string `json:"primitives"`
}

// InjectReply - the committed write
type InjectReply struct {
	Success  bool             `json:"success"`
	Signed   *signature.Block `json:"vault_signed"`
	Revision uint64           `json:"vault_revision"`
}

// New - create vault service
func New(log *logger.L, e *engine.Engine) *ShipChainVault {
	return &ShipChainVault{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitVault, rateBurstVault),
		engine:  e,
	}
}

// Create - a new vault with metadata signed at revision zero
func (v *ShipChainVault) Create(args *CreateArguments, reply *CreateReply) error {
	if err := ratelimit.Limit(v.Limiter); nil != err {
		return err
	}

	v.Log.Infof("ShipChainVault.Create: %+v", args)

	if err := arguments.UUID("storageCredentials", args.StorageCredentials); nil != err {
		return err
	}
	if err := arguments.UUID("vaultWallet", args.VaultWallet); nil != err {
		return err
	}
	if err := arguments.OptionalUUID("additionalWallet", args.AdditionalWallet); nil != err {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	result, err := v.engine.Create(ctx, args.StorageCredentials, args.VaultWallet, args.AdditionalWallet, args.Primitives)
	if nil != err {
		return err
	}

	reply.Success = true
	reply.VaultID = result.VaultID
	reply.Signed = result.Signed
	reply.URI = result.URI
	return nil
}

// InjectPrimitives - add empty primitives, nothing is written if any is rejected
func (v *ShipChainVault) InjectPrimitives(args *InjectArguments, reply *InjectReply) error {
	v.Log.Infof("ShipChainVault.InjectPrimitives: %+v  primitives: %v", args.Vault, args.Primitives)

	if err := arguments.Primitives("primitives", args.Primitives); nil != err {
		return err
	}
	if err := ratelimit.LimitN(v.Limiter, len(args.Primitives), len(primitive.Kinds())); nil != err {
		return err
	}
	target, err := args.Target()
	if nil != err {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	result, err := v.engine.InjectPrimitives(ctx, target, args.Primitives)
	if nil != err {
		return err
	}

	reply.Success = true
	reply.Signed = result.Signed
	reply.Revision = result.Revision
	return nil
}
