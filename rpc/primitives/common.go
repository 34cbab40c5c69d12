// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package primitives

import (
	"context"
	"encoding/json"
	"time"

	"github.com/bitmark-inc/logger"
	"golang.org/x/time/rate"

	"github.com/shipchain/vaultd/engine"
	"github.com/shipchain/vaultd/link"
	"github.com/shipchain/vaultd/primitive"
	"github.com/shipchain/vaultd/rpc/arguments"
	"github.com/shipchain/vaultd/rpc/ratelimit"
	"github.com/shipchain/vaultd/signature"
	"github.com/shipchain/vaultd/vault"
)

const (
	rateLimitPrimitive = 200
	rateBurstPrimitive = 100

	requestTimeout = 2 * time.Minute
)

// Vault - arguments naming a vault only
type Vault = arguments.Vault

// FieldsArguments - replacement field map
type FieldsArguments struct {
	arguments.Vault
	Fields json.RawMessage `json:"fields"`
}

// LinkArguments - a single link slot value
type LinkArguments struct {
	arguments.Vault
	Link json.RawMessage `json:"link"`
}

// KeyArguments - one key of a named collection
type KeyArguments struct {
	arguments.Vault
	Key string `json:"key"`
}

// AddArguments - add a link to a named collection
type AddArguments struct {
	arguments.Vault
	Key      string          `json:"key"`
	Link     json.RawMessage `json:"link"`
	Quantity json.RawMessage `json:"quantity,omitempty"`
}

// WriteReply - result of any committed mutation
type WriteReply struct {
	Success  bool             `json:"success"`
	Signed   *signature.Block `json:"vault_signed"`
	Revision uint64           `json:"vault_revision"`
}

// FieldsReply - field map of a primitive
type FieldsReply struct {
	Success bool             `json:"success"`
	Fields  primitive.Fields `json:"fields"`
}

// DataReply - resolved data
type DataReply struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
}

// EntriesReply - unresolved links of a named collection
type EntriesReply struct {
	Success bool                   `json:"success"`
	Entries map[string]*link.Entry `json:"entries"`
}

// shared by every primitive service
type service struct {
	log     *logger.L
	limiter *rate.Limiter
	engine  *engine.Engine
}

func newService(log *logger.L, e *engine.Engine) service {
	return service{
		log:     log,
		limiter: rate.NewLimiter(rateLimitPrimitive, rateBurstPrimitive),
		engine:  e,
	}
}

// load the vault and run a read against one primitive kind
func (s *service) read(args *arguments.Vault, kind primitive.Kind, f func(context.Context, *engine.Session, primitive.Primitive) error) error {
	if err := ratelimit.Limit(s.limiter); nil != err {
		return err
	}
	target, err := args.Target()
	if nil != err {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	return s.engine.Read(ctx, target, kind, func(session *engine.Session, p primitive.Primitive) error {
		return f(ctx, session, p)
	})
}

// mutate one primitive kind under the vault lock and commit
func (s *service) update(args *arguments.Vault, kind primitive.Kind, f func(primitive.Primitive) error, reply *WriteReply) error {
	if err := ratelimit.Limit(s.limiter); nil != err {
		return err
	}
	target, err := args.Target()
	if nil != err {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	result, err := s.engine.Update(ctx, target, kind, f)
	if nil != err {
		return err
	}
	setWriteReply(reply, result)
	return nil
}

func setWriteReply(reply *WriteReply, result *vault.WriteResult) {
	reply.Success = true
	reply.Signed = result.Signed
	reply.Revision = result.Revision
}

// common field operations
// -----------------------

func (s *service) getFields(args *Vault, kind primitive.Kind, reply *FieldsReply) error {
	return s.read(args, kind, func(_ context.Context, _ *engine.Session, p primitive.Primitive) error {
		reply.Success = true
		reply.Fields = p.(primitive.FieldHolder).GetFields()
		return nil
	})
}

func (s *service) setFields(args *FieldsArguments, kind primitive.Kind, reply *WriteReply) error {
	fields, err := arguments.Fields("fields", args.Fields)
	if nil != err {
		return err
	}
	return s.update(&args.Vault, kind, func(p primitive.Primitive) error {
		return p.(primitive.FieldHolder).SetFields(fields)
	}, reply)
}

// hydrate the whole primitive
func (s *service) get(args *Vault, kind primitive.Kind, reply *DataReply) error {
	return s.read(args, kind, func(ctx context.Context, session *engine.Session, p primitive.Primitive) error {
		data, err := session.Hydrate(ctx, p)
		if nil != err {
			return err
		}
		reply.Success = true
		reply.Data = data
		return nil
	})
}

// resolve one link obtained from the primitive
func (s *service) resolve(args *Vault, kind primitive.Kind, lookup func(primitive.Primitive) (*link.Entry, error), reply *DataReply) error {
	return s.read(args, kind, func(ctx context.Context, session *engine.Session, p primitive.Primitive) error {
		e, err := lookup(p)
		if nil != err {
			return err
		}
		data, err := session.Resolve(ctx, e)
		if nil != err {
			return err
		}
		reply.Success = true
		reply.Data = data
		return nil
	})
}

// shallow copy of a named collection
func (s *service) entries(args *Vault, kind primitive.Kind, collection func(primitive.Primitive) primitive.Collection, reply *EntriesReply) error {
	return s.read(args, kind, func(_ context.Context, _ *engine.Session, p primitive.Primitive) error {
		c := collection(p)
		reply.Success = true
		reply.Entries = make(map[string]*link.Entry, len(c))
		for k, e := range c {
			reply.Entries[k] = e
		}
		return nil
	})
}
