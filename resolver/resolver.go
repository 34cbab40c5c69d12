// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package resolver

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/shipchain/vaultd/fault"
	"github.com/shipchain/vaultd/link"
	"github.com/shipchain/vaultd/primitive"
)

// LinkedDataMethod - remote JSON-RPC 2.0 method serving shallow primitives
const LinkedDataMethod = "vaults.linked.get_linked_data"

const defaultMaximumDepth = 8

// Configuration - the links block of the configuration file
type Configuration struct {
	LocalEndpoints     []string `gluamapper:"local_endpoints" json:"local_endpoints"`
	MaximumDepth       int      `gluamapper:"maximum_depth" json:"maximum_depth"`
	Timeout            int      `gluamapper:"timeout" json:"timeout"`
	InsecureSkipVerify bool     `gluamapper:"insecure_skip_verify" json:"insecure_skip_verify"`
}

// Source - shallow primitives from vaults held by this process
type Source interface {
	Shallow(ctx context.Context, locator link.Locator) (primitive.Primitive, error)
}

// Caller - JSON-RPC 2.0 transport to a remote vault endpoint
type Caller interface {
	Call(ctx context.Context, endpoint string, method string, params interface{}) (json.RawMessage, error)
}

// Current - the vault a request already has loaded
type Current interface {
	ID() string
	Primitive(kind primitive.Kind) (primitive.Primitive, error)
}

// LinkedDataArguments - params of the remote call
type LinkedDataArguments struct {
	LinkEntry string `json:"linkEntry"`
}

// Resolver - turn link entries into hydrated object graphs
type Resolver struct {
	sync.RWMutex

	log    *logger.L
	source Source
	caller Caller

	local        map[string]struct{}
	maximumDepth int
}

// New - create a resolver
func New(log *logger.L, source Source, caller Caller, configuration Configuration) *Resolver {
	r := &Resolver{
		log:    log,
		source: source,
		caller: caller,
	}
	r.Configure(configuration)
	return r
}

// Configure - apply a links configuration block
func (r *Resolver) Configure(configuration Configuration) {
	local := make(map[string]struct{}, len(configuration.LocalEndpoints))
	for _, endpoint := range configuration.LocalEndpoints {
		local[endpoint] = struct{}{}
	}
	depth := configuration.MaximumDepth
	if depth <= 0 {
		depth = defaultMaximumDepth
	}

	r.Lock()
	r.local = local
	r.maximumDepth = depth
	r.Unlock()

	if c, ok := r.caller.(interface{ Configure(Configuration) }); ok {
		c.Configure(configuration)
	}
	r.log.Infof("links: maximum depth: %d  local endpoints: %v", depth, configuration.LocalEndpoints)
}

// MaximumDepth - current depth limit
func (r *Resolver) MaximumDepth() int {
	r.RLock()
	defer r.RUnlock()
	return r.maximumDepth
}

func (r *Resolver) isLocal(l link.Locator) bool {
	if l.IsLocal() {
		return true
	}
	r.RLock()
	_, ok := r.local[l.Endpoint]
	r.RUnlock()
	return ok
}

// Resolve - fetch the target of an entry and hydrate its links
//
// current may be nil, otherwise links into that vault are read from it
func (r *Resolver) Resolve(ctx context.Context, current Current, e *link.Entry) (interface{}, error) {
	if nil == e {
		return nil, fault.InvalidLinkEntry
	}
	return r.resolve(ctx, current, e, nil)
}

// Hydrate - resolve every link held by a primitive
func (r *Resolver) Hydrate(ctx context.Context, current Current, p primitive.Primitive) (interface{}, error) {
	return r.hydrate(ctx, current, p, nil)
}

// trail holds the locators on the path from the root, used for cycle
// detection and depth limiting
func (r *Resolver) resolve(ctx context.Context, current Current, e *link.Entry, trail []string) (interface{}, error) {
	ref := e.String()

	if len(trail) >= r.MaximumDepth() {
		return nil, fault.LinkDepthExceeded(ref, r.MaximumDepth())
	}
	for _, visited := range trail {
		if visited == ref {
			return nil, fault.LinkCycle(ref)
		}
	}

	p, err := r.fetch(ctx, current, e)
	if nil != err {
		r.log.Warnf("link: %s  error: %s", ref, err)
		return nil, fault.UnableToResolveLink(ref, err)
	}

	next := make([]string, len(trail), len(trail)+1)
	copy(next, trail)
	next = append(next, ref)

	return r.hydrate(ctx, current, p, next)
}

// obtain the shallow primitive an entry names
func (r *Resolver) fetch(ctx context.Context, current Current, e *link.Entry) (primitive.Primitive, error) {
	kind, err := primitive.KindFromName(e.Type)
	if nil != err {
		return nil, err
	}

	l := e.Locator
	if l.Type != e.Type {
		return nil, fault.LinkTypeMismatch(l.Type, e.Type)
	}
	if r.isLocal(l) {
		if nil != current && current.ID() == l.VaultID {
			return current.Primitive(kind)
		}
		if nil == r.source {
			return nil, fault.NotInitialised
		}
		p, err := r.source.Shallow(ctx, l)
		if nil != err {
			return nil, err
		}
		if p.Kind() != kind {
			return nil, fault.LinkTypeMismatch(kind.String(), p.Kind().String())
		}
		return p, nil
	}

	r.log.Debugf("remote link: %s", e)
	result, err := r.caller.Call(ctx, l.Endpoint, LinkedDataMethod, LinkedDataArguments{LinkEntry: e.String()})
	if nil != err {
		return nil, err
	}
	return DecodeLinkedData(kind, result)
}
