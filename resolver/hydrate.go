// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package resolver

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/shipchain/vaultd/fault"
	"github.com/shipchain/vaultd/link"
	"github.com/shipchain/vaultd/primitive"
)

// Object - hydrated form of a primitive
type Object map[string]interface{}

// resolves a primitive's links concurrently, first error cancels the rest
type fanout struct {
	sync.Mutex
	r       *Resolver
	group   *errgroup.Group
	ctx     context.Context
	current Current
	trail   []string
}

func (r *Resolver) newFanout(ctx context.Context, current Current, trail []string) *fanout {
	group, groupCtx := errgroup.WithContext(ctx)
	return &fanout{
		r:       r,
		group:   group,
		ctx:     groupCtx,
		current: current,
		trail:   trail,
	}
}

func (f *fanout) resolve(e *link.Entry, assign func(value interface{})) {
	f.group.Go(func() error {
		if nil == e {
			return fault.InvalidLinkEntry
		}
		value, err := f.r.resolve(f.ctx, f.current, e, f.trail)
		if nil != err {
			return err
		}
		f.Lock()
		assign(value)
		f.Unlock()
		return nil
	})
}

func (f *fanout) collection(c primitive.Collection) Object {
	result := make(Object, len(c))
	for key, e := range c {
		key := key
		f.resolve(e, func(value interface{}) {
			result[key] = value
		})
	}
	return result
}

func (f *fanout) wait() error {
	return f.group.Wait()
}

// hydrate - replace every link in a primitive by its resolved target
func (r *Resolver) hydrate(ctx context.Context, current Current, p primitive.Primitive, trail []string) (interface{}, error) {
	f := r.newFanout(ctx, current, trail)

	switch p := p.(type) {

	case *primitive.Document:
		return Object{"fields": p.GetFields()}, nil

	case *primitive.Product:
		documents := f.collection(p.Documents)
		if err := f.wait(); nil != err {
			return nil, err
		}
		return Object{
			"fields":    p.GetFields(),
			"documents": documents,
		}, nil

	case *primitive.Item:
		result := Object{
			"fields":  p.GetFields(),
			"product": nil,
		}
		if nil != p.Product {
			f.resolve(p.Product, func(value interface{}) {
				result["product"] = value
			})
		}
		if err := f.wait(); nil != err {
			return nil, err
		}
		return result, nil

	case *primitive.Shipment:
		result := Object{
			"fields":    p.GetFields(),
			"documents": f.collection(p.Documents),
			"tracking":  nil,
		}
		items := make(Object, len(p.Items))
		for key, line := range p.Items {
			if nil == line {
				f.resolve(nil, nil)
				continue
			}
			key, quantity := key, line.Quantity
			f.resolve(line.Item, func(value interface{}) {
				items[key] = Object{"quantity": quantity, "item": value}
			})
		}
		result["items"] = items
		if nil != p.Tracking {
			f.resolve(p.Tracking, func(value interface{}) {
				result["tracking"] = value
			})
		}
		if err := f.wait(); nil != err {
			return nil, err
		}
		return result, nil

	case *primitive.Procurement:
		result := Object{
			"fields":    p.GetFields(),
			"shipments": f.collection(p.Shipments),
			"documents": f.collection(p.Documents),
		}
		products := make(Object, len(p.Products))
		for key, line := range p.Products {
			if nil == line {
				f.resolve(nil, nil)
				continue
			}
			key, quantity := key, line.Quantity
			f.resolve(line.Product, func(value interface{}) {
				products[key] = Object{"quantity": quantity, "product": value}
			})
		}
		result["products"] = products
		if err := f.wait(); nil != err {
			return nil, err
		}
		return result, nil

	case *primitive.Tracking:
		return p.Get(), nil

	case *primitive.List:
		entries := f.collection(p.Entries)
		if err := f.wait(); nil != err {
			return nil, err
		}
		return entries, nil
	}

	return nil, fault.InvalidPrimitiveType(p.Kind().String())
}
